package logging

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genLevel() gopter.Gen {
	return gen.IntRange(int(LevelDebug), int(LevelNone)).Map(func(v int) Level {
		return Level(v)
	})
}

func TestShouldEmitProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("emission follows rank ordering", prop.ForAll(
		func(level, threshold Level) bool {
			return ShouldEmit(level, threshold) == (level.Rank() >= threshold.Rank())
		},
		genLevel(), genLevel(),
	))

	properties.Property("raising the threshold never admits more", prop.ForAll(
		func(level, lower, higher Level) bool {
			if lower.Rank() > higher.Rank() {
				lower, higher = higher, lower
			}
			if ShouldEmit(level, higher) && !ShouldEmit(level, lower) {
				return false
			}
			return true
		},
		genLevel(), genLevel(), genLevel(),
	))

	properties.Property("a level always passes its own threshold", prop.ForAll(
		func(level Level) bool {
			return ShouldEmit(level, level)
		},
		genLevel(),
	))

	properties.TestingRun(t)
}
