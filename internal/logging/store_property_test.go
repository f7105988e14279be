package logging

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"logship/internal/config"
	"logship/internal/kv"
)

func TestDurableStoreRetentionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("capacity is never exceeded and survivors keep order", prop.ForAll(
		func(appendCount, capacity int) bool {
			cfg := testConfig()
			cfg.Storage.MaxStoredLogs = capacity
			store := NewDurableStore(config.NewCell(cfg), kv.NewMemoryStore(), nil)
			ctx := context.Background()

			for i := 0; i < appendCount; i++ {
				store.Append(ctx, testEntry(LevelInfo, fmt.Sprintf("m%d", i), "app"))
			}

			entries := store.Entries(ctx)
			if len(entries) > capacity {
				return false
			}
			want := appendCount
			if want > capacity {
				want = capacity
			}
			if len(entries) != want {
				return false
			}
			for i, entry := range entries {
				if entry.Message != fmt.Sprintf("m%d", appendCount-want+i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.IntRange(0, 15),
	))

	properties.TestingRun(t)
}
