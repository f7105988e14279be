package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logship/internal/logging"
)

func newEmitCommand(ctx *commandContext) *cobra.Command {
	var (
		levelFlag   string
		contextFlag string
		dataFlag    string
	)

	cmd := &cobra.Command{
		Use:   "emit <message>",
		Short: "Emit one log entry through the full pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := logging.ParseLevel(levelFlag)
			if !ok || level == logging.LevelNone {
				return fmt.Errorf("invalid level %q (expected debug|info|warn|error)", levelFlag)
			}

			var payload any
			hasPayload := strings.TrimSpace(dataFlag) != ""
			if hasPayload {
				if err := json.Unmarshal([]byte(dataFlag), &payload); err != nil {
					return fmt.Errorf("parse --data as JSON: %w", err)
				}
			}

			return ctx.withLogger(func(logger *logging.Logger) error {
				if contextFlag != "" {
					logger = logger.WithContext(contextFlag)
				}
				emit := map[logging.Level]func(string, ...any){
					logging.LevelDebug: logger.Debug,
					logging.LevelInfo:  logger.Info,
					logging.LevelWarn:  logger.Warn,
					logging.LevelError: logger.Error,
				}[level]
				if hasPayload {
					emit(args[0], payload)
				} else {
					emit(args[0])
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&levelFlag, "level", "l", "info", "Severity: debug|info|warn|error")
	cmd.Flags().StringVar(&contextFlag, "context", "", "Context label for the entry")
	cmd.Flags().StringVar(&dataFlag, "data", "", "Optional JSON payload to attach")
	return cmd
}
