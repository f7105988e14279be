package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"logship/internal/logging"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect the durable local log",
	}

	logsCmd.AddCommand(newLogsListCommand(ctx))
	logsCmd.AddCommand(newLogsExportCommand(ctx))
	logsCmd.AddCommand(newLogsClearCommand(ctx))

	return logsCmd
}

func newLogsListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored log entries, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *logging.DurableStore) error {
				entries := store.Entries(cmd.Context())
				if limit > 0 && len(entries) > limit {
					entries = entries[len(entries)-limit:]
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No stored log entries.")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					data := ""
					if entry.Data != nil {
						data = formatCell(entry.Data)
					}
					rows = append(rows, []string{
						entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
						entry.Level.Label(),
						entry.Context,
						entry.Message,
						data,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"TIME", "LEVEL", "CONTEXT", "MESSAGE", "DATA"},
					rows,
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the most recent N entries")
	return cmd
}

func newLogsExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored log entries as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *logging.DurableStore) error {
				text := store.Export(cmd.Context())
				if strings.TrimSpace(outputPath) == "" {
					fmt.Fprintln(cmd.OutOrStdout(), text)
					return nil
				}
				if err := os.WriteFile(outputPath, []byte(text+"\n"), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported stored logs to %s\n", outputPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the export to a file instead of stdout")
	return cmd
}

func newLogsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *logging.DurableStore) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Stored logs cleared.")
				return nil
			})
		},
	}
}
