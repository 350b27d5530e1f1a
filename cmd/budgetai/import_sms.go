package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/durgas/budgetai/internal/cli"
	"github.com/durgas/budgetai/internal/sms"
)

// messageFile is the on-disk shape of an exported device message, matching
// the fields the device bridge returns.
type messageFile struct {
	Address    string `json:"address"`
	Body       string `json:"body"`
	Date       string `json:"date"`
	DateMillis int64  `json:"dateMillis"`
	Type       int    `json:"type"`
}

func importSMSCmd() *cobra.Command {
	var (
		file   string
		filter string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "import-sms",
		Short: "Import transactions from exported SMS messages",
		Long: `Read bank messages from an SMS export file, extract the transactions
they describe, and record them. Messages without recognizable
transaction data are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			messages, err := loadMessages(file)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.NewOptions(len(messages),
				progressbar.OptionSetDescription("Extracting transactions"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)

			// Exported messages behave like a device with permission
			// already granted.
			bridge := sms.NewMemoryBridge(messages, true)
			importer := sms.NewImporter(bridge, store,
				sms.WithProgress(func(processed, _ int) {
					_ = bar.Set(processed)
				}),
			)

			imported, skipped, err := importer.Import(ctx, filter, limit)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d messages skipped)", imported, skipped)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file of exported messages (required)")
	cmd.Flags().StringVar(&filter, "filter", "", "only consider messages whose body contains this text")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum messages to read")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadMessages(path string) ([]sms.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}

	var raw []messageFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse messages file: %w", err)
	}

	messages := make([]sms.Message, 0, len(raw))
	for _, entry := range raw {
		date := time.UnixMilli(entry.DateMillis)
		if entry.DateMillis == 0 && entry.Date != "" {
			if parsed, err := time.Parse("2006-01-02 15:04:05", entry.Date); err == nil {
				date = parsed
			}
		}
		messages = append(messages, sms.Message{
			Address:    entry.Address,
			Body:       entry.Body,
			Date:       date,
			DateMillis: entry.DateMillis,
			Type:       sms.MessageType(entry.Type),
		})
	}

	return messages, nil
}
