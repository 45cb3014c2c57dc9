package main

import (
	"context"
	"io"
	"os"
	"time"

	"backma/internal/config"
	"backma/internal/export"
	"backma/pkg/logger"
	"backma/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCommand constructs the 'export' subcommand that writes a CSV export of
// transactions, purchases or users to stdout or a file.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "export {transactions|purchases|users}",
		Short:     "Exports a listing as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(export.KindTransactions), string(export.KindPurchases), string(export.KindUsers)},
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			output, _ := cmd.Flags().GetString("output")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					logger.Fatal(ctx, "could not create output file", zap.Error(err))
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			exporter := export.New(strg)

			var (
				rows int
				err  error
			)
			switch kind := export.Kind(args[0]); kind {
			case export.KindTransactions:
				filter := storage.TransactionFilter{}
				filter.From, filter.To = parseTime(ctx, "from", from), parseTime(ctx, "to", to)
				rows, err = exporter.Transactions(ctx, w, filter)
			case export.KindPurchases:
				rows, err = exporter.Purchases(ctx, w, storage.PurchaseFilter{})
			case export.KindUsers:
				rows, err = exporter.Users(ctx, w, storage.UserFilter{})
			default:
				logger.Fatal(ctx, "unknown export", zap.String("kind", string(kind)))
			}
			if err != nil {
				logger.Fatal(ctx, "could not export", zap.Error(err))
			}

			logger.Info(ctx, "export written", zap.String("kind", args[0]), zap.Int("rows", rows))
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file, defaults to stdout")
	cmd.Flags().String("from", "", "Transactions created at or after this RFC3339 time")
	cmd.Flags().String("to", "", "Transactions created before this RFC3339 time")

	return cmd
}

func parseTime(ctx context.Context, name, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		logger.Fatal(ctx, "invalid time flag", zap.String("flag", name), zap.Error(err))
	}

	return t
}
