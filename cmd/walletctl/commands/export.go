package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wallet-engine/internal/adapter/export"
	"wallet-engine/internal/adapter/render"
	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/service"
	"wallet-engine/pkg/apperror"
)

func exportCmd(a *app) *cobra.Command {
	var format, dir, prefix string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Render a JSON array of transactions as csv or png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := domain.ParseExportFormat(format)
			if !ok {
				return apperror.Validation(fmt.Sprintf("unknown format %q (want csv or png)", format))
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var txs []domain.Transaction
			if err := json.Unmarshal(raw, &txs); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			if dir == "" {
				dir = a.cfg.Engine.ExportDir
			}
			if prefix == "" {
				prefix = a.cfg.Engine.ExportPrefix
			}
			payload, err := service.ExportTransactions(txs, f, render.NewPNGRenderer("Transactions"), prefix, time.Now().UTC())
			if err != nil {
				return err
			}
			path, err := export.NewFileSink(dir, a.log).Save(cmd.Context(), payload)
			if err != nil {
				return apperror.ErrExportFailed(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", payload.Rows, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or png")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default engine.export_dir)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "file name prefix (default engine.export_prefix)")
	return cmd
}
