package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/deeplink"
)

func deeplinkCmd(a *app) *cobra.Command {
	var amount, token, note, scheme string
	cmd := &cobra.Command{
		Use:   "deeplink ADDRESS",
		Short: "Build a receive link for ADDRESS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := decimal.Zero
			if amount != "" {
				v, err := dto.ParseAmount(amount)
				if err != nil || v.IsNegative() {
					return apperror.ErrInvalidAmount()
				}
				value = v
			}
			if scheme == "" {
				scheme = a.cfg.Engine.DeeplinkScheme
			}
			link, err := deeplink.Encode(scheme, deeplink.Request{
				Address: args[0],
				Amount:  value,
				Token:   token,
				Note:    note,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "requested amount (default 0)")
	cmd.Flags().StringVar(&token, "token", "", "asset symbol")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	cmd.Flags().StringVar(&scheme, "scheme", "", "link scheme (default engine.deeplink_scheme)")
	return cmd
}
