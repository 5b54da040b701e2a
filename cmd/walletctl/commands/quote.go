package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/internal/service"
	"wallet-engine/pkg/apperror"
)

func quoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote FROM TO AMOUNT",
		Short: "Price a swap at the configured seed rates",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := dto.ParseAmount(args[2])
			if err != nil {
				return apperror.ErrInvalidAmount()
			}
			q, err := service.NewSwapEngine(nil, nil, a.oracle, nil, a.log).Quote(args[0], args[1], amount)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s = %s %s\n", q.Amount.String(), q.From, q.Display(), q.To)
			if !q.RateKnown {
				fmt.Fprintf(out, "warning: no rate for %s or %s, priced at 1 %s\n", q.From, q.To, a.oracle.Pivot())
			}
			return nil
		},
	}
	return cmd
}
