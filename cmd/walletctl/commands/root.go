package commands

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wallet-engine/config"
	"wallet-engine/internal/service"
	"wallet-engine/pkg/logger"
)

// app is the state shared by subcommands once the root has loaded config.
type app struct {
	cfgPath  string
	logLevel string

	cfg    *config.Config
	oracle *service.PriceOracle
	log    zerolog.Logger
}

func Execute() error {
	return newRootCmd(os.Stderr).Execute()
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "walletctl",
		Short:        "Offline tools for the wallet engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			prices, err := cfg.Engine.Prices()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.NewWithWriter(a.logLevel, logOut)
			a.oracle = service.NewPriceOracle(cfg.Engine.PivotCurrency, nil, a.log)
			a.oracle.Seed(prices)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default ./config.yaml or ./config/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(quoteCmd(a), deeplinkCmd(a), exportCmd(a))
	return root
}
