package main

import (
	"context"
	"fmt"
	"os"

	"church_giving/internal/app"
	"church_giving/internal/infrastructure/config"
	"church_giving/internal/infrastructure/logging"
	"church_giving/internal/infrastructure/payments"
	"church_giving/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	cfg := config.Load()

	gateway := func() (interfaces.IPushPaymentGateway, error) {
		gw, err := payments.NewMpesaGateway(cfg.Mpesa, nil)
		if err != nil {
			return nil, err
		}
		return gw, nil
	}
	lister := func(ctx context.Context) (stalePendingLister, error) {
		services, err := app.Build(ctx, cfg, logging.NewJSONLogger(os.Stderr))
		if err != nil {
			return nil, err
		}
		return services.Payments, nil
	}

	if err := newRootCmd(gateway, lister).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(gateway gatewayFactory, lister listerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mpesactl",
		Short:         "Operator tools for M-Pesa giving payments",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(queryCmd(gateway))
	rootCmd.AddCommand(pendingCmd(lister))
	return rootCmd
}
