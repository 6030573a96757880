package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

type gatewayFactory func() (interfaces.IPushPaymentGateway, error)

type stalePendingLister interface {
	ListStalePending(ctx context.Context, olderThan time.Duration) ([]entities.PaymentRecord, error)
}

type listerFactory func(ctx context.Context) (stalePendingLister, error)

func queryCmd(newGateway gatewayFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "query [checkout-request-id]",
		Short: "Ask M-Pesa for the current state of an STK push",
		Long: `Calls the Daraja STK query API. Nothing is written; a payment that
M-Pesa reports as settled still waits for its callback.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, err := newGateway()
			if err != nil {
				return err
			}

			res, err := gateway.QueryStatus(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("query %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "CheckoutRequestID: %s\n", res.CheckoutRequestID)
			fmt.Fprintf(out, "ResponseCode:      %s\n", res.ResponseCode)
			fmt.Fprintf(out, "ResultCode:        %s\n", res.ResultCode)
			fmt.Fprintf(out, "ResultDesc:        %s\n", res.ResultDesc)
			return nil
		},
	}
}

func pendingCmd(newLister listerFactory) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List payments still pending after --older-than",
		Long: `Lists pushes that never settled: the gateway call failed after the
record was stored, or the callback never matched. Report only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan < 0 {
				return fmt.Errorf("--older-than must not be negative")
			}
			lister, err := newLister(cmd.Context())
			if err != nil {
				return err
			}

			items, err := lister.ListStalePending(cmd.Context(), olderThan)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintf(out, "No pending payments older than %s\n", olderThan)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TRANSACTION\tCHECKOUT\tAMOUNT\tCATEGORY\tPHONE\tCREATED")
			for _, p := range items {
				checkout := p.CheckoutRequestID
				if checkout == "" {
					checkout = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
					p.TransactionID, checkout, p.Amount, p.Category, p.PhoneNumber, p.CreatedAt.Format(time.RFC3339))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d pending\n", len(items))
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 15*time.Minute, "Only list payments created at least this long ago")
	return cmd
}
