package app

import (
	"context"
	"fmt"
	"log"

	"church_giving/internal/adapter/persistence/repository"
	"church_giving/internal/infrastructure/config"
	"church_giving/internal/infrastructure/database"
	"church_giving/internal/infrastructure/logging"
	"church_giving/internal/infrastructure/metrics"
	"church_giving/internal/infrastructure/notifications"
	"church_giving/internal/infrastructure/payments"
	"church_giving/internal/usecase"
	"church_giving/internal/usecase/interfaces"
)

// Services are the use cases the HTTP API and mpesactl run on.
type Services struct {
	Payments  *usecase.PaymentUseCase
	Campaigns *usecase.CampaignUseCase
	Auth      *usecase.AuthUseCase
}

func Build(ctx context.Context, cfg config.Config, logger logging.Logger) (Services, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Services{}, err
	}

	gateway, err := payments.NewMpesaGateway(cfg.Mpesa, nil)
	if err != nil {
		return Services{}, fmt.Errorf("mpesa gateway: %w", err)
	}

	ledger, mailer, err := Sinks(ctx, cfg, logger)
	if err != nil {
		return Services{}, err
	}

	paymentRepo := repository.NewPaymentRecordDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)
	campaignRepo := repository.NewCampaignDynamoRepository(ddb, cfg.DynamoDB.CampaignsTable)

	return Services{
		Payments:  usecase.NewPaymentUseCase(paymentRepo, gateway, ledger, mailer, cfg.CallbackURL(), logger, &metrics.Counters{}).WithCountryCode(cfg.Mpesa.CountryCode),
		Campaigns: usecase.NewCampaignUseCase(campaignRepo),
		Auth:      usecase.NewAuthUseCase(cfg.Auth),
	}, nil
}

// Sinks picks the Google Sheets ledger and SMTP mailer when configured and
// falls back to log-only sinks otherwise.
func Sinks(ctx context.Context, cfg config.Config, logger logging.Logger) (interfaces.IPaymentLedger, interfaces.IPaymentMailer, error) {
	var ledger interfaces.IPaymentLedger = notifications.NewLogLedger(logger)
	if cfg.Sheets.Enabled() {
		sheets, err := notifications.NewSheetsLedger(ctx, cfg.Sheets)
		if err != nil {
			return nil, nil, fmt.Errorf("sheets ledger: %w", err)
		}
		ledger = sheets
	} else {
		log.Printf("[app] GOOGLE_SHEETS_SPREADSHEET_ID not set; payments are logged instead of appended")
	}

	var mailer interfaces.IPaymentMailer = notifications.NewLogMailer(logger)
	if cfg.SMTP.Enabled() {
		mailer = notifications.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Printf("[app] SMTP_HOST/SMTP_SENDER not set; payment notices are logged instead of sent")
	}
	return ledger, mailer, nil
}
