package app

import (
	"context"
	"testing"

	"church_giving/internal/infrastructure/config"
	"church_giving/internal/infrastructure/logging"
	"church_giving/internal/infrastructure/notifications"

	"github.com/stretchr/testify/require"
)

func TestSinks_FallBackToLogs(t *testing.T) {
	ledger, mailer, err := Sinks(context.Background(), config.Config{}, logging.Nop{})
	require.NoError(t, err)
	require.IsType(t, &notifications.LogLedger{}, ledger)
	require.IsType(t, &notifications.LogMailer{}, mailer)
}

func TestSinks_SMTPWhenConfigured(t *testing.T) {
	cfg := config.Config{SMTP: config.SMTPConfig{Host: "smtp.example.com", Port: 465, Sender: "giving@church.example"}}

	_, mailer, err := Sinks(context.Background(), cfg, logging.Nop{})
	require.NoError(t, err)
	require.IsType(t, &notifications.SMTPMailer{}, mailer)
}

func TestBuild_MockGatewayAgainstLocalDynamo(t *testing.T) {
	cfg := config.Config{
		App:   config.AppConfig{BaseURL: "https://giving.church.example"},
		Mpesa: config.MpesaConfig{Mock: true},
		DynamoDB: config.DynamoDBConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
			Endpoint:        "http://localhost:8000",
			PaymentsTable:   "payments",
			CampaignsTable:  "campaigns",
		},
		Auth: config.AuthConfig{JWTSecret: "secret"},
	}

	svc, err := Build(context.Background(), cfg, logging.Nop{})
	require.NoError(t, err)
	require.NotNil(t, svc.Payments)
	require.NotNil(t, svc.Campaigns)
	require.NotNil(t, svc.Auth)
}
