package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/infrastructure/config"
	"church_giving/internal/usecase/interfaces"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsLedger appends one row per settled payment to the finance
// spreadsheet.
type SheetsLedger struct {
	svc           *sheets.Service
	spreadsheetID string
	rng           string
}

var _ interfaces.IPaymentLedger = (*SheetsLedger)(nil)

func NewSheetsLedger(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (*SheetsLedger, error) {
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	log.Printf("[notification][sheets] ledger initialized spreadsheet_id=%s range=%s", cfg.SpreadsheetID, cfg.Range)
	return &SheetsLedger{svc: svc, spreadsheetID: cfg.SpreadsheetID, rng: cfg.Range}, nil
}

func (l *SheetsLedger) AppendPayment(ctx context.Context, p entities.PaymentRecord) error {
	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.rng, &sheets.ValueRange{Values: [][]interface{}{PaymentRow(p)}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append payment %s: %w", p.TransactionID, err)
	}
	log.Printf("[notification][sheets] appended transaction_id=%s status=%s", p.TransactionID, p.Status)
	return nil
}

// PaymentRow is the column layout of the ledger sheet:
// date, transaction id, name, email, phone, amount, category, campaign,
// status, receipt, result, checkout request id.
func PaymentRow(p entities.PaymentRecord) []interface{} {
	phone := p.PaidPhoneNumber
	if phone == "" {
		phone = p.PhoneNumber
	}
	date := p.UpdatedAt
	if date.IsZero() {
		date = p.CreatedAt
	}
	return []interface{}{
		date.UTC().Format(time.RFC3339),
		p.TransactionID,
		p.FullName,
		p.Email,
		phone,
		p.Amount,
		string(p.Category),
		p.CampaignName,
		string(p.Status),
		p.ReceiptNumber,
		p.ResultDesc,
		p.CheckoutRequestID,
	}
}
