package notifications

import (
	"context"

	"church_giving/internal/domain/entities"
	"church_giving/internal/infrastructure/logging"
	"church_giving/internal/usecase/interfaces"
)

// LogLedger stands in for the spreadsheet when GOOGLE_SHEETS_SPREADSHEET_ID
// is unset, so settled payments still leave a trace.
type LogLedger struct {
	logger logging.Logger
}

// LogMailer stands in for SMTP when SMTP_HOST is unset.
type LogMailer struct {
	logger logging.Logger
}

var (
	_ interfaces.IPaymentLedger = (*LogLedger)(nil)
	_ interfaces.IPaymentMailer = (*LogMailer)(nil)
)

func NewLogLedger(logger logging.Logger) *LogLedger {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &LogLedger{logger: logger}
}

func NewLogMailer(logger logging.Logger) *LogMailer {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &LogMailer{logger: logger}
}

func (l *LogLedger) AppendPayment(_ context.Context, p entities.PaymentRecord) error {
	l.logger.Info("ledger row (sheets disabled)", map[string]any{
		"transaction_id": p.TransactionID,
		"status":         string(p.Status),
		"amount":         p.Amount,
		"category":       string(p.Category),
		"receipt":        p.ReceiptNumber,
	})
	return nil
}

func (l *LogMailer) SendPaymentNotice(_ context.Context, p entities.PaymentRecord) error {
	l.logger.Info("payment notice (smtp disabled)", map[string]any{
		"transaction_id": p.TransactionID,
		"status":         string(p.Status),
		"to":             maskEmail(p.Email),
	})
	return nil
}
