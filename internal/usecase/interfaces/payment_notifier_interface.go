package interfaces

import (
	"context"

	"church_giving/internal/domain/entities"
)

// IPaymentLedger appends settled payments to the finance team's spreadsheet.
type IPaymentLedger interface {
	AppendPayment(ctx context.Context, p entities.PaymentRecord) error
}

// IPaymentMailer sends the giver a confirmation (or failure notice).
type IPaymentMailer interface {
	SendPaymentNotice(ctx context.Context, p entities.PaymentRecord) error
}
