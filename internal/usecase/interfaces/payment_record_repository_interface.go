package interfaces

import (
	"context"
	"time"

	"church_giving/internal/domain/entities"
)

// PaymentRecordFilter narrows admin listings. Zero values mean "no filter".
type PaymentRecordFilter struct {
	Status        entities.PaymentStatus
	CreatedBefore time.Time
	Limit         int
}

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
//
// Lookups that find nothing return a zero PaymentRecord and a nil error;
// callers check TransactionID.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error)
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (entities.PaymentRecord, error)
	SetCheckoutRequestID(ctx context.Context, transactionID, checkoutRequestID, merchantRequestID string) (entities.PaymentRecord, error)
	ApplyOutcome(ctx context.Context, transactionID string, outcome entities.PaymentOutcome) (entities.PaymentRecord, error)
	List(ctx context.Context, filter PaymentRecordFilter) ([]entities.PaymentRecord, error)
}
