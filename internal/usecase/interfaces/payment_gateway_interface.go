package interfaces

import "context"

// STKPushRequest is what the gateway needs to prompt a phone for payment.
type STKPushRequest struct {
	PhoneNumber      string
	Amount           float64
	CallbackURL      string
	AccountReference string
	TransactionDesc  string
}

// STKPushResult identifies the accepted push. CheckoutRequestID is echoed
// back in the asynchronous callback.
type STKPushResult struct {
	CheckoutRequestID   string
	MerchantRequestID   string
	ResponseDescription string
	CustomerMessage     string
}

// STKQueryResult is the provider's current view of a push.
type STKQueryResult struct {
	CheckoutRequestID string
	ResultCode        string
	ResultDesc        string
	ResponseCode      string
}

// IPushPaymentGateway abstracts the mobile-money provider (M-Pesa Daraja).
type IPushPaymentGateway interface {
	Initiate(ctx context.Context, req STKPushRequest) (STKPushResult, error)
	QueryStatus(ctx context.Context, checkoutRequestID string) (STKQueryResult, error)
}
