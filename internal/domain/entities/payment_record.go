package entities

import (
	"strings"
	"time"
)

// PaymentStatus represents where an M-Pesa push payment is in its lifecycle.
//
// pending is the only non-terminal state. A callback moves it to completed
// (ResultCode 0) or failed (anything else).
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// CanTransition reports whether the lifecycle allows moving from one status to another.
func CanTransition(from, to PaymentStatus) bool {
	return from == PaymentStatusPending && to.IsTerminal()
}

// PaymentCategory tags what the giving is for.
type PaymentCategory string

const (
	PaymentCategoryTithe    PaymentCategory = "tithe"
	PaymentCategoryOffering PaymentCategory = "offering"
	PaymentCategoryCampaign PaymentCategory = "campaign"
)

// ParsePaymentCategory normalizes user input. Unknown values are kept as-is
// so the reference mapping can fall back to a generic donation.
func ParsePaymentCategory(raw string) PaymentCategory {
	return PaymentCategory(strings.ToLower(strings.TrimSpace(raw)))
}

// PaymentRecord is one donation/tithe/offering attempt.
//
// Storage model (DynamoDB):
//   - PK: transaction_id
//   - GSI (checkout_request_id-index): checkout_request_id, used to match callbacks
//
// TransactionID and Amount never change after creation. CheckoutRequestID is
// set once the gateway accepts the push; the callback fields (status, receipt,
// result) are written only by the callback receiver.
type PaymentRecord struct {
	TransactionID     string          `json:"transaction_id"`
	CheckoutRequestID string          `json:"checkout_request_id,omitempty"`
	MerchantRequestID string          `json:"merchant_request_id,omitempty"`
	Amount            float64         `json:"amount"`
	PhoneNumber       string          `json:"phone_number"`
	PaidPhoneNumber   string          `json:"paid_phone_number,omitempty"`
	Category          PaymentCategory `json:"category"`
	CampaignName      string          `json:"campaign_name,omitempty"`
	FullName          string          `json:"full_name,omitempty"`
	Email             string          `json:"email,omitempty"`
	Status            PaymentStatus   `json:"status"`
	ReceiptNumber     string          `json:"mpesa_receipt_number,omitempty"`
	ResultCode        *int            `json:"result_code,omitempty"`
	ResultDesc        string          `json:"result_desc,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PaymentOutcome carries what a gateway callback reported for one checkout.
type PaymentOutcome struct {
	Status          PaymentStatus
	ResultCode      int
	ResultDesc      string
	ReceiptNumber   string
	PaidPhoneNumber string
}

// PhoneDigits strips the formatting people type into phone fields (spaces,
// dashes, dots, parentheses, a leading +) and reports whether what is left
// is a plausible MSISDN of 9 to 12 digits.
func PhoneDigits(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", false
		}
	}
	digits := b.String()
	if len(digits) < 9 || len(digits) > 12 {
		return "", false
	}
	return digits, true
}

// DefaultCountryCode is the Kenyan dialing prefix Daraja expects.
const DefaultCountryCode = "254"

// NormalizeMSISDN turns a local or international number into the
// countryCode+subscriber form. Numbers outside countryCode are rejected.
func NormalizeMSISDN(raw, countryCode string) (string, bool) {
	digits, ok := PhoneDigits(raw)
	if !ok {
		return "", false
	}
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	switch {
	case strings.HasPrefix(digits, "0"):
		digits = countryCode + digits[1:]
	case len(digits) == 9:
		digits = countryCode + digits
	}
	if !strings.HasPrefix(digits, countryCode) || len(digits)-len(countryCode) != 9 {
		return "", false
	}
	return digits, true
}
