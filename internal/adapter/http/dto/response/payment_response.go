package response

import (
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/infrastructure/metrics"
	"church_giving/internal/usecase"
)

type InitiatePaymentData struct {
	TransactionID     string `json:"transactionId"`
	CheckoutRequestID string `json:"checkoutRequestId"`
}

type InitiatePaymentResponse struct {
	Success bool                `json:"success"`
	Data    InitiatePaymentData `json:"data"`
}

func FromInitiateResult(r usecase.InitiatePaymentResult) InitiatePaymentResponse {
	return InitiatePaymentResponse{
		Success: true,
		Data: InitiatePaymentData{
			TransactionID:     r.TransactionID,
			CheckoutRequestID: r.CheckoutRequestID,
		},
	}
}

// AckResponse is the only body the callback endpoint ever returns.
type AckResponse struct {
	Success bool `json:"success"`
}

func Ack() AckResponse {
	return AckResponse{Success: true}
}

type PaymentRecordResponse struct {
	TransactionID      string    `json:"transaction_id"`
	CheckoutRequestID  string    `json:"checkout_request_id,omitempty"`
	MerchantRequestID  string    `json:"merchant_request_id,omitempty"`
	Amount             float64   `json:"amount"`
	PhoneNumber        string    `json:"phone_number"`
	PaidPhoneNumber    string    `json:"paid_phone_number,omitempty"`
	Category           string    `json:"category"`
	CampaignName       string    `json:"campaign_name,omitempty"`
	FullName           string    `json:"full_name,omitempty"`
	Email              string    `json:"email,omitempty"`
	Status             string    `json:"status"`
	MpesaReceiptNumber string    `json:"mpesa_receipt_number,omitempty"`
	ResultCode         *int      `json:"result_code,omitempty"`
	ResultDesc         string    `json:"result_desc,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		TransactionID:      p.TransactionID,
		CheckoutRequestID:  p.CheckoutRequestID,
		MerchantRequestID:  p.MerchantRequestID,
		Amount:             p.Amount,
		PhoneNumber:        p.PhoneNumber,
		PaidPhoneNumber:    p.PaidPhoneNumber,
		Category:           string(p.Category),
		CampaignName:       p.CampaignName,
		FullName:           p.FullName,
		Email:              p.Email,
		Status:             string(p.Status),
		MpesaReceiptNumber: p.ReceiptNumber,
		ResultCode:         p.ResultCode,
		ResultDesc:         p.ResultDesc,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPaymentRecords(items []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}

type ProviderStatusResponse struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	ResponseCode      string `json:"response_code,omitempty"`
	ResultCode        string `json:"result_code"`
	ResultDesc        string `json:"result_desc"`
}

// StatusQueryResponse shows the stored record next to what M-Pesa reports.
type StatusQueryResponse struct {
	Payment  PaymentRecordResponse  `json:"payment"`
	Provider ProviderStatusResponse `json:"provider"`
}

func FromStatusQuery(q usecase.PaymentStatusQuery) StatusQueryResponse {
	return StatusQueryResponse{
		Payment: FromPaymentRecord(q.Record),
		Provider: ProviderStatusResponse{
			CheckoutRequestID: q.Provider.CheckoutRequestID,
			ResponseCode:      q.Provider.ResponseCode,
			ResultCode:        q.Provider.ResultCode,
			ResultDesc:        q.Provider.ResultDesc,
		},
	}
}

type MetricsResponse struct {
	Initiated               uint64 `json:"initiated"`
	InitiateGatewayFailures uint64 `json:"initiate_gateway_failures"`
	CallbacksCompleted      uint64 `json:"callbacks_completed"`
	CallbacksFailed         uint64 `json:"callbacks_failed"`
	CallbacksDropped        uint64 `json:"callbacks_dropped"`
	CallbacksMalformed      uint64 `json:"callbacks_malformed"`
	CallbacksReapplied      uint64 `json:"callbacks_reapplied"`
	NotificationFailures    uint64 `json:"notification_failures"`
}

func FromMetrics(s metrics.Snapshot) MetricsResponse {
	return MetricsResponse(s)
}
