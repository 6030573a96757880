package request

import (
	"church_giving/internal/usecase"
)

// InitiatePaymentRequest is the giving form body.
type InitiatePaymentRequest struct {
	PhoneNumber  string  `json:"phoneNumber" binding:"required" example:"0712345678"`
	Amount       float64 `json:"amount" binding:"required,gt=0" example:"500"`
	Category     string  `json:"category" binding:"required" example:"tithe"`
	CampaignName string  `json:"campaignName,omitempty" example:"Building Fund"`
	FullName     string  `json:"fullName,omitempty" example:"Jane Wanjiku"`
	Email        string  `json:"email,omitempty" binding:"omitempty,email" example:"jane@example.com"`
}

func (r InitiatePaymentRequest) ToInput() usecase.InitiatePaymentInput {
	return usecase.InitiatePaymentInput{
		PhoneNumber:  r.PhoneNumber,
		Amount:       r.Amount,
		Category:     r.Category,
		CampaignName: r.CampaignName,
		FullName:     r.FullName,
		Email:        r.Email,
	}
}
