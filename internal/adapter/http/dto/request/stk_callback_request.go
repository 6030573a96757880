package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"church_giving/internal/usecase"
)

var ErrInvalidResultCode = errors.New("invalid stk callback result code")

const (
	itemReceiptNumber = "MpesaReceiptNumber"
	itemPhoneNumber   = "PhoneNumber"
)

// StkCallbackRequest is the body Daraja posts to the callback URL.
type StkCallbackRequest struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        json.Number       `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

type CallbackMetadata struct {
	Item []CallbackItem `json:"Item"`
}

// CallbackItem values are numbers for amounts and phones and strings for the
// receipt, but either may arrive quoted.
type CallbackItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value,omitempty"`
}

// ToCallback flattens the request. Metadata items are matched by name.
func (r StkCallbackRequest) ToCallback() (usecase.STKCallback, error) {
	cb := r.Body.StkCallback
	code, err := strconv.Atoi(strings.TrimSpace(cb.ResultCode.String()))
	if err != nil {
		return usecase.STKCallback{}, ErrInvalidResultCode
	}

	out := usecase.STKCallback{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        code,
		ResultDesc:        cb.ResultDesc,
	}
	if cb.CallbackMetadata != nil {
		out.ReceiptNumber = cb.CallbackMetadata.Value(itemReceiptNumber)
		out.PhoneNumber = cb.CallbackMetadata.Value(itemPhoneNumber)
	}
	return out, nil
}

// Value returns the named item as text, or "" if it is absent.
func (m CallbackMetadata) Value(name string) string {
	for _, item := range m.Item {
		if item.Name == name {
			return item.Text()
		}
	}
	return ""
}

func (i CallbackItem) Text() string {
	raw := bytes.TrimSpace(i.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	return string(raw)
}
