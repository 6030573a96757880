package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/infrastructure/config"
	"church_giving/internal/usecase/interfaces"
)

const (
	oauthPath    = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath  = "/mpesa/stkpush/v1/processrequest"
	stkQueryPath = "/mpesa/stkpushquery/v1/query"

	transactionTypePayBill = "CustomerPayBillOnline"

	maxAccountReferenceLen = 12
	maxTransactionDescLen  = 13
	maxErrorBodyLen        = 512
)

var (
	ErrMissingMpesaCredentials = errors.New("missing M-Pesa credentials")
	ErrInvalidPhoneNumber      = errors.New("invalid phone number")
)

// Daraja timestamps are East Africa Time regardless of where we run.
var eat = time.FixedZone("EAT", 3*60*60)

// GatewayError describes a failed call to Daraja. Body holds the (truncated)
// provider response for logs; it is never sent to clients.
type GatewayError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	var b strings.Builder
	b.WriteString("mpesa ")
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Body != "" {
		fmt.Fprintf(&b, ": %s", e.Body)
	}
	return b.String()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// MpesaGateway talks to Safaricom Daraja: OAuth, STK push and STK query.
type MpesaGateway struct {
	cfg      config.MpesaConfig
	client   *http.Client
	now      func() time.Time
	mockMode bool
}

var _ interfaces.IPushPaymentGateway = (*MpesaGateway)(nil)

// NewMpesaGateway builds the client. httpClient may be nil, in which case one
// with cfg.HTTPTimeout is created.
func NewMpesaGateway(cfg config.MpesaConfig, httpClient *http.Client) (*MpesaGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MpesaGateway{cfg: cfg, now: time.Now, mockMode: true}, nil
	}

	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" || cfg.ShortCode == "" || cfg.Passkey == "" {
		log.Printf("[payment][gateway] missing consumer key/secret, shortcode or passkey")
		return nil, ErrMissingMpesaCredentials
	}

	if httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = "254"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	log.Printf("[payment][gateway] Daraja client initialized base_url=%s shortcode=%s", cfg.BaseURL, cfg.ShortCode)

	return &MpesaGateway{cfg: cfg, client: httpClient, now: time.Now}, nil
}

type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type stkQueryPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
}

type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// Initiate sends an STK push prompting the phone to pay req.Amount.
func (g *MpesaGateway) Initiate(ctx context.Context, req interfaces.STKPushRequest) (interfaces.STKPushResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock stk push amount=%.2f reference=%s", req.Amount, req.AccountReference)
		return interfaces.STKPushResult{
			CheckoutRequestID:   "ws_CO_mock_" + id,
			MerchantRequestID:   "mock-" + id,
			ResponseDescription: "Success. Request accepted for processing",
			CustomerMessage:     "Success. Request accepted for processing",
		}, nil
	}
	if g == nil || g.client == nil {
		return interfaces.STKPushResult{}, &GatewayError{Op: "stkpush", Err: ErrMissingMpesaCredentials}
	}

	phone, err := NormalizePhone(req.PhoneNumber, g.cfg.CountryCode)
	if err != nil {
		return interfaces.STKPushResult{}, &GatewayError{Op: "stkpush", Err: err}
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		return interfaces.STKPushResult{}, err
	}

	ts := Timestamp(g.now())
	payload := stkPushPayload{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          Password(g.cfg.ShortCode, g.cfg.Passkey, ts),
		Timestamp:         ts,
		TransactionType:   transactionTypePayBill,
		Amount:            wholeAmount(req.Amount),
		PartyA:            phone,
		PartyB:            g.cfg.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       req.CallbackURL,
		AccountReference:  truncate(req.AccountReference, maxAccountReferenceLen),
		TransactionDesc:   truncate(req.TransactionDesc, maxTransactionDescLen),
	}
	log.Printf("[payment][gateway] stk push start amount=%d reference=%s", payload.Amount, payload.AccountReference)

	var resp stkPushResponse
	if err := g.postJSON(ctx, "stkpush", stkPushPath, token, payload, &resp); err != nil {
		log.Printf("[payment][gateway] stk push failed err=%v", err)
		return interfaces.STKPushResult{}, err
	}
	if resp.ResponseCode != "0" || resp.CheckoutRequestID == "" {
		gerr := &GatewayError{Op: "stkpush", Body: fmt.Sprintf("ResponseCode=%s ResponseDescription=%s", resp.ResponseCode, resp.ResponseDescription)}
		log.Printf("[payment][gateway] stk push rejected err=%v", gerr)
		return interfaces.STKPushResult{}, gerr
	}

	log.Printf("[payment][gateway] stk push accepted checkout_request_id=%s", resp.CheckoutRequestID)
	return interfaces.STKPushResult{
		CheckoutRequestID:   resp.CheckoutRequestID,
		MerchantRequestID:   resp.MerchantRequestID,
		ResponseDescription: resp.ResponseDescription,
		CustomerMessage:     resp.CustomerMessage,
	}, nil
}

// QueryStatus asks Daraja for the current result of a push. It does not touch
// any stored record.
func (g *MpesaGateway) QueryStatus(ctx context.Context, checkoutRequestID string) (interfaces.STKQueryResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock stk query checkout_request_id=%s", checkoutRequestID)
		return interfaces.STKQueryResult{
			CheckoutRequestID: checkoutRequestID,
			ResponseCode:      "0",
			ResultCode:        "0",
			ResultDesc:        "The service request is processed successfully.",
		}, nil
	}
	if g == nil || g.client == nil {
		return interfaces.STKQueryResult{}, &GatewayError{Op: "stkquery", Err: ErrMissingMpesaCredentials}
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		return interfaces.STKQueryResult{}, err
	}

	ts := Timestamp(g.now())
	payload := stkQueryPayload{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          Password(g.cfg.ShortCode, g.cfg.Passkey, ts),
		Timestamp:         ts,
		CheckoutRequestID: checkoutRequestID,
	}

	var resp stkQueryResponse
	if err := g.postJSON(ctx, "stkquery", stkQueryPath, token, payload, &resp); err != nil {
		log.Printf("[payment][gateway] stk query failed checkout_request_id=%s err=%v", checkoutRequestID, err)
		return interfaces.STKQueryResult{}, err
	}

	log.Printf("[payment][gateway] stk query done checkout_request_id=%s result_code=%s", checkoutRequestID, resp.ResultCode)
	return interfaces.STKQueryResult{
		CheckoutRequestID: checkoutRequestID,
		ResponseCode:      resp.ResponseCode,
		ResultCode:        resp.ResultCode,
		ResultDesc:        resp.ResultDesc,
	}, nil
}

// accessToken fetches a fresh OAuth token. Tokens are not cached; one push
// costs one extra round trip.
func (g *MpesaGateway) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+oauthPath, nil)
	if err != nil {
		return "", &GatewayError{Op: "oauth", Err: err}
	}
	req.SetBasicAuth(g.cfg.ConsumerKey, g.cfg.ConsumerSecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &GatewayError{Op: "oauth", Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{Op: "oauth", StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBodyLen)}
	}

	var out oauthResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &GatewayError{Op: "oauth", StatusCode: resp.StatusCode, Err: err}
	}
	if out.AccessToken == "" {
		return "", &GatewayError{Op: "oauth", StatusCode: resp.StatusCode, Body: "empty access_token"}
	}
	return out.AccessToken, nil
}

func (g *MpesaGateway) postJSON(ctx context.Context, op, path, token string, payload, out any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return &GatewayError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return &GatewayError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return &GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &GatewayError{Op: op, StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBodyLen)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &GatewayError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// Password is the STK password: base64(shortcode + passkey + timestamp).
func Password(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// Timestamp formats t as YYYYMMDDHHMMSS in East Africa Time.
func Timestamp(t time.Time) string {
	return t.In(eat).Format("20060102150405")
}

// NormalizePhone converts the formats givers type (07XXXXXXXX, +2547XXXXXXXX,
// 7XXXXXXXX) into the international MSISDN Daraja expects. Numbers outside
// countryCode are rejected.
func NormalizePhone(raw, countryCode string) (string, error) {
	msisdn, ok := entities.NormalizeMSISDN(raw, countryCode)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, raw)
	}
	return msisdn, nil
}

// Daraja only takes whole shillings; fractions round up.
func wholeAmount(amount float64) int64 {
	return int64(math.Ceil(amount))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
