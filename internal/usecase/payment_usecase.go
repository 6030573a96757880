package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/infrastructure/logging"
	"church_giving/internal/infrastructure/metrics"
	"church_giving/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentRequest  = errors.New("invalid payment request")
	ErrPaymentGateway         = errors.New("payment gateway error")
	ErrPaymentPersistence     = errors.New("payment persistence error")
	ErrPaymentRecordNotFound  = errors.New("payment record not found")
	ErrPaymentNotInitiated    = errors.New("payment has no checkout request id")
	ErrInvalidTransactionID   = errors.New("invalid transaction_id")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status")
	ErrPaymentUseCaseNotReady = errors.New("payment use case not configured")
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// InitiatePaymentInput is what the giving form submits.
type InitiatePaymentInput struct {
	PhoneNumber  string
	Amount       float64
	Category     string
	CampaignName string
	FullName     string
	Email        string
}

type InitiatePaymentResult struct {
	TransactionID     string
	CheckoutRequestID string
}

// STKCallback is the flattened result Daraja posts to the callback URL.
// ReceiptNumber and PhoneNumber come from CallbackMetadata and are only
// present on success.
type STKCallback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	ReceiptNumber     string
	PhoneNumber       string
}

// CallbackOutcome says what a callback did. It is for logs and metrics; the
// gateway is always acknowledged the same way.
type CallbackOutcome string

const (
	CallbackCompleted CallbackOutcome = "completed"
	CallbackFailed    CallbackOutcome = "failed"
	CallbackDropped   CallbackOutcome = "dropped"
	CallbackIgnored   CallbackOutcome = "ignored"
)

// PaymentStatusQuery pairs the stored record with the provider's view of it.
type PaymentStatusQuery struct {
	Record   entities.PaymentRecord
	Provider interfaces.STKQueryResult
}

// IPaymentUseCase covers the M-Pesa giving flow:
//   - initiate an STK push for a tithe/offering/campaign contribution;
//   - apply the asynchronous callback and notify;
//   - admin lookups and a read-only provider status query.
type IPaymentUseCase interface {
	Initiate(ctx context.Context, in InitiatePaymentInput) (InitiatePaymentResult, error)
	HandleCallback(ctx context.Context, cb STKCallback) CallbackOutcome
	ReportMalformedCallback(reason string)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error)
	List(ctx context.Context, status string, limit int) ([]entities.PaymentRecord, error)
	ListStalePending(ctx context.Context, olderThan time.Duration) ([]entities.PaymentRecord, error)
	QueryStatus(ctx context.Context, transactionID string) (PaymentStatusQuery, error)
	Metrics() metrics.Snapshot
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRecordRepository
	gateway     interfaces.IPushPaymentGateway
	ledger      interfaces.IPaymentLedger
	mailer      interfaces.IPaymentMailer
	callbackURL string
	countryCode string
	logger      logging.Logger
	counters    *metrics.Counters
	now         func() time.Time
	newID       func() string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRecordRepository,
	gateway interfaces.IPushPaymentGateway,
	ledger interfaces.IPaymentLedger,
	mailer interfaces.IPaymentMailer,
	callbackURL string,
	logger logging.Logger,
	counters *metrics.Counters,
) *PaymentUseCase {
	if logger == nil {
		logger = logging.Nop{}
	}
	if counters == nil {
		counters = &metrics.Counters{}
	}
	return &PaymentUseCase{
		repo:        repo,
		gateway:     gateway,
		ledger:      ledger,
		mailer:      mailer,
		callbackURL: callbackURL,
		countryCode: entities.DefaultCountryCode,
		logger:      logger,
		counters:    counters,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// WithCountryCode sets the dialing prefix giver numbers must belong to.
func (u *PaymentUseCase) WithCountryCode(cc string) *PaymentUseCase {
	if cc = strings.TrimSpace(cc); cc != "" {
		u.countryCode = cc
	}
	return u
}

// PaymentReference maps a category to the AccountReference and
// TransactionDesc shown on the giver's phone.
func PaymentReference(category entities.PaymentCategory, campaignName string) (reference, description string) {
	switch category {
	case entities.PaymentCategoryTithe:
		return "Tithe", "Tithe"
	case entities.PaymentCategoryOffering:
		return "Offering", "Offering"
	case entities.PaymentCategoryCampaign:
		if name := strings.TrimSpace(campaignName); name != "" {
			return name, "Campaign"
		}
		return "Campaign", "Campaign"
	default:
		return "Donation", "Donation"
	}
}

func (u *PaymentUseCase) Initiate(ctx context.Context, in InitiatePaymentInput) (InitiatePaymentResult, error) {
	log.Printf("[payment][usecase] initiate start category=%q amount=%.2f", in.Category, in.Amount)
	if u.repo == nil || u.gateway == nil {
		log.Printf("[payment][usecase] repository or gateway not configured")
		return InitiatePaymentResult{}, ErrPaymentUseCaseNotReady
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	category := entities.ParsePaymentCategory(in.Category)
	if phone == "" || category == "" {
		log.Printf("[payment][usecase] invalid request missing phone or category")
		return InitiatePaymentResult{}, fmt.Errorf("%w: phoneNumber and category are required", ErrInvalidPaymentRequest)
	}
	if _, ok := entities.NormalizeMSISDN(phone, u.countryCode); !ok {
		log.Printf("[payment][usecase] invalid request phone=%q", phone)
		return InitiatePaymentResult{}, fmt.Errorf("%w: phoneNumber is not a valid mobile number", ErrInvalidPaymentRequest)
	}
	if in.Amount <= 0 {
		log.Printf("[payment][usecase] invalid request amount=%.2f", in.Amount)
		return InitiatePaymentResult{}, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidPaymentRequest)
	}
	if math.IsInf(in.Amount, 0) || in.Amount != math.Trunc(in.Amount) {
		log.Printf("[payment][usecase] invalid request amount=%v", in.Amount)
		return InitiatePaymentResult{}, fmt.Errorf("%w: amount must be a whole number of shillings", ErrInvalidPaymentRequest)
	}

	campaignName := ""
	if category == entities.PaymentCategoryCampaign {
		campaignName = strings.TrimSpace(in.CampaignName)
	}
	reference, description := PaymentReference(category, campaignName)

	now := u.now()
	record := entities.PaymentRecord{
		TransactionID: u.newID(),
		Amount:        in.Amount,
		PhoneNumber:   phone,
		Category:      category,
		CampaignName:  campaignName,
		FullName:      strings.TrimSpace(in.FullName),
		Email:         strings.TrimSpace(in.Email),
		Status:        entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, record)
	if err != nil {
		log.Printf("[payment][usecase] create pending record failed transaction_id=%s err=%v", record.TransactionID, err)
		return InitiatePaymentResult{}, fmt.Errorf("%w: %w", ErrPaymentPersistence, err)
	}
	log.Printf("[payment][usecase] pending record created transaction_id=%s", created.TransactionID)

	push, err := u.gateway.Initiate(ctx, interfaces.STKPushRequest{
		PhoneNumber:      phone,
		Amount:           in.Amount,
		CallbackURL:      u.callbackURL,
		AccountReference: reference,
		TransactionDesc:  description,
	})
	if err != nil {
		u.counters.IncInitiateGatewayFailure()
		u.logger.Error("stk push failed, payment left pending", map[string]any{
			"transaction_id": created.TransactionID,
			"error":          err.Error(),
		})
		return InitiatePaymentResult{}, fmt.Errorf("%w: %w", ErrPaymentGateway, err)
	}

	updated, err := u.repo.SetCheckoutRequestID(ctx, created.TransactionID, push.CheckoutRequestID, push.MerchantRequestID)
	if err == nil && updated.TransactionID == "" {
		err = ErrPaymentRecordNotFound
	}
	if err != nil {
		// The push is already on the phone; its callback will find nothing.
		u.logger.Error("storing checkout request id failed", map[string]any{
			"transaction_id":      created.TransactionID,
			"checkout_request_id": push.CheckoutRequestID,
			"error":               err.Error(),
		})
		return InitiatePaymentResult{}, fmt.Errorf("%w: %w", ErrPaymentPersistence, err)
	}

	u.counters.IncInitiated()
	log.Printf("[payment][usecase] initiate success transaction_id=%s checkout_request_id=%s", created.TransactionID, push.CheckoutRequestID)
	return InitiatePaymentResult{
		TransactionID:     created.TransactionID,
		CheckoutRequestID: push.CheckoutRequestID,
	}, nil
}

// HandleCallback applies a Daraja result to the matching record and fans it
// out to the ledger and mailer. Nothing here is returned to the gateway:
// every failure is logged and counted instead.
//
// There is no duplicate guard. A repeated callback for a settled record is
// applied again and counted as reapplied.
func (u *PaymentUseCase) HandleCallback(ctx context.Context, cb STKCallback) CallbackOutcome {
	checkoutID := strings.TrimSpace(cb.CheckoutRequestID)
	log.Printf("[payment][callback] received checkout_request_id=%s result_code=%d", checkoutID, cb.ResultCode)
	if checkoutID == "" {
		u.counters.IncCallbackMalformed()
		u.logger.Error("callback without checkout request id", map[string]any{
			"merchant_request_id": cb.MerchantRequestID,
			"result_code":         cb.ResultCode,
		})
		return CallbackIgnored
	}
	if u.repo == nil {
		u.counters.IncCallbackDropped()
		u.logger.Error("callback dropped, repository not configured", map[string]any{"checkout_request_id": checkoutID})
		return CallbackDropped
	}

	record, err := u.repo.GetByCheckoutRequestID(ctx, checkoutID)
	if err != nil {
		u.counters.IncCallbackDropped()
		u.logger.Error("callback dropped, lookup failed", map[string]any{
			"checkout_request_id": checkoutID,
			"result_code":         cb.ResultCode,
			"error":               err.Error(),
		})
		return CallbackDropped
	}
	if record.TransactionID == "" {
		u.counters.IncCallbackDropped()
		u.logger.Error("callback dropped, no payment for checkout request id", map[string]any{
			"checkout_request_id": checkoutID,
			"result_code":         cb.ResultCode,
			"receipt":             cb.ReceiptNumber,
		})
		return CallbackDropped
	}

	outcome := entities.PaymentOutcome{
		Status:     entities.PaymentStatusFailed,
		ResultCode: cb.ResultCode,
		ResultDesc: cb.ResultDesc,
	}
	if cb.ResultCode == 0 {
		outcome.Status = entities.PaymentStatusCompleted
		outcome.ReceiptNumber = strings.TrimSpace(cb.ReceiptNumber)
		outcome.PaidPhoneNumber = strings.TrimSpace(cb.PhoneNumber)
	}

	if !entities.CanTransition(record.Status, outcome.Status) {
		u.counters.IncCallbackReapplied()
		u.logger.Info("callback re-applied to settled payment", map[string]any{
			"transaction_id":      record.TransactionID,
			"checkout_request_id": checkoutID,
			"current_status":      string(record.Status),
			"new_status":          string(outcome.Status),
		})
	}

	updated, err := u.repo.ApplyOutcome(ctx, record.TransactionID, outcome)
	if err == nil && updated.TransactionID == "" {
		err = ErrPaymentRecordNotFound
	}
	if err != nil {
		u.counters.IncCallbackDropped()
		u.logger.Error("callback dropped, update failed", map[string]any{
			"transaction_id":      record.TransactionID,
			"checkout_request_id": checkoutID,
			"status":              string(outcome.Status),
			"receipt":             outcome.ReceiptNumber,
			"error":               err.Error(),
		})
		return CallbackDropped
	}

	result := CallbackFailed
	if outcome.Status == entities.PaymentStatusCompleted {
		result = CallbackCompleted
		u.counters.IncCallbackCompleted()
	} else {
		u.counters.IncCallbackFailed()
	}
	log.Printf("[payment][callback] applied transaction_id=%s status=%s receipt=%s", updated.TransactionID, updated.Status, updated.ReceiptNumber)

	u.notify(ctx, updated)
	return result
}

func (u *PaymentUseCase) notify(ctx context.Context, p entities.PaymentRecord) {
	if u.ledger != nil {
		if err := u.ledger.AppendPayment(ctx, p); err != nil {
			u.counters.IncNotificationFailure()
			u.logger.Error("ledger append failed", map[string]any{
				"transaction_id": p.TransactionID,
				"status":         string(p.Status),
				"error":          err.Error(),
			})
		}
	}
	if u.mailer != nil && p.Email != "" {
		if err := u.mailer.SendPaymentNotice(ctx, p); err != nil {
			u.counters.IncNotificationFailure()
			u.logger.Error("payment notice failed", map[string]any{
				"transaction_id": p.TransactionID,
				"status":         string(p.Status),
				"error":          err.Error(),
			})
		}
	}
}

func (u *PaymentUseCase) ReportMalformedCallback(reason string) {
	u.counters.IncCallbackMalformed()
	u.logger.Error("malformed callback body", map[string]any{"reason": reason})
}

func (u *PaymentUseCase) GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.PaymentRecord{}, ErrInvalidTransactionID
	}

	p, err := u.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("%w: %w", ErrPaymentPersistence, err)
	}
	if p.TransactionID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) List(ctx context.Context, status string, limit int) ([]entities.PaymentRecord, error) {
	filter := interfaces.PaymentRecordFilter{Limit: clampLimit(limit)}
	if s := strings.ToLower(strings.TrimSpace(status)); s != "" {
		ps := entities.PaymentStatus(s)
		if ps != entities.PaymentStatusPending && !ps.IsTerminal() {
			return nil, ErrInvalidPaymentStatus
		}
		filter.Status = ps
	}

	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPaymentPersistence, err)
	}
	return items, nil
}

// ListStalePending returns records still pending after olderThan. Those are
// pushes whose gateway call failed or whose callback never matched.
func (u *PaymentUseCase) ListStalePending(ctx context.Context, olderThan time.Duration) ([]entities.PaymentRecord, error) {
	if olderThan < 0 {
		olderThan = 0
	}
	items, err := u.repo.List(ctx, interfaces.PaymentRecordFilter{
		Status:        entities.PaymentStatusPending,
		CreatedBefore: u.now().Add(-olderThan),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPaymentPersistence, err)
	}
	return items, nil
}

// QueryStatus asks the gateway about a stored payment. The record is not
// modified; settling it stays with the callback.
func (u *PaymentUseCase) QueryStatus(ctx context.Context, transactionID string) (PaymentStatusQuery, error) {
	p, err := u.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return PaymentStatusQuery{}, err
	}
	if p.CheckoutRequestID == "" {
		return PaymentStatusQuery{Record: p}, ErrPaymentNotInitiated
	}

	res, err := u.gateway.QueryStatus(ctx, p.CheckoutRequestID)
	if err != nil {
		log.Printf("[payment][usecase] status query failed transaction_id=%s err=%v", p.TransactionID, err)
		return PaymentStatusQuery{Record: p}, fmt.Errorf("%w: %w", ErrPaymentGateway, err)
	}
	return PaymentStatusQuery{Record: p, Provider: res}, nil
}

func (u *PaymentUseCase) Metrics() metrics.Snapshot {
	return u.counters.Snapshot()
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
