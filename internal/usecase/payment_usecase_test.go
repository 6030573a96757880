package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/infrastructure/logging"
	"church_giving/internal/infrastructure/metrics"
	"church_giving/internal/usecase/interfaces"
	mock_interfaces "church_giving/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testCallbackURL = "https://church.example/v1/payments/mpesa/callback"

// memoryPaymentRepo behaves like the DynamoDB repository for flow tests.
type memoryPaymentRepo struct {
	mu      sync.Mutex
	records map[string]entities.PaymentRecord
}

func newMemoryPaymentRepo() *memoryPaymentRepo {
	return &memoryPaymentRepo{records: map[string]entities.PaymentRecord{}}
}

func (r *memoryPaymentRepo) Create(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[p.TransactionID]; ok {
		return entities.PaymentRecord{}, errors.New("conditional check failed")
	}
	r.records[p.TransactionID] = p
	return p, nil
}

func (r *memoryPaymentRepo) GetByTransactionID(_ context.Context, id string) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id], nil
}

func (r *memoryPaymentRepo) GetByCheckoutRequestID(_ context.Context, cid string) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.records {
		if p.CheckoutRequestID == cid {
			return p, nil
		}
	}
	return entities.PaymentRecord{}, nil
}

func (r *memoryPaymentRepo) SetCheckoutRequestID(_ context.Context, id, cid, mid string) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return entities.PaymentRecord{}, nil
	}
	p.CheckoutRequestID = cid
	p.MerchantRequestID = mid
	r.records[id] = p
	return p, nil
}

func (r *memoryPaymentRepo) ApplyOutcome(_ context.Context, id string, o entities.PaymentOutcome) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return entities.PaymentRecord{}, nil
	}
	code := o.ResultCode
	p.Status = o.Status
	p.ResultCode = &code
	p.ResultDesc = o.ResultDesc
	if o.Status == entities.PaymentStatusFailed {
		p.ReceiptNumber = ""
		p.PaidPhoneNumber = ""
	}
	if o.ReceiptNumber != "" {
		p.ReceiptNumber = o.ReceiptNumber
	}
	if o.PaidPhoneNumber != "" {
		p.PaidPhoneNumber = o.PaidPhoneNumber
	}
	r.records[id] = p
	return p, nil
}

func (r *memoryPaymentRepo) List(_ context.Context, f interfaces.PaymentRecordFilter) ([]entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.PaymentRecord
	for _, p := range r.records {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type paymentFixture struct {
	ctrl     *gomock.Controller
	repo     *mock_interfaces.MockIPaymentRecordRepository
	gateway  *mock_interfaces.MockIPushPaymentGateway
	ledger   *mock_interfaces.MockIPaymentLedger
	mailer   *mock_interfaces.MockIPaymentMailer
	counters *metrics.Counters
	logs     *bytes.Buffer
	uc       *PaymentUseCase
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &paymentFixture{
		ctrl:     ctrl,
		repo:     mock_interfaces.NewMockIPaymentRecordRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPushPaymentGateway(ctrl),
		ledger:   mock_interfaces.NewMockIPaymentLedger(ctrl),
		mailer:   mock_interfaces.NewMockIPaymentMailer(ctrl),
		counters: &metrics.Counters{},
		logs:     &bytes.Buffer{},
	}
	f.uc = NewPaymentUseCase(f.repo, f.gateway, f.ledger, f.mailer, testCallbackURL, logging.NewJSONLogger(f.logs), f.counters)
	f.uc.newID = func() string { return "T1" }
	return f
}

func TestPaymentReference(t *testing.T) {
	cases := []struct {
		category entities.PaymentCategory
		campaign string
		wantRef  string
		wantDesc string
	}{
		{entities.PaymentCategoryTithe, "", "Tithe", "Tithe"},
		{entities.PaymentCategoryOffering, "ignored", "Offering", "Offering"},
		{entities.PaymentCategoryCampaign, "Building Fund", "Building Fund", "Campaign"},
		{entities.PaymentCategoryCampaign, "  ", "Campaign", "Campaign"},
		{"thanksgiving", "", "Donation", "Donation"},
	}
	for _, tc := range cases {
		ref, desc := PaymentReference(tc.category, tc.campaign)
		if ref != tc.wantRef || desc != tc.wantDesc {
			t.Fatalf("PaymentReference(%q, %q) = (%q, %q), want (%q, %q)", tc.category, tc.campaign, ref, desc, tc.wantRef, tc.wantDesc)
		}
	}
}

func TestPaymentUseCase_Initiate_Validations(t *testing.T) {
	cases := []struct {
		name string
		in   InitiatePaymentInput
	}{
		{"missing phone", InitiatePaymentInput{Amount: 100, Category: "tithe"}},
		{"missing category", InitiatePaymentInput{PhoneNumber: "0712345678", Amount: 100}},
		{"zero amount", InitiatePaymentInput{PhoneNumber: "0712345678", Category: "tithe"}},
		{"negative amount", InitiatePaymentInput{PhoneNumber: "0712345678", Amount: -5, Category: "tithe"}},
		{"bad phone", InitiatePaymentInput{PhoneNumber: "12ab", Amount: 100, Category: "tithe"}},
		{"foreign phone", InitiatePaymentInput{PhoneNumber: "+1 555 123 4567", Amount: 100, Category: "tithe"}},
		{"fractional amount below one", InitiatePaymentInput{PhoneNumber: "0712345678", Amount: 0.4, Category: "tithe"}},
		{"fractional amount", InitiatePaymentInput{PhoneNumber: "0712345678", Amount: 500.5, Category: "tithe"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPaymentFixture(t)
			_, err := f.uc.Initiate(context.Background(), tc.in)
			if !errors.Is(err, ErrInvalidPaymentRequest) {
				t.Fatalf("expected ErrInvalidPaymentRequest, got %v", err)
			}
		})
	}

	t.Run("other country code", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.uc.WithCountryCode("255")
		_, err := f.uc.Initiate(context.Background(), InitiatePaymentInput{PhoneNumber: "+254 712 345 678", Amount: 100, Category: "tithe"})
		if !errors.Is(err, ErrInvalidPaymentRequest) {
			t.Fatalf("expected ErrInvalidPaymentRequest, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, testCallbackURL, nil, nil)
		_, err := uc.Initiate(context.Background(), InitiatePaymentInput{PhoneNumber: "0712345678", Amount: 1, Category: "tithe"})
		if !errors.Is(err, ErrPaymentUseCaseNotReady) {
			t.Fatalf("expected ErrPaymentUseCaseNotReady, got %v", err)
		}
	})
}

func TestPaymentUseCase_Initiate_Success(t *testing.T) {
	f := newPaymentFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentRecord{})).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.TransactionID != "T1" || p.Status != entities.PaymentStatusPending || p.CheckoutRequestID != "" {
					t.Fatalf("unexpected pending record: %+v", p)
				}
				if p.Amount != 1000 || p.PhoneNumber != "0712345678" || p.Category != entities.PaymentCategoryCampaign {
					t.Fatalf("unexpected pending record: %+v", p)
				}
				if p.CampaignName != "Building Fund" || p.Email != "grace@example.com" {
					t.Fatalf("unexpected contact fields: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		),
		f.gateway.EXPECT().Initiate(gomock.Any(), interfaces.STKPushRequest{
			PhoneNumber:      "0712345678",
			Amount:           1000,
			CallbackURL:      testCallbackURL,
			AccountReference: "Building Fund",
			TransactionDesc:  "Campaign",
		}).Return(interfaces.STKPushResult{CheckoutRequestID: "C1", MerchantRequestID: "M1"}, nil),
		f.repo.EXPECT().SetCheckoutRequestID(gomock.Any(), "T1", "C1", "M1").
			Return(entities.PaymentRecord{TransactionID: "T1", CheckoutRequestID: "C1"}, nil),
	)

	res, err := f.uc.Initiate(context.Background(), InitiatePaymentInput{
		PhoneNumber:  " 0712345678 ",
		Amount:       1000,
		Category:     " Campaign ",
		CampaignName: "Building Fund",
		FullName:     "Grace W",
		Email:        "grace@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TransactionID != "T1" || res.CheckoutRequestID != "C1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if s := f.counters.Snapshot(); s.Initiated != 1 {
		t.Fatalf("expected initiated=1, got %+v", s)
	}
}

func TestPaymentUseCase_Initiate_CampaignNameOnlyForCampaigns(t *testing.T) {
	f := newPaymentFixture(t)

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
			if p.CampaignName != "" {
				t.Fatalf("campaign name kept for %s", p.Category)
			}
			return p, nil
		},
	)
	f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.STKPushRequest) (interfaces.STKPushResult, error) {
			if req.AccountReference != "Offering" {
				t.Fatalf("unexpected reference %q", req.AccountReference)
			}
			return interfaces.STKPushResult{CheckoutRequestID: "C1"}, nil
		},
	)
	f.repo.EXPECT().SetCheckoutRequestID(gomock.Any(), "T1", "C1", "").Return(entities.PaymentRecord{TransactionID: "T1"}, nil)

	if _, err := f.uc.Initiate(context.Background(), InitiatePaymentInput{
		PhoneNumber: "0712345678", Amount: 50, Category: "offering", CampaignName: "Roof",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentUseCase_Initiate_Failures(t *testing.T) {
	valid := InitiatePaymentInput{PhoneNumber: "0712345678", Amount: 500, Category: "tithe"}

	t.Run("create fails before gateway is called", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, errors.New("db down"))

		_, err := f.uc.Initiate(context.Background(), valid)
		if !errors.Is(err, ErrPaymentPersistence) {
			t.Fatalf("expected ErrPaymentPersistence, got %v", err)
		}
	})

	t.Run("gateway failure leaves record pending", func(t *testing.T) {
		f := newPaymentFixture(t)
		gwErr := errors.New("mpesa stkpush: status 500")
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) { return p, nil },
		)
		f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(interfaces.STKPushResult{}, gwErr)

		_, err := f.uc.Initiate(context.Background(), valid)
		if !errors.Is(err, ErrPaymentGateway) || !errors.Is(err, gwErr) {
			t.Fatalf("expected wrapped gateway error, got %v", err)
		}
		if s := f.counters.Snapshot(); s.InitiateGatewayFailures != 1 || s.Initiated != 0 {
			t.Fatalf("unexpected counters: %+v", s)
		}
		if !strings.Contains(f.logs.String(), `"transaction_id":"T1"`) {
			t.Fatalf("expected orphan to be logged, got %s", f.logs.String())
		}
	})

	t.Run("storing checkout id fails", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) { return p, nil },
		)
		f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(interfaces.STKPushResult{CheckoutRequestID: "C1"}, nil)
		f.repo.EXPECT().SetCheckoutRequestID(gomock.Any(), "T1", "C1", "").Return(entities.PaymentRecord{}, errors.New("throttled"))

		_, err := f.uc.Initiate(context.Background(), valid)
		if !errors.Is(err, ErrPaymentPersistence) {
			t.Fatalf("expected ErrPaymentPersistence, got %v", err)
		}
	})

	t.Run("record vanished before checkout id stored", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) { return p, nil },
		)
		f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(interfaces.STKPushResult{CheckoutRequestID: "C1"}, nil)
		f.repo.EXPECT().SetCheckoutRequestID(gomock.Any(), "T1", "C1", "").Return(entities.PaymentRecord{}, nil)

		_, err := f.uc.Initiate(context.Background(), valid)
		if !errors.Is(err, ErrPaymentPersistence) || !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected persistence/not found, got %v", err)
		}
	})
}

func TestPaymentUseCase_HandleCallback(t *testing.T) {
	pending := entities.PaymentRecord{TransactionID: "T1", CheckoutRequestID: "C1", Status: entities.PaymentStatusPending, Email: "grace@example.com"}

	t.Run("success completes and notifies both sinks", func(t *testing.T) {
		f := newPaymentFixture(t)
		completed := pending
		completed.Status = entities.PaymentStatusCompleted
		completed.ReceiptNumber = "ABC123"

		f.repo.EXPECT().GetByCheckoutRequestID(gomock.Any(), "C1").Return(pending, nil)
		f.repo.EXPECT().ApplyOutcome(gomock.Any(), "T1", entities.PaymentOutcome{
			Status:          entities.PaymentStatusCompleted,
			ResultCode:      0,
			ResultDesc:      "Success",
			ReceiptNumber:   "ABC123",
			PaidPhoneNumber: "254712345678",
		}).Return(completed, nil)
		f.ledger.EXPECT().AppendPayment(gomock.Any(), completed).Return(nil)
		f.mailer.EXPECT().SendPaymentNotice(gomock.Any(), completed).Return(nil)

		got := f.uc.HandleCallback(context.Background(), STKCallback{
			CheckoutRequestID: "C1", ResultCode: 0, ResultDesc: "Success",
			ReceiptNumber: "ABC123", PhoneNumber: "254712345678",
		})
		if got != CallbackCompleted {
			t.Fatalf("expected completed, got %s", got)
		}
		if s := f.counters.Snapshot(); s.CallbacksCompleted != 1 || s.CallbacksReapplied != 0 {
			t.Fatalf("unexpected counters: %+v", s)
		}
	})

	t.Run("success without email skips mailer", func(t *testing.T) {
		f := newPaymentFixture(t)
		rec := pending
		rec.Email = ""
		done := rec
		done.Status = entities.PaymentStatusCompleted

		f.repo.EXPECT().GetByCheckoutRequestID(gomock.Any(), "C1").Return(rec, nil)
		f.repo.EXPECT().ApplyOutcome(gomock.Any(), "T1", gomock.Any()).Return(done, nil)
		f.ledger.EXPECT().AppendPayment(gomock.Any(), done).Return(nil)

		if got := f.uc.HandleCallback(context.Background(), STKCallback{CheckoutRequestID: "C1"}); got != CallbackCompleted {
			t.Fatalf("expected completed, got %s", got)
		}
	})

	t.Run("failure sets failed without receipt", func(t *testing.T) {
		f := newPaymentFixture(t)
		failed := pending
		failed.Status = entities.PaymentStatusFailed

		f.repo.EXPECT().GetByCheckoutRequestID(gomock.Any(), "C1").Return(pending, nil)
		f.repo.EXPECT().ApplyOutcome(gomock.Any(), "T1", entities.PaymentOutcome{
			Status:     entities.PaymentStatusFailed,
			ResultCode: 1032,
			ResultDesc: "Request cancelled by user",
		}).Return(failed, nil)
		f.ledger.EXPECT().AppendPayment(gomock.Any(), failed).Return(nil)
		f.mailer.EXPECT().SendPaymentNotice(gomock.Any(), failed).Return(nil)

		got := f.uc.HandleCallback(context.Background(), STKCallback{
			CheckoutRequestID: "C1", ResultCode: 1032, ResultDesc: "Request cancelled by user",
			ReceiptNumber: "SHOULD-NOT-STICK",
		})
		if got != CallbackFailed {
			t.Fatalf("expected failed, got %s", got)
		}
		if s := f.counters.Snapshot(); s.CallbacksFailed != 1 {
			t.Fatalf("unexpected counters: %+v", s)
		}
	})

	t.Run("unknown checkout id is dropped", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetByCheckoutRequestID(gomock.Any(), "C404").Return(entities.PaymentRecord{}, nil)

		if got := f.uc.HandleCallback(context.Background(), STKCallback{CheckoutRequestID: "C404"}); got != CallbackDropped {
			t.Fatalf("expected dropped, got %s", got)
		}
		if s := f.counters.Snapshot(); s.CallbacksDropped != 1 {
			t.Fatalf("unexpected counters: %+v", s)
		}
		if !strings.Contains(f.logs.String(), "C404") {
			t.Fatalf("expected drop to be logged")
		}
	})

	t.Run("lookup error is dropped", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetByCheckoutRequestID(gomock.Any(), "C1").Return(entities.PaymentRecord{}, errors.New("db"))

		if got := f.uc.HandleCallback(context.Background(), STKCallback{CheckoutRequestID: "C1"}); got != CallbackDropped {
			t.Fatalf("expected dropped, got %s", got)
		}
	})

	t.Run("update error is dropped without notifying", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetByCheckoutRequestID(gomock.Any(), "C1").Return(pending, nil)
		f.repo.EXPECT().ApplyOutcome(gomock.Any(), "T1", gomock.Any()).Return(entities.PaymentRecord{}, errors.New("db"))

		if got := f.uc.HandleCallback(context.Background(), STKCallback{CheckoutRequestID: "C1"}); got != CallbackDropped {
			t.Fatalf("expected dropped, got %s", got)
		}
	})

	t.Run("missing checkout id is ignored", func(t *testing.T) {
		f := newPaymentFixture(t)
		if got := f.uc.HandleCallback(context.Background(), STKCallback{ResultCode: 0}); got != CallbackIgnored {
			t.Fatalf("expected ignored, got %s", got)
		}
		if s := f.counters.Snapshot(); s.CallbacksMalformed != 1 {
			t.Fatalf("unexpected counters: %+v", s)
		}
	})

	t.Run("sink failures are counted not returned", func(t *testing.T) {
		f := newPaymentFixture(t)
		done := pending
		done.Status = entities.PaymentStatusCompleted

		f.repo.EXPECT().GetByCheckoutRequestID(gomock.Any(), "C1").Return(pending, nil)
		f.repo.EXPECT().ApplyOutcome(gomock.Any(), "T1", gomock.Any()).Return(done, nil)
		f.ledger.EXPECT().AppendPayment(gomock.Any(), done).Return(errors.New("quota"))
		f.mailer.EXPECT().SendPaymentNotice(gomock.Any(), done).Return(errors.New("smtp"))

		if got := f.uc.HandleCallback(context.Background(), STKCallback{CheckoutRequestID: "C1"}); got != CallbackCompleted {
			t.Fatalf("expected completed, got %s", got)
		}
		if s := f.counters.Snapshot(); s.NotificationFailures != 2 {
			t.Fatalf("unexpected counters: %+v", s)
		}
	})
}

// The example flow: initiate T1, gateway returns C1, callback settles it with
// receipt ABC123. A second identical callback is applied again without error.
func TestPaymentUseCase_InitiateThenCallbackFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newMemoryPaymentRepo()
	gateway := mock_interfaces.NewMockIPushPaymentGateway(ctrl)
	ledger := mock_interfaces.NewMockIPaymentLedger(ctrl)
	counters := &metrics.Counters{}
	uc := NewPaymentUseCase(repo, gateway, ledger, nil, testCallbackURL, logging.Nop{}, counters)
	uc.newID = func() string { return "T1" }

	gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req interfaces.STKPushRequest) (interfaces.STKPushResult, error) {
			p, _ := repo.GetByTransactionID(ctx, "T1")
			if p.Status != entities.PaymentStatusPending {
				t.Fatalf("record must be pending before the gateway is called, got %+v", p)
			}
			if req.AccountReference != "Tithe" || req.TransactionDesc != "Tithe" {
				t.Fatalf("unexpected reference: %+v", req)
			}
			return interfaces.STKPushResult{CheckoutRequestID: "C1"}, nil
		},
	)
	ledger.EXPECT().AppendPayment(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := uc.Initiate(context.Background(), InitiatePaymentInput{PhoneNumber: "0712345678", Amount: 500, Category: "tithe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TransactionID != "T1" || res.CheckoutRequestID != "C1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	stored, _ := repo.GetByTransactionID(context.Background(), "T1")
	if stored.Status != entities.PaymentStatusPending || stored.CheckoutRequestID != "C1" {
		t.Fatalf("unexpected stored record: %+v", stored)
	}

	cb := STKCallback{CheckoutRequestID: "C1", ResultCode: 0, ResultDesc: "Success", ReceiptNumber: "ABC123", PhoneNumber: "254712345678"}
	if got := uc.HandleCallback(context.Background(), cb); got != CallbackCompleted {
		t.Fatalf("expected completed, got %s", got)
	}
	stored, _ = repo.GetByTransactionID(context.Background(), "T1")
	if stored.Status != entities.PaymentStatusCompleted || stored.ReceiptNumber != "ABC123" {
		t.Fatalf("unexpected settled record: %+v", stored)
	}

	if got := uc.HandleCallback(context.Background(), cb); got != CallbackCompleted {
		t.Fatalf("duplicate callback: expected completed, got %s", got)
	}
	if s := counters.Snapshot(); s.CallbacksCompleted != 2 || s.CallbacksReapplied != 1 {
		t.Fatalf("unexpected counters: %+v", s)
	}
}

func TestPaymentUseCase_Getters(t *testing.T) {
	t.Run("get invalid id", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.uc.GetByTransactionID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetByTransactionID(gomock.Any(), "T404").Return(entities.PaymentRecord{}, nil)
		_, err := f.uc.GetByTransactionID(context.Background(), "T404")
		if !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("list clamps limit and validates status", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().List(gomock.Any(), interfaces.PaymentRecordFilter{Status: entities.PaymentStatusFailed, Limit: maxListLimit}).Return(nil, nil)
		if _, err := f.uc.List(context.Background(), "FAILED", 10000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.repo.EXPECT().List(gomock.Any(), interfaces.PaymentRecordFilter{Limit: defaultListLimit}).Return(nil, nil)
		if _, err := f.uc.List(context.Background(), "", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.uc.List(context.Background(), "refunded", 10); !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("stale pending", func(t *testing.T) {
		f := newPaymentFixture(t)
		now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		f.uc.now = func() time.Time { return now }
		f.repo.EXPECT().List(gomock.Any(), interfaces.PaymentRecordFilter{
			Status:        entities.PaymentStatusPending,
			CreatedBefore: now.Add(-15 * time.Minute),
		}).Return([]entities.PaymentRecord{{TransactionID: "T9"}}, nil)

		items, err := f.uc.ListStalePending(context.Background(), 15*time.Minute)
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result %+v err=%v", items, err)
		}
	})
}

func TestPaymentUseCase_QueryStatus(t *testing.T) {
	t.Run("not initiated", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(entities.PaymentRecord{TransactionID: "T1", Status: entities.PaymentStatusPending}, nil)

		_, err := f.uc.QueryStatus(context.Background(), "T1")
		if !errors.Is(err, ErrPaymentNotInitiated) {
			t.Fatalf("expected ErrPaymentNotInitiated, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(entities.PaymentRecord{TransactionID: "T1", CheckoutRequestID: "C1"}, nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "C1").Return(interfaces.STKQueryResult{}, errors.New("timeout"))

		_, err := f.uc.QueryStatus(context.Background(), "T1")
		if !errors.Is(err, ErrPaymentGateway) {
			t.Fatalf("expected ErrPaymentGateway, got %v", err)
		}
	})

	t.Run("read only success", func(t *testing.T) {
		f := newPaymentFixture(t)
		rec := entities.PaymentRecord{TransactionID: "T1", CheckoutRequestID: "C1", Status: entities.PaymentStatusPending}
		f.repo.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(rec, nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "C1").Return(interfaces.STKQueryResult{CheckoutRequestID: "C1", ResultCode: "1032"}, nil)

		res, err := f.uc.QueryStatus(context.Background(), "T1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Record.Status != entities.PaymentStatusPending || res.Provider.ResultCode != "1032" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPaymentUseCase_ReportMalformedCallback(t *testing.T) {
	f := newPaymentFixture(t)
	f.uc.ReportMalformedCallback("unexpected EOF")
	if got := f.uc.Metrics().CallbacksMalformed; got != 1 {
		t.Fatalf("expected 1 malformed callback, got %d", got)
	}
}
