package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "church_giving/internal/adapter/http/dto/request"
	response "church_giving/internal/adapter/http/dto/response"
	"church_giving/internal/domain/entities"
	"church_giving/internal/usecase"
	"church_giving/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the giving page and the M-Pesa callback.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitiatePayment godoc
// @Summary      Start an M-Pesa STK push
// @Description  Stores a pending payment and sends the push prompt to the giver's phone.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.InitiatePaymentRequest  true  "Giving form"
// @Success      200      {object}  response.InitiatePaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/mpesa/initiate [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var payload request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid initiate payload err=%v", err)
		appErr := mapBindingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Initiate(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] initiate failed category=%q err=%v", payload.Category, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInitiateResult(res))
}

// MpesaCallback godoc
// @Summary      Daraja STK callback
// @Description  Always acknowledged with {"success":true}; outcomes are logged and counted.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.StkCallbackRequest  true  "Daraja callback"
// @Success      200      {object}  response.AckResponse
// @Router       /payments/mpesa/callback [post]
func (h *PaymentHandler) MpesaCallback(c *gin.Context) {
	var payload request.StkCallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.usecase.ReportMalformedCallback(err.Error())
		c.JSON(http.StatusOK, response.Ack())
		return
	}

	cb, err := payload.ToCallback()
	if err != nil {
		h.usecase.ReportMalformedCallback(err.Error())
		c.JSON(http.StatusOK, response.Ack())
		return
	}

	// Daraja may hang up once it has its answer; the update must still land.
	ctx := context.WithoutCancel(c.Request.Context())
	outcome := h.usecase.HandleCallback(ctx, cb)
	log.Printf("[payment][handler] callback handled checkout_request_id=%s outcome=%s", cb.CheckoutRequestID, outcome)

	c.JSON(http.StatusOK, response.Ack())
}

// GetPayment godoc
// @Summary   Get a payment by transaction id
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Param     transaction_id  path      string  true  "Transaction ID"
// @Success   200             {object}  response.PaymentRecordResponse
// @Failure   401             {object}  pkg.HTTPError
// @Failure   404             {object}  pkg.HTTPError
// @Router    /admin/payments/{transaction_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	p, err := h.usecase.GetByTransactionID(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[payment][handler] get failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(p))
}

// ListPayments godoc
// @Summary      List payments, newest first
// @Description  With older_than, only pending payments created before now-older_than are listed.
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        status      query     string  false  "pending, completed or failed"
// @Param        limit       query     int     false  "Max items (default 50, max 200)"
// @Param        older_than  query     string  false  "Go duration, e.g. 15m"
// @Success      200         {array}   response.PaymentRecordResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      401         {object}  pkg.HTTPError
// @Router       /admin/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	status := c.Query("status")

	if raw := strings.TrimSpace(c.Query("older_than")); raw != "" {
		olderThan, err := time.ParseDuration(raw)
		if err != nil || olderThan < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "older_than must be a duration like 15m", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if status != "" && entities.PaymentStatus(strings.ToLower(status)) != entities.PaymentStatusPending {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "older_than only applies to pending payments", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		items, err := h.usecase.ListStalePending(c.Request.Context(), olderThan)
		if err != nil {
			appErr := mapPaymentError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromPaymentRecords(items))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = n
	}

	items, err := h.usecase.List(c.Request.Context(), status, limit)
	if err != nil {
		log.Printf("[payment][handler] list failed status=%q err=%v", status, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(items))
}

// QueryPaymentStatus godoc
// @Summary      Ask M-Pesa about a payment
// @Description  Read-only: the stored record is not changed.
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        transaction_id  path      string  true  "Transaction ID"
// @Success      200             {object}  response.StatusQueryResponse
// @Failure      404             {object}  pkg.HTTPError
// @Failure      409             {object}  pkg.HTTPError
// @Failure      502             {object}  pkg.HTTPError
// @Router       /admin/payments/{transaction_id}/query [post]
func (h *PaymentHandler) QueryPaymentStatus(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	res, err := h.usecase.QueryStatus(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[payment][handler] status query failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusQuery(res))
}

// Metrics godoc
// @Summary   Payment flow counters
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.MetricsResponse
// @Router    /admin/metrics [get]
func (h *PaymentHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMetrics(h.usecase.Metrics()))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentRequest):
		return pkg.NewDomainError("VALIDATION_ERROR", validationMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransactionID), errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotInitiated):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_INITIATED", "Payment was never sent to M-Pesa", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Could not reach M-Pesa, please try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentUseCaseNotReady):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Payments are not available right now", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// validationMessage drops the sentinel prefix so the giver sees only the field problem.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), usecase.ErrInvalidPaymentRequest.Error()+": ")
	if msg == "" || msg == err.Error() {
		return "Invalid payment request"
	}
	return msg
}
