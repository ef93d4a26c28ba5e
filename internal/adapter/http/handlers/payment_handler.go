package handlers

import (
	"errors"
	"net/http"
	"time"

	"crpms_ledger/internal/adapter/http/dto/request"
	"crpms_ledger/internal/adapter/http/dto/response"
	"crpms_ledger/internal/adapter/http/middleware"
	"crpms_ledger/internal/usecase"
	"crpms_ledger/internal/usecase/interfaces"
	"crpms_ledger/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PaymentHandler records counter payments and serves bills.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	loc     *time.Location
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, loc *time.Location) *PaymentHandler {
	return &PaymentHandler{usecase: uc, loc: loc}
}

// CreatePayment settles a Pending record on behalf of the authenticated operator.
//
// @Summary Pay a service record
// @Tags payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.PaymentCreateRequest true "payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Record number and amount paid are required", http.StatusBadRequest))
		return
	}
	paymentDate, err := request.ParseDate(req.PaymentDate, h.loc)
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	op := middleware.OperatorFrom(c)
	created, err := h.usecase.Create(c.Request.Context(), req.RecordNumber, req.AmountPaid, paymentDate, op)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"record_number": req.RecordNumber,
			"operator":      op.ID,
		}).Warn("[payment][handler] create failed")
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Payment recorded", created))
}

// @Summary List payments
// @Tags payments
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[payment][handler] list failed")
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.List("Payments retrieved", payments))
}

// GetPaymentByRecord returns the bill for a settled record.
//
// @Summary Bill for a service record
// @Tags payments
// @Produce json
// @Security Bearer
// @Param record_number path int true "record number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /payments/record/{record_number} [get]
func (h *PaymentHandler) GetPaymentByRecord(c *gin.Context) {
	n, ok := recordNumberParam(c, "record_number")
	if !ok {
		writeError(c, mapPaymentError(usecase.ErrInvalidRecordNumber))
		return
	}
	bill, err := h.usecase.GetBillByRecord(c.Request.Context(), n)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Bill retrieved", bill))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordNumber):
		return pkg.NewDomainErrorSimple("INVALID_RECORD_NUMBER", "Invalid record number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount paid must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Service record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceRecordAlreadyPaid):
		return pkg.NewDomainErrorSimple("RECORD_ALREADY_PAID", "Service record is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrSequenceContention):
		return pkg.NewDomainError("STORE_BUSY", "Payment could not be recorded, try again", err, http.StatusInternalServerError)
	default:
		return internalError(err)
	}
}
