package handlers

import (
	"errors"
	"net/http"
	"time"

	"crpms_ledger/internal/adapter/http/dto/request"
	"crpms_ledger/internal/adapter/http/dto/response"
	"crpms_ledger/internal/usecase"
	"crpms_ledger/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ServiceRecordHandler handles HTTP requests for the service record ledger.
type ServiceRecordHandler struct {
	usecase usecase.IServiceRecordUseCase
	loc     *time.Location
}

// NewServiceRecordHandler builds the handler. loc reads date-only service dates.
func NewServiceRecordHandler(uc usecase.IServiceRecordUseCase, loc *time.Location) *ServiceRecordHandler {
	return &ServiceRecordHandler{usecase: uc, loc: loc}
}

// @Summary Create a service record
// @Tags service-records
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.ServiceRecordCreateRequest true "payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /service-records [post]
func (h *ServiceRecordHandler) CreateRecord(c *gin.Context) {
	var req request.ServiceRecordCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	serviceDate, err := request.ParseDate(req.ServiceDate, h.loc)
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), req.PlateNumber, req.ServiceCode, serviceDate)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"plate_number": req.PlateNumber,
			"service_code": req.ServiceCode,
		}).Warn("[record][handler] create failed")
		writeError(c, mapServiceRecordError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Record created", view))
}

// @Summary List service records
// @Tags service-records
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /service-records [get]
func (h *ServiceRecordHandler) ListRecords(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[record][handler] list failed")
		writeError(c, mapServiceRecordError(err))
		return
	}
	c.JSON(http.StatusOK, response.List("Service records retrieved", views))
}

// @Summary List unpaid service records
// @Tags service-records
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /service-records/unpaid [get]
func (h *ServiceRecordHandler) ListUnpaidRecords(c *gin.Context) {
	views, err := h.usecase.ListUnpaid(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[record][handler] list unpaid failed")
		writeError(c, mapServiceRecordError(err))
		return
	}
	c.JSON(http.StatusOK, response.List("Unpaid service records retrieved", views))
}

// @Summary Get a service record
// @Tags service-records
// @Produce json
// @Security Bearer
// @Param record_number path int true "record number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /service-records/{record_number} [get]
func (h *ServiceRecordHandler) GetRecord(c *gin.Context) {
	n, ok := recordNumberParam(c, "record_number")
	if !ok {
		writeError(c, mapServiceRecordError(usecase.ErrInvalidRecordNumber))
		return
	}
	view, err := h.usecase.GetByNumber(c.Request.Context(), n)
	if err != nil {
		writeError(c, mapServiceRecordError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Service record retrieved", view))
}

// @Summary Update a service record
// @Tags service-records
// @Accept json
// @Produce json
// @Security Bearer
// @Param record_number path int true "record number"
// @Param request body request.ServiceRecordUpdateRequest true "payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /service-records/{record_number} [put]
func (h *ServiceRecordHandler) UpdateRecord(c *gin.Context) {
	n, ok := recordNumberParam(c, "record_number")
	if !ok {
		writeError(c, mapServiceRecordError(usecase.ErrInvalidRecordNumber))
		return
	}
	var req request.ServiceRecordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	patch, err := req.ToPatch(h.loc)
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), n, patch)
	if err != nil {
		log.WithError(err).WithField("record_number", n).Warn("[record][handler] update failed")
		writeError(c, mapServiceRecordError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Record updated", updated))
}

// @Summary Delete an unpaid service record
// @Tags service-records
// @Produce json
// @Security Bearer
// @Param record_number path int true "record number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /service-records/{record_number} [delete]
func (h *ServiceRecordHandler) DeleteRecord(c *gin.Context) {
	n, ok := recordNumberParam(c, "record_number")
	if !ok {
		writeError(c, mapServiceRecordError(usecase.ErrInvalidRecordNumber))
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), n); err != nil {
		log.WithError(err).WithField("record_number", n).Warn("[record][handler] delete failed")
		writeError(c, mapServiceRecordError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Record deleted", nil))
}

func mapServiceRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlateNumber), errors.Is(err, usecase.ErrInvalidServiceCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Plate number and service code are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRecordNumber):
		return pkg.NewDomainErrorSimple("INVALID_RECORD_NUMBER", "Invalid record number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCarNotFound):
		return pkg.NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceRecordAlreadyPaid):
		return pkg.NewDomainErrorSimple("RECORD_ALREADY_PAID", "Service record is already paid", http.StatusConflict)
	default:
		return internalError(err)
	}
}
