package handlers

import (
	"errors"
	"net/http"

	"crpms_ledger/internal/adapter/http/dto/request"
	"crpms_ledger/internal/adapter/http/dto/response"
	"crpms_ledger/internal/usecase"
	"crpms_ledger/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ServiceHandler serves the service catalog.
type ServiceHandler struct {
	usecase usecase.IServiceCatalogUseCase
}

func NewServiceHandler(uc usecase.IServiceCatalogUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.ServiceCreateRequest true "payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Service name and price are required", http.StatusBadRequest))
		return
	}

	svc, err := h.usecase.Create(c.Request.Context(), req.ServiceName, *req.ServicePrice)
	if err != nil {
		log.WithError(err).WithField("service_name", req.ServiceName).Warn("[service][handler] create failed")
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Service created", svc))
}

// @Summary List services
// @Tags services
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[service][handler] list failed")
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.List("Services retrieved", services))
}

// @Summary Get a service
// @Tags services
// @Produce json
// @Security Bearer
// @Param service_code path string true "service code"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /services/{service_code} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByCode(c.Request.Context(), c.Param("service_code"))
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Service retrieved", svc))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceName), errors.Is(err, usecase.ErrInvalidServicePrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Service name and price are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceCode):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_CODE", "Invalid service code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
