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

// CarHandler handles HTTP requests for registered vehicles.
type CarHandler struct {
	usecase usecase.ICarUseCase
}

func NewCarHandler(uc usecase.ICarUseCase) *CarHandler {
	return &CarHandler{usecase: uc}
}

// @Summary Register a car
// @Tags cars
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.CarCreateRequest true "payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /cars [post]
func (h *CarHandler) RegisterCar(c *gin.Context) {
	var req request.CarCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Info("[car][handler] invalid payload")
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "All fields are required", http.StatusBadRequest))
		return
	}

	car, err := h.usecase.Register(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.WithError(err).WithField("plate_number", req.PlateNumber).Warn("[car][handler] register failed")
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Car registered", car))
}

// @Summary List cars
// @Tags cars
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[car][handler] list failed")
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusOK, response.List("Cars retrieved", cars))
}

// @Summary Get a car
// @Tags cars
// @Produce json
// @Security Bearer
// @Param plate_number path string true "plate number"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /cars/{plate_number} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.usecase.GetByPlate(c.Request.Context(), c.Param("plate_number"))
	if err != nil {
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Car retrieved", car))
}

// @Summary Delete a car
// @Tags cars
// @Produce json
// @Security Bearer
// @Param plate_number path string true "plate number"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /cars/{plate_number} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	plate := c.Param("plate_number")
	if err := h.usecase.Delete(c.Request.Context(), plate); err != nil {
		log.WithError(err).WithField("plate_number", plate).Warn("[car][handler] delete failed")
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Car deleted", nil))
}

func mapCarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlateNumber), errors.Is(err, usecase.ErrInvalidCarPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "All fields are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCarAlreadyExists):
		return pkg.NewDomainErrorSimple("CAR_ALREADY_EXISTS", "Car with this plate number already exists", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCarNotFound):
		return pkg.NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
