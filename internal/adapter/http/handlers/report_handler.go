package handlers

import (
	"net/http"
	"time"

	"crpms_ledger/internal/adapter/http/dto/request"
	"crpms_ledger/internal/adapter/http/dto/response"
	"crpms_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
	loc     *time.Location
}

// NewReportHandler builds the handler. loc must match the location the report use case uses.
func NewReportHandler(uc usecase.IReportUseCase, loc *time.Location) *ReportHandler {
	return &ReportHandler{usecase: uc, loc: loc}
}

// DailyReport serves /reports/daily?date=YYYY-MM-DD. A missing date means today.
//
// @Summary Daily report
// @Tags reports
// @Produce json
// @Security Bearer
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /reports/daily [get]
func (h *ReportHandler) DailyReport(c *gin.Context) {
	date, err := request.ParseDate(c.Query("date"), h.loc)
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}
	var day time.Time
	if date != nil {
		day = *date
	}

	report, err := h.usecase.DailyReport(c.Request.Context(), day)
	if err != nil {
		log.WithError(err).WithField("date", c.Query("date")).Error("[report][handler] daily report failed")
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Daily report generated", report))
}

// @Summary Dashboard
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("[report][handler] dashboard failed")
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Dashboard retrieved", d))
}
