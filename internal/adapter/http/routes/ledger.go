package routes

import (
	"crpms_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCars           = "/cars"
	PathServices       = "/services"
	PathServiceRecords = "/service-records"
	PathPayments       = "/payments"
	PathReports        = "/reports"
)

type ledgerHandlers struct {
	cars     *handlers.CarHandler
	services *handlers.ServiceHandler
	records  *handlers.ServiceRecordHandler
	payments *handlers.PaymentHandler
	reports  *handlers.ReportHandler
}

func addLedgerRoutes(rg *gin.RouterGroup, h ledgerHandlers) {
	cars := rg.Group(PathCars)
	{
		cars.POST("", h.cars.RegisterCar)
		cars.GET("", h.cars.ListCars)
		cars.GET("/:plate_number", h.cars.GetCar)
		cars.DELETE("/:plate_number", h.cars.DeleteCar)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", h.services.CreateService)
		services.GET("", h.services.ListServices)
		services.GET("/:service_code", h.services.GetService)
	}

	records := rg.Group(PathServiceRecords)
	{
		records.POST("", h.records.CreateRecord)
		records.GET("", h.records.ListRecords)
		records.GET("/unpaid", h.records.ListUnpaidRecords)
		records.GET("/:record_number", h.records.GetRecord)
		records.PUT("/:record_number", h.records.UpdateRecord)
		records.DELETE("/:record_number", h.records.DeleteRecord)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.payments.CreatePayment)
		payments.GET("", h.payments.ListPayments)
		payments.GET("/record/:record_number", h.payments.GetPaymentByRecord)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/daily", h.reports.DailyReport)
		reports.GET("/dashboard", h.reports.Dashboard)
	}
}
