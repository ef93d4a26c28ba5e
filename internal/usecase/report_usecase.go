package usecase

import (
	"context"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/report_usecase_mock.go -package=mocks

const recentLimit = 5

// IReportUseCase builds read-only aggregate views. Nothing here writes to the store.
type IReportUseCase interface {
	Dashboard(ctx context.Context) (entities.Dashboard, error)
	DailyReport(ctx context.Context, date time.Time) (entities.DailyReport, error)
}

type ReportUseCase struct {
	cars     interfaces.ICarRepository
	services interfaces.IServiceRepository
	records  interfaces.IServiceRecordRepository
	payments interfaces.IPaymentRepository
	loc      *time.Location
	currency string
	now      func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase builds the aggregator. loc defines the calendar day used by "today" and
// by daily reports; nil means time.Local.
func NewReportUseCase(cars interfaces.ICarRepository, services interfaces.IServiceRepository, records interfaces.IServiceRecordRepository, payments interfaces.IPaymentRepository, loc *time.Location, currency string) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{
		cars:     cars,
		services: services,
		records:  records,
		payments: payments,
		loc:      loc,
		currency: currency,
		now:      time.Now,
	}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (entities.Dashboard, error) {
	totalCars, err := u.cars.Count(ctx)
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("count cars: %w", err)
	}
	totalServices, err := u.services.Count(ctx)
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("count services: %w", err)
	}
	records, err := u.records.List(ctx)
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("list service records: %w", err)
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("list payments: %w", err)
	}

	d := entities.Dashboard{
		Counts: entities.DashboardCounts{
			TotalCars:     totalCars,
			TotalServices: totalServices,
			TotalRecords:  int64(len(records)),
		},
		Revenue: entities.DashboardRevenue{Currency: u.currency},
	}
	for _, r := range records {
		if r.PaymentStatus == entities.PaymentStatusPaid {
			d.Counts.CompletedPayments++
		} else {
			d.Counts.PendingPayments++
		}
	}

	start := startOfDay(u.now(), u.loc)
	end := start.AddDate(0, 0, 1)
	for _, p := range payments {
		d.Revenue.Total += p.AmountPaid
		if !p.PaymentDate.Before(start) && p.PaymentDate.Before(end) {
			d.Revenue.Today += p.AmountPaid
			d.Today.Transactions++
			d.Today.Revenue += p.AmountPaid
		}
	}

	resolver := newReferenceResolver(u.cars, u.services, u.records)
	resolver.primeRecords(records)

	sortRecordsNewestFirst(records)
	recent, err := resolver.recordViews(ctx, records[:min(recentLimit, len(records))])
	if err != nil {
		return entities.Dashboard{}, err
	}
	d.RecentRecords = recent

	sortPaymentsNewestFirst(payments)
	d.RecentPayments = make([]entities.PaymentView, 0, recentLimit)
	for _, p := range payments[:min(recentLimit, len(payments))] {
		v, err := resolver.paymentView(ctx, p)
		if err != nil {
			return entities.Dashboard{}, err
		}
		d.RecentPayments = append(d.RecentPayments, v)
	}
	return d, nil
}

// DailyReport lists the payments received on the calendar day of date, in the report location.
// The window is [00:00:00.000, 23:59:59.999], both ends included.
func (u *ReportUseCase) DailyReport(ctx context.Context, date time.Time) (entities.DailyReport, error) {
	if date.IsZero() {
		date = u.now()
	}
	from := startOfDay(date, u.loc)
	to := from.AddDate(0, 0, 1).Add(-time.Millisecond)

	payments, err := u.payments.ListByDateRange(ctx, from, to)
	if err != nil {
		return entities.DailyReport{}, fmt.Errorf("list payments for %s: %w", from.Format(time.DateOnly), err)
	}
	sort.SliceStable(payments, func(i, j int) bool {
		if payments[i].PaymentDate.Equal(payments[j].PaymentDate) {
			return payments[i].PaymentNumber < payments[j].PaymentNumber
		}
		return payments[i].PaymentDate.Before(payments[j].PaymentDate)
	})

	report := entities.DailyReport{Date: from, Lines: make([]entities.DailyReportLine, 0, len(payments))}
	resolver := newReferenceResolver(u.cars, u.services, u.records)
	for _, p := range payments {
		rec, car, svc, err := resolver.paymentRefs(ctx, p)
		if err != nil {
			return entities.DailyReport{}, err
		}
		report.Lines = append(report.Lines, entities.DailyReportLine{
			RecordNumber: p.RecordNumber,
			PlateNumber:  orUnknown(firstNonEmpty(car.PlateNumber, rec.PlateNumber)),
			CarModel:     orUnknown(car.Model),
			ServiceName:  orUnknown(svc.ServiceName),
			ServicePrice: svc.ServicePrice,
			AmountPaid:   p.AmountPaid,
			PaymentDate:  p.PaymentDate,
			MechanicName: orUnknown(car.MechanicName),
		})
		report.Summary.TotalServicePrice += svc.ServicePrice
		report.Summary.TotalAmountPaid += p.AmountPaid
	}
	report.Summary.TotalServices = len(report.Lines)

	log.WithFields(log.Fields{
		"date":        from.Format(time.DateOnly),
		"payments":    report.Summary.TotalServices,
		"amount_paid": report.Summary.TotalAmountPaid,
	}).Debug("[report][usecase] daily report built")
	return report, nil
}

// Location is the zone that defines a calendar day for reports.
func (u *ReportUseCase) Location() *time.Location {
	return u.loc
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
