// Package scheduler runs the periodic jobs of the ledger.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"crpms_ledger/internal/usecase"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type Scheduler struct {
	cron *cron.Cron
}

// New registers the end-of-day report job on spec, evaluated in loc.
func New(spec string, loc *time.Location, reports usecase.IReportUseCase, timeout time.Duration) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc), cron.WithChain(cron.Recover(cronLogger{})))
	job := &DailyReportJob{reports: reports, timeout: timeout}
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, fmt.Errorf("schedule daily report %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.WithField("jobs", len(s.cron.Entries())).Info("[scheduler] started")
}

// Stop prevents new runs and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// DailyReportJob builds today's report and logs its summary.
type DailyReportJob struct {
	reports usecase.IReportUseCase
	timeout time.Duration
}

var _ cron.Job = (*DailyReportJob)(nil)

func (j *DailyReportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	report, err := j.reports.DailyReport(ctx, time.Time{})
	if err != nil {
		log.WithError(err).Error("[scheduler][daily-report] failed")
		return
	}
	log.WithFields(log.Fields{
		"date":                report.Date.Format(time.DateOnly),
		"total_services":      report.Summary.TotalServices,
		"total_service_price": report.Summary.TotalServicePrice,
		"total_amount_paid":   report.Summary.TotalAmountPaid,
	}).Info("[scheduler][daily-report] end of day summary")
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.WithField("kv", keysAndValues).Debug("[scheduler] " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.WithError(err).WithField("kv", keysAndValues).Error("[scheduler] " + msg)
}
