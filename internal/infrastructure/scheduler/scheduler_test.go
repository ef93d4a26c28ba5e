package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"crpms_ledger/internal/domain/entities"
)

type fakeReports struct {
	calls    int
	lastDate time.Time
	err      error
}

func (f *fakeReports) Dashboard(context.Context) (entities.Dashboard, error) {
	return entities.Dashboard{}, nil
}

func (f *fakeReports) DailyReport(ctx context.Context, date time.Time) (entities.DailyReport, error) {
	f.calls++
	f.lastDate = date
	if _, ok := ctx.Deadline(); !ok {
		return entities.DailyReport{}, errors.New("expected a deadline")
	}
	return entities.DailyReport{Date: time.Now()}, f.err
}

func TestNewRejectsBadSpec(t *testing.T) {
	if _, err := New("every day", time.UTC, &fakeReports{}, time.Second); err == nil {
		t.Fatalf("expected invalid spec error")
	}
}

func TestDailyReportJob(t *testing.T) {
	reports := &fakeReports{}
	job := &DailyReportJob{reports: reports, timeout: time.Second}

	job.Run()
	if reports.calls != 1 || !reports.lastDate.IsZero() {
		t.Fatalf("expected one run for today, got %d calls date=%v", reports.calls, reports.lastDate)
	}

	reports.err = errors.New("store down")
	job.Run()
	if reports.calls != 2 {
		t.Fatalf("expected a second run despite the failure")
	}
}

func TestStartStop(t *testing.T) {
	s, err := New("55 23 * * *", time.UTC, &fakeReports{}, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
