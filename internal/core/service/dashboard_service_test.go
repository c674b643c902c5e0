package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// Wednesday 10 Jan 2024, 15:00 UTC.
var fixedNow = func() time.Time { return time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDashboardService_Revenue_QueriesIsoWeekWindows(t *testing.T) {
	repo := &stubDashboardRepo{
		daily: map[string][]domain.DailyRevenue{
			"2024-01-08": {{Day: date(2024, 1, 9), Revenue: decimal.NewFromInt(40)}},
			"2024-01-01": {{Day: date(2024, 1, 6), Revenue: decimal.NewFromInt(10)}},
		},
	}
	svc := NewDashboardService(repo, DashboardOptions{}, fixedNow, discardLogger)

	series, err := svc.Revenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.dailyCalls) != 2 {
		t.Fatalf("expected 2 window queries, got %d", len(repo.dailyCalls))
	}
	if c := repo.dailyCalls[0]; !c.from.Equal(date(2024, 1, 8)) || !c.to.Equal(date(2024, 1, 10)) {
		t.Errorf("unexpected current window: %v .. %v", c.from, c.to)
	}
	if c := repo.dailyCalls[1]; !c.from.Equal(date(2024, 1, 1)) || !c.to.Equal(date(2024, 1, 7)) {
		t.Errorf("unexpected prior window: %v .. %v", c.from, c.to)
	}

	if len(series.Labels) != 7 || series.Labels[0] != "Jan 04" || series.Labels[6] != "Jan 10" {
		t.Errorf("unexpected labels: %v", series.Labels)
	}
	if !series.Datasets[0].Data[5].Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected Jan 09 = 40, got %s", series.Datasets[0].Data[5])
	}
	// Jan 06 of the prior window collides with the Jan 06 label.
	if !series.Datasets[1].Data[2].Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected literal Jan 06 = 10, got %s", series.Datasets[1].Data[2])
	}
}

func TestDashboardService_Revenue_AlignedUsesTrailingWindows(t *testing.T) {
	repo := &stubDashboardRepo{}
	svc := NewDashboardService(repo, DashboardOptions{AlignPriorWeek: true}, fixedNow, discardLogger)

	if _, err := svc.Revenue(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c := repo.dailyCalls[0]; !c.from.Equal(date(2024, 1, 4)) || !c.to.Equal(date(2024, 1, 10)) {
		t.Errorf("unexpected current window: %v .. %v", c.from, c.to)
	}
	if c := repo.dailyCalls[1]; !c.from.Equal(date(2023, 12, 28)) || !c.to.Equal(date(2024, 1, 3)) {
		t.Errorf("unexpected prior window: %v .. %v", c.from, c.to)
	}
}

func TestDashboardService_Revenue_StoreFailure(t *testing.T) {
	repo := &stubDashboardRepo{dailyErr: errDB}
	svc := NewDashboardService(repo, DashboardOptions{}, fixedNow, discardLogger)

	series, err := svc.Revenue(context.Background())
	if !errors.Is(err, domain.ErrRevenueQueryFailed) || !errors.Is(err, errDB) {
		t.Fatalf("expected ErrRevenueQueryFailed wrapping the cause, got %v", err)
	}
	if series != nil {
		t.Error("no partial result expected")
	}
}

func TestDashboardService_KPIs(t *testing.T) {
	repo := &stubDashboardRepo{
		bookings:    1500,
		revenue:     decimal.RequireFromString("2500.40"),
		inTransit:   3,
		openTickets: 4,
	}
	svc := NewDashboardService(repo, DashboardOptions{}, fixedNow, discardLogger)

	kpis, err := svc.KPIs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kpis) != 4 {
		t.Fatalf("expected 4 KPIs, got %d", len(kpis))
	}
	if kpis[0].Value != "1,500" || kpis[1].Value != "$2,500.4" || kpis[2].Value != "3" || kpis[3].Value != "4" {
		t.Errorf("unexpected values: %q %q %q %q", kpis[0].Value, kpis[1].Value, kpis[2].Value, kpis[3].Value)
	}
	if want := fixedNow().AddDate(0, 0, -30); !repo.lastSince.Equal(want) {
		t.Errorf("expected window start %v, got %v", want, repo.lastSince)
	}
	if repo.lastStatus != domain.StatusInTransit {
		t.Errorf("expected active deliveries to count %q, got %q", domain.StatusInTransit, repo.lastStatus)
	}
	if kpis[0].Change != domain.DefaultKPIChanges.Bookings {
		t.Errorf("expected default change placeholders, got %+v", kpis[0].Change)
	}
}

func TestDashboardService_KPIs_ZeroParcels(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{}, DashboardOptions{}, fixedNow, discardLogger)

	kpis, err := svc.KPIs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kpis[0].Value != "0" || kpis[1].Value != "$0" {
		t.Errorf("expected 0 bookings and $0 revenue, got %q and %q", kpis[0].Value, kpis[1].Value)
	}
}

func TestDashboardService_KPIs_AnyFailureFailsAll(t *testing.T) {
	for _, query := range []string{"bookings", "revenue", "deliveries", "tickets"} {
		svc := NewDashboardService(&stubDashboardRepo{failOn: query}, DashboardOptions{}, fixedNow, discardLogger)

		kpis, err := svc.KPIs(context.Background())
		if !errors.Is(err, domain.ErrKPIQueryFailed) {
			t.Errorf("%s: expected ErrKPIQueryFailed, got %v", query, err)
		}
		if kpis != nil {
			t.Errorf("%s: expected no partial list, got %d items", query, len(kpis))
		}
	}
}

func TestDashboardService_KPIs_CustomWindow(t *testing.T) {
	repo := &stubDashboardRepo{}
	svc := NewDashboardService(repo, DashboardOptions{KPIWindowDays: 7}, fixedNow, discardLogger)

	kpis, _ := svc.KPIs(context.Background())
	if want := fixedNow().AddDate(0, 0, -7); !repo.lastSince.Equal(want) {
		t.Errorf("expected window start %v, got %v", want, repo.lastSince)
	}
	if kpis[0].TooltipText != "Total number of bookings in the last 7 days" {
		t.Errorf("unexpected tooltip: %q", kpis[0].TooltipText)
	}
}
