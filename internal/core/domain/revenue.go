package domain

import (
	"errors"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

// RevenueLabelFormat renders a day as "MMM dd", e.g. "Jan 09".
const RevenueLabelFormat = "Jan 02"

// revenueDays is the length of every revenue window and label sequence.
const revenueDays = 7

var ErrRevenueQueryFailed = errors.New("revenue query failed")

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// RevenueWindows holds the two ranges compared on the revenue chart.
type RevenueWindows struct {
	Current DateRange
	Prior   DateRange
}

// DailyRevenue is the summed amount of all parcels created on one calendar day.
type DailyRevenue struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// RevenueDataset is one chart series.
type RevenueDataset struct {
	Label           string
	Data            []decimal.Decimal
	BorderColor     string
	BackgroundColor string
}

// RevenueSeries is the week-over-week revenue chart.
type RevenueSeries struct {
	Labels   []string
	Datasets []RevenueDataset
}

// WeekOverWeekWindows returns the ISO week containing ref (Monday up to ref)
// and the seven days immediately before it.
func WeekOverWeekWindows(ref time.Time) RevenueWindows {
	cal := &now.Config{WeekStartDay: time.Monday, TimeLocation: ref.Location()}
	start := cal.With(ref).BeginningOfWeek()
	return RevenueWindows{
		Current: DateRange{From: start, To: now.With(ref).BeginningOfDay()},
		Prior:   DateRange{From: start.AddDate(0, 0, -revenueDays), To: start.AddDate(0, 0, -1)},
	}
}

// TrailingWindows returns the seven days ending at ref and the seven days
// before those, so both line up with the chart labels.
func TrailingWindows(ref time.Time) RevenueWindows {
	today := now.With(ref).BeginningOfDay()
	return RevenueWindows{
		Current: DateRange{From: today.AddDate(0, 0, -(revenueDays - 1)), To: today},
		Prior:   DateRange{From: today.AddDate(0, 0, -(2*revenueDays - 1)), To: today.AddDate(0, 0, -revenueDays)},
	}
}

// RevenueLabels returns the seven day labels ending at ref, oldest first.
func RevenueLabels(ref time.Time) []string {
	days := labelDays(ref)
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Format(RevenueLabelFormat)
	}
	return labels
}

// AggregateRevenue projects per-day sums of both windows onto the labels
// ending at ref. Days without sales are zero.
//
// With aligned false both series are looked up under the current labels, so
// prior sums only show when their day-of-month label collides with one of the
// last seven days. With aligned true the prior series is looked up seven days
// earlier than each label.
func AggregateRevenue(ref time.Time, current, prior []DailyRevenue, aligned bool) RevenueSeries {
	days := labelDays(ref)

	priorShift := 0
	if aligned {
		priorShift = -revenueDays
	}

	return RevenueSeries{
		Labels: RevenueLabels(ref),
		Datasets: []RevenueDataset{
			{
				Label:           "This Week",
				Data:            project(days, byLabel(current), 0),
				BorderColor:     "#0066FF",
				BackgroundColor: "rgba(0, 102, 255, 0.1)",
			},
			{
				Label:           "Last Week",
				Data:            project(days, byLabel(prior), priorShift),
				BorderColor:     "#d4dbe6",
				BackgroundColor: "rgba(212, 219, 230, 0.1)",
			},
		},
	}
}

func labelDays(ref time.Time) []time.Time {
	today := now.With(ref).BeginningOfDay()
	days := make([]time.Time, revenueDays)
	for i := range days {
		days[i] = today.AddDate(0, 0, i-(revenueDays-1))
	}
	return days
}

func byLabel(rows []DailyRevenue) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		key := r.Day.Format(RevenueLabelFormat)
		out[key] = out[key].Add(r.Revenue)
	}
	return out
}

func project(days []time.Time, sums map[string]decimal.Decimal, shiftDays int) []decimal.Decimal {
	data := make([]decimal.Decimal, len(days))
	for i, d := range days {
		v, ok := sums[d.AddDate(0, 0, shiftDays).Format(RevenueLabelFormat)]
		if !ok {
			v = decimal.Zero
		}
		data[i] = v
	}
	return data
}
