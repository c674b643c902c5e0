package domain

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var ErrKPIQueryFailed = errors.New("kpi query failed")

// ChangeDirection tells the dashboard which way a KPI moved.
type ChangeDirection string

const (
	ChangeIncrease ChangeDirection = "increase"
	ChangeDecrease ChangeDirection = "decrease"
)

// KPIChange is the period-over-period delta shown under a KPI card.
type KPIChange struct {
	Value float64
	Type  ChangeDirection
}

// KPI is one summary card of the dashboard home view.
type KPI struct {
	Title       string
	Value       string
	Icon        string
	Change      KPIChange
	TooltipText string
}

// KPICounts are the raw figures the four KPI cards are rendered from.
type KPICounts struct {
	WindowDays       int
	TotalBookings    int64
	TotalRevenue     decimal.Decimal
	ActiveDeliveries int64
	OpenTickets      int64
}

// KPIChanges holds the deltas displayed under each card. They are fixed
// values until a historical comparison is stored somewhere.
type KPIChanges struct {
	Bookings   KPIChange
	Revenue    KPIChange
	Deliveries KPIChange
	Tickets    KPIChange
}

// DefaultKPIChanges are the placeholder deltas the dashboard ships with.
var DefaultKPIChanges = KPIChanges{
	Bookings:   KPIChange{Value: 12.5, Type: ChangeIncrease},
	Revenue:    KPIChange{Value: 8.3, Type: ChangeIncrease},
	Deliveries: KPIChange{Value: 2.1, Type: ChangeDecrease},
	Tickets:    KPIChange{Value: 5.4, Type: ChangeDecrease},
}

// BuildKPIs renders counts into the fixed, ordered list of four cards.
func BuildKPIs(c KPICounts, changes KPIChanges) []KPI {
	return []KPI{
		{
			Title:       "Total Bookings",
			Value:       humanize.Comma(c.TotalBookings),
			Icon:        "Package",
			Change:      changes.Bookings,
			TooltipText: fmt.Sprintf("Total number of bookings in the last %d days", c.WindowDays),
		},
		{
			Title:       "Revenue",
			Value:       FormatDollars(c.TotalRevenue),
			Icon:        "DollarSign",
			Change:      changes.Revenue,
			TooltipText: fmt.Sprintf("Total revenue generated in the last %d days", c.WindowDays),
		},
		{
			Title:       "Active Deliveries",
			Value:       humanize.Comma(c.ActiveDeliveries),
			Icon:        "Truck",
			Change:      changes.Deliveries,
			TooltipText: "Number of packages currently in transit",
		},
		{
			Title:       "Open Tickets",
			Value:       humanize.Comma(c.OpenTickets),
			Icon:        "LifeBuoy",
			Change:      changes.Tickets,
			TooltipText: "Number of unresolved support tickets",
		},
	}
}

// FormatDollars renders an amount as "$1,234.5", dropping trailing zeros.
func FormatDollars(amount decimal.Decimal) string {
	return "$" + humanize.Commaf(amount.Round(2).InexactFloat64())
}
