package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

const (
	dateLayout = "2006-01-02"

	dailyRevenueQuery = `
SELECT DATE(created_at) AS day, COALESCE(SUM(amount), 0) AS revenue
FROM parcels
WHERE DATE(created_at) BETWEEN ?::date AND ?::date
GROUP BY DATE(created_at)
ORDER BY day`

	revenueSinceQuery = `SELECT COALESCE(SUM(amount), 0) AS total FROM parcels WHERE created_at >= ?`
)

var openTicketStatuses = []string{string(domain.StatusOpen), string(domain.StatusPending)}

// DashboardRepository implements ports.DashboardRepository on PostgreSQL.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// DailyRevenue sums parcel amounts per calendar day in [from, to]. Days are
// evaluated in the session time zone of the connection.
func (r *DashboardRepository) DailyRevenue(ctx context.Context, from, to time.Time) ([]domain.DailyRevenue, error) {
	var rows []struct {
		Day     time.Time
		Revenue decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Raw(dailyRevenueQuery, from.Format(dateLayout), to.Format(dateLayout)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.DailyRevenue, len(rows))
	for i, row := range rows {
		out[i] = domain.DailyRevenue{Day: row.Day, Revenue: row.Revenue}
	}
	return out, nil
}

func (r *DashboardRepository) CountBookingsSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&parcelRow{}).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}

func (r *DashboardRepository) SumRevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var out struct{ Total decimal.Decimal }
	if err := r.db.WithContext(ctx).Raw(revenueSinceQuery, since).Scan(&out).Error; err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}

func (r *DashboardRepository) CountBookingsByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&parcelRow{}).Where("status = ?", string(status)).Count(&n).Error
	return n, err
}

// CountOpenTickets counts tickets whose status is open or pending, ignoring case.
func (r *DashboardRepository) CountOpenTickets(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ticketRow{}).Where("LOWER(status) IN ?", openTicketStatuses).Count(&n).Error
	return n, err
}
