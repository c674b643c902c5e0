package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BookingRepository implements ports.BookingRepository on PostgreSQL.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// List returns parcels newest first, narrowed by an optional status and a
// case-insensitive search over id, user, pickup and drop.
//
// The status filter matches what the row displays after coercion: "pending"
// also selects every stored value outside the known set, and a filter value
// outside the known set selects nothing.
func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&parcelRow{})
	switch status := domain.BookingStatus(filter.Status); {
	case filter.Status == "":
	case !domain.IsKnownStatus(filter.Status):
		return []domain.Booking{}, nil
	case status == domain.StatusPending:
		q = q.Where("(status = ? OR status NOT IN ?)", filter.Status, domain.StatusesExcept(status))
	default:
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + likeEscaper.Replace(filter.Search) + "%"
		q = q.Where(
			"parcel_id ILIKE ? OR user_id ILIKE ? OR pickup_location ILIKE ? OR drop_location ILIKE ?",
			like, like, like, like,
		)
	}

	var rows []parcelRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = row.toDomain()
	}
	return bookings, nil
}

// FindByID retrieves a single parcel.
func (r *BookingRepository) FindByID(ctx context.Context, parcelID string) (*domain.Booking, error) {
	var row parcelRow
	err := r.db.WithContext(ctx).Where("parcel_id = ?", parcelID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	b := row.toDomain()
	return &b, nil
}
