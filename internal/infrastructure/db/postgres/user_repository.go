package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

const listUsersQuery = `
SELECT u.id, u.name, u.email, u.phone, u.created_at, COUNT(p.parcel_id) AS bookings_count
FROM users u
LEFT JOIN parcels p ON p.user_id = u.id
GROUP BY u.id
ORDER BY u.created_at DESC`

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListWithBookingCounts returns all users with their parcel counts, newest first.
func (r *UserRepository) ListWithBookingCounts(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Raw(listUsersQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// DeleteCascade removes a user's parcels and then the user atomically. When no
// user row is deleted the transaction is rolled back, so parcels survive too.
func (r *UserRepository) DeleteCascade(ctx context.Context, userID string) (*domain.UserDeletion, error) {
	var out domain.UserDeletion

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		parcels := tx.Exec("DELETE FROM parcels WHERE user_id = ?", userID)
		if parcels.Error != nil {
			return fmt.Errorf("delete parcels: %w", parcels.Error)
		}

		users := tx.Exec("DELETE FROM users WHERE id = ?", userID)
		if users.Error != nil {
			return fmt.Errorf("delete user: %w", users.Error)
		}
		if users.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		out = domain.UserDeletion{UserID: userID, ParcelsRemoved: parcels.RowsAffected}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
