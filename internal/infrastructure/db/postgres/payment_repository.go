package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

// PaymentRepository implements ports.PaymentRepository on PostgreSQL.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	var rows []paymentRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, len(rows))
	for i, row := range rows {
		payments[i] = row.toDomain()
	}
	return payments, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var row paymentRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	p := row.toDomain()
	return &p, nil
}

// Create inserts a payment and returns the generated id. created_at is set
// by gorm on insert.
func (r *PaymentRepository) Create(ctx context.Context, params ports.CreatePaymentParams) (int64, error) {
	row := paymentRow{
		UserID:        params.UserID,
		ParcelID:      params.ParcelID,
		Amount:        params.Amount,
		PaymentMethod: params.PaymentMethod,
		PaymentStatus: params.PaymentStatus,
		TransactionID: params.TransactionID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}
