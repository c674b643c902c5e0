package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// TicketRepository implements ports.TicketRepository on the support_requests table.
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) List(ctx context.Context) ([]domain.SupportTicket, error) {
	var rows []ticketRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	tickets := make([]domain.SupportTicket, len(rows))
	for i, row := range rows {
		tickets[i] = row.toDomain()
	}
	return tickets, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM support_requests WHERE id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

// FAQRepository implements ports.FAQRepository.
type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	var rows []faqRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	faqs := make([]domain.FAQ, len(rows))
	for i, row := range rows {
		faqs[i] = row.toDomain()
	}
	return faqs, nil
}
