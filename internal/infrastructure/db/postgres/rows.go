package postgres

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// Row types mirror the table columns. Conversion to domain values happens
// here so status coercion and NULL handling stay out of the core.

type userRow struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	CreatedAt     time.Time
	BookingsCount int64
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		CreatedAt:     r.CreatedAt,
		BookingsCount: r.BookingsCount,
	}
}

type parcelRow struct {
	ParcelID       string `gorm:"column:parcel_id;primaryKey"`
	UserID         string
	PickupLocation string
	DropLocation   string
	DeliveryType   string `gorm:"column:deliverytype"`
	Status         string
	Amount         decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt      time.Time
}

func (parcelRow) TableName() string { return "parcels" }

func (r parcelRow) toDomain() domain.Booking {
	return domain.Booking{
		ID:             r.ParcelID,
		UserID:         r.UserID,
		PickupLocation: r.PickupLocation,
		DropLocation:   r.DropLocation,
		DeliveryType:   domain.DeliveryType(r.DeliveryType),
		CreatedAt:      r.CreatedAt,
		Status:         domain.ParseStatus(r.Status),
		Amount:         r.Amount,
	}
}

type paymentRow struct {
	ID            int64 `gorm:"primaryKey"`
	UserID        string
	ParcelID      string
	Amount        decimal.Decimal `gorm:"type:numeric(10,2)"`
	PaymentMethod string
	PaymentStatus string
	TransactionID string
	CreatedAt     time.Time
}

func (paymentRow) TableName() string { return "payments" }

func (r paymentRow) toDomain() domain.Payment {
	return domain.Payment{
		ID:            r.ID,
		UserID:        r.UserID,
		ParcelID:      r.ParcelID,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		TransactionID: r.TransactionID,
		CreatedAt:     r.CreatedAt,
	}
}

type ticketRow struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    string
	Subject   string
	Message   string
	Response  sql.NullString
	Status    string
	CreatedAt time.Time
}

func (ticketRow) TableName() string { return "support_requests" }

func (r ticketRow) toDomain() domain.SupportTicket {
	return domain.SupportTicket{
		ID:        r.ID,
		UserID:    r.UserID,
		Subject:   r.Subject,
		Message:   r.Message,
		Response:  r.Response.String,
		Status:    domain.ParseStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

type faqRow struct {
	ID        int64 `gorm:"primaryKey"`
	Question  string
	Answer    string
	CreatedAt time.Time
}

func (faqRow) TableName() string { return "faqs" }

func (r faqRow) toDomain() domain.FAQ {
	return domain.FAQ{ID: r.ID, Question: r.Question, Answer: r.Answer, CreatedAt: r.CreatedAt}
}
