package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentInProgress means another request holds the same idempotency key
	// and has not finished inserting yet.
	ErrPaymentInProgress = errors.New("payment with this idempotency key is in progress")
)

// Payment is a single payment transaction recorded against a parcel.
type Payment struct {
	ID            int64
	UserID        string
	ParcelID      string
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	TransactionID string
	CreatedAt     time.Time
}
