package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// deleteResponse is returned by the DELETE endpoints on success.
type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Users ---

type userResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	BookingsCount int64     `json:"bookingsCount"`
}

// --- Bookings ---

type bookingResponse struct {
	ParcelID       string    `json:"parcel_id"`
	UserID         string    `json:"user_id"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   string    `json:"drop_location"`
	DeliveryType   string    `json:"deliverytype"`
	CreatedAt      time.Time `json:"created_at"`
	Status         string    `json:"status"`
	Amount         string    `json:"amount" example:"149.00"`
}

type timelineEventResponse struct {
	Time     time.Time `json:"time"`
	Status   string    `json:"status"`
	Location string    `json:"location"`
}

type timelineResponse struct {
	Booking bookingResponse         `json:"booking"`
	Events  []timelineEventResponse `json:"events"`
}

// --- Support tickets & FAQs ---

type ticketResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type faqResponse struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Payments ---

type createPaymentRequest struct {
	UserID        string          `json:"user_id"`
	ParcelID      string          `json:"parcel_id"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"149.00"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	TransactionID string          `json:"transaction_id"`
}

type createPaymentResponse struct {
	ID int64 `json:"id"`
}

type paymentResponse struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	ParcelID      string    `json:"parcel_id"`
	Amount        string    `json:"amount" example:"149.00"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// --- Dashboard ---

type revenueDatasetResponse struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
}

type revenueResponse struct {
	Labels   []string                 `json:"labels"`
	Datasets []revenueDatasetResponse `json:"datasets"`
}

type kpiChangeResponse struct {
	Value float64 `json:"value"`
	Type  string  `json:"type"`
}

type kpiResponse struct {
	Title       string            `json:"title"`
	Value       string            `json:"value"`
	Icon        string            `json:"icon"`
	Change      kpiChangeResponse `json:"change"`
	TooltipText string            `json:"tooltipText"`
}
