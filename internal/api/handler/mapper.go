package handler

import (
	"github.com/shopspring/decimal"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

// --- Request → Service input ---

func toCreatePaymentInput(req createPaymentRequest, idempotencyKey string) ports.CreatePaymentInput {
	return ports.CreatePaymentInput{
		UserID:         req.UserID,
		ParcelID:       req.ParcelID,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  req.PaymentStatus,
		TransactionID:  req.TransactionID,
		IdempotencyKey: idempotencyKey,
	}
}

// --- Domain → Response ---

// money renders amounts the way the store does for NUMERIC(10,2).
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userResponse{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Phone:         u.Phone,
			CreatedAt:     u.CreatedAt,
			BookingsCount: u.BookingsCount,
		}
	}
	return out
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ParcelID:       b.ID,
		UserID:         b.UserID,
		PickupLocation: b.PickupLocation,
		DropLocation:   b.DropLocation,
		DeliveryType:   string(b.DeliveryType),
		CreatedAt:      b.CreatedAt,
		Status:         string(b.Status),
		Amount:         money(b.Amount),
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = toBookingResponse(b)
	}
	return out
}

func toTimelineResponse(t *ports.BookingTimeline) timelineResponse {
	events := make([]timelineEventResponse, len(t.Events))
	for i, e := range t.Events {
		events[i] = timelineEventResponse{Time: e.Time, Status: e.Status, Location: e.Location}
	}
	return timelineResponse{Booking: toBookingResponse(t.Booking), Events: events}
}

func toTicketResponses(tickets []domain.SupportTicket) []ticketResponse {
	out := make([]ticketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = ticketResponse{
			ID:        t.ID,
			UserID:    t.UserID,
			Subject:   t.Subject,
			Message:   t.Message,
			Response:  t.Response,
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt,
		}
	}
	return out
}

func toFAQResponses(faqs []domain.FAQ) []faqResponse {
	out := make([]faqResponse, len(faqs))
	for i, f := range faqs {
		out[i] = faqResponse{ID: f.ID, Question: f.Question, Answer: f.Answer, CreatedAt: f.CreatedAt}
	}
	return out
}

func toPaymentResponse(p domain.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		ParcelID:      p.ParcelID,
		Amount:        money(p.Amount),
		PaymentMethod: p.PaymentMethod,
		PaymentStatus: p.PaymentStatus,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

func toPaymentResponses(payments []domain.Payment) []paymentResponse {
	out := make([]paymentResponse, len(payments))
	for i, p := range payments {
		out[i] = toPaymentResponse(p)
	}
	return out
}

func toRevenueResponse(s *domain.RevenueSeries) revenueResponse {
	datasets := make([]revenueDatasetResponse, len(s.Datasets))
	for i, ds := range s.Datasets {
		data := make([]float64, len(ds.Data))
		for j, v := range ds.Data {
			data[j] = v.InexactFloat64()
		}
		datasets[i] = revenueDatasetResponse{
			Label:           ds.Label,
			Data:            data,
			BorderColor:     ds.BorderColor,
			BackgroundColor: ds.BackgroundColor,
		}
	}
	return revenueResponse{Labels: s.Labels, Datasets: datasets}
}

func toKPIResponses(kpis []domain.KPI) []kpiResponse {
	out := make([]kpiResponse, len(kpis))
	for i, k := range kpis {
		out[i] = kpiResponse{
			Title:       k.Title,
			Value:       k.Value,
			Icon:        k.Icon,
			Change:      kpiChangeResponse{Value: k.Change.Value, Type: string(k.Change.Type)},
			TooltipText: k.TooltipText,
		}
	}
	return out
}
