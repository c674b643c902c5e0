package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parcelease/admin-dashboard/internal/api/metrics"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List handles GET /api/payments.
//
// @Summary      List payments, newest first
// @Tags         payments
// @Produce      json
// @Success      200  {array}   paymentResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.service.ListPayments(c.Request().Context())
	if err != nil {
		return fail(err, "Failed to fetch payments")
	}
	return c.JSON(http.StatusOK, toPaymentResponses(payments))
}

// Get handles GET /api/payments/:id.
//
// @Summary      Get a payment by id
// @Tags         payments
// @Produce      json
// @Param        id   path      int  true  "Payment id"
// @Success      200  {object}  paymentResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	p, err := h.service.GetPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err, "Failed to fetch payment")
	}
	return c.JSON(http.StatusOK, toPaymentResponse(*p))
}

// Create handles POST /api/paymentsadd.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Replaying a key returns the first payment id"
// @Param        body             body      createPaymentRequest  true   "Payment"
// @Success      201              {object}  createPaymentResponse
// @Failure      400              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /api/paymentsadd [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	key := c.Request().Header.Get(headerIdempotencyKey)
	result, err := h.service.CreatePayment(c.Request().Context(), toCreatePaymentInput(req, key))
	if err != nil {
		return fail(err, "Failed to create payment")
	}

	if result.AlreadyExisted {
		metrics.PaymentsCreatedTotal.WithLabelValues("replayed").Inc()
		c.Response().Header().Set(headerReplayed, "true")
	} else {
		metrics.PaymentsCreatedTotal.WithLabelValues("created").Inc()
	}
	return c.JSON(http.StatusCreated, createPaymentResponse{ID: result.ID})
}
