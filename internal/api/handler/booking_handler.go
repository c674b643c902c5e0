package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

// BookingHandler handles HTTP requests for parcels.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// List handles GET /api/bookings.
//
// @Summary      List bookings, newest first
// @Tags         bookings
// @Produce      json
// @Param        status  query     string  false  "Exact status; 'all' or empty means any"
// @Param        q       query     string  false  "Case-insensitive search over parcel id, user id, pickup and drop"
// @Success      200     {array}   bookingResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.ListBookings(c.Request().Context(), domain.BookingFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("q"),
	})
	if err != nil {
		return fail(err, "Failed to fetch bookings")
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Get handles GET /api/bookings/:id.
//
// @Summary      Get a booking by parcel id
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Parcel id"
// @Success      200  {object}  bookingResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.service.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err, "Failed to fetch booking")
	}
	return c.JSON(http.StatusOK, toBookingResponse(*b))
}

// Timeline handles GET /api/bookings/:id/timeline.
//
// @Summary      Get the tracking timeline of a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Parcel id"
// @Success      200  {object}  timelineResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/bookings/{id}/timeline [get]
func (h *BookingHandler) Timeline(c echo.Context) error {
	t, err := h.service.GetTimeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err, "Failed to fetch booking")
	}
	return c.JSON(http.StatusOK, toTimelineResponse(t))
}
