package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parcelease/admin-dashboard/internal/api/metrics"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

// TicketHandler handles support tickets and the FAQ list.
type TicketHandler struct {
	tickets ports.TicketService
	faqs    ports.FAQService
}

func NewTicketHandler(tickets ports.TicketService, faqs ports.FAQService) *TicketHandler {
	return &TicketHandler{tickets: tickets, faqs: faqs}
}

// List handles GET /api/support-tickets.
//
// @Summary      List support tickets, newest first
// @Tags         support
// @Produce      json
// @Success      200  {array}   ticketResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/support-tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.tickets.ListTickets(c.Request().Context())
	if err != nil {
		return fail(err, "Failed to fetch support tickets")
	}
	return c.JSON(http.StatusOK, toTicketResponses(tickets))
}

// Delete handles DELETE /api/support-tickets/:id.
//
// @Summary      Delete a support ticket
// @Tags         support
// @Produce      json
// @Param        id   path      int  true  "Ticket id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/support-tickets/{id} [delete]
func (h *TicketHandler) Delete(c echo.Context) error {
	if err := h.tickets.DeleteTicket(c.Request().Context(), c.Param("id")); err != nil {
		return fail(err, "Failed to delete support ticket")
	}

	metrics.TicketsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteResponse{Success: true, Message: "Ticket deleted successfully"})
}

// FAQs handles GET /api/faqs.
//
// @Summary      List FAQs, newest first
// @Tags         support
// @Produce      json
// @Success      200  {array}   faqResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/faqs [get]
func (h *TicketHandler) FAQs(c echo.Context) error {
	faqs, err := h.faqs.ListFAQs(c.Request().Context())
	if err != nil {
		return fail(err, "Failed to fetch FAQs")
	}
	return c.JSON(http.StatusOK, toFAQResponses(faqs))
}
