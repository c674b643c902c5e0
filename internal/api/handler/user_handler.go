package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parcelease/admin-dashboard/internal/api/metrics"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users with their booking counts
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return fail(err, "Database query failed")
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Delete handles DELETE /api/users/:id. The user's parcels are removed with it.
//
// @Summary      Delete a user and all of their parcels
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return fail(err, "Failed to delete user")
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteResponse{Success: true, Message: "User deleted successfully"})
}
