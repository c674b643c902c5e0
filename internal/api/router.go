package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/parcelease/admin-dashboard/internal/api/handler"
	"github.com/parcelease/admin-dashboard/internal/api/middleware"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/http/handlers"

	_ "github.com/parcelease/admin-dashboard/docs"
)

// Services bundles the use cases the HTTP layer exposes.
type Services struct {
	Users     ports.UserService
	Bookings  ports.BookingService
	Tickets   ports.TicketService
	FAQs      ports.FAQService
	Payments  ports.PaymentService
	Dashboard ports.DashboardService
}

// Options carries the optional pieces of the router. Nil metric fields fall
// back to the default Prometheus registry.
type Options struct {
	Readiness  *handlers.HealthDependenciesHandler
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, "Idempotency-Key"},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "parcelease_admin",
		Subsystem:  "http",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/metrics", "/health", "/health/ready":
				return true
			}
			return false
		},
	}))

	// --- Handlers ---
	users := handler.NewUserHandler(svc.Users)
	bookings := handler.NewBookingHandler(svc.Bookings)
	tickets := handler.NewTicketHandler(svc.Tickets, svc.FAQs)
	payments := handler.NewPaymentHandler(svc.Payments)
	dashboard := handler.NewDashboardHandler(svc.Dashboard)

	// --- API routes ---
	g := e.Group("/api")

	g.GET("/users", users.List)
	g.DELETE("/users/:id", users.Delete)

	g.GET("/bookings", bookings.List)
	g.GET("/bookings/:id", bookings.Get)
	g.GET("/bookings/:id/timeline", bookings.Timeline)

	g.GET("/support-tickets", tickets.List)
	g.DELETE("/support-tickets/:id", tickets.Delete)
	g.GET("/faqs", tickets.FAQs)

	g.GET("/dashboard/revenue", dashboard.Revenue)
	g.GET("/dashboard/kpis", dashboard.KPIs)

	g.GET("/payments", payments.List)
	g.GET("/payments/:id", payments.Get)
	g.POST("/paymentsadd", payments.Create)

	// --- Operational endpoints ---
	e.GET("/health", handlers.NewHealthHandler().Liveness) // liveness
	if opts.Readiness != nil {
		e.GET("/health/ready", opts.Readiness.Readiness) // readiness
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
