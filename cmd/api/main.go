// @title        ParcelEase Admin Dashboard API
// @version      1.0
// @description  Back office API for users, bookings, support tickets, payments and dashboard analytics.
// @host         localhost:4000
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/parcelease/admin-dashboard/internal/api"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
	"github.com/parcelease/admin-dashboard/internal/core/service"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/broker"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/config"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/db/mongo"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/db/postgres"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/db/redis"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/http/handlers"
	"github.com/parcelease/admin-dashboard/internal/infrastructure/queue"
	"github.com/parcelease/admin-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "parcelease-admin",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Relational store ---
	if err := postgres.RunMigrations(cfg.Postgres.URL); err != nil {
		return err
	}
	db, err := postgres.Connect(ctx, postgres.Config{
		URL:          cfg.Postgres.URL,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	}, log)
	if err != nil {
		return err
	}
	defer postgres.Close(db)

	readiness := handlers.NewHealthDependenciesHandler().WithPostgres(db)

	// --- Optional components ---
	var idempotency ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()

		idempotency = redis.NewIdempotencyStore(rdb)
		readiness.WithRedis(rdb)
	} else {
		log.Info().Msg("REDIS_ADDR not set, payment idempotency disabled")
	}

	var sinks []ports.EventSink
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer mongo.Disconnect(client)

		audit := mongo.NewAuditSink(mdb)
		if err := audit.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to create audit indexes")
		}
		sinks = append(sinks, audit)
		readiness.WithMongo(mdb)
	} else {
		log.Info().Msg("MONGO_URI not set, admin audit trail disabled")
	}

	if cfg.AMQP.URL != "" {
		pub, err := broker.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return err
		}
		defer pub.Close()

		sinks = append(sinks, pub)
		readiness.WithCheck("amqp", func(context.Context) error {
			if pub.IsClosed() {
				return errors.New("connection closed")
			}
			return nil
		})
	} else {
		log.Info().Msg("AMQP_URL not set, admin event publishing disabled")
	}

	dispatcher := queue.NewDispatcher(cfg.Dispatch.Workers, sinks, log.With().Str("component", "dispatcher").Logger())
	dispatcher.Start(ctx)

	// --- Services ---
	svc := api.Services{
		Users:    service.NewUserService(postgres.NewUserRepository(db), dispatcher, time.Now, log),
		Bookings: service.NewBookingService(postgres.NewBookingRepository(db), log),
		Tickets:  service.NewTicketService(postgres.NewTicketRepository(db), dispatcher, time.Now, log),
		FAQs:     service.NewFAQService(postgres.NewFAQRepository(db)),
		Payments: service.NewPaymentService(
			postgres.NewPaymentRepository(db), idempotency, cfg.Redis.IdempotencyTTL, dispatcher, time.Now, log),
		Dashboard: service.NewDashboardService(postgres.NewDashboardRepository(db), service.DashboardOptions{
			KPIWindowDays:  cfg.Dashboard.KPIWindowDays,
			AlignPriorWeek: cfg.Dashboard.AlignPriorWeek,
			Location:       cfg.Location(),
		}, time.Now, log),
	}

	e := api.NewRouter(svc, api.Options{Readiness: readiness}, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := e.Shutdown(shutdownCtx)
		if derr := dispatcher.Shutdown(shutdownCtx); derr != nil {
			log.Warn().Err(derr).Msg("dispatcher did not drain in time")
		}
		return err
	})

	return g.Wait()
}
