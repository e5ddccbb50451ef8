package main

import (
	"log"
	"strconv"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sharer-labs/shareit-server/config"
	"github.com/sharer-labs/shareit-server/internal/handler"
	"github.com/sharer-labs/shareit-server/internal/metrics"
	"github.com/sharer-labs/shareit-server/internal/middleware"
	"github.com/sharer-labs/shareit-server/internal/repository"
	"github.com/sharer-labs/shareit-server/internal/service"
	"github.com/sharer-labs/shareit-server/pkg/database"
	"github.com/sharer-labs/shareit-server/pkg/logging"
	"github.com/sharer-labs/shareit-server/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db := database.NewPostgresDB(cfg.DSN())

	// Booking events are optional: without a broker URL the service runs
	// standalone.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	requestRepo := repository.NewItemRequestRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo)
	itemSvc := service.NewItemService(itemRepo, bookingRepo, commentRepo, requestRepo, userSvc)
	bookingSvc := service.NewBookingService(bookingRepo, itemRepo, userSvc, publisher)
	requestSvc := service.NewItemRequestService(requestRepo, itemRepo, userSvc)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			metrics.IncHTTP(c.Path(), strconv.Itoa(v.Status))
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	metrics.Register()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "shareit-server"})
	})

	handler.NewUserHandler(userSvc, logger).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc, logger).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc, logger).RegisterRoutes(e)
	handler.NewItemRequestHandler(requestSvc, logger).RegisterRoutes(e)

	logger.Info().Str("port", cfg.ServerPort).Msg("server starting")
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
