package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/credit-service/internal/application/credit"
	"github.com/jhoicas/credit-service/internal/application/creditcard"
	"github.com/jhoicas/credit-service/internal/application/customer"
	"github.com/jhoicas/credit-service/internal/application/eligibility"
	"github.com/jhoicas/credit-service/internal/infrastructure/client"
	"github.com/jhoicas/credit-service/internal/infrastructure/kafka"
	"github.com/jhoicas/credit-service/internal/infrastructure/postgres"
	"github.com/jhoicas/credit-service/internal/infrastructure/rediscache"
	httpRouter "github.com/jhoicas/credit-service/internal/interfaces/http"
	"github.com/jhoicas/credit-service/internal/scheduler"
	"github.com/jhoicas/credit-service/pkg/config"
	"github.com/jhoicas/credit-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	creditRepo := postgres.NewCreditRepository(pool)
	cardRepo := postgres.NewCreditCardRepository(pool)

	cache := rediscache.New(cfg.Redis, log)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		// El cache es best-effort: sin Redis el resolver degrada a ir
		// siempre al servicio de clientes.
		log.Warn().Err(err).Msg("Redis no disponible, el cache de clientes operará degradado")
	}

	producer := kafka.NewProducer(cfg.Kafka, log)
	defer producer.Close()

	customerClient := client.NewCustomerClient(cfg.Clients, cfg.Breaker, log)
	accountClient := client.NewAccountClient(cfg.Clients, cfg.Breaker, log)

	resolver := customer.NewResolver(cache, customerClient, log)
	eligibilitySvc := eligibility.NewService(creditRepo, cardRepo, log)
	creditUC := credit.NewUseCase(creditRepo, resolver, eligibilitySvc, producer, log)
	cardUC := creditcard.NewUseCase(cardRepo, resolver, accountClient, customerClient, producer, log)

	paymentDue := scheduler.New(creditRepo, cardRepo, cfg.Scheduler.CronSpec, log)
	if err := paymentDue.Start(); err != nil {
		log.Fatal().Err(err).Msg("arranque del scheduler de vencimientos")
	}
	defer paymentDue.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreditUC:      creditUC,
		CreditCardUC:  cardUC,
		EligibilitySv: eligibilitySvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
