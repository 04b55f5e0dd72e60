package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"aquameter/internal/config"
	httpserver "aquameter/internal/http"
	"aquameter/internal/http/handlers"
	"aquameter/internal/metrics"
	"aquameter/internal/repository"
	"aquameter/internal/service"
)

// App wires meter backend dependencies.
type App struct {
	server *httpserver.Server
	client *mongo.Client
	logger *zap.Logger
}

// New constructs application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("app: connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("app: ping mongo: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	store := repository.NewStore(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection, logger, appMetrics)
	if err := store.EnsureIndexes(connectCtx); err != nil {
		return nil, err
	}
	accountRepo := repository.NewAccountRepository(store)

	images, err := service.NewImageStore(cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}

	accountService := service.NewAccountService(accountRepo, logger)
	meterService := service.NewMeterService(accountRepo, images, logger)

	routes := httpserver.Routes{
		CreateAccount: handlers.NewCreateAccountHandler(accountService, logger),
		ListAccounts:  handlers.NewListAccountsHandler(accountService, logger),
		DetectMeter:   handlers.NewDetectMeterHandler(meterService, logger),
		NearestMeter:  handlers.NewNearestMeterHandler(meterService, logger),
		SubmitUsage:   handlers.NewSubmitUsageHandler(meterService, logger),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(
		cfg.HTTPAddress(),
		router,
		logger,
		httpserver.CORS,
		httpserver.RequestLogger(logger),
		httpserver.Observe(appMetrics),
	)

	return &App{
		server: server,
		client: client,
		logger: logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.client.Disconnect(ctx); err != nil {
			a.logger.Warn("failed to disconnect store", zap.Error(err))
		}
	}
}
