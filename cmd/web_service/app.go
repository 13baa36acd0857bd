package webservice

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"ride-management/internal/general/config"
	"ride-management/internal/general/jwt"
	"ride-management/internal/general/logger"
	"ride-management/internal/general/postgres"
	"ride-management/internal/general/rabbitmq"
	"ride-management/internal/general/redis"
	"ride-management/internal/software/rideapi/service"
	"ride-management/internal/software/webui"
	"ride-management/internal/software/webui/render"
)

// Run wires the web UI service and blocks until ctx is cancelled. It serves
// the server-rendered pages and the WebSocket feed fed by the broker.
func Run(ctx context.Context, maxConcurrent int) error {
	log := logger.New("web-service")
	ctx = logger.WithRequestID(ctx, "startup-001")

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "config_load_failed", "Failed to load configuration", err, nil)
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "db_connection_failed", "Failed to initialize Postgres pool", err, nil)
		return err
	}
	defer pool.Close()

	rmq, err := rabbitmq.Connect(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "rabbitmq_connection_failed", "Failed to connect to RabbitMQ", err, nil)
		return err
	}
	defer rmq.Close()

	rds, err := redis.NewRedis(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "redis_connection_failed", "Failed to connect to Redis", err, nil)
		return err
	}
	defer rds.Close()

	renderer, err := render.New()
	if err != nil {
		log.Error(ctx, "template_parse_failed", "Failed to parse templates", err, nil)
		return err
	}

	jwtManager := jwt.NewManager(cfg.JWT.SecretKey, cfg.JWT.AccessTTL)

	uow := postgres.NewUnitOfWork(pool)
	userRepo := postgres.NewUserRepo()
	rideRepo := postgres.NewRideRepo(cfg.Geo.Strategy)
	rideEventRepo := postgres.NewRideEventRepo()
	reportCache := redis.NewReportCache(rds)
	pub := rabbitmq.NewStatusPublisher(rmq)

	authSvc := service.NewAuthService(log, uow, userRepo, jwtManager)
	rideSvc := service.NewRideService(log, uow, userRepo, rideRepo, rideEventRepo, reportCache, pub)

	hub := webui.NewHub(log)
	defer hub.Close()
	go webui.RunStatusFeed(ctx, rmq, hub, log)

	h := webui.NewHandler(authSvc, rideSvc, log, jwtManager, renderer, hub)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Services.WebPort),
		Handler:           withConcurrencyLimit(maxConcurrent, h.Routes()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// generous write timeout: WebSocket connections hijack out of it
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	log.Info(ctx, "service_started",
		fmt.Sprintf("Web service started on port %d", cfg.Services.WebPort),
		map[string]any{"port": cfg.Services.WebPort, "max_concurrent": maxConcurrent},
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info(ctx, "shutdown_started", "Starting graceful shutdown", nil)
		if err := srv.Shutdown(shCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http_shutdown_failed", "Failed to gracefully shut down HTTP server", err, nil)
		}
	case err := <-errCh:
		if err != nil {
			log.Error(ctx, "http_server_error", "HTTP server terminated with error", err,
				map[string]any{"port": cfg.Services.WebPort})
			return err
		}
	}

	return nil
}

// withConcurrencyLimit wraps an http.Handler with a semaphore-based limiter.
func withConcurrencyLimit(n int, next http.Handler) http.Handler {
	if n <= 0 {
		return next
	}
	sem := make(chan struct{}, n)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	})
}
