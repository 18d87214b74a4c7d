// Package app provides the application lifecycle management for the
// Touchline backend.
package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/touchline/touchline/api/proto"
	grpcapi "github.com/touchline/touchline/internal/api/grpc"
	httpapi "github.com/touchline/touchline/internal/api/http"
	"github.com/touchline/touchline/internal/config"
	"github.com/touchline/touchline/internal/observability"
	"github.com/touchline/touchline/internal/router"
	"github.com/touchline/touchline/internal/server"
	"github.com/touchline/touchline/internal/storage"
	"github.com/touchline/touchline/internal/store"
)

// statsPruneInterval is how often stale request-stats entries are dropped.
const statsPruneInterval = 5 * time.Minute

// App manages the Touchline service lifecycle.
type App struct {
	cfg *config.Config

	// Shared resources
	store    *store.Store
	storage  storage.ObjectStorage
	stats    *observability.RequestStats
	notifier *router.Notifier
	shutdown *server.ShutdownManager

	// Service components
	apiServer    *http.Server
	customers    *httpapi.CustomersHandler
	grpcServer   *grpc.Server
	grpcListener net.Listener

	// Lifecycle
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a new App with the given configuration.
func New(cfg *config.Config) (*App, error) {
	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	return &App{
		cfg: cfg,
	}, nil
}

// Start initializes shared resources and starts the API servers.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return fmt.Errorf("app is already running")
	}
	a.running = true
	a.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	if err := a.initSharedResources(ctx); err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize shared resources: %w", err)
	}

	if err := a.startAPIService(); err != nil {
		a.cleanup()
		return fmt.Errorf("failed to start API service: %w", err)
	}

	if a.cfg.GRPC.Enabled {
		if err := a.startGRPCService(); err != nil {
			a.cleanup()
			return fmt.Errorf("failed to start gRPC service: %w", err)
		}
	}

	a.watchIngest(ctx)
	a.startStatsPruner(ctx)

	log.Printf("Touchline started")
	return nil
}

// initSharedResources opens the event store, object storage, and the
// shutdown manager.
func (a *App) initSharedResources(ctx context.Context) error {
	var err error

	a.store, err = store.Open(a.cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open event store: %w", err)
	}
	log.Printf("Event store opened: %s", a.cfg.DatabasePath())

	switch a.cfg.Storage.Type {
	case "local":
		a.storage, err = storage.NewLocalStorage(a.cfg.Storage.Path)
	case "s3":
		a.storage, err = storage.NewS3Storage(ctx, a.cfg.Storage.S3.Bucket, storage.S3Config{
			Region:   a.cfg.Storage.S3.Region,
			Endpoint: a.cfg.Storage.S3.Endpoint,
		})
	default:
		return fmt.Errorf("unsupported storage type: %s", a.cfg.Storage.Type)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Printf("Storage initialized: type=%s", a.cfg.Storage.Type)
	if a.cfg.Storage.Type == "s3" {
		log.Printf("S3 config: bucket=%s, region=%s, endpoint=%s",
			a.cfg.Storage.S3.Bucket, a.cfg.Storage.S3.Region, a.cfg.Storage.S3.Endpoint)
	}

	a.stats = observability.NewRequestStats(time.Hour)
	a.notifier = router.NewNotifier(16)
	a.shutdown = server.NewShutdownManager(server.ShutdownConfig{})
	a.shutdown.RegisterCloser(a.store)

	return nil
}

// Handler builds the API mux with the full middleware chain applied.
func (a *App) Handler() http.Handler {
	middleware := httpapi.ChainMiddleware(
		server.ShutdownMiddleware(a.shutdown),
		httpapi.RecoveryMiddleware,
		httpapi.RequestIDMiddleware,
		httpapi.CorrelationIDMiddleware,
		httpapi.ContentTypeMiddleware,
		httpapi.StatsMiddleware(a.stats),
	)

	a.customers = httpapi.NewCustomersHandler(a.store)

	mux := http.NewServeMux()
	mux.Handle("/api/customers", middleware(a.customers))
	mux.Handle("/api/events", middleware(httpapi.NewEventsHandler(a.store)))
	mux.Handle("/api/events/counts", middleware(httpapi.NewCountsHandler(a.store)))
	mux.Handle("/api/events/first-touchpoints", middleware(httpapi.NewFirstTouchpointsHandler(a.store)))
	mux.Handle("/api/events/random", middleware(httpapi.NewRandomEventsHandler(a.store)))
	mux.Handle("/api/people/random", middleware(httpapi.NewRandomPersonsHandler(a.store)))
	mux.Handle("/api/stats", middleware(httpapi.NewStatsHandler(a.stats)))
	mux.Handle("/health", httpapi.HealthHandler())

	return mux
}

// watchIngest reloads the cached customer view whenever in-process
// ingest lands new events. The goroutine exits when the app context is
// cancelled or shutdown begins.
func (a *App) watchIngest(ctx context.Context) {
	customers := a.customers
	ch := a.notifier.SubscribeAutoID()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-a.shutdown.ShutdownCh():
				return
			case notif, ok := <-ch:
				if !ok {
					return
				}
				if notif.Type == router.EventsIngested {
					customers.Invalidate()
				}
			}
		}
	}()
}

// startAPIService starts the dashboard HTTP API server. The server is
// wrapped so the shutdown manager drains and closes it.
func (a *App) startAPIService() error {
	a.apiServer = &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
		IdleTimeout:  a.cfg.HTTP.IdleTimeout,
	}
	graceful := server.NewGracefulHTTPServer(a.apiServer, a.shutdown)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		log.Printf("API server listening on %s", a.cfg.HTTP.Addr)
		if err := graceful.ListenAndServe(); err != nil {
			log.Printf("API server error: %v", err)
		}
	}()

	return nil
}

// startGRPCService starts the bulk-ingest gRPC server.
func (a *App) startGRPCService() error {
	a.grpcServer = grpc.NewServer()
	proto.RegisterIngestServiceServer(a.grpcServer, grpcapi.NewIngestServer(a.store, a.notifier))

	var err error
	a.grpcListener, err = net.Listen("tcp", a.cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC address: %w", err)
	}

	a.shutdown.RegisterCloser(server.CloserFunc(func() error {
		a.grpcServer.GracefulStop()
		return nil
	}))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		log.Printf("gRPC server listening on %s", a.cfg.GRPC.Addr)
		if err := a.grpcServer.Serve(a.grpcListener); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	return nil
}

// startStatsPruner drops stale request-stats entries on an interval.
func (a *App) startStatsPruner(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ticker := time.NewTicker(statsPruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-a.shutdown.ShutdownCh():
				return
			case <-ticker.C:
				a.stats.Prune()
			}
		}
	}()
}

// Stop gracefully stops all services and releases resources.
func (a *App) Stop(ctx context.Context) error {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return nil
	}
	a.running = false
	a.mu.Unlock()

	log.Printf("Initiating graceful shutdown...")

	if a.cancel != nil {
		a.cancel()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// The manager drains in-flight requests and runs the registered
	// closers in LIFO order: gRPC server, HTTP server, then the store.
	err := a.shutdown.Shutdown(shutdownCtx, "stop requested")
	if err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Printf("Shutdown timeout, some goroutines may not have finished")
	}

	log.Printf("Touchline stopped")
	return err
}

// cleanup releases resources when startup fails partway. Once Start
// has returned, the shutdown manager owns resource cleanup.
func (a *App) cleanup() {
	if a.store != nil {
		a.store.Close()
	}
}

// WaitForShutdown blocks until a shutdown signal is received.
func (a *App) WaitForShutdown(ctx context.Context) error {
	return a.shutdown.ListenForSignals(ctx)
}
