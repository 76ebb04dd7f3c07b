// Package server initializes and runs the mock authentication server.
// It wires the in-memory backend into the HTTP JSON API and the gRPC health
// endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/codirector/internal/auth"
	"github.com/dmitrijs2005/codirector/internal/client/mockapi"
	"github.com/dmitrijs2005/codirector/internal/logging"
	"github.com/dmitrijs2005/codirector/internal/server/config"
	"github.com/dmitrijs2005/codirector/internal/server/rest"

	gs "github.com/dmitrijs2005/codirector/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	backend *mockapi.Backend
}

// NewApp builds the backend with a JWT issuer when a secret is configured,
// falling back to the fixed mock token otherwise.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	var issuer auth.Issuer = auth.NewStaticIssuer()
	if c.TokenSecret != "" {
		issuer = auth.NewJWTIssuer([]byte(c.TokenSecret), c.TokenTTL)
	}

	b, err := mockapi.New(
		mockapi.WithDelay(c.SimulatedDelay),
		mockapi.WithIssuer(issuer),
		mockapi.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("backend init error: %w", err)
	}

	return &App{config: c, logger: logger, backend: b}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run listens on the configured addresses and serves until ctx is cancelled
// or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	httpLn, err := net.Listen("tcp", app.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("http listen error: %w", err)
	}

	var grpcLn net.Listener
	if app.config.GRPCAddr != "" {
		grpcLn, err = net.Listen("tcp", app.config.GRPCAddr)
		if err != nil {
			_ = httpLn.Close()
			return fmt.Errorf("grpc listen error: %w", err)
		}
	}

	return app.serve(ctx, httpLn, grpcLn)
}

// serve runs both servers on the given listeners. A nil grpcLn skips the
// health endpoint. The first server error cancels the other.
func (app *App) serve(ctx context.Context, httpLn, grpcLn net.Listener) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}

	srv := &http.Server{
		Handler:           rest.NewRouter(app.backend, app.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.logger.Info(ctx, "Starting HTTP server", "address", httpLn.Addr().String())
		if err := srv.Serve(httpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fail(fmt.Errorf("http server: %w", err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "http shutdown failed", "error", err)
		}
	}()

	if grpcLn != nil {
		hs := gs.NewHealthServer(grpcLn.Addr().String(), app.logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := hs.Serve(ctx, grpcLn); err != nil {
				fail(fmt.Errorf("grpc server: %w", err))
			}
		}()
	}

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return firstErr
}
