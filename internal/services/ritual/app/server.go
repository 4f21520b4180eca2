// Package server wires the ritual service into a gRPC server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	ritualpb "github.com/withmystar/ritual/api/gen/go/ritual"
	grpcmeta "github.com/withmystar/ritual/internal/api/grpc/metadata"
	"github.com/withmystar/ritual/internal/api/grpc/interceptors"
	"github.com/withmystar/ritual/internal/platform/config"
	"github.com/withmystar/ritual/internal/platform/logging"
	"github.com/withmystar/ritual/internal/platform/timeouts"
	ritualservice "github.com/withmystar/ritual/internal/services/ritual/api/grpc/ritual"
	ritualmetrics "github.com/withmystar/ritual/internal/services/ritual/metrics"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// HealthServiceName is the health check key reported for the ritual service.
const HealthServiceName = "ritual.RitualService"

// serverEnv is read with config.EnvPrefix, so MAX_CONNECTIONS is
// RITUAL_MAX_CONNECTIONS in the environment.
type serverEnv struct {
	MaxConnections int    `env:"MAX_CONNECTIONS" envDefault:"0"`
	MetricsAddr    string `env:"METRICS_ADDR"`
}

func loadServerEnv() (serverEnv, error) {
	var cfg serverEnv
	if err := config.ParseEnvWithPrefix(&cfg, config.EnvPrefix); err != nil {
		return serverEnv{}, err
	}
	if cfg.MaxConnections < 0 {
		return serverEnv{}, fmt.Errorf("RITUAL_MAX_CONNECTIONS must not be negative, got %d", cfg.MaxConnections)
	}
	cfg.MetricsAddr = strings.TrimSpace(cfg.MetricsAddr)
	return cfg, nil
}

// Server hosts the ritual gRPC API and its optional metrics endpoint.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	service         *ritualservice.Service
	metrics         *ritualmetrics.Metrics
	metricsListener net.Listener
	metricsServer   *http.Server
	logger          *slog.Logger
}

// NewWithAddr parses and binds addr and builds a server around one fresh
// ritual service. Nothing is served until Serve is called.
func NewWithAddr(addr string, logger *slog.Logger) (*Server, error) {
	logger = logging.OrDiscard(logger)
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return nil, fmt.Errorf("parse listen address %q: %w", addr, err)
	}
	env, err := loadServerEnv()
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	if env.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, env.MaxConnections)
	}

	metrics := ritualmetrics.New()
	var metricsListener net.Listener
	var metricsServer *http.Server
	if env.MetricsAddr != "" {
		metricsListener, err = net.Listen("tcp", env.MetricsAddr)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("listen on metrics address %s: %w", env.MetricsAddr, err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer = &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			interceptors.MetricsInterceptor(metrics),
			interceptors.RecoveryInterceptor(logger),
		),
	)
	service := ritualservice.NewService(logger, metrics)
	if err := metrics.TrackCount(service.RitualCount); err != nil {
		_ = listener.Close()
		if metricsListener != nil {
			_ = metricsListener.Close()
		}
		return nil, fmt.Errorf("register ritual count metric: %w", err)
	}
	healthServer := health.NewServer()
	ritualpb.RegisterRitualServiceServer(grpcServer, service)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(HealthServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:        listener,
		grpcServer:      grpcServer,
		health:          healthServer,
		service:         service,
		metrics:         metrics,
		metricsListener: metricsListener,
		metricsServer:   metricsServer,
		logger:          logger,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
func (s *Server) MetricsAddr() string {
	if s == nil || s.metricsListener == nil {
		return ""
	}
	return s.metricsListener.Addr().String()
}

// Service returns the ritual service registered on the server.
func (s *Server) Service() *ritualservice.Service {
	if s == nil {
		return nil
	}
	return s.service
}

// Run creates and serves a ritual server until context cancellation.
func Run(ctx context.Context, addr string, logger *slog.Logger) error {
	server, err := NewWithAddr(addr, logger)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the accept loop until the context ends or serving fails.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	metricsErr := make(chan error, 1)
	if s.metricsServer != nil {
		s.logger.Info("ritual metrics listening", "addr", s.metricsListener.Addr().String())
		go func() {
			metricsErr <- s.metricsServer.Serve(s.metricsListener)
		}()
	}

	s.logger.Info("RitualService listening", "addr", s.listener.Addr().String())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down ritual server")
		s.shutdown()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-metricsErr:
		s.shutdown()
		<-serveErr
		return fmt.Errorf("serve metrics: %w", err)
	}
}

// shutdown drains in-flight calls, forcing a stop after timeouts.Shutdown.
func (s *Server) shutdown() {
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Warn("shutdown metrics server", "error", err)
		}
		cancel()
	}

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeouts.Shutdown):
		s.logger.Warn("graceful stop timed out, forcing stop")
		s.grpcServer.Stop()
		<-stopped
	}
}

// Close releases ritual server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.metricsServer != nil {
		_ = s.metricsServer.Close()
	}
	if s.metricsListener != nil {
		_ = s.metricsListener.Close()
	}
}
