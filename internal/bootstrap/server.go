package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/seatbook/config"
	"github.com/Domenick1991/seatbook/internal/logger"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 5 * time.Second

// Server runs the gRPC health service and the HTTP API side by side.
// /healthz on the HTTP side is answered by the gRPC health service through
// grpc-gateway; everything else goes to the API router.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
	grpcLis    net.Listener
	httpLis    net.Listener
	conn       *grpc.ClientConn
	log        *logger.Logger
}

// Run starts both servers and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, router http.Handler, log *logger.Logger) error {
	s, err := NewServer(cfg.GRPC.Address, cfg.HTTP.Address, router, log)
	if err != nil {
		return err
	}
	return s.Serve(ctx)
}

func NewServer(grpcAddr, httpAddr string, router http.Handler, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}

	grpcLis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC %s: %w", grpcAddr, err)
	}
	httpLis, err := net.Listen("tcp", httpAddr)
	if err != nil {
		grpcLis.Close()
		return nil, fmt.Errorf("listen HTTP %s: %w", httpAddr, err)
	}

	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSrv)

	conn, err := grpc.NewClient(dialTarget(grpcLis.Addr()), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		grpcLis.Close()
		httpLis.Close()
		return nil, fmt.Errorf("dial gRPC health: %w", err)
	}

	gateway := runtime.NewServeMux(runtime.WithHealthzEndpoint(grpc_health_v1.NewHealthClient(conn)))

	handler := http.NewServeMux()
	handler.Handle("/healthz", gateway)
	handler.Handle("/", router)

	return &Server{
		grpcServer: grpcSrv,
		health:     healthSrv,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		grpcLis: grpcLis,
		httpLis: httpLis,
		conn:    conn,
		log:     log,
	}, nil
}

func (s *Server) GRPCAddr() string { return s.grpcLis.Addr().String() }
func (s *Server) HTTPAddr() string { return s.httpLis.Addr().String() }

func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() { errCh <- s.grpcServer.Serve(s.grpcLis) }()
	go func() { errCh <- s.httpServer.Serve(s.httpLis) }()

	s.log.Info("servers started", "grpc", s.GRPCAddr(), "http", s.HTTPAddr())

	var serveErr error
	select {
	case serveErr = <-errCh:
		if errors.Is(serveErr, http.ErrServerClosed) {
			serveErr = nil
		}
	case <-ctx.Done():
	}

	return errors.Join(serveErr, s.shutdown())
}

func (s *Server) shutdown() error {
	s.log.Info("shutting down servers")
	s.health.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	s.grpcServer.GracefulStop()
	if err := s.conn.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close gRPC client: %w", err))
	}
	return errors.Join(errs...)
}

// dialTarget turns a listener address such as [::]:9090 into something a
// client can dial.
func dialTarget(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
