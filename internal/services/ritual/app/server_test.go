package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	ritualpb "github.com/withmystar/ritual/api/gen/go/ritual"
	grpcmeta "github.com/withmystar/ritual/internal/api/grpc/metadata"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// startServer serves srv until the test ends and returns a connected client.
func startServer(t *testing.T, srv *Server) *grpc.ClientConn {
	t.Helper()

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Errorf("serve: %v", serveErr)
			}
		case <-time.After(10 * time.Second):
			t.Error("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial ritual server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Errorf("close gRPC connection: %v", closeErr)
		}
	})
	return conn
}

func TestServer_PerformAndSyncRoundTrip(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")

	srv, err := NewWithAddr("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	client := ritualpb.NewRitualServiceClient(startServer(t, srv))

	resp, err := client.PerformRitual(context.Background(), &ritualpb.RitualRequest{Name: "fire"})
	if err != nil {
		t.Fatalf("perform ritual: %v", err)
	}
	if !resp.GetSuccess() || resp.GetMessage() != "Successfully performed ritual: fire." {
		t.Fatalf("unexpected response: %v", resp)
	}

	syncResp, err := client.SyncTraits(context.Background(), &ritualpb.SyncTraitsRequest{Traits: []string{"brave"}})
	if err != nil {
		t.Fatalf("sync traits: %v", err)
	}
	if !syncResp.GetSuccess() || syncResp.GetMessage() != "Successfully synchronized traits." {
		t.Fatalf("unexpected sync response: %v", syncResp)
	}

	if got := srv.Service().RitualCount(); got != 1 {
		t.Fatalf("ritual count = %d, want 1", got)
	}
}

func TestServer_ConcurrentCallsCountExactly(t *testing.T) {
	const calls = 50
	t.Setenv("RITUAL_METRICS_ADDR", "")

	srv, err := NewWithAddr("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	client := ritualpb.NewRitualServiceClient(startServer(t, srv))

	var wg sync.WaitGroup
	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.PerformRitual(context.Background(), &ritualpb.RitualRequest{Name: "tide"}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("perform ritual: %v", err)
	}
	if got := srv.Service().RitualCount(); got != calls {
		t.Fatalf("ritual count = %d, want %d", got, calls)
	}
}

func TestServer_InvalidArgumentOverTheWire(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")

	srv, err := NewWithAddr("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	client := ritualpb.NewRitualServiceClient(startServer(t, srv))

	_, err = client.PerformRitual(context.Background(), &ritualpb.RitualRequest{Name: strings.Repeat("x", 2048)})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
	if got := srv.Service().RitualCount(); got != 0 {
		t.Fatalf("ritual count = %d, want 0", got)
	}
}

func TestServer_HealthAndRequestID(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")

	srv, err := NewWithAddr("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	conn := startServer(t, srv)

	healthResp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{
		Service: HealthServiceName,
	})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if healthResp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Fatalf("health status = %v", healthResp.GetStatus())
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), grpcmeta.RequestIDHeader, "req-from-caller")
	var header metadata.MD
	if _, err := ritualpb.NewRitualServiceClient(conn).SyncTraits(ctx, &ritualpb.SyncTraitsRequest{}, grpc.Header(&header)); err != nil {
		t.Fatalf("sync traits: %v", err)
	}
	if got := header.Get(grpcmeta.RequestIDHeader); len(got) != 1 || got[0] != "req-from-caller" {
		t.Fatalf("request id header = %v", got)
	}
}

func TestServer_MetricsEndpoint(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "127.0.0.1:0")

	srv, err := NewWithAddr("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if srv.MetricsAddr() == "" {
		t.Fatal("expected metrics listener")
	}
	client := ritualpb.NewRitualServiceClient(startServer(t, srv))

	for i := 0; i < 5; i++ {
		if _, err := client.PerformRitual(context.Background(), &ritualpb.RitualRequest{Name: "fire"}); err != nil {
			t.Fatalf("perform ritual: %v", err)
		}
	}

	resp, err := http.Get("http://" + srv.MetricsAddr() + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	for _, want := range []string{
		"ritual_performed_total 5",
		"ritual_milestones_total 1",
		"ritual_count 5",
		`ritual_grpc_requests_total{code="OK",method="/ritual.RitualService/PerformRitual"} 5`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, body)
		}
	}
}

func TestNewWithAddr_AlreadyBound(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")

	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer occupied.Close()

	srv, err := NewWithAddr(occupied.Addr().String(), nil)
	if err == nil {
		srv.Close()
		t.Fatal("expected bind error")
	}
	if srv != nil {
		t.Fatal("expected nil server on bind failure")
	}
	if !strings.Contains(err.Error(), "listen on "+occupied.Addr().String()) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewWithAddr_InvalidAddress(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")

	for _, addr := range []string{"no-port", "127.0.0.1:notaport", "[::1:50051"} {
		t.Run(addr, func(t *testing.T) {
			_, err := NewWithAddr(addr, nil)
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !strings.Contains(err.Error(), "parse listen address") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewWithAddr_RejectsNegativeConnectionCap(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")
	t.Setenv("RITUAL_MAX_CONNECTIONS", "-1")

	if _, err := NewWithAddr("127.0.0.1:0", nil); err == nil {
		t.Fatal("expected error for negative connection cap")
	}
}

func TestNewWithAddr_MetricsBindFailureReleasesListener(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer occupied.Close()
	t.Setenv("RITUAL_METRICS_ADDR", occupied.Addr().String())

	probe, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := probe.Addr().String()
	_ = probe.Close()

	if _, err := NewWithAddr(addr, nil); err == nil {
		t.Fatal("expected metrics bind error")
	}

	// The gRPC listener must have been released.
	again, err := net.Listen("tcp", addr)
	if err != nil {
		t.Fatalf("expected gRPC address to be free again: %v", err)
	}
	_ = again.Close()
}

func TestServer_ConnectionCap(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")
	t.Setenv("RITUAL_MAX_CONNECTIONS", "4")

	srv, err := NewWithAddr("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	client := ritualpb.NewRitualServiceClient(startServer(t, srv))
	if _, err := client.PerformRitual(context.Background(), &ritualpb.RitualRequest{Name: "fire"}); err != nil {
		t.Fatalf("perform ritual: %v", err)
	}
}

func TestServe_NilServer(t *testing.T) {
	var srv *Server
	if err := srv.Serve(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	if srv.Addr() != "" || srv.MetricsAddr() != "" || srv.Service() != nil {
		t.Fatal("expected zero values from nil server")
	}
	srv.Close()
}

func TestRun_ReturnsStartupError(t *testing.T) {
	t.Setenv("RITUAL_METRICS_ADDR", "")

	err := Run(context.Background(), "no-port", nil)
	if err == nil {
		t.Fatal("expected startup error")
	}
	var addrErr *net.AddrError
	if !errors.As(err, &addrErr) {
		t.Fatalf("expected wrapped *net.AddrError, got %T: %v", err, err)
	}
}
