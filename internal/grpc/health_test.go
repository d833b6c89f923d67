package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
)

func serve(t *testing.T, srv *Server) *grpc.ClientConn {
	t.Helper()
	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func check(t *testing.T, conn *grpc.ClientConn, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		t.Fatalf("Health check for %q failed: %v", service, err)
	}
	return resp.Status
}

func TestNewGRPCServer_HealthyProbe(t *testing.T) {
	conn := serve(t, NewGRPCServer(func(context.Context) error { return nil }))

	if got := check(t, conn, ""); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING overall, got %v", got)
	}
	if got := check(t, conn, CatalogService); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING for catalog, got %v", got)
	}
}

func TestNewGRPCServer_NoProbe(t *testing.T) {
	conn := serve(t, NewGRPCServer(nil))

	if got := check(t, conn, ""); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING overall, got %v", got)
	}
	if got := check(t, conn, CatalogService); got != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING for catalog, got %v", got)
	}
}

func TestServer_CheckFollowsProbe(t *testing.T) {
	var down atomic.Bool
	srv := NewGRPCServer(func(context.Context) error {
		if down.Load() {
			return errors.New("connection refused")
		}
		return nil
	})
	conn := serve(t, srv)

	down.Store(true)
	if got := srv.Check(context.Background()); got != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("Check() = %v, want NOT_SERVING", got)
	}
	if got := check(t, conn, CatalogService); got != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING after probe failure, got %v", got)
	}

	down.Store(false)
	srv.Check(context.Background())
	if got := check(t, conn, CatalogService); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING after recovery, got %v", got)
	}
}

func TestNewGRPCServer_ReflectionEnabled(t *testing.T) {
	conn := serve(t, NewGRPCServer(nil))

	stream, err := grpc_reflection_v1.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	if err != nil {
		t.Fatalf("Failed to create reflection stream: %v", err)
	}
	err = stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_ListServices{ListServices: ""},
	})
	if err != nil {
		t.Fatalf("Failed to send reflection request: %v", err)
	}
	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("Failed to receive reflection response: %v", err)
	}

	found := false
	for _, svc := range resp.GetListServicesResponse().GetService() {
		if svc.Name == "grpc.health.v1.Health" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected the health service to be listed")
	}
}

func TestNewGRPCServer_CalledMultipleTimes(t *testing.T) {
	// sync.Once keeps the metrics from registering twice
	srv1 := NewGRPCServer(nil)
	srv2 := NewGRPCServer(nil)
	if srv1 == nil || srv2 == nil {
		t.Fatal("Expected non-nil servers from multiple calls")
	}
}
