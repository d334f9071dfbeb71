package router

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/asconalumni/alumni-server/internal/api/grpc/health"
	"github.com/asconalumni/alumni-server/internal/testutil"
)

type pinger struct{}

func (pinger) Ping(context.Context) error { return nil }

type recorder struct{}

func (recorder) SetDatabaseUp(bool) {}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	lg := testutil.MakeNoopLogger()
	checker := health.NewChecker(pinger{}, recorder{}, time.Second, lg)
	require.True(t, checker.Check(context.Background()))

	s := New(checker, lg).Register()
	require.NotNil(t, s)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = s.Serve(ln) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient(ln.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: health.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
