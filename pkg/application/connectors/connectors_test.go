package connectors_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"neetup/pkg/application/connectors"
)

func TestRedis(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)

	r := &connectors.Redis{
		Address:  mr.Addr(),
		PoolSize: 2,
	}

	rq.Error(r.Ping(ctx), "ping before connecting")

	client := r.Client(ctx)
	rq.Same(client, r.Client(ctx))
	rq.NoError(r.Ping(ctx))

	mr.Close()
	rq.Error(r.Ping(ctx))

	r.Close(ctx)
}

func TestPostgresNotConnected(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	p := &connectors.Postgres{DSN: "postgres://localhost:5432/neetup"}

	rq.Error(p.Ping(ctx))
	p.Close(ctx)
}
