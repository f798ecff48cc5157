package server

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/familytree/internal/config"
	"github.com/matzehuels/familytree/pkg/observability"
)

func TestBuildDefaults(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	s, err := Build(context.Background(), config.Default(), log.NewWithOptions(io.Discard, log.Options{}))
	require.NoError(t, err)
	defer s.Close(context.Background())

	assert.NotNil(t, s.metrics)
	assert.Same(t, s.metrics, observability.Pipeline())

	ts := &testServer{Server: s, handler: s.Handler()}
	w := ts.do(http.MethodPost, "/api/family-tree", coupleBody)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuildFileCache(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	cfg := config.Default()
	cfg.Metrics = false
	cfg.Cache.Backend = config.CacheFile
	cfg.Cache.Dir = t.TempDir()

	s, err := Build(context.Background(), cfg, log.NewWithOptions(io.Discard, log.Options{}))
	require.NoError(t, err)
	defer s.Close(context.Background())

	assert.Nil(t, s.metrics)
	ts := &testServer{Server: s, handler: s.Handler()}
	ts.do(http.MethodPost, "/api/family-tree", coupleBody)
	w := ts.do(http.MethodPost, "/api/family-tree", coupleBody)
	assert.Equal(t, "hit", w.Header().Get(HeaderCache))

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/metrics", "").Code)
}

func TestBuildRedisUnreachable(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = config.CacheRedis
	cfg.Cache.RedisAddr = "127.0.0.1:1"

	_, err := Build(context.Background(), cfg, log.NewWithOptions(io.Discard, log.Options{}))
	assert.Error(t, err)
}
