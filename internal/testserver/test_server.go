package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/domain/session"
	"github.com/rpggio/reel/internal/mcp"
	"github.com/rpggio/reel/internal/metrics"
	"github.com/rpggio/reel/internal/sqlite"
	"github.com/rpggio/reel/internal/transport"
	"github.com/rpggio/reel/seed"
	"github.com/stretchr/testify/require"
)

// TestServer is the full HTTP stack backed by an in-memory database that
// was populated from the bundled seed.
type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Catalog  *project.Catalog
	Sessions *session.Service
	Metrics  *metrics.Metrics
}

// Option adjusts the session configuration.
type Option func(*session.Config)

// WithSessionConfig replaces the session configuration.
func WithSessionConfig(cfg session.Config) Option {
	return func(c *session.Config) { *c = cfg }
}

func New(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	f, err := seed.Default()
	require.NoError(t, err)

	projectSvc := project.NewService(sqlite.NewProjectRepository(db), nil)
	catalog, err := projectSvc.LoadOrImport(context.Background(), f.Projects)
	require.NoError(t, err)

	sessionCfg := session.Config{CarouselInterval: time.Hour}
	for _, opt := range opts {
		opt(&sessionCfg)
	}

	m := metrics.New()
	sessions := session.NewService(catalog, sessionCfg, m, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Catalog:       catalog,
		Profile:       f.Profile,
		TransportMode: "http",
	})

	server := httptest.NewServer(transport.NewServer(transport.Config{
		Catalog:  catalog,
		Profile:  f.Profile,
		Sessions: sessions,
		Metrics:  m,
		MCP:      mcp.NewHTTPHandler(mcpServer),
	}))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Catalog:  catalog,
		Sessions: sessions,
		Metrics:  m,
	}

	t.Cleanup(func() {
		server.Close()
		sessions.CloseAll()
		_ = db.Close()
	})

	return ts
}
