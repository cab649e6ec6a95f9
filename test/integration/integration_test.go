package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/reel/internal/domain/gallery"
	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/domain/session"
	"github.com/rpggio/reel/internal/sqlite"
	"github.com/rpggio/reel/internal/testserver"
	"github.com/rpggio/reel/internal/transport"
	"github.com/rpggio/reel/seed"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestIntegration_SeedRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)

	f, err := seed.Default()
	require.NoError(t, err)
	want, err := f.Catalog()
	require.NoError(t, err)

	svc := project.NewService(sqlite.NewProjectRepository(db), nil)
	_, err = svc.LoadOrImport(ctx, f.Projects)
	require.NoError(t, err)

	got, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want.Len(), got.Len())
	require.Equal(t, want.ListCategories(), got.ListCategories())
	require.Equal(t, want.ListYears(), got.ListYears())
	require.Equal(t, want.FeaturedCards(), got.FeaturedCards())
	require.Equal(t, want.GalleryCards(), got.GalleryCards())
	for _, p := range want.ListAll() {
		wantDetail, _ := want.DetailByID(p.ID)
		gotDetail, ok := got.DetailByID(p.ID)
		require.True(t, ok)
		require.Equal(t, wantDetail, gotDetail)
	}

	// A second LoadOrImport reads back instead of importing again
	again, err := svc.LoadOrImport(ctx, []project.Project{{ID: "ignored"}})
	require.NoError(t, err)
	require.Equal(t, want.Len(), again.Len())
}

func TestIntegration_StoredCatalogDrivesGallery(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)

	f, err := seed.Default()
	require.NoError(t, err)
	svc := project.NewService(sqlite.NewProjectRepository(db), nil)
	_, err = svc.Import(ctx, f.Projects)
	require.NoError(t, err)
	catalog, err := svc.Load(ctx)
	require.NoError(t, err)

	sessions := session.NewService(catalog, session.Config{CarouselInterval: time.Hour}, nil, nil)
	t.Cleanup(sessions.CloseAll)

	sess, err := sessions.Open(ctx)
	require.NoError(t, err)

	documentary := "Documentary"
	visible := sess.Gallery.ApplyCategory(&documentary)
	require.Equal(t, gallery.Filter(catalog, gallery.FilterState{Category: &documentary}), visible)
	for _, p := range visible {
		require.Equal(t, documentary, p.Category)
	}

	slide, ok := sess.CurrentSlide()
	require.True(t, ok)
	require.True(t, slide.IsFeatured)
}

func doJSON(t *testing.T, ts *testserver.TestServer, method, path, sessionID string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(transport.SessionHeader, sessionID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestIntegration_HTTPViewerSession(t *testing.T) {
	ts := testserver.New(t)

	var opened transport.SessionView
	resp := doJSON(t, ts, http.MethodPost, "/api/sessions", "", nil, &opened)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := resp.Header.Get(transport.SessionHeader)
	require.Equal(t, opened.Session.SessionID, id)
	require.Equal(t, ts.Catalog.Len(), opened.Gallery.Count)
	require.True(t, opened.Carousel.AutoPlaying)

	var view transport.GalleryView
	doJSON(t, ts, http.MethodPut, "/api/gallery/search", id, map[string]any{"query": "film"}, &view)
	stateless := struct {
		Projects []project.GalleryCard `json:"projects"`
	}{}
	doJSON(t, ts, http.MethodGet, "/api/projects?q=film", "", nil, &stateless)
	require.Equal(t, stateless.Projects, view.Projects)

	var carousel transport.CarouselView
	doJSON(t, ts, http.MethodPost, "/api/carousel/next", id, nil, &carousel)
	require.False(t, carousel.AutoPlaying)
	require.Equal(t, 1, carousel.Index)

	resp = doJSON(t, ts, http.MethodDelete, "/api/sessions", id, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, 0, ts.Sessions.Count())
}

func TestIntegration_IdleSessionsSwept(t *testing.T) {
	ts := testserver.New(t, testserver.WithSessionConfig(session.Config{
		IdleTTL:          time.Millisecond,
		CarouselInterval: time.Hour,
	}))

	resp := doJSON(t, ts, http.MethodPost, "/api/sessions", "", nil, nil)
	id := resp.Header.Get(transport.SessionHeader)

	time.Sleep(5 * time.Millisecond)
	require.Equal(t, 1, ts.Sessions.Sweep(time.Now()))

	resp = doJSON(t, ts, http.MethodGet, "/api/gallery", id, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIntegration_MCPOverHTTP(t *testing.T) {
	ts := testserver.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.Server.URL + "/mcp"}, nil)
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "list_projects",
		Arguments: map[string]any{"query": "film"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out struct {
		Projects []project.GalleryCard `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(*sdkmcp.TextContent).Text), &out))

	want := project.NewGalleryCards(gallery.Filter(ts.Catalog, gallery.FilterState{SearchQuery: "film"}))
	require.Equal(t, want, out.Projects)
}
