package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	handler "github.com/jpp0ca/LinkBio-API/internal/adapters/http"
	"github.com/jpp0ca/LinkBio-API/internal/app"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ordering"
	"github.com/jpp0ca/LinkBio-API/internal/platform"
	"github.com/jpp0ca/LinkBio-API/internal/store"
)

type noResolver struct{}

func (noResolver) Resolve(_ context.Context, _ string, known domain.Metadata) domain.Metadata {
	return known
}

// newServer runs the real API on an in-memory database.
func newServer(t *testing.T) (*httptest.Server, *app.Service) {
	t.Helper()
	logger := zap.NewNop().Sugar()
	db, err := store.Open(store.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared", logger)
	require.NoError(t, err)

	svc := app.NewService(store.New(db, logger), platform.Default(), noResolver{}, app.Options{}, logger)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewHandler(svc, platform.Default()).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return srv, svc
}

func createLinks(t *testing.T, svc *app.Service, owner string, titles ...string) []string {
	t.Helper()
	var ids []string
	for _, title := range titles {
		link, err := svc.CreateLink(context.Background(), owner, domain.CreateLinkRequest{
			Title: title, URL: "https://example.com/" + title,
		})
		require.NoError(t, err)
		ids = append(ids, link.ID)
		time.Sleep(2 * time.Millisecond)
	}
	return ids
}

func TestEngineAgainstServer_MoveLastToFirst(t *testing.T) {
	srv, svc := newServer(t)
	ids := createLinks(t, svc, "alice", "a", "b", "c")

	client := New(srv.URL, "alice", 5*time.Second)
	engine := ordering.NewEngine("alice", ordering.NewCache(), client, client, nil)
	require.NoError(t, engine.Reconcile(context.Background()))
	assert.Equal(t, ids, engine.IDs(ordering.TopLevel()))

	require.NoError(t, engine.BeginDrag(ordering.TopLevel()))
	result, err := engine.Drop(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.False(t, result.Partial())

	links, err := client.ListLinks(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, ids[2], links[0].ID)
	assert.Equal(t, float64(0), links[0].Order)
	assert.Equal(t, ids[0], links[1].ID)
	assert.Equal(t, float64(1), links[1].Order)
	assert.Equal(t, ids[1], links[2].ID)
	assert.Equal(t, float64(2), links[2].Order)
}

func TestUpdateLinkOrder_ForeignIDDropped(t *testing.T) {
	srv, svc := newServer(t)
	own := createLinks(t, svc, "alice", "a", "b")
	foreign := createLinks(t, svc, "bob", "x")

	client := New(srv.URL, "alice", 5*time.Second)
	result, err := client.UpdateLinkOrder(context.Background(), []string{own[1], foreign[0], own[0]})
	require.NoError(t, err)
	assert.Equal(t, []string{own[1], own[0]}, result.Applied)
	assert.Equal(t, foreign, result.Dropped)
}

func TestMoveLink_AndScopedListing(t *testing.T) {
	srv, svc := newServer(t)
	ids := createLinks(t, svc, "alice", "a", "b")
	folder, err := svc.CreateFolder(context.Background(), "alice", "Tour")
	require.NoError(t, err)

	client := New(srv.URL, "alice", 5*time.Second)
	require.NoError(t, client.MoveLink(context.Background(), ids[1], &folder.ID))

	inFolder, err := client.ListScoped(context.Background(), &folder.ID)
	require.NoError(t, err)
	require.Len(t, inFolder, 1)
	assert.Equal(t, ids[1], inFolder[0].ID)

	top, err := client.ListScoped(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, ids[0], top[0].ID)
}

func TestMoveLink_ForeignLinkIsUnauthorized(t *testing.T) {
	srv, svc := newServer(t)
	foreign := createLinks(t, svc, "bob", "x")

	client := New(srv.URL, "alice", 5*time.Second)
	err := client.MoveLink(context.Background(), foreign[0], nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "alice", time.Second).ListLinks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
