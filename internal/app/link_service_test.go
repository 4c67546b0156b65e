package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/platform"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

// -- Mock repository ---------------------------------------------------------

type mockRepo struct {
	ports.LinkRepository

	mu      sync.Mutex
	links   map[string]*domain.Link
	created []*domain.Link
	listed  []domain.Link
	err     error
}

func newMockRepo() *mockRepo {
	return &mockRepo{links: make(map[string]*domain.Link)}
}

func (m *mockRepo) CreateLink(_ context.Context, link *domain.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	link.ID = "link-1"
	copied := *link
	m.links[link.ID] = &copied
	m.created = append(m.created, &copied)
	return nil
}

func (m *mockRepo) GetLink(_ context.Context, ownerID, linkID string) (*domain.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.links[linkID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if l.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	copied := *l
	return &copied, nil
}

func (m *mockRepo) UpdateLink(_ context.Context, link *domain.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *link
	m.links[link.ID] = &copied
	return nil
}

func (m *mockRepo) UpdateLinkOrder(_ context.Context, _ string, ids []string) (*domain.OrderResult, error) {
	return &domain.OrderResult{Applied: ids[:len(ids)-1], Dropped: ids[len(ids)-1:]}, nil
}

func (m *mockRepo) ListLinks(context.Context, string, ports.LinkFilter) ([]domain.Link, error) {
	return m.listed, nil
}

func (m *mockRepo) CreateFolder(_ context.Context, folder *domain.Folder) error {
	folder.ID = "folder-1"
	return nil
}

// -- Mock resolver -----------------------------------------------------------

type mockResolver struct {
	mu      sync.Mutex
	byURL   map[string]domain.Metadata
	calls   []string
	visited map[string]domain.Metadata
}

func (m *mockResolver) Resolve(_ context.Context, url string, known domain.Metadata) domain.Metadata {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, url)
	if m.visited == nil {
		m.visited = make(map[string]domain.Metadata)
	}
	m.visited[url] = known
	return fill(known, m.byURL[url])
}

const (
	spotifyURL = "https://open.spotify.com/track/3Fuqn0M6R7z8hBvB22K1jR"
	deezerURL  = "https://link.deezer.com/s/30Xz6Yw1b3c7QKp2"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func newService(repo *mockRepo, resolver *mockResolver) *Service {
	return NewService(repo, platform.Default(), resolver, Options{
		Workers:       2,
		ResolveOnSave: true,
		Now:           func() time.Time { return fixedNow },
	}, nil)
}

func ptr[T any](v T) *T { return &v }

// -- Tests -------------------------------------------------------------------

func TestCreateLink_CanonicalizesAndResolvesInOrder(t *testing.T) {
	repo := newMockRepo()
	resolver := &mockResolver{byURL: map[string]domain.Metadata{
		spotifyURL: {Title: "X", Artist: "Y", ArtworkURL: "Z"},
		deezerURL:  {Title: "D"},
	}}
	svc := newService(repo, resolver)

	link, err := svc.CreateLink(context.Background(), "alice", domain.CreateLinkRequest{
		Title: "New single",
		MusicLinks: []domain.MusicLinkInput{
			{Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: "3Fuqn0M6R7z8hBvB22K1jR"},
			{Platform: domain.PlatformDeezer, Type: domain.LinkTypeTrack, URL: deezerURL, Artist: "Mine"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, spotifyURL, link.URL)
	assert.Equal(t, float64(fixedNow.UnixMilli()), link.Order)
	require.Len(t, link.MusicLinks, 2)
	assert.Equal(t, domain.Metadata{Title: "X", Artist: "Y", ArtworkURL: "Z"}, link.MusicLinks[0].Metadata())
	assert.Equal(t, domain.Metadata{Title: "D", Artist: "Mine"}, link.MusicLinks[1].Metadata())
	assert.Equal(t, "Mine", resolver.visited[deezerURL].Artist)
}

func TestCreateLink_RejectsDuplicatePlatform(t *testing.T) {
	svc := newService(newMockRepo(), &mockResolver{})
	_, err := svc.CreateLink(context.Background(), "alice", domain.CreateLinkRequest{
		Title: "t",
		MusicLinks: []domain.MusicLinkInput{
			{Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: "3Fuqn0M6R7z8hBvB22K1jR"},
			{Platform: domain.PlatformSpotify, Type: domain.LinkTypeAlbum, URL: "1DFixLWuPkv3KT3TnV35m3"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePlatform)
}

func TestCreateLink_InvalidMusicURL(t *testing.T) {
	repo := newMockRepo()
	svc := newService(repo, &mockResolver{})
	_, err := svc.CreateLink(context.Background(), "alice", domain.CreateLinkRequest{
		Title: "t",
		MusicLinks: []domain.MusicLinkInput{
			{Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: "https://example.com/x"},
		},
	})

	var formatErr *domain.InvalidLinkFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, domain.PlatformSpotify, formatErr.Platform)
	assert.Empty(t, repo.created)
}

func TestCreateLink_PreviewAndMusicAreExclusive(t *testing.T) {
	svc := newService(newMockRepo(), &mockResolver{})
	_, err := svc.CreateLink(context.Background(), "alice", domain.CreateLinkRequest{
		Title:   "t",
		Preview: domain.MediaCard(domain.MediaPreview{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}),
		MusicLinks: []domain.MusicLinkInput{
			{Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: "3Fuqn0M6R7z8hBvB22K1jR"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrConflictingPreview)
}

func TestCreateLink_URLFromPreview(t *testing.T) {
	svc := newService(newMockRepo(), &mockResolver{})
	link, err := svc.CreateLink(context.Background(), "alice", domain.CreateLinkRequest{
		Title:   "Video",
		URL:     "https://ignored.example",
		Preview: domain.MediaCard(domain.MediaPreview{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", link.URL)
}

func TestCreateLink_Validation(t *testing.T) {
	svc := newService(newMockRepo(), &mockResolver{})
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, "alice", domain.CreateLinkRequest{Title: "  ", URL: "https://a.example"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateLink(ctx, "alice", domain.CreateLinkRequest{Title: "t"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateLink(ctx, "alice", domain.CreateLinkRequest{Title: "t", URL: "https://a.example", ScheduledAt: ptr(int64(-1))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	link, err := svc.CreateLink(ctx, "alice", domain.CreateLinkRequest{
		Title: "Tour", Preview: domain.HighlightCard(domain.Highlight{Title: "Tour"}),
	})
	require.NoError(t, err)
	assert.Empty(t, link.URL)
}

func TestCreateLink_ResolveOnSaveDisabled(t *testing.T) {
	resolver := &mockResolver{}
	svc := NewService(newMockRepo(), platform.Default(), resolver, Options{}, nil)
	_, err := svc.CreateLink(context.Background(), "alice", domain.CreateLinkRequest{
		Title: "t",
		MusicLinks: []domain.MusicLinkInput{
			{Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: "3Fuqn0M6R7z8hBvB22K1jR"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, resolver.calls)
}

func TestUpdateLink_ScheduleAndOwnership(t *testing.T) {
	repo := newMockRepo()
	repo.links["l1"] = &domain.Link{ID: "l1", OwnerID: "alice", Title: "old", URL: "https://a.example", ScheduledAt: ptr(int64(5))}
	svc := newService(repo, &mockResolver{})
	ctx := context.Background()

	kept, err := svc.UpdateLink(ctx, "alice", "l1", domain.UpdateLinkRequest{Title: "new", URL: "https://a.example"})
	require.NoError(t, err)
	require.NotNil(t, kept.ScheduledAt)
	assert.Equal(t, int64(5), *kept.ScheduledAt)

	cleared, err := svc.UpdateLink(ctx, "alice", "l1", domain.UpdateLinkRequest{
		Title: "new", URL: "https://a.example", ScheduledAt: ptr(int64(9)), ClearSchedule: true,
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.ScheduledAt)

	_, err = svc.UpdateLink(ctx, "bob", "l1", domain.UpdateLinkRequest{Title: "mine", URL: "https://a.example"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateLink_ReusesStoredMetadata(t *testing.T) {
	repo := newMockRepo()
	repo.links["l1"] = &domain.Link{
		ID: "l1", OwnerID: "alice", Title: "t", URL: spotifyURL,
		MusicLinks: []domain.MusicLinkItem{{
			Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: spotifyURL,
			MusicTrackTitle: "X", MusicArtistName: "Y", MusicAlbumArtURL: "Z",
		}},
	}
	resolver := &mockResolver{}
	svc := newService(repo, resolver)

	inputs := []domain.MusicLinkInput{{Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: spotifyURL}}
	link, err := svc.UpdateLink(context.Background(), "alice", "l1", domain.UpdateLinkRequest{Title: "t", MusicLinks: &inputs})
	require.NoError(t, err)
	assert.Equal(t, "Y", link.MusicLinks[0].MusicArtistName)
	assert.Empty(t, resolver.calls)
}

func TestUpdateLink_PreviewOnMusicLinkConflicts(t *testing.T) {
	repo := newMockRepo()
	repo.links["l1"] = &domain.Link{
		ID: "l1", OwnerID: "alice", Title: "t", URL: spotifyURL,
		MusicLinks: []domain.MusicLinkItem{{Platform: domain.PlatformSpotify, Type: domain.LinkTypeTrack, URL: spotifyURL}},
	}
	svc := newService(repo, &mockResolver{})

	preview := domain.HighlightCard(domain.Highlight{Title: "h"})
	_, err := svc.UpdateLink(context.Background(), "alice", "l1", domain.UpdateLinkRequest{Title: "t", Preview: &preview})
	assert.ErrorIs(t, err, domain.ErrConflictingPreview)
}

func TestPublicLinks_HidesScheduled(t *testing.T) {
	repo := newMockRepo()
	now := fixedNow.UnixMilli()
	repo.listed = []domain.Link{
		{ID: "a"},
		{ID: "later", ScheduledAt: ptr(now + 1)},
		{ID: "due", ScheduledAt: ptr(now)},
	}
	svc := newService(repo, &mockResolver{})

	public, err := svc.PublicLinks(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "a", public[0].ID)
	assert.Equal(t, "due", public[1].ID)

	views, err := svc.ManageLinks(context.Background(), "alice", ports.LinkFilter{})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.False(t, views[1].Visible)
	assert.Equal(t, now+1, *views[1].PublishesAt)
}

func TestUpdateLinkOrder_PartialIsNotAnError(t *testing.T) {
	svc := newService(newMockRepo(), &mockResolver{})
	result, err := svc.UpdateLinkOrder(context.Background(), "alice", []string{"a", "b", "foreign"})
	require.NoError(t, err)
	assert.True(t, result.Partial())
}

func TestCreateFolder_Validation(t *testing.T) {
	svc := newService(newMockRepo(), &mockResolver{})

	_, err := svc.CreateFolder(context.Background(), "alice", " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	folder, err := svc.CreateFolder(context.Background(), "alice", " Merch ")
	require.NoError(t, err)
	assert.Equal(t, "Merch", folder.Name)
}

func TestResolveParallel_KeepsOrder(t *testing.T) {
	byURL := map[string]domain.Metadata{}
	var items []domain.MusicLinkItem
	for _, u := range []string{"u1", "u2", "u3", "u4", "u5"} {
		byURL[u] = domain.Metadata{Title: u}
		items = append(items, domain.MusicLinkItem{URL: u})
	}
	svc := newService(newMockRepo(), &mockResolver{byURL: byURL})

	out := svc.resolveParallel(context.Background(), items)
	for i, item := range out {
		assert.Equal(t, items[i].URL, item.MusicTrackTitle)
	}
}
