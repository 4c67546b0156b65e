package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
	"github.com/jpp0ca/LinkBio-API/internal/visibility"
)

// Canonicalizer builds and checks canonical music URLs.
type Canonicalizer interface {
	Canonicalize(platform domain.Platform, t domain.LinkType, input string) (string, error)
}

// Options tunes the service.
type Options struct {
	// Workers bounds concurrent metadata lookups on save.
	Workers int
	// ResolveOnSave fills blank music-link metadata before storing.
	ResolveOnSave bool
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Service implements ports.LinkService. Music links are canonicalized and
// enriched with a worker pool before they reach the repository.
type Service struct {
	repo     ports.LinkRepository
	canon    Canonicalizer
	resolver ports.MetadataResolver
	workers  int
	resolve  bool
	now      func() time.Time
	logger   *zap.SugaredLogger
}

// NewService creates the link service.
func NewService(
	repo ports.LinkRepository,
	canon Canonicalizer,
	resolver ports.MetadataResolver,
	opts Options,
	logger *zap.SugaredLogger,
) *Service {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		repo:     repo,
		canon:    canon,
		resolver: resolver,
		workers:  opts.Workers,
		resolve:  opts.ResolveOnSave,
		now:      opts.Now,
		logger:   logger,
	}
}

var _ ports.LinkService = (*Service)(nil)

// -- Editing helpers ---------------------------------------------------------

func (s *Service) Canonicalize(_ context.Context, req domain.CanonicalizeRequest) (string, error) {
	return s.canon.Canonicalize(req.Platform, req.Type, req.Input)
}

func (s *Service) ResolveMetadata(ctx context.Context, req domain.MetadataRequest) domain.Metadata {
	known := domain.Metadata{Title: req.Title, Artist: req.Artist, ArtworkURL: req.ArtworkURL}
	return s.resolver.Resolve(ctx, strings.TrimSpace(req.URL), known)
}

// -- Links -------------------------------------------------------------------

func (s *Service) CreateLink(ctx context.Context, ownerID string, req domain.CreateLinkRequest) (*domain.Link, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.Wrap(domain.ErrInvalidInput, "title is required")
	}
	if len(req.MusicLinks) > 0 && !req.Preview.IsNone() {
		return nil, domain.ErrConflictingPreview
	}
	if err := checkSchedule(req.ScheduledAt); err != nil {
		return nil, err
	}

	items, err := s.buildMusicLinks(ctx, req.MusicLinks, nil)
	if err != nil {
		return nil, err
	}
	url, err := primaryURL(items, req.Preview, req.URL)
	if err != nil {
		return nil, err
	}

	now := s.now()
	link := &domain.Link{
		OwnerID:     ownerID,
		Title:       title,
		URL:         url,
		Order:       float64(visibility.Millis(now)),
		FolderID:    req.FolderID,
		MusicLinks:  items,
		Preview:     req.Preview,
		ScheduledAt: req.ScheduledAt,
		CreatedAt:   now,
	}
	if err := s.repo.CreateLink(ctx, link); err != nil {
		return nil, errors.Wrap(err, "create link")
	}

	s.logger.Infow("link created", "owner", ownerID, "link", link.ID, "musicLinks", len(items))
	return link, nil
}

// UpdateLink applies an edit. Music links and preview are only replaced when
// the request carries them; the schedule follows visibility.Schedule.
func (s *Service) UpdateLink(ctx context.Context, ownerID, linkID string, req domain.UpdateLinkRequest) (*domain.Link, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.Wrap(domain.ErrInvalidInput, "title is required")
	}
	if err := checkSchedule(req.ScheduledAt); err != nil {
		return nil, err
	}

	link, err := s.repo.GetLink(ctx, ownerID, linkID)
	if err != nil {
		return nil, err
	}

	if req.MusicLinks != nil {
		items, err := s.buildMusicLinks(ctx, *req.MusicLinks, link.MusicLinks)
		if err != nil {
			return nil, err
		}
		link.MusicLinks = items
	}
	if req.Preview != nil {
		link.Preview = *req.Preview
	}
	if len(link.MusicLinks) > 0 && !link.Preview.IsNone() {
		return nil, domain.ErrConflictingPreview
	}

	url, err := primaryURL(link.MusicLinks, link.Preview, req.URL)
	if err != nil {
		return nil, err
	}
	link.Title = title
	link.URL = url
	link.ScheduledAt = visibility.Schedule(link.ScheduledAt, req.ScheduledAt, req.ClearSchedule)

	if err := s.repo.UpdateLink(ctx, link); err != nil {
		return nil, errors.Wrap(err, "update link")
	}

	s.logger.Infow("link updated", "owner", ownerID, "link", linkID)
	return link, nil
}

// UpdateLinkFolder moves a link into a folder, or to the top level when
// folderID is nil. The order key is not touched.
func (s *Service) UpdateLinkFolder(ctx context.Context, ownerID, linkID string, folderID *string) error {
	if err := s.repo.UpdateLinkFolder(ctx, ownerID, linkID, folderID); err != nil {
		return err
	}
	s.logger.Infow("link moved", "owner", ownerID, "link", linkID, "folder", folderID)
	return nil
}

func (s *Service) UpdateLinkOrder(ctx context.Context, ownerID string, ids []string) (*domain.OrderResult, error) {
	result, err := s.repo.UpdateLinkOrder(ctx, ownerID, ids)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("links reordered", "owner", ownerID, "applied", len(result.Applied), "dropped", len(result.Dropped))
	return result, nil
}

func (s *Service) DeleteLink(ctx context.Context, ownerID, linkID string) error {
	if err := s.repo.DeleteLink(ctx, ownerID, linkID); err != nil {
		return err
	}
	s.logger.Infow("link deleted", "owner", ownerID, "link", linkID)
	return nil
}

func (s *Service) ManageLinks(ctx context.Context, ownerID string, filter ports.LinkFilter) ([]domain.LinkView, error) {
	links, err := s.repo.ListLinks(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	return visibility.Annotate(links, s.now()), nil
}

func (s *Service) PublicLinks(ctx context.Context, ownerID string) ([]domain.Link, error) {
	links, err := s.repo.ListLinks(ctx, ownerID, ports.LinkFilter{})
	if err != nil {
		return nil, err
	}
	return visibility.Filter(links, s.now()), nil
}

// -- Folders -----------------------------------------------------------------

func (s *Service) CreateFolder(ctx context.Context, ownerID, name string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domain.ErrInvalidInput, "folder name is required")
	}
	folder := &domain.Folder{OwnerID: ownerID, Name: name}
	if err := s.repo.CreateFolder(ctx, folder); err != nil {
		return nil, errors.Wrap(err, "create folder")
	}
	s.logger.Infow("folder created", "owner", ownerID, "folder", folder.ID)
	return folder, nil
}

func (s *Service) UpdateFolder(ctx context.Context, ownerID, folderID, name string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domain.ErrInvalidInput, "folder name is required")
	}
	return s.repo.UpdateFolder(ctx, ownerID, folderID, name)
}

func (s *Service) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	if err := s.repo.DeleteFolder(ctx, ownerID, folderID); err != nil {
		return err
	}
	s.logger.Infow("folder deleted", "owner", ownerID, "folder", folderID)
	return nil
}

func (s *Service) ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error) {
	return s.repo.ListFolders(ctx, ownerID)
}

// -- Music links -------------------------------------------------------------

// buildMusicLinks canonicalizes the inputs, rejects a second entry for a
// platform and, when enabled, resolves blank metadata. Metadata already
// stored for an unchanged URL in previous is reused.
func (s *Service) buildMusicLinks(ctx context.Context, inputs []domain.MusicLinkInput, previous []domain.MusicLinkItem) ([]domain.MusicLinkItem, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	stored := make(map[string]domain.Metadata, len(previous))
	for _, p := range previous {
		stored[p.URL] = p.Metadata()
	}

	seen := make(map[domain.Platform]bool, len(inputs))
	items := make([]domain.MusicLinkItem, 0, len(inputs))
	for _, in := range inputs {
		if seen[in.Platform] {
			return nil, errors.Wrapf(domain.ErrDuplicatePlatform, "%s", in.Platform)
		}
		seen[in.Platform] = true

		canonical, err := s.canon.Canonicalize(in.Platform, in.Type, in.URL)
		if err != nil {
			return nil, err
		}

		md := domain.Metadata{Title: in.Title, Artist: in.Artist, ArtworkURL: in.ArtworkURL}
		if prev, ok := stored[canonical]; ok {
			md = fill(md, prev)
		}
		items = append(items, domain.MusicLinkItem{Platform: in.Platform, Type: in.Type, URL: canonical}.WithMetadata(md))
	}

	if s.resolve {
		items = s.resolveParallel(ctx, items)
	}
	return items, nil
}

// resolveParallel uses a worker pool to resolve metadata for several music
// links concurrently. Results keep the input order.
func (s *Service) resolveParallel(ctx context.Context, items []domain.MusicLinkItem) []domain.MusicLinkItem {
	type job struct {
		index int
		item  domain.MusicLinkItem
	}

	jobCh := make(chan job, len(items))
	resultCh := make(chan job, len(items))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobCh {
				if j.item.Metadata().Complete() || ctx.Err() != nil {
					resultCh <- j
					continue
				}

				md := s.resolver.Resolve(ctx, j.item.URL, j.item.Metadata())
				if md.Empty() {
					s.logger.Debugw("no metadata", "worker", workerID, "url", j.item.URL)
				}
				resultCh <- job{index: j.index, item: j.item.WithMetadata(md)}
			}
		}(i)
	}

	for i, item := range items {
		jobCh <- job{index: i, item: item}
	}
	close(jobCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]domain.MusicLinkItem, len(items))
	for j := range resultCh {
		out[j.index] = j.item
	}
	return out
}

// primaryURL is the URL a link opens: the first music link, else the media
// or playlist preview, else what the user typed.
func primaryURL(items []domain.MusicLinkItem, preview domain.Preview, typed string) (string, error) {
	if len(items) > 0 {
		return items[0].URL, nil
	}
	if u := preview.URL(); u != "" {
		return u, nil
	}
	typed = strings.TrimSpace(typed)
	if typed == "" && preview.Kind() != domain.PreviewHighlight {
		return "", errors.Wrap(domain.ErrInvalidInput, "url is required")
	}
	return typed, nil
}

func checkSchedule(at *int64) error {
	if at != nil && *at < 0 {
		return errors.Wrap(domain.ErrInvalidInput, "scheduledAt must be epoch milliseconds")
	}
	return nil
}

func fill(base, extra domain.Metadata) domain.Metadata {
	if base.Title == "" {
		base.Title = extra.Title
	}
	if base.Artist == "" {
		base.Artist = extra.Artist
	}
	if base.ArtworkURL == "" {
		base.ArtworkURL = extra.ArtworkURL
	}
	return base
}
