package metadata

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

// DefaultTimeout bounds each provider call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Detector finds the platform a URL belongs to.
type Detector interface {
	Detect(url string) (domain.Platform, bool)
}

// Chains returns the fallback chain for a platform.
type Chains interface {
	Chain(platform domain.Platform) []ports.MetadataProvider
}

// Resolver implements ports.MetadataResolver by dispatching a URL to its
// platform chain and running the chain field by field.
type Resolver struct {
	detector Detector
	chains   Chains
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

// NewResolver creates a resolver. A non-positive timeout uses DefaultTimeout.
func NewResolver(detector Detector, chains Chains, timeout time.Duration, logger *zap.SugaredLogger) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resolver{
		detector: detector,
		chains:   chains,
		timeout:  timeout,
		logger:   logger,
	}
}

// Resolve fills the blank fields of known from the URL's provider chain.
// Populated fields of known are never overwritten and never fetched.
func (r *Resolver) Resolve(ctx context.Context, url string, known domain.Metadata) domain.Metadata {
	if known.Complete() {
		return known
	}
	platform, _ := r.detector.Detect(url)
	return r.run(ctx, r.chains.Chain(platform), url, known)
}

// run executes providers in order. A provider is only called while one of
// the fields it provides is still blank, and it can only fill blank fields.
func (r *Resolver) run(ctx context.Context, chain []ports.MetadataProvider, url string, md domain.Metadata) domain.Metadata {
	for _, p := range chain {
		if ctx.Err() != nil {
			break
		}
		wanted := missing(md) & p.Provides()
		if wanted == 0 {
			continue
		}

		got, err := r.fetch(ctx, p, url)
		if err != nil {
			r.logger.Debugw("metadata provider failed", "provider", p.Name(), "url", url, "error", err)
			continue
		}
		md = merge(md, got, wanted)
	}
	return md
}

// fetch isolates one provider call: its own deadline, and a panic is
// reported as an error.
func (r *Resolver) fetch(ctx context.Context, p ports.MetadataProvider, url string) (md domain.Metadata, err error) {
	stepCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			md, err = domain.Metadata{}, errors.Errorf("provider panic: %v", rec)
		}
	}()
	return p.Fetch(stepCtx, url)
}

func missing(md domain.Metadata) ports.Field {
	var f ports.Field
	if md.Title == "" {
		f |= ports.FieldTitle
	}
	if md.Artist == "" {
		f |= ports.FieldArtist
	}
	if md.ArtworkURL == "" {
		f |= ports.FieldArtwork
	}
	return f
}

func merge(md, got domain.Metadata, fields ports.Field) domain.Metadata {
	if fields&ports.FieldTitle != 0 && got.Title != "" {
		md.Title = got.Title
	}
	if fields&ports.FieldArtist != 0 && got.Artist != "" {
		md.Artist = got.Artist
	}
	if fields&ports.FieldArtwork != 0 && got.ArtworkURL != "" {
		md.ArtworkURL = got.ArtworkURL
	}
	return md
}
