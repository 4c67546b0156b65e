package adapters

import (
	"sync"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

// ProviderRegistry maps platforms to their ordered metadata fallback chains.
// URLs of unregistered platforms use the fallback chain. It is safe for
// concurrent use.
type ProviderRegistry struct {
	mu       sync.RWMutex
	chains   map[domain.Platform][]ports.MetadataProvider
	fallback []ports.MetadataProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		chains: make(map[domain.Platform][]ports.MetadataProvider),
	}
}

// Register appends providers to the platform's chain, in call order.
func (r *ProviderRegistry) Register(platform domain.Platform, providers ...ports.MetadataProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[platform] = append(r.chains[platform], providers...)
}

// SetFallback replaces the chain used for platforms without their own.
func (r *ProviderRegistry) SetFallback(providers ...ports.MetadataProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = append([]ports.MetadataProvider(nil), providers...)
}

// Chain returns a copy of the chain for the platform, or the fallback chain.
func (r *ProviderRegistry) Chain(platform domain.Platform) []ports.MetadataProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain, ok := r.chains[platform]
	if !ok || len(chain) == 0 {
		chain = r.fallback
	}
	return append([]ports.MetadataProvider(nil), chain...)
}

// Available returns the platforms that have a dedicated chain.
func (r *ProviderRegistry) Available() []domain.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]domain.Platform, 0, len(r.chains))
	for name := range r.chains {
		names = append(names, name)
	}
	return names
}
