// Package ordering keeps the client-side view of a user's link order: an
// owner-keyed cache, the move reducer applied optimistically on drop, and the
// drag session that persists a reorder and reconciles with the store.
package ordering

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
)

// ErrIndexOutOfRange is returned when a move references a position outside
// the scoped list.
var ErrIndexOutOfRange = errors.New("index out of range")

// Scope selects the links a drag session operates on: the top level, or
// the members of one folder.
type Scope struct {
	FolderID *string
}

func TopLevel() Scope { return Scope{} }

func InFolder(folderID string) Scope { return Scope{FolderID: &folderID} }

// Contains reports whether the link belongs to the scope.
func (s Scope) Contains(link domain.Link) bool {
	return link.InFolder(s.FolderID)
}

func (s Scope) String() string {
	if s.FolderID == nil {
		return "top"
	}
	return *s.FolderID
}

// Move returns a copy of ids with the element at from removed and reinserted
// at to.
func Move(ids []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(ids) || to < 0 || to >= len(ids) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "move %d -> %d in %d items", from, to, len(ids))
	}
	out := make([]string, 0, len(ids))
	moved := ids[from]
	for i, id := range ids {
		if i != from {
			out = append(out, id)
		}
	}
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out, nil
}

// Cache holds each owner's links in display order. It is safe for
// concurrent use.
type Cache struct {
	mu    sync.RWMutex
	links map[string][]domain.Link
}

func NewCache() *Cache {
	return &Cache{links: make(map[string][]domain.Link)}
}

// Replace installs an authoritative listing for owner, discarding whatever
// optimistic state was cached. Ties sort the way the store lists them: by
// creation time, then id.
func (c *Cache) Replace(owner string, links []domain.Link) {
	sorted := make([]domain.Link, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	c.mu.Lock()
	c.links[owner] = sorted
	c.mu.Unlock()
}

// Links returns a copy of owner's cached links in display order.
func (c *Cache) Links(owner string) []domain.Link {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Link, len(c.links[owner]))
	copy(out, c.links[owner])
	return out
}

// IDs returns the ids of owner's links inside scope, in display order.
func (c *Cache) IDs(owner string, scope Scope) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var ids []string
	for _, l := range c.links[owner] {
		if scope.Contains(l) {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// ApplyMove moves the scoped item at from to to and returns the scoped ids
// in their new order. Scope members are permuted among the slots they
// already occupy, so links outside the scope keep their positions. Members
// get the keys 0..n-1 the store will assign.
func (c *Cache) ApplyMove(owner string, scope Scope, from, to int) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	links := c.links[owner]
	var slots []int
	var ids []string
	byID := make(map[string]domain.Link)
	for i, l := range links {
		if scope.Contains(l) {
			slots = append(slots, i)
			ids = append(ids, l.ID)
			byID[l.ID] = l
		}
	}

	moved, err := Move(ids, from, to)
	if err != nil {
		return nil, err
	}

	next := make([]domain.Link, len(links))
	copy(next, links)
	for i, id := range moved {
		l := byID[id]
		l.Order = float64(i)
		next[slots[i]] = l
	}
	c.links[owner] = next
	return moved, nil
}
