package visibility

import (
	"time"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
)

// Millis converts t to the Unix epoch milliseconds used by scheduledAt.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// IsVisible reports whether a link may be shown to visitors at now. Links
// without a schedule, or scheduled at or before now, are visible.
func IsVisible(link domain.Link, now time.Time) bool {
	return link.ScheduledAt == nil || *link.ScheduledAt <= Millis(now)
}

// Filter returns the visible links, keeping their relative order.
func Filter(links []domain.Link, now time.Time) []domain.Link {
	out := make([]domain.Link, 0, len(links))
	for _, l := range links {
		if IsVisible(l, now) {
			out = append(out, l)
		}
	}
	return out
}

// Annotate builds the owner's view of links: all of them, in order, marked
// with whether visitors can see them yet.
func Annotate(links []domain.Link, now time.Time) []domain.LinkView {
	out := make([]domain.LinkView, len(links))
	for i, l := range links {
		out[i] = domain.LinkView{Link: l, Visible: IsVisible(l, now)}
		if !out[i].Visible {
			at := *l.ScheduledAt
			out[i].PublishesAt = &at
		}
	}
	return out
}

// Schedule computes the stored scheduledAt after an edit. clear forces the
// link public immediately; otherwise a nil next means "unchanged".
func Schedule(current, next *int64, clear bool) *int64 {
	if clear {
		return nil
	}
	if next != nil {
		v := *next
		return &v
	}
	return current
}
