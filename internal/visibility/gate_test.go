package visibility

import (
	"testing"
	"time"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(v int64) *int64 { return &v }

func TestIsVisible_Boundary(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	assert.True(t, IsVisible(domain.Link{}, now))
	assert.True(t, IsVisible(domain.Link{ScheduledAt: ms(Millis(now) - 1)}, now))
	assert.True(t, IsVisible(domain.Link{ScheduledAt: ms(Millis(now))}, now))
	assert.False(t, IsVisible(domain.Link{ScheduledAt: ms(Millis(now) + 1)}, now))
}

func TestFilter_PreservesOrder(t *testing.T) {
	now := time.UnixMilli(1_000)
	links := []domain.Link{
		{ID: "a"},
		{ID: "b", ScheduledAt: ms(2_000)},
		{ID: "c", ScheduledAt: ms(500)},
		{ID: "d", ScheduledAt: ms(1_001)},
		{ID: "e"},
	}

	got := Filter(links, now)
	ids := make([]string, 0, len(got))
	for _, l := range got {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"a", "c", "e"}, ids)
}

func TestAnnotate_ShowsEverything(t *testing.T) {
	now := time.UnixMilli(1_000)
	views := Annotate([]domain.Link{{ID: "a"}, {ID: "b", ScheduledAt: ms(5_000)}}, now)

	require.Len(t, views, 2)
	assert.True(t, views[0].Visible)
	assert.Nil(t, views[0].PublishesAt)
	assert.False(t, views[1].Visible)
	require.NotNil(t, views[1].PublishesAt)
	assert.Equal(t, int64(5_000), *views[1].PublishesAt)
}

func TestSchedule(t *testing.T) {
	current := ms(9_000)

	assert.Equal(t, current, Schedule(current, nil, false), "no change requested")
	assert.Equal(t, int64(7_000), *Schedule(current, ms(7_000), false))
	assert.Nil(t, Schedule(current, nil, true), "explicit clear")
	assert.Nil(t, Schedule(current, ms(7_000), true), "clear wins over a new value")
	assert.Nil(t, Schedule(nil, nil, false))
}
