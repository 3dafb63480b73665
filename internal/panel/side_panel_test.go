package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
	"todolist/internal/store"
)

func TestSidePanel_Lifecycle(t *testing.T) {
	rec := &recorder{committed: committedFixture()}
	s := NewSidePanel(rec, 3, nil)

	assert.Equal(t, Closed, s.State())
	assert.Nil(t, s.Panel())
	assert.Equal(t, float64(0), s.Opacity())

	require.True(t, s.Open())
	assert.Equal(t, Open, s.State())
	require.NotNil(t, s.Panel())
	assert.Equal(t, float64(1), s.Opacity())

	// already open
	assert.False(t, s.Open())

	require.True(t, s.RequestClose())
	assert.Equal(t, Closing, s.State())
	assert.False(t, s.RequestClose())

	assert.True(t, s.Tick())
	assert.InDelta(t, 2.0/3.0, s.Opacity(), 1e-9)
	assert.True(t, s.Tick())
	assert.False(t, s.Tick())

	assert.Equal(t, Closed, s.State())
	assert.Nil(t, s.Panel())
	assert.False(t, s.Tick())
}

func TestSidePanel_OpenStartsFreshSession(t *testing.T) {
	rec := &recorder{committed: committedFixture()}
	s := NewSidePanel(rec, 1, nil)

	require.True(t, s.Open())
	first := s.Panel()
	require.NoError(t, first.ToggleImportance(domain.ImportanceHigh))

	// dismissed without apply
	require.True(t, s.BackgroundClick())
	assert.False(t, s.Tick())
	assert.False(t, first.IsOpen())

	require.True(t, s.Open())
	second := s.Panel()
	assert.NotSame(t, first, second)

	pending, ok := second.Pending()
	require.True(t, ok)
	assert.Equal(t, committedFixture(), pending)
	assert.Equal(t, 0, rec.calls)
}

func TestSidePanel_ApplyThenClose(t *testing.T) {
	rec := &recorder{}
	s := NewSidePanel(rec, 2, nil)
	require.True(t, s.Open())

	require.NoError(t, s.Panel().ToggleImportance(domain.ImportanceLow))
	require.NoError(t, s.Panel().Apply(rec))
	require.True(t, s.RequestClose())

	// committed before the fade finishes
	assert.Equal(t, store.Filters{Importance: domain.ImportanceFilter{Low: true}}, rec.committed)

	s.FadeComplete()
	assert.Equal(t, Closed, s.State())
	assert.Equal(t, 1, rec.calls)
}

func TestSidePanel_BackgroundClickWhileClosedIsNoop(t *testing.T) {
	s := NewSidePanel(&recorder{}, 0, nil)

	assert.False(t, s.BackgroundClick())
	assert.Equal(t, Closed, s.State())

	s.FadeComplete()
	assert.Equal(t, Closed, s.State())
}

func TestVisibilityString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "closing", Closing.String())
}
