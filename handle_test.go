package ark_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ark "github.com/rnkv/ark-go"
)

func TestNew_RoundTrip(t *testing.T) {
	h := ark.New(7)
	defer h.Drop()

	require.Equal(t, 7, *h.Value())
	require.EqualValues(t, 1, h.Count())
}

func TestClone_AliasesOneValue(t *testing.T) {
	h := ark.New([]int{1})
	g := h.Clone()
	defer h.Drop()
	defer g.Drop()

	require.EqualValues(t, 2, h.Count())
	require.EqualValues(t, 2, g.Count())

	// Same goroutine, so mutating through one handle is race-free; the
	// sibling must observe it because no copy of the payload ever exists.
	*h.Value() = append(*h.Value(), 2)
	assert.Equal(t, []int{1, 2}, *g.Value())
}

func TestDrop_LastHandleDisposes(t *testing.T) {
	var disposed []string
	h := ark.NewWithDispose("payload", func(v string) {
		disposed = append(disposed, v)
	})

	h.Drop()
	require.Equal(t, []string{"payload"}, disposed)
}

func TestDrop_NoPrematureReclamation(t *testing.T) {
	disposals := 0
	h := ark.NewWithDispose(99, func(int) { disposals++ })
	g := h.Clone()
	k := h.Clone()

	g.Drop()
	k.Drop()
	require.Zero(t, disposals, "value disposed while a handle is still live")
	require.Equal(t, 99, *h.Value())
	require.EqualValues(t, 1, h.Count())

	h.Drop()
	require.Equal(t, 1, disposals)
}

func TestDrop_ConsumesHandle(t *testing.T) {
	h := ark.New("x")
	h.Drop()

	require.Panics(t, func() { h.Value() })
	require.Panics(t, func() { h.Clone() })
	require.Panics(t, func() { h.Drop() })
	require.Panics(t, func() { h.TryGetMut() })
	require.Panics(t, func() { h.Count() })
}

func TestTryGetMut_AbsentWhileShared(t *testing.T) {
	h := ark.New(0)
	g := h.Clone()
	k := h.Clone()
	defer h.Drop()

	// Absence is stable while siblings are live, however often we ask.
	for i := 0; i < 3; i++ {
		_, ok := h.TryGetMut()
		require.False(t, ok)
	}

	k.Drop()
	_, ok := h.TryGetMut()
	require.False(t, ok, "two handles left, access must stay shared")

	g.Drop()
	for i := 0; i < 3; i++ {
		p, ok := h.TryGetMut()
		require.True(t, ok)
		*p++
	}
	require.Equal(t, 3, *h.Value())
}

func TestTryGetMut_SeesSiblingWritesAfterDrop(t *testing.T) {
	a := ark.New([]int(nil))
	b := a.Clone()

	go func() {
		*b.Value() = append(*b.Value(), 42)
		b.Drop()
	}()

	// The counter is the only synchronization: once the sibling's drop is
	// observed, its append must be visible through the exclusive pointer.
	var got []int
	require.Eventually(t, func() bool {
		p, ok := a.TryGetMut()
		if ok {
			got = *p
		}
		return ok
	}, 5*time.Second, time.Millisecond)

	require.Equal(t, []int{42}, got)
	a.Drop()
}
