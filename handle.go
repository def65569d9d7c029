package ark

// Handle is a shared-ownership reference to a value of type T.
//
// Handles are cheap to clone and safe to hand to other goroutines; all
// handles cloned from one original alias the same cell and the same value.
// A single Handle value must not be used from two goroutines at once; give
// each goroutine its own clone.
//
// The zero Handle is not valid; obtain handles from [New], [NewWithDispose],
// or [Handle.Clone].
type Handle[T any] struct {
	cell      *cell[T]
	droppedAt dropSite
}

// New allocates a cell owning value and returns the first handle to it.
func New[T any](value T) *Handle[T] {
	return &Handle[T]{cell: newCell(value, nil)}
}

// NewWithDispose is like [New] but registers a hook run when the last handle
// is dropped.
//
// The hook runs exactly once, on the goroutine that dropped the last handle,
// after the count has reached zero. Use it to release resources held by the
// value (close files, stop tickers) or to observe reclamation in tests.
func NewWithDispose[T any](value T, dispose func(T)) *Handle[T] {
	return &Handle[T]{cell: newCell(value, dispose)}
}

// Clone registers a new owner and returns its handle.
//
// The original handle remains valid. Cloning never reads, copies, or moves
// the payload; it increments the shared count and nothing else.
func (h *Handle[T]) Clone() *Handle[T] {
	h.mustLive()
	h.cell.count.Add(1)
	return &Handle[T]{cell: h.cell}
}

// Drop gives up this handle's ownership, consuming the handle.
//
// If this was the last handle, the value is disposed of on the calling
// goroutine. Any later use of the dropped handle panics.
func (h *Handle[T]) Drop() {
	h.mustLive()
	c := h.cell
	h.cell = nil
	h.droppedAt.record()

	// Exactly one goroutine observes the decrement to zero. Atomic ops on
	// the counter are sequentially consistent, so every write made through a
	// sibling handle before its drop is visible here before reclaim runs.
	if c.count.Add(-1) == 0 {
		c.reclaim()
	}
}

// Value returns shared access to the payload.
//
// The returned pointer is valid for as long as the handle is. Treat it as
// read-only while other handles exist, unless T synchronizes internally;
// for exclusive mutation use [Handle.TryGetMut].
func (h *Handle[T]) Value() *T {
	h.mustLive()
	return &h.cell.value
}

// TryGetMut returns mutable access to the payload, or false if other
// handles still alias the cell.
//
// It succeeds only while the count is exactly 1. The count check is what
// makes the access exclusive: the caller already has this handle to itself,
// and a count of 1 proves there is no sibling left to race with. Writes
// made through siblings before they dropped are visible through the
// returned pointer.
func (h *Handle[T]) TryGetMut() (*T, bool) {
	h.mustLive()

	if h.cell.count.Load() != 1 {
		return nil, false
	}

	return &h.cell.value, true
}

// Count returns the number of live handles sharing this handle's cell.
//
// The value is a snapshot; other goroutines may clone or drop siblings
// immediately after it is taken. A count of 1 is stable only in the sense
// [Handle.TryGetMut] relies on: nobody but the caller can raise it.
func (h *Handle[T]) Count() int64 {
	h.mustLive()
	return h.cell.count.Load()
}

func (h *Handle[T]) mustLive() {
	if h.cell == nil {
		panic("ark: use of dropped handle" + h.droppedAt.String())
	}
}
