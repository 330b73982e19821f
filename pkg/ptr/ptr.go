package ptr

// New returns a pointer to a copy of v, for optional bounds and fields set
// from literals.
func New[T any](v T) *T { return &v }
