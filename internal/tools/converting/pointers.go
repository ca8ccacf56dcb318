package converting

// PointerToValue returns a pointer to a copy of v.
func PointerToValue[T any](v T) *T {
	return &v
}

// ValueOr dereferences x, falling back when x is nil.
func ValueOr[T any](x *T, fallback T) T {
	if x == nil {
		return fallback
	}

	return *x
}
