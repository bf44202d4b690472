package cardfolio

// Source is a candidate value that may be absent.
type Source[T any] func() (T, bool)

// Fallback returns the value of the first source that resolves, or def when
// none does. Sources are tried in order and the remaining ones are not
// evaluated once one resolves.
func Fallback[T any](def T, sources ...Source[T]) T {
	for _, s := range sources {
		if v, ok := s(); ok {
			return v
		}
	}
	return def
}

// Coalesce returns the first non zero value, or the zero value if all are.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
