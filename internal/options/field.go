package options

// Field is an optional value: either unset, or set to a value of T.
type Field[T any] struct {
	value T
	set   bool
}

// Of returns a Field set to v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Get returns the value and whether it is set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// IsSet reports whether a value has been assigned.
func (f Field[T]) IsSet() bool {
	return f.set
}

// Value returns the value, or the zero value of T when unset.
func (f Field[T]) Value() T {
	return f.value
}

// Set assigns v.
func (f *Field[T]) Set(v T) {
	f.value = v
	f.set = true
}

// Reset clears the field so it is asked again.
func (f *Field[T]) Reset() {
	var zero T
	f.value = zero
	f.set = false
}
