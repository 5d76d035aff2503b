package strkit

// Apply runs value through transforms in order and returns the final result.
// Useful for one-off chains of the Copy-variant transformations.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable transformation pipeline from transforms.
// Preferred over repeated Apply calls when the same chain is used in more
// than one place.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
