package filename

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose bundles transforms into one reusable function.
// Nil transforms are skipped so optional stages can be passed unconditionally.
func Compose[T any](transforms ...func(T) T) func(T) T {
	stages := make([]func(T) T, 0, len(transforms))
	for _, t := range transforms {
		if t != nil {
			stages = append(stages, t)
		}
	}

	return func(value T) T {
		return Apply(value, stages...)
	}
}
