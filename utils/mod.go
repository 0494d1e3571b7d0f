package utils

// FindIndex returns the position of item in slice, or -1 if it is absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i := range slice {
		if slice[i] == item {
			return i
		}
	}
	return -1
}
