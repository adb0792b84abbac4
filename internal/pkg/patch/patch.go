package patch

// Clamp caps v at hi; a zero or negative v yields fallback.
func Clamp(v, fallback, hi int) int {
	if v <= 0 {
		return fallback
	}
	if v > hi {
		return hi
	}
	return v
}
