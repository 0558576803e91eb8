package scoring

// Delta computes the signed rank change between two captures. Lower rank is a
// better position, so a positive delta means the keyword moved up. When either
// capture is missing the change is defined as 0.
func Delta(prev, curr *int) int {
	if prev == nil || curr == nil {
		return 0
	}
	return *prev - *curr
}
