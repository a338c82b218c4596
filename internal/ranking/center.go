package ranking

// Center reorders a sequence sorted highest-to-lowest into a symmetric,
// center-out sequence for chart display: element 0 is appended on the
// right, element 1 inserted on the left, element 2 on the right, and so
// on. The largest values end up clustered near the middle, descending
// toward both edges; [a, b, c] becomes [b, a, c].
//
// Apply it to the tag-value sequence and the count sequence separately;
// the transformation is positional, so the two stay index-aligned.
func Center[E any](s []E) []E {
	centered := make([]E, 0, len(s))
	right := true
	for _, e := range s {
		if right {
			centered = append(centered, e)
		} else {
			centered = append([]E{e}, centered...)
		}
		right = !right
	}
	return centered
}
