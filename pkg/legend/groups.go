package legend

// Groups splits marks into runs of adjacent repositioned marks. A mark that
// never moved closes the open run and starts the next one. The result holds
// indexes into marks.
func Groups(marks []PlacedMark) [][]int {
	var (
		groups  [][]int
		current []int
	)
	for i, m := range marks {
		if len(current) > 0 && m.Repositions == 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, i)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// AssignGroups sets GroupPosition and GroupSize on every mark in place.
// Positions are offsets from the run middle, floor(len/2), so an even run
// has one more negative position than positive.
func AssignGroups(marks []PlacedMark) {
	for _, group := range Groups(marks) {
		middle := len(group) / 2
		for pos, idx := range group {
			marks[idx].GroupPosition = pos - middle
			marks[idx].GroupSize = len(group)
		}
	}
}
