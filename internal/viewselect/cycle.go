package viewselect

// Next returns the mode after m in tab order, wrapping around.
// An unknown mode moves to the first tab.
func Next(m ViewMode) ViewMode {
	idx := indexOf(m)
	return modes[(idx+1)%len(modes)]
}

// Prev returns the mode before m in tab order, wrapping around.
func Prev(m ViewMode) ViewMode {
	idx := indexOf(m)
	prev := idx - 1
	if prev < 0 {
		prev = len(modes) - 1
	}
	return modes[prev]
}

func indexOf(m ViewMode) int {
	for i, o := range modes {
		if o == m {
			return i
		}
	}
	return -1
}
