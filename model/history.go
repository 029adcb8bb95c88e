package model

const defaultHistorySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history keeping the last size hashes (5 if size <= 0)
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Update adds the grid's current state to history and maintains size
func (h *History) Update(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded states
func (h *History) Len() int { return len(h.hashes) }

// Clear forgets all recorded states
func (h *History) Clear() { h.hashes = nil }

// IsStagnant checks if the grid is stuck in a static state or a cycle of period 2 or 3
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == currentHash {
			return true
		}
	}
	return false
}
