package plot

import (
	"slices"
	"strconv"
	"strings"
)

// Tooltip formats the hover text for the given point indices: the indices,
// then the card names, e.g. "0 3, Card A Card D". Empty when nothing is hovered.
func Tooltip(indices []int, names []string) string {
	if len(indices) == 0 {
		return ""
	}

	idx := make([]string, len(indices))
	labels := make([]string, len(indices))
	for i, n := range indices {
		idx[i] = strconv.Itoa(n)
		if n >= 0 && n < len(names) {
			labels[i] = names[n]
		}
	}
	return strings.Join(idx, " ") + ", " + strings.Join(labels, " ")
}

// Hover tracks which points the cursor is over. Update reports whether the
// tooltip needs to be redrawn.
type Hover struct {
	names   []string
	indices []int
	text    string
}

func NewHover(names []string) *Hover {
	return &Hover{names: names}
}

// Update records the points now under the cursor. It returns true only when
// the tooltip appears, disappears, or changes content.
func (h *Hover) Update(indices []int) bool {
	if slices.Equal(h.indices, indices) {
		return false
	}
	h.indices = slices.Clone(indices)
	h.text = Tooltip(h.indices, h.names)
	return true
}

// Clear hides the tooltip; it reports whether it was visible.
func (h *Hover) Clear() bool {
	return h.Update(nil)
}

func (h *Hover) Visible() bool { return len(h.indices) > 0 }

func (h *Hover) Text() string { return h.text }

// Anchor returns the index of the point the tooltip points at.
func (h *Hover) Anchor() (int, bool) {
	if len(h.indices) == 0 {
		return 0, false
	}
	return h.indices[0], true
}
