package ui

// Navigator handles cursor movement and viewport management for the
// series list.
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	maxIndex       int
}

// NewNavigator creates a navigator with a default viewport height, which
// is replaced on the first window size message.
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20, maxIndex: -1}
}

// Cursor returns the current cursor index.
func (n *Navigator) Cursor() int { return n.cursor }

// ViewportOffset returns the index of the first visible row.
func (n *Navigator) ViewportOffset() int { return n.viewportOffset }

// ViewportHeight returns the number of visible rows.
func (n *Navigator) ViewportHeight() int { return n.viewportHeight }

// SetViewportHeight updates the viewport height and keeps the cursor
// visible.
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureVisible()
}

// SetMaxIndex updates the largest valid cursor index (-1 for an empty
// list) and clamps the cursor to it.
func (n *Navigator) SetMaxIndex(max int) {
	n.maxIndex = max
	if n.cursor > max {
		n.cursor = max
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
	n.ensureVisible()
}

// MoveUp moves the cursor one row up.
func (n *Navigator) MoveUp() {
	if n.cursor > 0 {
		n.cursor--
		n.ensureVisible()
	}
}

// MoveDown moves the cursor one row down.
func (n *Navigator) MoveDown() {
	if n.cursor < n.maxIndex {
		n.cursor++
		n.ensureVisible()
	}
}

// PageUp moves the cursor up by one viewport.
func (n *Navigator) PageUp() {
	n.cursor = n.clamp(n.cursor - (n.viewportHeight - 1))
	n.viewportOffset -= n.viewportHeight - 1
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
	n.ensureVisible()
}

// PageDown moves the cursor down by one viewport.
func (n *Navigator) PageDown() {
	n.cursor = n.clamp(n.cursor + (n.viewportHeight - 1))
	n.ensureVisible()
}

// Home moves the cursor to the first row.
func (n *Navigator) Home() {
	n.cursor = 0
	n.viewportOffset = 0
}

// End moves the cursor to the last row.
func (n *Navigator) End() {
	n.cursor = n.maxIndex
	if n.cursor < 0 {
		n.cursor = 0
	}
	n.ensureVisible()
}

func (n *Navigator) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index > n.maxIndex {
		index = n.maxIndex
	}
	if index < 0 {
		return 0
	}
	return index
}

func (n *Navigator) ensureVisible() {
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	} else if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
