package catalog

// DragState tracks one drag gesture over the admin list.
type DragState struct {
	source int
	hover  int
	active bool
	hovers bool
}

// Start records the source index when a drag begins.
func (d *DragState) Start(index int) {
	*d = DragState{source: index, active: true}
}

// Hover records the index currently under the pointer.
func (d *DragState) Hover(index int) {
	if !d.active {
		return
	}
	d.hover = index
	d.hovers = true
}

// Release ends the gesture. ok is true only when both indices are known and differ.
func (d *DragState) Release() (from, to int, ok bool) {
	from, to = d.source, d.hover
	ok = d.active && d.hovers && from != to
	*d = DragState{}
	return from, to, ok
}

// Cancel drops the gesture without producing a move.
func (d *DragState) Cancel() {
	*d = DragState{}
}
