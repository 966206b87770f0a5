// Package reorder tracks a single drag gesture over the task list.
package reorder

// Reorderer commits a move.
type Reorderer interface {
	Reorder(from, to int) error
}

// Controller is Idle until Start and Dragging until End or Drop. The zero
// value is Idle.
type Controller struct {
	dragging bool
	source   int
	hover    int
	hovering bool
}

func (c *Controller) Dragging() bool {
	return c.dragging
}

// Start begins a drag from index i.
func (c *Controller) Start(i int) {
	c.dragging = true
	c.source = i
	c.hovering = false
}

// Over records the index currently hovered. It never mutates the list.
func (c *Controller) Over(i int) {
	if !c.dragging {
		return
	}
	if c.hovering && c.hover == i {
		return
	}
	c.hover = i
	c.hovering = true
}

// End abandons the drag without moving anything.
func (c *Controller) End() {
	*c = Controller{}
}

// Drop moves the source item to target and returns to Idle. Dropping on
// the source index, or while Idle, commits nothing.
func (c *Controller) Drop(target int, r Reorderer) error {
	if !c.dragging {
		return nil
	}
	source := c.source
	c.End()
	if source == target {
		return nil
	}
	return r.Reorder(source, target)
}

func (c *Controller) Source() (int, bool) {
	return c.source, c.dragging
}

func (c *Controller) Hover() (int, bool) {
	return c.hover, c.dragging && c.hovering
}
