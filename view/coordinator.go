package view

// Coordinator owns the view state. It is not safe for concurrent use.
type Coordinator struct {
	pane     Pane
	focused  bool
	leases   map[*Lease]struct{}
	attach   AttachState
	surface  Surface
	onAttach []func(Surface)
	onChange func(State)
	onClose  []func()
}

// NewCoordinator returns a coordinator showing the given pane with no
// surface attached.
func NewCoordinator(initial Pane) *Coordinator {
	return &Coordinator{
		pane:   initial,
		leases: make(map[*Lease]struct{}),
	}
}

func (c *Coordinator) State() State {
	return State{
		Pane:         c.pane,
		Focused:      c.focused,
		ScrollLocked: c.ScrollLocked(),
		Attach:       c.attach,
	}
}

// Pane returns the active pane.
func (c *Coordinator) Pane() Pane { return c.pane }

// OnChange registers the state subscriber. A later registration replaces
// the previous one.
func (c *Coordinator) OnChange(fn func(State)) {
	c.onChange = fn
}

func (c *Coordinator) changed() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}

// SetPane switches the layout. Switching to any pane that shows the diagram
// asks an attached surface to resize.
func (c *Coordinator) SetPane(p Pane) {
	if p == c.pane {
		return
	}
	c.pane = p
	if p.HasDiagram() && c.attach == Attached && c.surface != nil {
		c.surface.Resize()
	}
	c.changed()
}

// Focus marks the diagram as focused.
func (c *Coordinator) Focus() {
	if !c.focused {
		c.focused = true
		c.changed()
	}
}

// Blur moves focus away from the diagram.
func (c *Coordinator) Blur() {
	if c.focused {
		c.focused = false
		c.changed()
	}
}

// Focused reports whether the diagram has focus.
func (c *Coordinator) Focused() bool { return c.focused }

// HandleKey reacts to keyboard input and reports whether the key was
// consumed. The find chord opens the explorer, but only while the diagram
// has focus.
func (c *Coordinator) HandleKey(k Key) bool {
	if !c.focused || !k.IsFind() {
		return false
	}
	c.SetPane(PaneExplorerDiagram)
	return true
}

// Lease holds the diagram scroll lock until released.
type Lease struct {
	c *Coordinator
}

// AcquireScrollLock locks diagram scrolling. The lock is held while at least
// one lease is outstanding.
func (c *Coordinator) AcquireScrollLock() *Lease {
	l := &Lease{c: c}
	was := c.ScrollLocked()
	c.leases[l] = struct{}{}
	if !was {
		c.changed()
	}
	return l
}

// Release gives the lease back. Releasing twice, or after the coordinator
// dropped all leases, does nothing.
func (l *Lease) Release() {
	if l == nil || l.c == nil {
		return
	}
	c := l.c
	l.c = nil
	if _, ok := c.leases[l]; !ok {
		return
	}
	delete(c.leases, l)
	if len(c.leases) == 0 {
		c.changed()
	}
}

// Held reports whether the lease still counts towards the scroll lock.
func (l *Lease) Held() bool {
	if l == nil || l.c == nil {
		return false
	}
	_, ok := l.c.leases[l]
	return ok
}

// ScrollLocked reports whether any lease is outstanding.
func (c *Coordinator) ScrollLocked() bool {
	return len(c.leases) > 0
}

// OnCloseMenus registers fn to run whenever menus are closed from outside,
// by CloseMenus or Unmount. Every registered fn runs each time.
func (c *Coordinator) OnCloseMenus(fn func()) {
	c.onClose = append(c.onClose, fn)
}

// CloseMenus releases every outstanding lease and closes registered menus.
func (c *Coordinator) CloseMenus() {
	c.releaseAll()
	c.closeMenus()
}

func (c *Coordinator) closeMenus() {
	for _, fn := range c.onClose {
		fn()
	}
}

func (c *Coordinator) releaseAll() {
	if len(c.leases) == 0 {
		return
	}
	for l := range c.leases {
		l.c = nil
	}
	c.leases = make(map[*Lease]struct{})
	c.changed()
}

// OnAttach registers fn to run once the surface is attached. If the surface
// is already attached fn runs immediately. Each callback runs exactly once.
func (c *Coordinator) OnAttach(fn func(Surface)) {
	if c.attach == Attached {
		fn(c.surface)
		return
	}
	c.onAttach = append(c.onAttach, fn)
}

// Mount starts attaching s. It is ignored unless the coordinator is
// unattached.
func (c *Coordinator) Mount(s Surface) {
	if c.attach != Unattached || s == nil {
		return
	}
	c.surface = s
	c.attach = Attaching
	c.changed()
}

// Mounted completes the attachment started by Mount and runs the pending
// attach callbacks.
func (c *Coordinator) Mounted() {
	if c.attach != Attaching {
		return
	}
	c.attach = Attached
	pending := c.onAttach
	c.onAttach = nil
	for _, fn := range pending {
		fn(c.surface)
	}
	c.changed()
}

// Unmount detaches the surface, releases all leases and closes registered
// menus.
func (c *Coordinator) Unmount() {
	for l := range c.leases {
		l.c = nil
	}
	c.leases = make(map[*Lease]struct{})
	c.surface = nil
	c.attach = Unattached
	c.closeMenus()
	c.changed()
}

func (c *Coordinator) Attach() AttachState { return c.attach }

func (c *Coordinator) Surface() Surface {
	if c.attach != Attached {
		return nil
	}
	return c.surface
}
