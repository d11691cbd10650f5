package navgrid

// BindingHandler is called when a bound key triggers. It returns true
// if the input was consumed.
type BindingHandler func() bool

// bindingEntry holds one key binding.
type bindingEntry struct {
	Name    string // Binding name for debugging and Unbind
	Key     Key
	Repeats bool // Trigger on key repeat while held (directional keys)
	Handler BindingHandler
}

// Bindings routes key input to a Navigator. Which bindings get
// installed is decided once, from the host's input capabilities:
// hosts without a directional pad get no directional bindings at all,
// and few-key hosts skip the Left binding because that key commonly
// doubles as "back" there.
//
// Usage:
//
//	bindings := navgrid.NewBindings(nav, device)
//
//	// Per frame:
//	input.UpdateKeyRepeat(dt)
//	if bindings.HandleInput(input) {
//	    // a navigation or activation key was consumed
//	}
type Bindings struct {
	nav     *Navigator
	entries []bindingEntry
}

// NewBindings creates the default binding set for nav, gated by the
// device capabilities. A nil device installs the full set.
func NewBindings(nav *Navigator, device Device) *Bindings {
	b := &Bindings{
		nav:     nav,
		entries: make([]bindingEntry, 0, 8),
	}

	if device != nil && !device.HasDirectionalPad() {
		// Pointer-driven host: focus follows the pointer, nothing to
		// bind.
		return b
	}

	b.bindDirection("focus-up", KeyUp, NavUp)
	b.bindDirection("focus-down", KeyDown, NavDown)
	b.bindDirection("focus-right", KeyRight, NavRight)
	if device == nil || !device.HasFewKeys() {
		b.bindDirection("focus-left", KeyLeft, NavLeft)
	}

	b.Bind("activate", KeyEnter, nav.ActivateCurrent)
	b.Bind("activate-alt", KeySpace, nav.ActivateCurrent)
	return b
}

// bindDirection installs a repeating directional binding.
func (b *Bindings) bindDirection(name string, key Key, dir NavDirection) {
	b.entries = append(b.entries, bindingEntry{
		Name:    name,
		Key:     key,
		Repeats: true,
		Handler: func() bool { return b.nav.Navigate(dir) },
	})
}

// Bind adds a custom binding that triggers once per key press.
func (b *Bindings) Bind(name string, key Key, handler BindingHandler) {
	b.entries = append(b.entries, bindingEntry{
		Name:    name,
		Key:     key,
		Handler: handler,
	})
}

// Unbind removes a binding by name.
func (b *Bindings) Unbind(name string) {
	for i, e := range b.entries {
		if e.Name == name {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Clear removes all bindings.
func (b *Bindings) Clear() {
	b.entries = b.entries[:0]
}

// HandleInput checks all bindings against the frame's input and runs
// the first matching handler. Returns true if any input was consumed.
func (b *Bindings) HandleInput(input *InputState) bool {
	if input == nil {
		return false
	}
	for i := range b.entries {
		e := &b.entries[i]

		triggered := input.KeyPressed(e.Key)
		if e.Repeats {
			triggered = input.KeyRepeated(e.Key)
		}
		if !triggered {
			continue
		}

		if e.Handler() {
			return true
		}
	}
	return false
}
