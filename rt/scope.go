package rt

// Scope holds exit actions registered at run time, for code that cannot
// express them as static defers (loops that acquire per-iteration
// resources, for example). Actions run last-registered-first.
//
//	s := rt.NewScope()
//	defer s.Exit()
//	s.Defer(h.Release)
type Scope struct {
	actions []func()
}

func NewScope() *Scope {
	return &Scope{}
}

// Defer registers fn to run when the scope exits.
func (s *Scope) Defer(fn func()) {
	s.actions = append(s.actions, fn)
}

// Len returns the number of pending exit actions.
func (s *Scope) Len() int {
	return len(s.actions)
}

// Exit runs pending actions in reverse order. Every action runs even when
// an earlier one panics; the panic keeps propagating afterwards.
func (s *Scope) Exit() {
	if len(s.actions) == 0 {
		return
	}
	n := len(s.actions) - 1
	fn := s.actions[n]
	s.actions[n] = nil
	s.actions = s.actions[:n]
	defer s.Exit()
	fn()
}
