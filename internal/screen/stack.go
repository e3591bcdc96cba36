package screen

// Stack holds the open screens. The last element is the active screen.
type Stack[S any] struct {
	screens []Screen[S]
}

// Push adds a screen to the top of the stack.
func (s *Stack[S]) Push(sc Screen[S]) {
	s.screens = append(s.screens, sc)
}

// Pop removes and returns the top screen.
// Returns nil if the stack is empty.
func (s *Stack[S]) Pop() Screen[S] {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it.
func (s *Stack[S]) Peek() Screen[S] {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens in the stack.
func (s *Stack[S]) Len() int {
	return len(s.screens)
}

// Clear drops every screen.
func (s *Stack[S]) Clear() {
	clear(s.screens)
	s.screens = s.screens[:0]
}

// Apply performs cmd on the stack.
// Push and Swap with a nil screen only pop (Swap) or do nothing (Push).
func (s *Stack[S]) Apply(cmd Command[S]) {
	switch cmd.Kind {
	case CmdClose:
		s.Pop()
	case CmdPush:
		if cmd.Screen != nil {
			s.Push(cmd.Screen)
		}
	case CmdSwap:
		s.Pop()
		if cmd.Screen != nil {
			s.Push(cmd.Screen)
		}
	case CmdQuit:
		s.Clear()
	}
}

// each calls fn for every screen from bottom to top.
func (s *Stack[S]) each(fn func(Screen[S])) {
	for _, sc := range s.screens {
		fn(sc)
	}
}
