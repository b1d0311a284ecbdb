package control

// Selector cycles through a fixed list of choices, like a segmented picker.
type Selector[T comparable] struct {
	Choices []T
	index   int
}

// NewSelector returns a selector positioned on initial, or on the first
// choice when initial is not listed.
func NewSelector[T comparable](initial T, choices ...T) *Selector[T] {
	s := &Selector[T]{Choices: choices}
	s.Select(initial)
	return s
}

// Current returns the selected choice. It panics on an empty selector.
func (s *Selector[T]) Current() T { return s.Choices[s.index] }

// Index returns the position of the selected choice.
func (s *Selector[T]) Index() int { return s.index }

// Next advances to the following choice, wrapping around.
func (s *Selector[T]) Next() T {
	s.index = (s.index + 1) % len(s.Choices)
	return s.Current()
}

// Prev steps back to the previous choice, wrapping around.
func (s *Selector[T]) Prev() T {
	s.index = (s.index - 1 + len(s.Choices)) % len(s.Choices)
	return s.Current()
}

// Select jumps to v and reports whether it is one of the choices.
func (s *Selector[T]) Select(v T) bool {
	for i, c := range s.Choices {
		if c == v {
			s.index = i
			return true
		}
	}
	return false
}
