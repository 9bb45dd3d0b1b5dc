package goofx

import "errors"

// ElementStack is a stack of open elements.
type ElementStack interface {
	Push(*Element)
	Pop() (*Element, error)
	Peek() *Element
	Contains(name string) bool
	IsEmpty() bool
	Size() int
	Dump() []string
}

// stack is a stack of element pointers.
type stack struct {
	items []*Element
}

// NewStack returns an initialized empty stack.
func NewStack() ElementStack {
	return &stack{
		items: make([]*Element, 0),
	}
}

// Push adds the given element to top of stack.
func (s *stack) Push(e *Element) {
	s.items = append(s.items, e)
}

// Pop removes and returns the topmost element of the stack.
func (s *stack) Pop() (*Element, error) {
	l := len(s.items)
	if l == 0 {
		return nil, errors.New("error - popping from empty stack")
	}
	i := s.items[l-1]
	s.items = s.items[:l-1]
	return i, nil
}

// Peek returns the topmost element without removing it, or nil if the stack is empty.
func (s *stack) Peek() *Element {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Contains returns true if an element with the given name is on the stack.
func (s *stack) Contains(name string) bool {
	for _, item := range s.items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the stack is empty, else false.
func (s *stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the current size of the stack.
func (s *stack) Size() int {
	return len(s.items)
}

// Dump returns the names of the stacked elements, bottom first, for debugging.
func (s *stack) Dump() []string {
	result := make([]string, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, item.Name)
	}
	return result
}
