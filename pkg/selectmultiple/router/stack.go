package router

// StackEntry is a screen that was navigated away from: its identifier, the
// input it ran with, and any resume state it returned.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Resumer is implemented by screen inputs that can reopen a screen at a
// saved position. Resume returns the input to use.
type Resumer interface {
	Resume(state any) any
}

// Stack is the navigation history used for back navigation.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push records the screen being left.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Back pops the previous screen and returns it with its input, resumed
// when the input is a Resumer. An empty stack yields ScreenExit.
func (s *Stack) Back() (Screen, any) {
	entry := s.Pop()
	if entry == nil {
		return ScreenExit, nil
	}
	if r, ok := entry.Input.(Resumer); ok && entry.Resume != nil {
		return entry.Screen, r.Resume(entry.Resume)
	}
	return entry.Screen, entry.Input
}

// Peek returns the top entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
