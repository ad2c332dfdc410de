package router

// Navigator is the host's location bar: the router reads the current path
// and rewrites it to redirect.
type Navigator interface {
	Path() string
	SetPath(path string)
}

// MemoryNavigator keeps the path and its history in memory.
type MemoryNavigator struct {
	history []string
}

func NewMemoryNavigator(initial string) *MemoryNavigator {
	return &MemoryNavigator{history: []string{initial}}
}

func (n *MemoryNavigator) Path() string {
	return n.history[len(n.history)-1]
}

// SetPath records path as a new history entry unless it is already current.
func (n *MemoryNavigator) SetPath(path string) {
	if path == n.Path() {
		return
	}
	n.history = append(n.history, path)
}

// Back drops the current entry. It reports false at the first entry.
func (n *MemoryNavigator) Back() bool {
	if len(n.history) <= 1 {
		return false
	}
	n.history = n.history[:len(n.history)-1]
	return true
}

func (n *MemoryNavigator) History() []string {
	return append([]string(nil), n.history...)
}
