// Released under an MIT license. See LICENSE.

package program

// Arena holds every scope frame created for a program. Frames refer to
// their enclosing frame by index. The root frame is always index 0.
type Arena struct {
	frames []frame
}

type frame struct {
	parent int
	table  map[string]Definition
}

const (
	none = -1
	root = 0
)

// NewArena creates an arena containing only the root frame.
func NewArena() *Arena {
	return &Arena{
		frames: []frame{{
			parent: none,
			table:  map[string]Definition{},
		}},
	}
}

// Len returns the number of frames in the arena a.
func (a *Arena) Len() int {
	return len(a.frames)
}

// Root returns the root scope.
func (a *Arena) Root() Scope {
	return Scope{arena: a, index: root}
}

// Scope is a handle to one frame in an Arena.
type Scope struct {
	arena *Arena
	index int
}

// Enclosing returns the scope enclosing s. The root scope has none.
func (s Scope) Enclosing() (Scope, bool) {
	parent := s.frame().parent
	if parent == none {
		return Scope{}, false
	}

	return Scope{arena: s.arena, index: parent}, true
}

// Index returns the position of s's frame in its arena.
func (s Scope) Index() int {
	return s.index
}

// IsRoot returns true if s is the root scope.
func (s Scope) IsRoot() bool {
	return s.frame().parent == none
}

// Local returns the definition bound to name in s's own table.
func (s Scope) Local(name string) (Definition, bool) {
	d, ok := s.frame().table[name]

	return d, ok
}

// Push creates a new frame enclosed by s.
func (s Scope) Push() Scope {
	s.arena.frames = append(s.arena.frames, frame{
		parent: s.index,
		table:  map[string]Definition{},
	})

	return Scope{arena: s.arena, index: len(s.arena.frames) - 1}
}

// Lookup resolves name, starting in s and moving outward. When no scope
// binds name, the name itself is returned as a literal value.
func (s Scope) Lookup(name string) Definition {
	if d, ok := s.Local(name); ok {
		return d
	}

	if e, ok := s.Enclosing(); ok {
		return e.Lookup(name)
	}

	return NewValue(name)
}

// Define binds name to d. Only the root table is ever written.
func (s Scope) Define(name string, d Definition) {
	if e, ok := s.Enclosing(); ok {
		e.Define(name, d)

		return
	}

	s.frame().table[name] = d
}

// Remove unbinds name from the root table and returns its definition.
func (s Scope) Remove(name string) Definition {
	if e, ok := s.Enclosing(); ok {
		return e.Remove(name)
	}

	t := s.frame().table

	d, ok := t[name]
	if !ok {
		panic(Errorf(NameError, "%s was not defined", name))
	}

	delete(t, name)

	return d
}

// Merge adds defs to s's own table. Existing entries are kept.
func (s Scope) Merge(defs map[string]Definition) {
	t := s.frame().table

	for k, v := range defs {
		if _, ok := t[k]; !ok {
			t[k] = v
		}
	}
}

func (s Scope) frame() *frame {
	return &s.arena.frames[s.index]
}
