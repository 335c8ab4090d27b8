package engine

// State is one node of the search tree. It holds its own copy of the rack, so
// a child never shares cells with its parent or its siblings.
type State struct {
	rack   Rack
	toMove Side
	depth  int
}

// Successor is a child state tagged with the column that produced it.
type Successor struct {
	Column int
	State  State
}

// NewRoot builds the depth 0 state of a search. The rack is taken as is.
func NewRoot(rack Rack, side Side) State {
	return State{rack: rack, toMove: side}
}

func (s State) Rack() Rack {
	return s.rack
}

func (s State) ToMove() Side {
	return s.toMove
}

func (s State) Depth() int {
	return s.depth
}

func (s State) child(col int) State {
	next := State{rack: s.rack, toMove: s.toMove.Other(), depth: s.depth + 1}
	next.rack.Drop(col, s.toMove)
	return next
}

// Successors drops the side to move into every open column, ascending.
func (s State) Successors() []Successor {
	out := make([]Successor, 0, Columns)
	for col := 0; col < Columns; col++ {
		if !s.rack.Open(col) {
			continue
		}
		out = append(out, Successor{Column: col, State: s.child(col)})
	}
	return out
}

func (s State) Children() []State {
	succ := s.Successors()
	out := make([]State, len(succ))
	for i, next := range succ {
		out[i] = next.State
	}
	return out
}

// ChildrenByColumn keeps the column index as the array position; closed
// columns are nil.
func (s State) ChildrenByColumn() [Columns]*State {
	var out [Columns]*State
	for _, next := range s.Successors() {
		child := next.State
		out[next.Column] = &child
	}
	return out
}

func (s State) String() string {
	return s.rack.String()
}
