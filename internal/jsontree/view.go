package jsontree

// ViewState records which container nodes are collapsed, keyed by node path.
// The zero value has everything expanded. Values are never mutated in place;
// all updates return a fresh copy so states can live inside immutable
// application state.
type ViewState struct {
	collapsed map[string]bool
}

// EmptyView returns a view with every node expanded.
func EmptyView() ViewState {
	return ViewState{}
}

// IsCollapsed reports whether the node at the given path is collapsed.
func (v ViewState) IsCollapsed(path string) bool {
	return v.collapsed[path]
}

// Len returns the number of collapsed nodes.
func (v ViewState) Len() int {
	return len(v.collapsed)
}

// WithToggled returns a copy of the view with the collapse flag at path
// flipped.
func (v ViewState) WithToggled(path string) ViewState {
	next := make(map[string]bool, len(v.collapsed)+1)
	for p, c := range v.collapsed {
		if c {
			next[p] = true
		}
	}
	if next[path] {
		delete(next, path)
	} else {
		next[path] = true
	}
	return ViewState{collapsed: next}
}

// CollapseBelow returns a view collapsing every container at or beyond the
// given depth. CollapseBelow(root, 1) leaves only the root's immediate
// children visible.
func CollapseBelow(root *Node, depth int) ViewState {
	collapsed := make(map[string]bool)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsContainer() && n.Depth >= depth {
			collapsed[n.Path] = true
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return ViewState{collapsed: collapsed}
}

// InitialView computes the default view for a raw payload: parsed and
// collapsed below depth 1. If the payload does not parse as a tree, the
// empty view is returned and the caller is expected to show a parse-failure
// indicator instead of the tree.
func InitialView(raw []byte) ViewState {
	root, err := Parse(raw)
	if err != nil {
		return EmptyView()
	}
	return CollapseBelow(root, 1)
}

// Row is one visible line of the flattened tree.
type Row struct {
	Node      *Node
	Collapsed bool
}

// Flatten lists the visible rows of the tree in depth-first order, skipping
// the children of collapsed containers.
func Flatten(root *Node, v ViewState) []Row {
	var rows []Row
	var walk func(n *Node)
	walk = func(n *Node) {
		collapsed := n.IsContainer() && v.IsCollapsed(n.Path)
		rows = append(rows, Row{Node: n, Collapsed: collapsed})
		if collapsed {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return rows
}
