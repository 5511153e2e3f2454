package layout

import willow "github.com/phanxgames/willowlayout"

// Finder resolves a node name to a live node.
type Finder interface {
	Find(name string) (*willow.Node, bool)
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(name string) (*willow.Node, bool)

// Find calls f(name).
func (f FinderFunc) Find(name string) (*willow.Node, bool) {
	return f(name)
}

// QueryCache is a Finder that searches a subtree by node name and remembers
// hits. Cached nodes that were disposed or detached are dropped and searched
// for again.
type QueryCache struct {
	root    *willow.Node
	entries map[string]*willow.Node
}

// NewQueryCache returns a cache searching below root.
func NewQueryCache(root *willow.Node) *QueryCache {
	return &QueryCache{root: root, entries: make(map[string]*willow.Node)}
}

// Find returns the first node named name. Direct children are checked
// before descending into grandchildren.
func (c *QueryCache) Find(name string) (*willow.Node, bool) {
	if n, ok := c.entries[name]; ok {
		if n.IsAttached() && n.Name == name && c.below(n) {
			return n, true
		}
		delete(c.entries, name)
	}
	n := findChild(c.root, name)
	if n == nil {
		return nil, false
	}
	c.entries[name] = n
	return n, true
}

// Invalidate forgets all cached entries.
func (c *QueryCache) Invalidate() {
	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *QueryCache) Len() int {
	return len(c.entries)
}

func (c *QueryCache) below(n *willow.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == c.root {
			return true
		}
	}
	return false
}

func findChild(n *willow.Node, name string) *willow.Node {
	for _, child := range n.Children() {
		if child.Name == name {
			return child
		}
	}
	for _, child := range n.Children() {
		if child.NumChildren() == 0 {
			continue
		}
		if found := findChild(child, name); found != nil {
			return found
		}
	}
	return nil
}
