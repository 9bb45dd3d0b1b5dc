package goofx

import "strings"

// Anywhere is a path segment matching zero or more intermediate elements.
const Anywhere = "**"

// Element is a node of a normalized OFX tree. A leaf carries a scalar value, a container
// carries child elements; no element carries both.
type Element struct {
	Name     string
	Value    string     // Scalar value, set on leaves only.
	Children []*Element // Child elements in document order, set on containers only.
	leaf     bool
}

// NewLeaf returns a leaf element holding value.
func NewLeaf(name, value string) *Element {
	return &Element{Name: name, Value: value, leaf: true}
}

// NewContainer returns a container element with the given children.
func NewContainer(name string, children ...*Element) *Element {
	return &Element{Name: name, Children: children}
}

// IsLeaf returns true if e holds a scalar value.
func (e *Element) IsLeaf() bool {
	return e.leaf
}

// FindAll returns every element beneath e matching path, in document order.
// A path is a '/' separated sequence of element names which may contain Anywhere
// segments, e.g. "BANKTRANLIST/STMTTRN" or "**/LEDGERBAL".
func (e *Element) FindAll(path string) []*Element {
	if e == nil {
		return nil
	}
	found := collect(e, splitPath(path), nil)
	if len(found) < 2 {
		return found
	}
	seen := make(map[*Element]struct{}, len(found))
	unique := found[:0]
	for _, f := range found {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		unique = append(unique, f)
	}
	return unique
}

// FindFirst returns the first element beneath e matching path, or nil.
func (e *Element) FindFirst(path string) *Element {
	if found := e.FindAll(path); len(found) > 0 {
		return found[0]
	}
	return nil
}

// ValueOf returns the scalar value of the first element beneath e matching path and
// whether such an element exists. A matching container yields an empty value.
func (e *Element) ValueOf(path string) (string, bool) {
	found := e.FindFirst(path)
	if found == nil {
		return "", false
	}
	return found.Value, true
}

// Has returns true if an element matching path exists beneath e.
func (e *Element) Has(path string) bool {
	return e.FindFirst(path) != nil
}

func splitPath(path string) []string {
	segs := make([]string, 0, strings.Count(path, "/")+1)
	for _, s := range strings.Split(path, "/") {
		if s == "" {
			continue
		}
		// Consecutive wildcards are equivalent to one.
		if s == Anywhere && len(segs) > 0 && segs[len(segs)-1] == Anywhere {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// collect appends elements beneath parent matching segs to out in pre-order.
func collect(parent *Element, segs []string, out []*Element) []*Element {
	if len(segs) == 0 {
		return append(out, parent)
	}
	if segs[0] != Anywhere {
		for _, c := range parent.Children {
			if c.Name == segs[0] {
				out = collect(c, segs[1:], out)
			}
		}
		return out
	}
	rest := segs[1:]
	for _, c := range parent.Children {
		if len(rest) == 0 {
			out = append(out, c)
		} else if c.Name == rest[0] {
			out = collect(c, rest[1:], out)
		}
		out = collect(c, segs, out)
	}
	return out
}

// Tree is a read-only view over a normalized or directly parsed document. Paths given
// to a Tree start at the root element, e.g. "OFX/SIGNONMSGSRSV1/SONRS".
type Tree struct {
	root *Element
	top  *Element // Synthetic parent of root.
}

// NewTree returns a Tree rooted at root.
func NewTree(root *Element) *Tree {
	return &Tree{root: root, top: NewContainer("", root)}
}

// Root returns the root element.
func (t *Tree) Root() *Element {
	return t.root
}

// FindFirst returns the first element matching path, or nil.
func (t *Tree) FindFirst(path string) *Element {
	return t.top.FindFirst(path)
}

// FindAll returns every element matching path in document order.
func (t *Tree) FindAll(path string) []*Element {
	return t.top.FindAll(path)
}

// ValueOf returns the scalar value of the first element beneath e matching path.
func (t *Tree) ValueOf(e *Element, path string) (string, bool) {
	return e.ValueOf(path)
}

// String renders the tree as well formed XML.
func (t *Tree) String() string {
	return t.root.String()
}
