package goofx

import (
	"encoding/xml"
	"io"
	"strings"
	"sync"

	"github.com/golang/glog"
)

//go:generate mockgen -destination mock_normalizer_test.go -package goofx_test github.com/rockstardevs/goofx/v2 Normalizer

// Normalizer turns legacy OFX tag soup into a single element tree.
type Normalizer interface {
	Normalize(body string) (*Element, error)
}

type normalizer struct{}

var normalizerSingleton *normalizer
var initNormalizer sync.Once

// NewNormalizer returns the shared tag soup normalizer. It holds no state and is safe for
// concurrent use.
func NewNormalizer() Normalizer {
	initNormalizer.Do(func() {
		normalizerSingleton = &normalizer{}
	})
	return normalizerSingleton
}

// Normalize builds an element tree from body without a DTD. An element that receives
// text before any child is a leaf and is closed right away; an end tag repeating the
// name of the most recently auto-closed leaf is redundant and consumed. Any other end
// tag closes the open container it names.
func (n normalizer) Normalize(body string) (*Element, error) {
	var (
		open   = NewStack()        // Elements opened and not yet closed.
		closed = make([]string, 0) // Leaves closed by their text, most recent last.
		root   *Element
	)

	decoder := xml.NewDecoder(strings.NewReader(body))
	decoder.Strict = false

	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, wrapError(ErrNormalize, "", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := qualifiedName(t.Name)
			e := &Element{Name: name}
			if parent := open.Peek(); parent != nil {
				parent.Children = append(parent.Children, e)
			} else if root != nil {
				return nil, newError(ErrNormalize, name, "second root element after <%s>", root.Name)
			} else {
				root = e
			}
			open.Push(e)
			glog.V(3).Infof("start %s at depth %d, stack: %v", name, open.Size(), open.Dump())
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			current := open.Peek()
			if current == nil {
				return nil, newError(ErrNormalize, "", "text %q outside of any element", text)
			}
			if len(current.Children) > 0 {
				return nil, newError(ErrNormalize, current.Name, "text %q after child elements", text)
			}
			current.Value = text
			current.leaf = true
			open.Pop()
			closed = append(closed, current.Name)
			glog.V(3).Infof("leaf %s=%q, stack: %v", current.Name, text, open.Dump())
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if l := len(closed); l > 0 && closed[l-1] == name {
				closed = closed[:l-1]
				glog.V(3).Infof("end %s already closed by its value", name)
				continue
			}
			if !open.Contains(name) {
				glog.V(2).Infof("ignoring end tag %s with no open element, stack: %v", name, open.Dump())
				continue
			}
			// An end tag for an outer element also closes everything opened inside it.
			// Close every open element up to and including the one named.
			for {
				e, _ := open.Pop()
				if e.Name == name {
					break
				}
				glog.V(2).Infof("closing %s implicitly at end of %s", e.Name, name)
			}
			glog.V(3).Infof("end %s, stack: %v", name, open.Dump())
		}
	}

	if !open.IsEmpty() {
		return nil, newError(ErrNormalize, open.Peek().Name, "unterminated element, open elements: %s",
			strings.Join(open.Dump(), ">"))
	}
	if root == nil {
		return nil, newError(ErrNormalize, "", "no root element")
	}
	glog.V(3).Infof("normalized: %s", root)
	return root, nil
}

func qualifiedName(name xml.Name) string {
	if name.Space != "" {
		return name.Space + ":" + name.Local
	}
	return name.Local
}
