package goofx

import (
	"encoding/xml"
	"io"
	"strings"
)

// ParseXML builds an element tree from a conformant (well formed XML) OFX body.
// Processing instructions, comments and directives are skipped. The body is already
// decoded text, so any encoding declared in the XML prolog is ignored.
func ParseXML(body string) (*Element, error) {
	var (
		open = NewStack()
		text = make(map[*Element]*strings.Builder)
		root *Element
	)

	decoder := xml.NewDecoder(strings.NewReader(body))
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, wrapError(ErrNormalize, "", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			e := &Element{Name: qualifiedName(t.Name)}
			if parent := open.Peek(); parent != nil {
				parent.Children = append(parent.Children, e)
			} else if root != nil {
				return nil, newError(ErrNormalize, e.Name, "second root element after <%s>", root.Name)
			} else {
				root = e
			}
			open.Push(e)
		case xml.CharData:
			current := open.Peek()
			if current == nil {
				continue
			}
			b, ok := text[current]
			if !ok {
				b = &strings.Builder{}
				text[current] = b
			}
			b.Write(t)
		case xml.EndElement:
			e, err := open.Pop()
			if err != nil {
				return nil, wrapError(ErrNormalize, t.Name.Local, err)
			}
			value := ""
			if b, ok := text[e]; ok {
				value = strings.TrimSpace(b.String())
				delete(text, e)
			}
			if value == "" {
				continue
			}
			if len(e.Children) > 0 {
				return nil, newError(ErrNormalize, e.Name, "text %q mixed with child elements", value)
			}
			e.Value = value
			e.leaf = true
		}
	}

	if root == nil {
		return nil, newError(ErrNormalize, "", "no root element")
	}
	return root, nil
}
