// Package surface provides an in-memory native surface: a minimal element
// tree the host runtime bootstraps components against.
//
// Element is deliberately dumb. It knows its tag, attributes, and children,
// and supports tag-based lookup. Embedding applications with a real native
// surface supply their own renderer instead; this package is the default
// target and the one used by tests.
package surface

// Element is a node in the in-memory native surface.
type Element struct {
	Tag        string
	Attributes map[string]string
	Parent     *Element
	Children   []*Element

	// Text is the concatenated text content, if any.
	Text string
}

// DocumentTag is the tag of the root element returned by NewDocument.
const DocumentTag = "#document"

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// NewDocument creates an empty document root.
func NewDocument() *Element {
	return NewElement(DocumentTag)
}

// SetAttribute sets an attribute on the element.
func (e *Element) SetAttribute(name, value string) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[name] = value
}

// Attribute returns the attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// AppendChild attaches child as the last child of e.
// A child already attached elsewhere is moved, not duplicated.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = e
	e.Children = append(e.Children, child)
}

// RemoveChild detaches child from e. Unknown children are ignored.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// QuerySelector returns the first descendant with the given tag, in
// depth-first order, or nil if none matches.
func (e *Element) QuerySelector(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
		if found := c.QuerySelector(tag); found != nil {
			return found
		}
	}
	return nil
}
