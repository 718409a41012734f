package surface

import "testing"

func TestQuerySelector_FindsNestedElement(t *testing.T) {
	doc := NewDocument()
	section := NewElement("section")
	widget := NewElement("x-widget")
	doc.AppendChild(section)
	section.AppendChild(widget)

	if got := doc.QuerySelector("x-widget"); got != widget {
		t.Errorf("QuerySelector returned %v, want the nested x-widget", got)
	}
}

func TestQuerySelector_MissingReturnsNil(t *testing.T) {
	doc := NewDocument()
	doc.AppendChild(NewElement("div"))

	if got := doc.QuerySelector("x-widget"); got != nil {
		t.Errorf("QuerySelector returned %v, want nil", got)
	}
}

func TestQuerySelector_DepthFirstOrder(t *testing.T) {
	doc := NewDocument()
	first := NewElement("div")
	inner := NewElement("x-widget")
	first.AppendChild(inner)
	later := NewElement("x-widget")
	doc.AppendChild(first)
	doc.AppendChild(later)

	if got := doc.QuerySelector("x-widget"); got != inner {
		t.Error("QuerySelector should return the depth-first match")
	}
}

func TestAppendChild_MovesAttachedChild(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	child := NewElement("span")

	a.AppendChild(child)
	b.AppendChild(child)

	if child.Parent != b {
		t.Errorf("expected parent b, got %v", child.Parent)
	}
	if len(a.Children) != 0 {
		t.Errorf("expected child removed from a, still has %d children", len(a.Children))
	}
	if len(b.Children) != 1 {
		t.Errorf("expected 1 child on b, got %d", len(b.Children))
	}
}

func TestAppendChild_SelfAndNilIgnored(t *testing.T) {
	e := NewElement("div")
	e.AppendChild(nil)
	e.AppendChild(e)
	if len(e.Children) != 0 {
		t.Errorf("expected no children, got %d", len(e.Children))
	}
}

func TestRemoveChild_UnknownIgnored(t *testing.T) {
	parent := NewElement("div")
	parent.AppendChild(NewElement("span"))
	parent.RemoveChild(NewElement("span"))
	if len(parent.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(parent.Children))
	}
}

func TestAttributes(t *testing.T) {
	e := NewElement("x-widget")
	if _, ok := e.Attribute("role"); ok {
		t.Error("unset attribute should not be present")
	}
	e.SetAttribute("role", "widget")
	v, ok := e.Attribute("role")
	if !ok || v != "widget" {
		t.Errorf("Attribute = %q, %v; want %q, true", v, ok, "widget")
	}
}
