package opml

import "encoding/xml"

// Attr is a single attribute on an outline node.
type Attr struct {
	Name  string
	Value string
}

// Outline is one element of the parsed tree. Attrs preserves document order;
// Children holds nested elements in document order. Element text content is
// discarded because the export format carries no data there.
type Outline struct {
	Name     string
	Attrs    []Attr
	Children []*Outline
}

// Get returns the value of the named attribute and whether it is present.
func (o *Outline) Get(name string) (string, bool) {
	for _, attr := range o.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// AttrMap returns a fresh map of the node's attribute bag, keyed by
// attribute name. Intended for diagnostics dumps; lookups should use Get.
func (o *Outline) AttrMap() map[string]string {
	attrs := make(map[string]string, len(o.Attrs))
	for _, attr := range o.Attrs {
		attrs[attr.Name] = attr.Value
	}
	return attrs
}

// Find returns the first node in the subtree rooted at o (o included) whose
// element name is name and whose attribute attr equals value, walking in
// document order. It returns nil when no node matches.
func (o *Outline) Find(name, attr, value string) *Outline {
	if o == nil {
		return nil
	}
	if o.matches(name, attr, value) {
		return o
	}
	for _, child := range o.Children {
		if found := child.Find(name, attr, value); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the subtree rooted at o (o included) whose
// element name is name and whose attribute attr equals value, in document
// order. Matching never descends outside the receiver's subtree, so results
// from sibling subtrees stay disjoint.
func (o *Outline) FindAll(name, attr, value string) []*Outline {
	if o == nil {
		return nil
	}
	var matched []*Outline
	o.appendMatches(name, attr, value, &matched)
	return matched
}

func (o *Outline) appendMatches(name, attr, value string, matched *[]*Outline) {
	if o.matches(name, attr, value) {
		*matched = append(*matched, o)
	}
	for _, child := range o.Children {
		child.appendMatches(name, attr, value, matched)
	}
}

func (o *Outline) matches(name, attr, value string) bool {
	if o.Name != name {
		return false
	}
	got, ok := o.Get(attr)
	return ok && got == value
}

// UnmarshalXML decodes an element and its nested children, keeping every
// attribute under its local name. Character data, comments, and processing
// instructions are skipped.
func (o *Outline) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	o.Name = start.Name.Local
	if len(start.Attr) > 0 {
		o.Attrs = make([]Attr, 0, len(start.Attr))
		for _, attr := range start.Attr {
			o.Attrs = append(o.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
		}
	}
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch current := token.(type) {
		case xml.StartElement:
			child := &Outline{}
			if err := child.UnmarshalXML(d, current); err != nil {
				return err
			}
			o.Children = append(o.Children, child)
		case xml.EndElement:
			return nil
		}
	}
}
