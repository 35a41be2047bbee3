// Package form describes the controls that feature modules add to admin
// edit forms.
package form

// Kind is the type of control a Field renders as.
type Kind int

const (
	KindText Kind = iota
	KindTextArea
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextArea:
		return "textarea"
	}
	return "unknown"
}

// Field is a labeled control of an edit form.
type Field struct {
	Kind        Kind
	Label       string
	Group       string
	Description string // help text shown under the control
	Rows        int    // textarea only
	Value       string
}

// Group is a titled section of an edit form. Lighter groups come first.
type Group struct {
	Title  string
	Weight int
}

// Attributes holds the form level settings altered by hooks.
type Attributes struct {
	Groups map[string]Group
}

// SetGroup registers or replaces the group id.
func (a *Attributes) SetGroup(id string, g Group) {
	if a.Groups == nil {
		a.Groups = make(map[string]Group)
	}
	a.Groups[id] = g
}

// Children is an ordered set of fields keyed by input name.
type Children struct {
	keys   []string
	fields map[string]Field
}

// NewChildren returns an empty Children.
func NewChildren() *Children {
	return &Children{fields: make(map[string]Field)}
}

// Set replaces the field at key, keeping its position, or appends it.
func (c *Children) Set(key string, f Field) {
	if c.fields == nil {
		c.fields = make(map[string]Field)
	}
	if _, ok := c.fields[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.fields[key] = f
}

// Merge sets every field of other, in order.
func (c *Children) Merge(other *Children) {
	for _, k := range other.keys {
		c.Set(k, other.fields[k])
	}
}

// Get returns the field at key.
func (c *Children) Get(key string) (Field, bool) {
	f, ok := c.fields[key]
	return f, ok
}

// Keys returns the field keys in order.
func (c *Children) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of fields.
func (c *Children) Len() int {
	return len(c.keys)
}
