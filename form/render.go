package form

import (
	"context"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render returns a component writing the fields of children, one fieldset
// per group ordered by weight. Fields whose group is not registered in
// attrs are written after the fieldsets.
func Render(attrs *Attributes, children *Children) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, n := range buildNodes(attrs, children) {
			if err := html.Render(w, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func buildNodes(attrs *Attributes, children *Children) []*html.Node {
	var groups map[string]Group
	if attrs != nil {
		groups = attrs.Groups
	}

	byGroup := make(map[string][]string)
	var loose []string
	for _, k := range children.keys {
		g := children.fields[k].Group
		if _, ok := groups[g]; ok {
			byGroup[g] = append(byGroup[g], k)
		} else {
			loose = append(loose, k)
		}
	}

	ids := make([]string, 0, len(byGroup))
	for id := range byGroup {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		gi, gj := groups[ids[i]], groups[ids[j]]
		if gi.Weight != gj.Weight {
			return gi.Weight < gj.Weight
		}
		return ids[i] < ids[j]
	})

	var out []*html.Node
	for _, id := range ids {
		fs := element(atom.Fieldset, attr("data-group", id))
		legend := element(atom.Legend)
		legend.AppendChild(text(groups[id].Title))
		fs.AppendChild(legend)
		for _, k := range byGroup[id] {
			fs.AppendChild(fieldNode(k, children.fields[k]))
		}
		out = append(out, fs)
	}
	for _, k := range loose {
		out = append(out, fieldNode(k, children.fields[k]))
	}
	return out
}

func fieldNode(key string, f Field) *html.Node {
	wrap := element(atom.Div, attr("class", "form-field"))

	label := element(atom.Label, attr("for", key))
	label.AppendChild(text(f.Label))
	wrap.AppendChild(label)

	switch f.Kind {
	case KindTextArea:
		ta := element(atom.Textarea, attr("name", key), attr("id", key))
		if f.Rows > 0 {
			ta.Attr = append(ta.Attr, attr("rows", strconv.Itoa(f.Rows)))
		}
		if f.Value != "" {
			ta.AppendChild(text(f.Value))
		}
		wrap.AppendChild(ta)
	default:
		wrap.AppendChild(element(atom.Input,
			attr("type", "text"),
			attr("name", key),
			attr("id", key),
			attr("value", f.Value),
		))
	}

	if f.Description != "" {
		help := element(atom.P, attr("class", "form-help"))
		help.AppendChild(text(f.Description))
		wrap.AppendChild(help)
	}
	return wrap
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
