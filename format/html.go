package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/dsc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the contents of c as an HTML fragment: a div containing a
// caption paragraph and an ordered list of the elements, numbered from 0.
// Element texts are escaped.
func HTML[T any](w io.Writer, c Container[T], toString func(T) string) error {
	if w == nil || c == nil {
		return dsc.Errorf(dsc.InvalidParameter, "format.HTML", "writer and container must not be nil")
	}
	if toString == nil {
		toString = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	div := element(atom.Div, html.Attribute{Key: "class", Val: "dsc-container"})
	caption := element(atom.P)
	caption.AppendChild(text(fmt.Sprintf("%s (length %d, capacity %d)", c.Name(), c.Len(), c.Cap())))
	div.AppendChild(caption)
	ol := element(atom.Ol, html.Attribute{Key: "start", Val: "0"})
	for i, v := range c.All() {
		li := element(atom.Li, html.Attribute{Key: "value", Val: strconv.Itoa(i)})
		li.AppendChild(text(toString(v)))
		ol.AppendChild(li)
	}
	div.AppendChild(ol)
	dsc.T().Debugf("rendering %d elements of %s as HTML", c.Len(), c.Name())
	return html.Render(w, div)
}

func element(a atom.Atom, attr ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
