package format

import (
	"io"

	"golang.org/x/net/html"
)

// HTML outputs an interval set as an HTML fragment:
//
//	<span class="interval-set"><span class="interval">[0, 1)</span> ∪ … </span>
//
// Degenerate intervals carry the additional class "point", the empty set
// is rendered as "∅" with the additional class "empty".
func HTML(rows []Row, w io.Writer) error {
	set := element("span", "interval-set")
	if len(rows) == 0 {
		set.Attr[0].Val += " empty"
		set.AppendChild(text("∅"))
	}
	for i, r := range rows {
		if i > 0 {
			set.AppendChild(text(" ∪ "))
		}
		class := "interval"
		if r.Point {
			class += " point"
		}
		iv := element("span", class)
		iv.AppendChild(text(r.String()))
		set.AppendChild(iv)
	}
	return html.Render(w, set)
}

func element(tag, class string) *html.Node {
	return &html.Node{
		Type: html.ElementNode,
		Data: tag,
		Attr: []html.Attribute{{Key: "class", Val: class}},
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
