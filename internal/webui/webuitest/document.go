// Package webuitest inspects rendered documents in tests.
package webuitest

import (
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse parses a rendered page.
func Parse(page string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Heading returns the trimmed text of the first h1 element.
func (d *Document) Heading() string {
	nodes := d.elements("h1")
	if len(nodes) == 0 {
		return ""
	}
	return text(nodes[0])
}

// Terms returns the text of every dt element in document order.
func (d *Document) Terms() []string {
	return d.texts("dt")
}

// Definitions returns the text of every dd element in document order.
func (d *Document) Definitions() []string {
	return d.texts("dd")
}

// Links returns the href of every anchor in document order.
func (d *Document) Links() []string {
	var hrefs []string
	for _, n := range d.elements("a") {
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				hrefs = append(hrefs, attr.Val)
			}
		}
	}
	return hrefs
}

func (d *Document) texts(tag string) []string {
	var out []string
	for _, n := range d.elements(tag) {
		out = append(out, text(n))
	}
	return out
}

func (d *Document) elements(tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return found
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
