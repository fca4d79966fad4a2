package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/policydoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// titleFinder resolves the policy type of a link from the closest section
// title that precedes it in document order.
//
// This is a heuristic. The listing markup is not documented, so the nearest
// h2, h3, h4 or title container is taken as the section the link belongs to.
// Links placed outside a clearly titled section may be attributed to the
// wrong section.
type titleFinder struct {
	titleClass string

	// roots are the nodes the document was built from. The scan never
	// leaves them, even when they are attached to a larger tree.
	roots map[*html.Node]bool

	// limit bounds the backward scan to the number of nodes in the tree.
	limit int
}

func newTitleFinder(doc *goquery.Document, titleClass string) *titleFinder {
	roots := make(map[*html.Node]bool, len(doc.Nodes))
	limit := 0
	for _, root := range doc.Nodes {
		roots[root] = true
		limit += countNodes(root)
	}
	return &titleFinder{titleClass: titleClass, roots: roots, limit: limit}
}

// Find returns the text of the first title preceding n, or
// policydoc.UnknownType if the scan reaches <body> or a root of the
// document without finding one. Titles with no text are passed over.
func (f *titleFinder) Find(n *html.Node) string {
	if f.roots[n] {
		return policydoc.UnknownType
	}
	cur := n
	for range f.limit {
		cur = previous(cur)
		if cur == nil || cur.DataAtom == atom.Body {
			break
		}
		if f.isTitle(cur) {
			if text := collapseSpace(goquery.NewDocumentFromNode(cur).Text()); text != "" {
				return text
			}
		}
		if f.roots[cur] {
			break
		}
	}
	return policydoc.UnknownType
}

func (f *titleFinder) isTitle(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H2, atom.H3, atom.H4:
		return true
	case atom.Div:
		return f.titleClass != "" && goquery.NewDocumentFromNode(n).HasClass(f.titleClass)
	}
	return false
}

// previous returns the node immediately before n in document order: the
// deepest last descendant of its previous sibling, or else its parent.
func previous(n *html.Node) *html.Node {
	if p := n.PrevSibling; p != nil {
		for p.LastChild != nil {
			p = p.LastChild
		}
		return p
	}
	return n.Parent
}

func countNodes(n *html.Node) int {
	count := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countNodes(c)
	}
	return count
}
