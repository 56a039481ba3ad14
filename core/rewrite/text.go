// ABOUTME: Literal Yale to Fale substitution over text and parsed HTML trees
// ABOUTME: Only text nodes are rewritten; element attributes are never visited

package rewrite

import (
	"strings"

	"golang.org/x/net/html"
)

// replacer applies the three case variants in order. Mixed-case spellings such as
// "YaLe" are intentionally left untouched.
var replacer = []struct {
	old string
	new string
}{
	{"Yale", "Fale"},
	{"yale", "fale"},
	{"YALE", "FALE"},
}

// ReplaceText rewrites every exact "Yale", "yale" and "YALE" in s.
func ReplaceText(s string) string {
	for _, r := range replacer {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}

// rewriteTextNodes walks the subtree under n and rewrites each text node in place.
// It returns how many nodes changed.
func rewriteTextNodes(n *html.Node) int {
	changed := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if replaced := ReplaceText(c.Data); replaced != c.Data {
				c.Data = replaced
				changed++
			}
		case html.ElementNode:
			changed += rewriteTextNodes(c)
		}
	}
	return changed
}
