package rewrite

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"title case", "Welcome to Yale University", "Welcome to Fale University"},
		{"lower case", "info@yale.edu", "info@fale.edu"},
		{"upper case", "GO YALE!", "GO FALE!"},
		{"all variants", "Yale yale YALE", "Fale fale FALE"},
		{"multiple occurrences", "Yale and Yale again", "Fale and Fale again"},
		{"mixed case left alone", "YaLe and yALE", "YaLe and yALE"},
		{"no match", "Harvard University", "Harvard University"},
		{"empty", "", ""},
		{"inside words", "Yalely", "Falely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplaceText(tt.input))
		})
	}
}

func TestReplaceText_Idempotent(t *testing.T) {
	inputs := []string{
		"Yale University",
		"yale.edu and YALE",
		"Fale already",
		"YaLe stays",
	}

	for _, input := range inputs {
		once := ReplaceText(input)
		assert.Equal(t, once, ReplaceText(once), "second pass changed %q", input)
		assert.NotContains(t, once, "Yale")
		assert.NotContains(t, once, "yale")
		assert.NotContains(t, once, "YALE")
	}
}

func TestRewriteTextNodes_SkipsAttributes(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><a href="https://www.yale.edu/about" title="Yale">About Yale</a>` +
			`<img alt="YALE logo" src="/yale.png"></body></html>`))
	require.NoError(t, err)

	changed := rewriteTextNodes(doc.Find("body").Nodes[0])

	assert.Equal(t, 1, changed)
	link := doc.Find("a")
	assert.Equal(t, "About Fale", link.Text())
	assert.Equal(t, "https://www.yale.edu/about", link.AttrOr("href", ""))
	assert.Equal(t, "Yale", link.AttrOr("title", ""))
	assert.Equal(t, "YALE logo", doc.Find("img").AttrOr("alt", ""))
	assert.Equal(t, "/yale.png", doc.Find("img").AttrOr("src", ""))
}

func TestRewriteTextNodes_NestedAndDirectChildren(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body>Yale at the top<div><section><span>deep yale</span></section></div>` +
			`<!-- Yale comment --></body></html>`))
	require.NoError(t, err)

	changed := rewriteTextNodes(doc.Find("body").Nodes[0])

	assert.Equal(t, 2, changed)
	assert.Equal(t, "deep fale", doc.Find("span").Text())
	html, err := doc.Html()
	require.NoError(t, err)
	assert.Contains(t, html, "Fale at the top")
	assert.Contains(t, html, "<!-- Yale comment -->")
}
