// ABOUTME: Domain model for a fetched page after text substitution
// ABOUTME: Carries the serialized document plus the metadata returned to callers

package domain

// RewrittenPage is the result of fetching a page and rewriting its visible text
type RewrittenPage struct {
	// Content is the full serialized HTML document after substitution
	Content string `json:"content"`

	// Title is the rewritten text of the document's <title> element
	Title string `json:"title"`

	// OriginalURL is the URL exactly as the caller supplied it
	OriginalURL string `json:"originalUrl"`
}
