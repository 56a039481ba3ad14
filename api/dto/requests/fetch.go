// ABOUTME: Request DTOs for the fetch endpoint
// ABOUTME: The url is optional in the schema so a missing value reaches the handler as a 400

package requests

// FetchRequest represents a request to fetch and rewrite a page
type FetchRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// URL of the page to fetch
	URL string `json:"url,omitempty" example:"https://www.yale.edu/" doc:"Absolute URL of the page to fetch"`
}
