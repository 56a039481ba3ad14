// ABOUTME: FetchAndRewrite service: fetch one page, rewrite its text, serialize it back
// ABOUTME: Uses goquery for parsing and serialization over the injected HTTP client

package rewrite

import (
	"context"
	"net/url"

	"fale-proxy-api/core/domain"
	"fale-proxy-api/core/errors"
	"fale-proxy-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

// Service fetches pages and rewrites their visible text
type Service struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewService creates a new rewrite service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		httpClient: deps.HTTPClient,
		logger:     deps.Logger,
	}
}

// FetchAndRewrite fetches targetURL, rewrites the text under <body> and the <title>,
// and returns the serialized document. Any failure after validation is a *errors.FetchError.
func (s *Service) FetchAndRewrite(ctx context.Context, targetURL string) (*domain.RewrittenPage, error) {
	if targetURL == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "URL is required"}
	}

	resp, err := s.httpClient.Get(ctx, targetURL)
	if err != nil {
		return nil, &errors.FetchError{URL: targetURL, Err: err}
	}
	body := resp.Body()
	defer body.Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &errors.FetchError{
			URL: targetURL,
			Err: &errors.ExternalAPIError{StatusCode: code, API: hostOf(targetURL)},
		}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, &errors.FetchError{URL: targetURL, Err: errors.WrapError(err, "parse html")}
	}

	changed := 0
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			changed += rewriteTextNodes(n)
		}
	})

	titles := doc.Find("title")
	for _, n := range titles.Nodes {
		changed += rewriteTextNodes(n)
	}

	content, err := doc.Html()
	if err != nil {
		return nil, &errors.FetchError{URL: targetURL, Err: errors.WrapError(err, "render html")}
	}

	s.debug("Rewrote page", map[string]interface{}{
		"url":           targetURL,
		"changed_nodes": changed,
		"bytes":         len(content),
	})

	return &domain.RewrittenPage{
		Content:     content,
		Title:       titles.First().Text(),
		OriginalURL: targetURL,
	}, nil
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}

var _ interfaces.RewriteService = (*Service)(nil)
