// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used by the API layer

package interfaces

import (
	"context"

	"fale-proxy-api/core/domain"
)

// RewriteService fetches a page and rewrites its visible text
type RewriteService interface {
	FetchAndRewrite(ctx context.Context, url string) (*domain.RewrittenPage, error)
}
