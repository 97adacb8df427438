// Package flyer provides the client for the external OCR/catalog service
// that scans store flyers and publishes deal listings. The service is an
// external collaborator: this package only fetches its output, it never
// writes back.
package flyer

import (
	"context"

	"github.com/kagiso-dev/flyer-deals/internal/catalog"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// CatalogClient defines the interface for reading the flyer catalog.
// FetchAll performs the initial bulk fetch; FetchEvents returns incremental
// insert/update/delete notifications after the given cursor, plus the next
// cursor to resume from.
type CatalogClient interface {
	FetchAll(ctx context.Context) ([]domain.Deal, error)
	FetchEvents(ctx context.Context, cursor string) ([]catalog.Event, string, error)
}
