package interfaces

import (
	"context"

	"carmarket/internal/domain/wizard"
)

// IDraftRepository abstracts storage for in-progress wizard drafts. Drafts
// are session-lifetime state: they live in memory and are deleted on
// successful submission.
//
// GetByID returns a zero-value Draft with a nil error when the ID is
// unknown.
type IDraftRepository interface {
	Save(ctx context.Context, d wizard.Draft) error
	GetByID(ctx context.Context, id string) (wizard.Draft, error)
	Delete(ctx context.Context, id string) error
}
