package interfaces

import (
	"context"

	"carmarket/internal/domain/entities"
)

// ICartRepository abstracts session-cart storage.
//
// Get returns a zero-value Cart (no lines) when the session has none yet;
// callers fill in the session ID and Save the result back.
type ICartRepository interface {
	Get(ctx context.Context, sessionID string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// IWishlistRepository abstracts per-session wishlists as insertion-ordered
// vehicle ID lists.
type IWishlistRepository interface {
	Get(ctx context.Context, sessionID string) ([]string, error)
	Save(ctx context.Context, sessionID string, vehicleIDs []string) error
}
