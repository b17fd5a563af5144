package usecase

import (
	"context"
	"strings"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"
)

// IWishlistUseCase exposes the session wishlist: an insertion-ordered set of
// saved vehicles.
type IWishlistUseCase interface {
	List(ctx context.Context, sessionID string) ([]entities.Vehicle, error)
	Add(ctx context.Context, sessionID, vehicleID string) error
	Remove(ctx context.Context, sessionID, vehicleID string) error
}

// WishlistUseCase serializes mutations per session, like the cart: the
// get-then-save inside Add and Remove runs under the session's lock.
type WishlistUseCase struct {
	wishlists interfaces.IWishlistRepository
	vehicles  interfaces.IVehicleRepository
	locks     *sessionLocks
}

var _ IWishlistUseCase = (*WishlistUseCase)(nil)

func NewWishlistUseCase(wishlists interfaces.IWishlistRepository, vehicles interfaces.IVehicleRepository) *WishlistUseCase {
	return &WishlistUseCase{wishlists: wishlists, vehicles: vehicles, locks: newSessionLocks()}
}

// List resolves the saved IDs against the catalog. IDs that no longer
// resolve are silently dropped so a stale wishlist never breaks rendering.
func (u *WishlistUseCase) List(ctx context.Context, sessionID string) ([]entities.Vehicle, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	ids, err := u.wishlists.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Vehicle, 0, len(ids))
	for _, id := range ids {
		v, err := u.vehicles.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if v.ID != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// Add saves a vehicle to the wishlist. Saving one that is already present is
// a no-op.
func (u *WishlistUseCase) Add(ctx context.Context, sessionID, vehicleID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return ErrInvalidVehicleID
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if v.ID == "" {
		return ErrVehicleNotFound
	}

	defer u.locks.lock(sessionID)()

	ids, err := u.wishlists.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == vehicleID {
			return nil
		}
	}
	return u.wishlists.Save(ctx, sessionID, append(ids, vehicleID))
}

// Remove drops a vehicle from the wishlist; absent IDs are a no-op.
func (u *WishlistUseCase) Remove(ctx context.Context, sessionID, vehicleID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	vehicleID = strings.TrimSpace(vehicleID)

	defer u.locks.lock(sessionID)()

	ids, err := u.wishlists.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != vehicleID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return u.wishlists.Save(ctx, sessionID, kept)
}
