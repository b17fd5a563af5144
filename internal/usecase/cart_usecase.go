package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID       = errors.New("invalid session id")
	ErrCartEmpty              = errors.New("cart is empty")
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrPaymentGatewayFailed   = errors.New("payment gateway failed")
	ErrPaymentGatewayNotReady = errors.New("payment gateway not configured")
)

const defaultPaymentMethod = "credit-card"

// ICartUseCase exposes the session cart and its checkout.
//
// Mutations return the resulting cart so callers always render fresh
// totals. UpdateQuantity with a value below 1 or an unknown vehicle ID is a
// documented no-op: the unchanged cart comes back with a nil error.
type ICartUseCase interface {
	Get(ctx context.Context, sessionID string) (entities.Cart, error)
	AddItem(ctx context.Context, sessionID, vehicleID string) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, vehicleID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, sessionID, vehicleID string) (entities.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, sessionID, paymentMethod string) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	Orders(ctx context.Context, sessionID string) ([]entities.Order, error)
}

// CartUseCase serializes mutations per session: every Get→mutate→Save
// sequence (and the whole checkout) runs under the session's lock, so
// concurrent requests for one session never lose updates.
type CartUseCase struct {
	carts    interfaces.ICartRepository
	vehicles interfaces.IVehicleRepository
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPaymentGateway
	locks    *sessionLocks
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(carts interfaces.ICartRepository, vehicles interfaces.IVehicleRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *CartUseCase {
	return &CartUseCase{carts: carts, vehicles: vehicles, orders: orders, gateway: gateway, locks: newSessionLocks()}
}

func (u *CartUseCase) Get(ctx context.Context, sessionID string) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidSessionID
	}

	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.SessionID = sessionID
	return cart, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, sessionID, vehicleID string) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidSessionID
	}
	defer u.locks.lock(sessionID)()

	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}

	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Cart{}, ErrInvalidVehicleID
	}
	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Cart{}, err
	}
	if v.ID == "" {
		return entities.Cart{}, ErrVehicleNotFound
	}

	cart.Add(v)
	if err := u.carts.Save(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) UpdateQuantity(ctx context.Context, sessionID, vehicleID string, quantity int) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidSessionID
	}
	defer u.locks.lock(sessionID)()

	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}

	// Guard-rejected mutations are silent by design; only persist real
	// changes.
	if cart.UpdateQuantity(strings.TrimSpace(vehicleID), quantity) {
		if err := u.carts.Save(ctx, cart); err != nil {
			return entities.Cart{}, err
		}
	}
	return cart, nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, sessionID, vehicleID string) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidSessionID
	}
	defer u.locks.lock(sessionID)()

	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}

	cart.Remove(strings.TrimSpace(vehicleID))
	if err := u.carts.Save(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	defer u.locks.lock(sessionID)()

	return u.carts.Delete(ctx, sessionID)
}

// Checkout processes the session cart through the payment gateway, persists
// an order snapshot and clears the cart.
//
// The gateway call carries the context, so a caller that goes away mid-delay
// aborts the payment before any state is written.
//
// The session lock is held for the whole checkout: the cart is frozen while
// the payment is in flight, so a concurrent add can neither slip into the
// snapshot nor survive the clear.
func (u *CartUseCase) Checkout(ctx context.Context, sessionID, paymentMethod string) (entities.Order, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Order{}, ErrInvalidSessionID
	}
	defer u.locks.lock(sessionID)()

	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.Order{}, err
	}
	if len(cart.Lines) == 0 {
		log.Printf("[checkout][usecase] rejected empty cart session_id=%s", sessionID)
		return entities.Order{}, ErrCartEmpty
	}
	if u.gateway == nil {
		return entities.Order{}, ErrPaymentGatewayNotReady
	}

	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	orderID := uuid.NewString()
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": cart.TotalPrice(),
		"description":        fmt.Sprintf("Marketplace order, %d vehicle(s)", cart.TotalCount()),
		"external_reference": orderID,
		"payment_method_id":  paymentMethod,
	})
	if err != nil {
		return entities.Order{}, err
	}

	log.Printf("[checkout][usecase] calling payment gateway session_id=%s order_id=%s amount=%.2f", cart.SessionID, orderID, cart.TotalPrice())
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[checkout][usecase] payment gateway failed session_id=%s err=%v", cart.SessionID, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	log.Printf("[checkout][usecase] payment gateway success session_id=%s provider_payment_id=%s provider_status=%s", cart.SessionID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[checkout][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	status := entities.OrderStatusApproved
	if providerStatus != "" && providerStatus != "approved" {
		status = entities.OrderStatusDeclined
	}

	order := entities.Order{
		ID:                 orderID,
		SessionID:          cart.SessionID,
		Lines:              cart.Lines,
		TotalPrice:         cart.TotalPrice(),
		TotalCount:         cart.TotalCount(),
		PaymentMethod:      paymentMethod,
		ProviderPaymentID:  providerPaymentID,
		Status:             status,
		CreatedAt:          time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	if err := u.carts.Delete(ctx, cart.SessionID); err != nil {
		return entities.Order{}, err
	}
	log.Printf("[checkout][usecase] order created order_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *CartUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// Orders returns the session's checkout history in creation order. A session
// that never checked out gets an empty list.
func (u *CartUseCase) Orders(ctx context.Context, sessionID string) ([]entities.Order, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return u.orders.ListBySessionID(ctx, sessionID)
}
