package payments

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"carmarket/internal/usecase/interfaces"
)

// SimulatedGateway approves every payment after a fixed processing delay.
// It is the default checkout gateway; no external provider is contacted.
type SimulatedGateway struct {
	delay time.Duration
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	log.Printf("[payment][gateway] simulated create start payload_len=%d delay=%s", len(requestPayload), g.delay)

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Printf("[payment][gateway] simulated create cancelled err=%v", ctx.Err())
			return "", "", nil, ctx.Err()
		case <-timer.C:
		}
	}

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] simulated response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] simulated create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}
