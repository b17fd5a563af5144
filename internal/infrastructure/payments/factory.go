package payments

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"carmarket/internal/usecase/interfaces"
)

const defaultCheckoutDelay = 1500 * time.Millisecond

// NewGatewayFromEnv selects the checkout payment gateway.
//
//	PAYMENT_GATEWAY=simulated   -> SimulatedGateway (default)
//	PAYMENT_GATEWAY=mercadopago -> MercadoPagoGateway (needs MERCADOPAGO_ACCESS_TOKEN)
//
// CHECKOUT_DELAY_MS tunes the simulated processing delay.
func NewGatewayFromEnv() (interfaces.IPaymentGateway, error) {
	gateway := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY")))

	switch gateway {
	case "mercadopago":
		return NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	case "", "simulated":
		return NewSimulatedGateway(checkoutDelayFromEnv()), nil
	default:
		log.Printf("[payment][gateway] unknown PAYMENT_GATEWAY %q, falling back to simulated", gateway)
		return NewSimulatedGateway(checkoutDelayFromEnv()), nil
	}
}

func checkoutDelayFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("CHECKOUT_DELAY_MS"))
	if raw == "" {
		return defaultCheckoutDelay
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("[payment][gateway] invalid CHECKOUT_DELAY_MS %q, using default", raw)
		return defaultCheckoutDelay
	}
	return time.Duration(ms) * time.Millisecond
}
