package entities

// CartLine pairs a vehicle with a purchase quantity. The line snapshots the
// vehicle at add time; the cart is its only writer.
type CartLine struct {
	Vehicle  Vehicle `json:"vehicle"`
	Quantity int     `json:"quantity"`
}

// Cart is a per-session shopping cart.
//
// Lines keep first-add order and hold at most one entry per vehicle ID:
// adding a vehicle that is already present increments its quantity instead of
// creating a duplicate line.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
}

// Add puts v into the cart, merging into an existing line when one exists.
func (c *Cart) Add(v Vehicle) {
	for i := range c.Lines {
		if c.Lines[i].Vehicle.ID == v.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Vehicle: v, Quantity: 1})
}

// Remove drops the line for vehicleID. Removing an absent line is a no-op,
// so repeated removals are safe.
func (c *Cart) Remove(vehicleID string) {
	for i := range c.Lines {
		if c.Lines[i].Vehicle.ID == vehicleID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line quantity to exactly quantity.
//
// Quantities below 1 are rejected as a documented no-op rather than an error
// or an implicit removal; use Remove to drop a line. Updating an unknown
// vehicle ID is equally a no-op. The return value reports whether the cart
// changed.
func (c *Cart) UpdateQuantity(vehicleID string, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.Lines {
		if c.Lines[i].Vehicle.ID == vehicleID {
			c.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalPrice is the sum of price times quantity over all lines, 0 when empty.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Vehicle.Price * float64(l.Quantity)
	}
	return total
}

// TotalCount is the sum of quantities over all lines, 0 when empty.
func (c *Cart) TotalCount() int {
	var count int
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}
