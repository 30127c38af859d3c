package seed

import "time"

// orderSchedule derives an order's status and delivery dates from its order
// date relative to generation time. The policy is date-driven and recomputed
// per order, not a persisted state machine:
//
//   - future or very recent (< 2 days old) orders are pending with an estimate
//   - older orders are 80% delivered, 10% pending, 10% cancelled
//
// A delivered order's delivery date is the estimate shifted by -2..+5 days,
// but never in the future; when the shift would land past now the delivery
// date stays null even though the status reads delivered.
func (g *Generator) orderSchedule(orderDate time.Time) (OrderStatus, *time.Time, *time.Time) {
	estimate := orderDate.AddDate(0, 0, g.intBetween(3, 14))

	if orderDate.After(g.now) {
		return StatusPending, &estimate, nil
	}

	daysSinceOrder := int(g.now.Sub(orderDate).Hours() / 24)
	if daysSinceOrder < 2 {
		return StatusPending, &estimate, nil
	}

	switch r := g.rng.Float64(); {
	case r < 0.8:
		delivered := estimate.AddDate(0, 0, g.intBetween(-2, 5))
		if delivered.After(g.now) {
			return StatusDelivered, &estimate, nil
		}
		return StatusDelivered, &estimate, &delivered
	case r < 0.9:
		return StatusPending, &estimate, nil
	default:
		return StatusCancelled, nil, nil
	}
}
