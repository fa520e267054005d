package delivery

import "github.com/Bamzhie/errander-api/internal/entities"

// planErranderMutations is the assignment coordinator. It computes the
// availability side effects a validated change requires, without touching
// storage itself.
//
// Policy: an errander picked up by the change (explicit assignment, or the
// delivery moving into IN_TRANSIT) goes ON_DELIVERY; a previously assigned
// errander is released back to APPROVED when the assignment is cleared,
// replaced, or the delivery reaches any terminal status. Fee-only changes
// produce no mutations.
func planErranderMutations(before *entities.Delivery, change entities.DeliveryStatusChange) []entities.ErranderMutation {
	previous := before.ErranderID
	next := previous
	if change.Errander.Set {
		next = change.Errander.ID
	}

	terminal := change.Status != nil && change.Status.IsTerminal()
	cleared := change.Errander.Set && change.Errander.ID == nil

	var mutations []entities.ErranderMutation

	if previous != nil {
		replaced := next != nil && *next != *previous
		if cleared || replaced || terminal {
			mutations = append(mutations, entities.ErranderMutation{
				ErranderID: *previous,
				Status:     entities.ErranderApproved,
			})
		}
	}

	if next != nil && !terminal {
		newlyAssigned := change.Errander.Set && (previous == nil || *next != *previous)
		movesInTransit := change.Status != nil && *change.Status == entities.DeliveryInTransit
		if newlyAssigned || movesInTransit {
			mutations = append(mutations, entities.ErranderMutation{
				ErranderID: *next,
				Status:     entities.ErranderOnDelivery,
			})
		}
	}

	return mutations
}
