package delivery

import "github.com/Bamzhie/errander-api/internal/entities"

// validateStatusChange is the transition validator. It is a pure function:
// given the stored delivery and a raw request it either rejects the change or
// returns the normalized pending change for persistence.
//
// Validation order: status membership, fee positivity, terminal immutability,
// transport-state preconditions on the effective values, then transition
// legality. A request that resolves to no effective change is accepted as an
// idempotent no-op, including on terminal deliveries.
func validateStatusChange(current *entities.Delivery, req entities.DeliveryStatusRequest) (entities.DeliveryStatusChange, error) {
	change := entities.DeliveryStatusChange{}

	var requested *entities.DeliveryStatusType
	if req.Status != nil {
		status, ok := entities.ParseDeliveryStatus(*req.Status)
		if !ok {
			return change, ErrInvalidStatus
		}
		requested = &status
	}

	if req.Fee != nil && *req.Fee <= 0 {
		return change, ErrInvalidFee
	}

	statusChanged := requested != nil && *requested != current.Status
	erranderChanged := req.Errander.Set && !sameErrander(req.Errander.ID, current.ErranderID)
	feeChanged := req.Fee != nil && (current.Fee == nil || *current.Fee != *req.Fee)

	// Terminal deliveries are immutable. A no-op re-issue of the already
	// applied state is not a transition and passes through.
	if current.Status.IsTerminal() && (statusChanged || erranderChanged || feeChanged) {
		return change, ErrAlreadyTerminal
	}

	// Effective values: the requested value when present, the stored one
	// otherwise.
	effectiveErrander := current.ErranderID
	if req.Errander.Set {
		effectiveErrander = req.Errander.ID
	}
	effectiveFee := current.Fee
	if req.Fee != nil {
		effectiveFee = req.Fee
	}
	effectiveStatus := current.Status
	if requested != nil {
		effectiveStatus = *requested
	}

	if effectiveStatus == entities.DeliveryInTransit || effectiveStatus == entities.DeliveryDelivered {
		if effectiveErrander == nil {
			return change, ErrMissingErrander
		}
		if effectiveFee == nil || *effectiveFee <= 0 {
			return change, ErrMissingFee
		}
	}

	if statusChanged && *requested == entities.DeliveryConfirmed && current.Status != entities.DeliveryPending {
		return change, ErrIllegalTransition
	}

	if statusChanged {
		change.Status = requested
	}
	if erranderChanged {
		change.Errander = req.Errander
	}
	if feeChanged {
		change.Fee = req.Fee
	}
	change.EffectiveErranderID = effectiveErrander

	return change, nil
}

func sameErrander(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
