package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusRejected  OrderStatus = "Rejected"
	OrderStatusStarted   OrderStatus = "Started"
	OrderStatusCompleted OrderStatus = "Completed"
)

// Phase distinguishes the request machine (vendor triage) from the progress
// machine (fulfillment). Accepted belongs to both: it is terminal for triage
// and initial for progress.
type Phase string

const (
	PhaseRequest  Phase = "request"
	PhaseProgress Phase = "progress"
)

var phaseStatuses = map[Phase]map[OrderStatus]struct{}{
	PhaseRequest: {
		OrderStatusPending:  {},
		OrderStatusAccepted: {},
		OrderStatusRejected: {},
	},
	PhaseProgress: {
		OrderStatusAccepted:  {},
		OrderStatusStarted:   {},
		OrderStatusCompleted: {},
	},
}

func ValidForPhase(p Phase, s OrderStatus) bool {
	set, ok := phaseStatuses[p]
	if !ok {
		return false
	}
	_, ok = set[s]
	return ok
}

// allowedTransitions covers the whole lifecycle across both phases.
var allowedTransitions = map[OrderStatus]map[OrderStatus]struct{}{
	OrderStatusPending: {
		OrderStatusAccepted: {},
		OrderStatusRejected: {},
	},
	OrderStatusAccepted: {
		OrderStatusStarted: {},
	},
	OrderStatusStarted: {
		OrderStatusCompleted: {},
	},
	OrderStatusRejected:  {},
	OrderStatusCompleted: {},
}

func CanTransition(from, to OrderStatus) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// NextStatus returns the single successor in the progress machine. The second
// return is false for terminal and unknown statuses.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	switch s {
	case OrderStatusAccepted:
		return OrderStatusStarted, true
	case OrderStatusStarted:
		return OrderStatusCompleted, true
	default:
		return "", false
	}
}

func CanAdvance(s OrderStatus) bool {
	_, ok := NextStatus(s)
	return ok
}

// RequiresOTP reports whether moving to target needs a verified one-time
// passcode. Completion always does; starting does only for hourly services.
func RequiresOTP(orderType OrderType, target OrderStatus, hourly bool) bool {
	if target == OrderStatusCompleted {
		return true
	}
	if target == OrderStatusStarted && orderType == OrderTypeService && hourly {
		return true
	}
	return false
}
