package leave

import (
	"go-leave/internal/domain"

	leaveerrors "go-leave/internal/leave/errors"
)

const (
	StatusPending         = "PENDING"
	StatusManagerApproved = "MANAGER_APPROVED"
	StatusApproved        = "APPROVED"
	StatusRejected        = "REJECTED"
	StatusCancelled       = "CANCELLED"
)

const (
	SessionFullDay    = "FULL_DAY"
	SessionFirstHalf  = "FIRST_HALF"
	SessionSecondHalf = "SECOND_HALF"
)

type Event string

const (
	EventSubmitted      Event = "submitted"
	EventManagerApprove Event = "manager_approve"
	EventManagerReject  Event = "manager_reject"
	EventHRApprove      Event = "hr_approve"
	EventHRReject       Event = "hr_reject"
	EventCancel         Event = "cancel"
)

type LedgerEffect int

const (
	EffectNone LedgerEffect = iota
	EffectRelease
	EffectCommit
)

type transitionRule struct {
	To             string
	Effect         LedgerEffect
	RequiresReason bool
}

// The full transition table. Any (status, event) pair not listed here
// is illegal, which also makes APPROVED, REJECTED and CANCELLED
// terminal.
var transitionTable = map[string]map[Event]transitionRule{
	StatusPending: {
		EventManagerApprove: {To: StatusManagerApproved, Effect: EffectNone},
		EventManagerReject:  {To: StatusRejected, Effect: EffectRelease, RequiresReason: true},
		EventCancel:         {To: StatusCancelled, Effect: EffectRelease},
	},
	StatusManagerApproved: {
		EventHRApprove: {To: StatusApproved, Effect: EffectCommit},
		EventHRReject:  {To: StatusRejected, Effect: EffectRelease, RequiresReason: true},
		EventCancel:    {To: StatusCancelled, Effect: EffectRelease},
	},
}

// Role required per event, independent of the request state: an actor
// without the right role is told so even when the transition would be
// illegal anyway.
var eventRoles = map[Event]domain.Role{
	EventManagerApprove: domain.RoleManager,
	EventManagerReject:  domain.RoleManager,
	EventHRApprove:      domain.RoleHR,
	EventHRReject:       domain.RoleHR,
	EventCancel:         domain.RoleEmployee,
}

// authorizeEvent is the central role gate. Checked before anything
// else; cancel additionally requires ownership.
func authorizeEvent(actor domain.Actor, event Event, l *LeaveRequest) error {
	required, ok := eventRoles[event]
	if !ok || actor.Role != required {
		return leaveerrors.ErrUnauthorizedActor
	}
	if event == EventCancel && actor.ID != l.EmployeeID.String() {
		return leaveerrors.ErrUnauthorizedActor
	}
	return nil
}

func resolveTransition(status string, event Event) (transitionRule, error) {
	rules, ok := transitionTable[status]
	if !ok {
		return transitionRule{}, leaveerrors.ErrInvalidStatusTransition
	}
	rule, ok := rules[event]
	if !ok {
		return transitionRule{}, leaveerrors.ErrInvalidStatusTransition
	}
	return rule, nil
}

func IsTerminal(status string) bool {
	_, ok := transitionTable[status]
	return !ok
}
