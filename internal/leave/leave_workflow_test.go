package leave

import (
	"testing"

	"go-leave/internal/domain"
	leaveerrors "go-leave/internal/leave/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var allStatuses = []string{
	StatusPending,
	StatusManagerApproved,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

var allEvents = []Event{
	EventManagerApprove,
	EventManagerReject,
	EventHRApprove,
	EventHRReject,
	EventCancel,
}

func TestResolveTransition_LegalPairs(t *testing.T) {
	cases := []struct {
		status string
		event  Event
		to     string
		effect LedgerEffect
		reason bool
	}{
		{StatusPending, EventManagerApprove, StatusManagerApproved, EffectNone, false},
		{StatusPending, EventManagerReject, StatusRejected, EffectRelease, true},
		{StatusPending, EventCancel, StatusCancelled, EffectRelease, false},
		{StatusManagerApproved, EventHRApprove, StatusApproved, EffectCommit, false},
		{StatusManagerApproved, EventHRReject, StatusRejected, EffectRelease, true},
		{StatusManagerApproved, EventCancel, StatusCancelled, EffectRelease, false},
	}

	for _, tc := range cases {
		rule, err := resolveTransition(tc.status, tc.event)
		assert.NoError(t, err, "%s + %s", tc.status, tc.event)
		assert.Equal(t, tc.to, rule.To)
		assert.Equal(t, tc.effect, rule.Effect)
		assert.Equal(t, tc.reason, rule.RequiresReason)
	}
}

// Every (status, event) pair outside the table must fail, which is what
// makes the terminal statuses terminal.
func TestResolveTransition_IllegalPairsAreExhaustive(t *testing.T) {
	legal := map[string]map[Event]bool{
		StatusPending:         {EventManagerApprove: true, EventManagerReject: true, EventCancel: true},
		StatusManagerApproved: {EventHRApprove: true, EventHRReject: true, EventCancel: true},
	}

	for _, status := range allStatuses {
		for _, event := range allEvents {
			if legal[status][event] {
				continue
			}
			_, err := resolveTransition(status, event)
			assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition, "%s + %s", status, event)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusManagerApproved))
	assert.True(t, IsTerminal(StatusApproved))
	assert.True(t, IsTerminal(StatusRejected))
	assert.True(t, IsTerminal(StatusCancelled))
}

func TestAuthorizeEvent_RoleGate(t *testing.T) {
	owner := uuid.New()
	l := &LeaveRequest{ID: uuid.New(), EmployeeID: owner, Status: StatusPending}

	allowed := map[Event]domain.Role{
		EventManagerApprove: domain.RoleManager,
		EventManagerReject:  domain.RoleManager,
		EventHRApprove:      domain.RoleHR,
		EventHRReject:       domain.RoleHR,
		EventCancel:         domain.RoleEmployee,
	}
	roles := []domain.Role{domain.RoleEmployee, domain.RoleManager, domain.RoleHR}

	for event, want := range allowed {
		for _, role := range roles {
			actor := domain.Actor{ID: owner.String(), Role: role}
			err := authorizeEvent(actor, event, l)
			if role == want {
				assert.NoError(t, err, "%s as %s", event, role)
			} else {
				assert.ErrorIs(t, err, leaveerrors.ErrUnauthorizedActor, "%s as %s", event, role)
			}
		}
	}
}

func TestAuthorizeEvent_CancelRequiresOwnership(t *testing.T) {
	owner := uuid.New()
	l := &LeaveRequest{ID: uuid.New(), EmployeeID: owner, Status: StatusPending}

	err := authorizeEvent(domain.Actor{ID: owner.String(), Role: domain.RoleEmployee}, EventCancel, l)
	assert.NoError(t, err)

	other := domain.Actor{ID: uuid.New().String(), Role: domain.RoleEmployee}
	err = authorizeEvent(other, EventCancel, l)
	assert.ErrorIs(t, err, leaveerrors.ErrUnauthorizedActor)
}

// The role gate is checked before state, so an unauthorized actor gets
// the same answer on a terminal request as on a live one.
func TestAuthorizeEvent_IndependentOfStatus(t *testing.T) {
	owner := uuid.New()
	manager := domain.Actor{ID: uuid.New().String(), Role: domain.RoleManager}

	for _, status := range allStatuses {
		l := &LeaveRequest{ID: uuid.New(), EmployeeID: owner, Status: status}
		assert.NoError(t, authorizeEvent(manager, EventManagerApprove, l), status)
	}
}
