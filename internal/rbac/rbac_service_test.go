package rbac_test

import (
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		role     domain.Role
		resource string
		action   string
		want     bool
	}{
		{domain.RoleEmployee, "leave", "create", true},
		{domain.RoleEmployee, "leave", "read", true},
		{domain.RoleEmployee, "leave", "cancel", true},
		{domain.RoleEmployee, "balance", "read", true},
		{domain.RoleEmployee, "leave", "manager_decide", false},
		{domain.RoleEmployee, "leave", "hr_decide", false},
		{domain.RoleEmployee, "balance", "allocate", false},

		// Managers inherit employee permissions plus their own gate.
		{domain.RoleManager, "leave", "manager_decide", true},
		{domain.RoleManager, "leave", "create", true},
		{domain.RoleManager, "leave", "hr_decide", false},
		{domain.RoleManager, "balance", "allocate", false},

		// HR decides the final step and manages allocations, but does
		// not take the manager step.
		{domain.RoleHR, "leave", "hr_decide", true},
		{domain.RoleHR, "balance", "allocate", true},
		{domain.RoleHR, "leave", "read", true},
		{domain.RoleHR, "leave", "manager_decide", false},
	}

	for _, tc := range cases {
		got, err := svc.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}

func TestService_Enforce_UnknownRole(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	ok, err := svc.Enforce(domain.Role("CONTRACTOR"), "leave", "create")
	assert.NoError(t, err)
	assert.False(t, ok)
}
