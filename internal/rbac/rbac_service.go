package rbac

import (
	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Route-level permissions. The approval workflow re-checks the acting
// role itself; these policies only keep obviously unauthorized traffic
// off the handlers.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type policy struct {
	role     domain.Role
	resource string
	action   string
}

var defaultPolicies = []policy{
	{domain.RoleEmployee, "leave", "create"},
	{domain.RoleEmployee, "leave", "read"},
	{domain.RoleEmployee, "leave", "cancel"},
	{domain.RoleEmployee, "balance", "read"},
	{domain.RoleManager, "leave", "manager_decide"},
	{domain.RoleHR, "leave", "hr_decide"},
	{domain.RoleHR, "balance", "allocate"},
}

// Role inheritance: MANAGER and HR hold every EMPLOYEE permission.
var defaultGroupings = [][2]domain.Role{
	{domain.RoleManager, domain.RoleEmployee},
	{domain.RoleHR, domain.RoleEmployee},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(string(p.role), p.resource, p.action); err != nil {
			return nil, err
		}
	}
	for _, g := range defaultGroupings {
		if _, err := enforcer.AddGroupingPolicy(string(g[0]), string(g[1])); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role domain.Role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(string(role), resource, action)
}
