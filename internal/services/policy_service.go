package services

import (
	"github.com/casbin/casbin/v2"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// CasbinEnforcerWrapper adapts *casbin.Enforcer to domain.CasbinEnforcer so
// the policy service and the API middleware can run against a mock enforcer
// in tests.
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) RemovePolicy(params ...interface{}) (bool, error) {
	return w.enforcer.RemovePolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

func (w *CasbinEnforcerWrapper) SavePolicy() error {
	return w.enforcer.SavePolicy()
}

// PolicyServiceImpl stores route permissions in Casbin, keyed by role
// subject. The typed Role parameter keeps arbitrary subject strings out of
// the policy store: only the two real roles can ever hold a grant.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a policy service backed by the real enforcer.
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: NewCasbinEnforcerWrapper(enforcer),
	}
}

// NewPolicyServiceWithEnforcer accepts any domain.CasbinEnforcer, which is
// how tests inject a mock.
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: enforcer,
	}
}

// AddPolicy grants role access to resource for the given action and persists
// the change.
func (p *PolicyServiceImpl) AddPolicy(role domain.Role, resource, action string) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	if _, err := p.enforcer.AddPolicy(role.Subject(), resource, action); err != nil {
		return err
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy revokes a grant and persists the change.
func (p *PolicyServiceImpl) RemovePolicy(role domain.Role, resource, action string) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	if _, err := p.enforcer.RemovePolicy(role.Subject(), resource, action); err != nil {
		return err
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission reports whether role may perform action on resource. A
// role-less account holds no grants, so the store is not consulted.
func (p *PolicyServiceImpl) CheckPermission(role domain.Role, resource, action string) (bool, error) {
	if !role.Valid() {
		return false, nil
	}
	return p.enforcer.Enforce(role.Subject(), resource, action)
}

// GetPolicies returns every stored grant as [subject, resource, action].
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, _ := p.enforcer.GetPolicy()
	return policies
}
