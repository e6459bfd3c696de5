package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
)

func TestRBACService_HasElevatedAccess(t *testing.T) {
	svc, err := NewServiceForRoles([]string{"HRD"})
	assert.NoError(t, err)

	assert.True(t, svc.HasElevatedAccess("HRD"))
	assert.False(t, svc.HasElevatedAccess("STAFF"))
	assert.False(t, svc.HasElevatedAccess("MANAGER"))
	assert.False(t, svc.HasElevatedAccess(""))
}

func TestRBACService_NormalizesConfiguredRoles(t *testing.T) {
	svc, err := NewServiceForRoles([]string{" hrd ", "", "manager"})
	assert.NoError(t, err)

	assert.True(t, svc.HasElevatedAccess("HRD"))
	assert.True(t, svc.HasElevatedAccess("MANAGER"))
}

func TestRBACService_NormalizesCheckedRole(t *testing.T) {
	svc, err := NewServiceForRoles([]string{"HRD"})
	assert.NoError(t, err)

	assert.True(t, svc.HasElevatedAccess("hrd"))
	assert.True(t, svc.HasElevatedAccess(" Hrd "))
	assert.False(t, svc.HasElevatedAccess("  "))
	assert.False(t, svc.HasElevatedAccess("staff"))
}

func TestRBACService_NoRoles(t *testing.T) {
	svc, err := NewServiceForRoles(nil)
	assert.NoError(t, err)

	assert.False(t, svc.HasElevatedAccess("HRD"))
}

func TestRBACService_OtherPolicyIgnored(t *testing.T) {
	m, err := model.NewModelFromString(`[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)
	_, err = e.AddPolicy("HRD", "payroll", "read_all")
	assert.NoError(t, err)

	svc := NewService(e)
	assert.False(t, svc.HasElevatedAccess("HRD"))
}
