package services

import (
	"testing"

	"github.com/kodraiti-design/eagles-transportes/constants"
	userModel "github.com/kodraiti-design/eagles-transportes/models/user"

	"github.com/stretchr/testify/assert"
)

func TestParseCapabilities(t *testing.T) {
	set := ParseCapabilities("create_freight, edit_freight ,assign_driver")
	assert.Len(t, set, 3)
	assert.True(t, set.Has("create_freight"))
	assert.True(t, set.Has("edit_freight"))
	assert.True(t, set.Has("assign_driver"))
	assert.False(t, set.Has("delete_freight"))

	assert.Empty(t, ParseCapabilities(""))
	assert.Empty(t, ParseCapabilities(" , , "))
}

func TestAdminBypassesCapabilityCheck(t *testing.T) {
	empty := NewCapabilitySet()

	assert.True(t, HasCapability(userModel.RoleAdmin, empty, "create_freight"))
	assert.True(t, HasCapability(userModel.RoleAdmin, empty, "manage_users"))
	// Even capabilities no permission list enumerates.
	assert.True(t, HasCapability(userModel.RoleAdmin, empty, "anything_at_all"))
}

func TestOperatorRequiresExactMembership(t *testing.T) {
	set := NewCapabilitySet("create_freight", "assign_driver")

	assert.True(t, HasCapability(userModel.RoleOperator, set, "create_freight"))
	assert.True(t, HasCapability(userModel.RoleOperator, set, "assign_driver"))
	assert.False(t, HasCapability(userModel.RoleOperator, set, "delete_freight"))
	assert.False(t, HasCapability(userModel.RoleOperator, set, "manage_users"))
}

func TestUnknownRoleHasNoOverride(t *testing.T) {
	set := NewCapabilitySet("create_freight")
	assert.True(t, HasCapability(userModel.Role("VIEWER"), set, "create_freight"))
	assert.False(t, HasCapability(userModel.Role("VIEWER"), set, "manage_users"))
}

func TestValidateCapabilities(t *testing.T) {
	known := constants.AllPermissions()

	assert.NoError(t, ValidateCapabilities("", known))
	assert.NoError(t, ValidateCapabilities("create_freight,assign_driver", known))
	assert.NoError(t, ValidateCapabilities(" manage_users , view_dashboard ", known))

	err := ValidateCapabilities("create_freight,launch_rocket", known)
	assert.ErrorContains(t, err, "launch_rocket")
}

func TestAllPermissionsCoversEveryGroup(t *testing.T) {
	all := NewCapabilitySet(constants.AllPermissions()...)

	for _, group := range [][]string{
		constants.FreightOperationPermissions,
		constants.RegistryPermissions,
		constants.DeletionPermissions,
		constants.BackOfficePermissions,
	} {
		for _, p := range group {
			assert.True(t, all.Has(Capability(p)), "missing %s", p)
		}
	}
}

func TestCapabilitySetStrings(t *testing.T) {
	set := NewCapabilitySet("a", "b")
	strs := set.Strings()
	assert.ElementsMatch(t, []string{"a", "b"}, strs)
}
