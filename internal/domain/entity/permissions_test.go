package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffAccount_DeactivatedDeniedEverything(t *testing.T) {
	account := &StaffAccount{
		Role:        RoleAdmin,
		IsActive:    false,
		Permissions: RolePreset(RoleAdmin),
	}

	paths := []string{
		"orders.view", "orders.update_status", "orders.cancel", "orders.refund",
		"menu.view", "menu.add_item", "menu.edit_item", "menu.delete_item", "menu.toggle_availability",
		"reports.view_daily", "reports.view_analytics", "reports.export_data",
		"staff_management",
	}
	for _, path := range paths {
		assert.False(t, account.CanAccess(path), path)
		assert.False(t, account.CanAccessRoute(path), path)
	}
}

func TestStaffAccount_AdminRouteOverride(t *testing.T) {
	account := &StaffAccount{
		Role:     RoleAdmin,
		IsActive: true,
		// deliberately stripped flags: route checks still pass on role
		Permissions: Permissions{},
	}

	assert.True(t, account.CanAccessRoute("staff_management"))
	assert.True(t, account.CanAccessRoute("menu.delete_item"))

	// the fine-grained check has no admin override
	assert.False(t, account.CanAccess("menu.delete_item"))
}

func TestRolePreset_MatchesDashboardBaselines(t *testing.T) {
	admin := RolePreset(RoleAdmin)
	assert.True(t, admin.StaffManagement)
	assert.True(t, admin.Orders.Refund)
	assert.True(t, admin.Reports.ExportData)

	manager := RolePreset(RoleManager)
	assert.True(t, manager.Orders.Cancel)
	assert.False(t, manager.Orders.Refund)
	assert.False(t, manager.Menu.DeleteItem)
	assert.False(t, manager.Reports.ExportData)
	assert.False(t, manager.StaffManagement)

	waiter := RolePreset(RoleWaiter)
	assert.True(t, waiter.Orders.UpdateStatus)
	assert.True(t, waiter.Menu.ToggleAvailability)
	assert.False(t, waiter.Menu.AddItem)
	assert.False(t, waiter.Reports.ViewDaily)

	kitchen := RolePreset(RoleKitchen)
	assert.True(t, kitchen.Orders.UpdateStatus)
	assert.False(t, kitchen.Menu.ToggleAvailability)
}

func TestRolePreset_BulkOverwrite(t *testing.T) {
	perms := RolePreset(RoleAdmin)
	perms = RolePreset(RoleKitchen)

	// nothing from the previous document survives the preset
	assert.Equal(t, RolePreset(RoleKitchen), perms)
	assert.False(t, perms.StaffManagement)
	assert.False(t, perms.Reports.ViewDaily)
}

func TestPermissions_SetLeaf_SingleFlagOnly(t *testing.T) {
	perms := RolePreset(RoleWaiter)
	before := perms

	require.True(t, perms.SetLeaf("menu.edit_item", true))
	assert.True(t, perms.Leaf("menu.edit_item"))

	// only that flag changed
	perms.Menu.EditItem = before.Menu.EditItem
	assert.Equal(t, before, perms)

	assert.False(t, perms.SetLeaf("menu.no_such_flag", true))
	assert.False(t, perms.Leaf("menu.no_such_flag"))
}

func TestStaffRole_IsValid(t *testing.T) {
	for _, role := range []StaffRole{RoleAdmin, RoleManager, RoleWaiter, RoleKitchen} {
		assert.True(t, role.IsValid())
	}
	assert.False(t, StaffRole("barista").IsValid())
}
