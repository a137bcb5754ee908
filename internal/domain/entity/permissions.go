package entity

import (
	"time"
)

// StaffRole is the named role of a staff account. A role seeds the
// account's permissions but does not constrain later per-flag edits.
type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleManager StaffRole = "manager"
	RoleWaiter  StaffRole = "waiter"
	RoleKitchen StaffRole = "kitchen"
)

// String returns the string representation of the StaffRole.
func (r StaffRole) String() string {
	return string(r)
}

// IsValid checks if the StaffRole is a valid value.
func (r StaffRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleWaiter, RoleKitchen:
		return true
	default:
		return false
	}
}

// OrderPermissions are the order-module capabilities. The cancel and
// refund flags are declared capabilities with no wired operation yet;
// they are carried for forward compatibility, not invented behavior.
type OrderPermissions struct {
	View         bool `json:"view" firestore:"view"`
	UpdateStatus bool `json:"update_status" firestore:"update_status"`
	Cancel       bool `json:"cancel" firestore:"cancel"`
	Refund       bool `json:"refund" firestore:"refund"`
}

// MenuPermissions are the catalog-module capabilities.
type MenuPermissions struct {
	View               bool `json:"view" firestore:"view"`
	AddItem            bool `json:"add_item" firestore:"add_item"`
	EditItem           bool `json:"edit_item" firestore:"edit_item"`
	DeleteItem         bool `json:"delete_item" firestore:"delete_item"`
	ToggleAvailability bool `json:"toggle_availability" firestore:"toggle_availability"`
}

// ReportPermissions are the reporting capabilities.
type ReportPermissions struct {
	ViewDaily     bool `json:"view_daily" firestore:"view_daily"`
	ViewAnalytics bool `json:"view_analytics" firestore:"view_analytics"`
	ExportData    bool `json:"export_data" firestore:"export_data"`
}

// Permissions is the complete capability document of a staff account.
type Permissions struct {
	Orders          OrderPermissions  `json:"orders" firestore:"orders"`
	Menu            MenuPermissions   `json:"menu" firestore:"menu"`
	Reports         ReportPermissions `json:"reports" firestore:"reports"`
	StaffManagement bool              `json:"staff_management" firestore:"staff_management"`
}

// Leaf resolves a capability by its dot-path, e.g. "menu.edit_item".
// Unknown paths resolve to false.
func (p Permissions) Leaf(path string) bool {
	switch path {
	case "orders.view":
		return p.Orders.View
	case "orders.update_status":
		return p.Orders.UpdateStatus
	case "orders.cancel":
		return p.Orders.Cancel
	case "orders.refund":
		return p.Orders.Refund
	case "menu.view":
		return p.Menu.View
	case "menu.add_item":
		return p.Menu.AddItem
	case "menu.edit_item":
		return p.Menu.EditItem
	case "menu.delete_item":
		return p.Menu.DeleteItem
	case "menu.toggle_availability":
		return p.Menu.ToggleAvailability
	case "reports.view_daily":
		return p.Reports.ViewDaily
	case "reports.view_analytics":
		return p.Reports.ViewAnalytics
	case "reports.export_data":
		return p.Reports.ExportData
	case "staff_management":
		return p.StaffManagement
	default:
		return false
	}
}

// SetLeaf flips one capability by dot-path, leaving every other flag
// untouched. Returns false for unknown paths.
func (p *Permissions) SetLeaf(path string, value bool) bool {
	switch path {
	case "orders.view":
		p.Orders.View = value
	case "orders.update_status":
		p.Orders.UpdateStatus = value
	case "orders.cancel":
		p.Orders.Cancel = value
	case "orders.refund":
		p.Orders.Refund = value
	case "menu.view":
		p.Menu.View = value
	case "menu.add_item":
		p.Menu.AddItem = value
	case "menu.edit_item":
		p.Menu.EditItem = value
	case "menu.delete_item":
		p.Menu.DeleteItem = value
	case "menu.toggle_availability":
		p.Menu.ToggleAvailability = value
	case "reports.view_daily":
		p.Reports.ViewDaily = value
	case "reports.view_analytics":
		p.Reports.ViewAnalytics = value
	case "reports.export_data":
		p.Reports.ExportData = value
	case "staff_management":
		p.StaffManagement = value
	default:
		return false
	}

	return true
}

// RolePreset returns the complete baseline permission document for a
// role. Applying a preset is a bulk overwrite, never a merge.
func RolePreset(role StaffRole) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			Orders:          OrderPermissions{View: true, UpdateStatus: true, Cancel: true, Refund: true},
			Menu:            MenuPermissions{View: true, AddItem: true, EditItem: true, DeleteItem: true, ToggleAvailability: true},
			Reports:         ReportPermissions{ViewDaily: true, ViewAnalytics: true, ExportData: true},
			StaffManagement: true,
		}
	case RoleManager:
		return Permissions{
			Orders:  OrderPermissions{View: true, UpdateStatus: true, Cancel: true},
			Menu:    MenuPermissions{View: true, AddItem: true, EditItem: true, ToggleAvailability: true},
			Reports: ReportPermissions{ViewDaily: true, ViewAnalytics: true},
		}
	case RoleKitchen:
		return Permissions{
			Orders: OrderPermissions{View: true, UpdateStatus: true},
			Menu:   MenuPermissions{View: true},
		}
	default: // waiter is the default role for new accounts
		return Permissions{
			Orders: OrderPermissions{View: true, UpdateStatus: true},
			Menu:   MenuPermissions{View: true, ToggleAvailability: true},
		}
	}
}

// StaffAccount is a dashboard login for staff and admins.
type StaffAccount struct {
	ID           string      `json:"id" firestore:"-"`
	Name         string      `json:"name" firestore:"name"`
	Username     string      `json:"username" firestore:"username"`
	PasswordHash string      `json:"-" firestore:"passwordHash"`
	Phone        string      `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role         StaffRole   `json:"role" firestore:"role"`
	IsActive     bool        `json:"isActive" firestore:"isActive"`
	Permissions  Permissions `json:"permissions" firestore:"permissions"`
	LastLogin    time.Time   `json:"lastLogin,omitempty" firestore:"lastLogin,omitempty"`
	CreatedAt    time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// CanAccess is the capability check: deactivated accounts are denied
// everything regardless of their permission flags.
func (a *StaffAccount) CanAccess(capability string) bool {
	if !a.IsActive {
		return false
	}

	return a.Permissions.Leaf(capability)
}

// CanAccessRoute is the route-level check: an active admin passes any
// required capability; everyone else falls back to the leaf flag.
func (a *StaffAccount) CanAccessRoute(capability string) bool {
	if !a.IsActive {
		return false
	}
	if a.Role == RoleAdmin {
		return true
	}

	return a.Permissions.Leaf(capability)
}
