package constants

// Operator capabilities. ADMIN users bypass these entirely; OPERATOR users
// carry the explicit subset stored on their account.
const (
	PermCreateDriver = "create_driver"
	PermEditDriver   = "edit_driver"
	PermDeleteDriver = "delete_driver"

	PermCreateClient = "create_client"
	PermEditClient   = "edit_client"
	PermDeleteClient = "delete_client"

	PermCreateFreight       = "create_freight"
	PermEditFreight         = "edit_freight"
	PermDeleteFreight       = "delete_freight"
	PermAssignDriver        = "assign_driver"
	PermChangeFreightStatus = "change_freight_status"

	PermViewFinancial     = "view_financial"
	PermViewBilling       = "view_billing"
	PermManageQuotations  = "manage_quotations"
	PermManageTemplates   = "manage_templates"
	PermManageUsers       = "manage_users"
	PermManageSettings    = "manage_settings"
	PermViewDashboard     = "view_dashboard"
	PermSendNotifications = "send_notifications"
)

// Permission groups for convenience
var (
	FreightOperationPermissions = []string{
		PermCreateFreight,
		PermEditFreight,
		PermAssignDriver,
		PermChangeFreightStatus,
	}

	RegistryPermissions = []string{
		PermCreateDriver,
		PermEditDriver,
		PermCreateClient,
		PermEditClient,
	}

	DeletionPermissions = []string{
		PermDeleteDriver,
		PermDeleteClient,
		PermDeleteFreight,
	}

	BackOfficePermissions = []string{
		PermViewFinancial,
		PermViewBilling,
		PermManageQuotations,
		PermManageTemplates,
		PermManageUsers,
		PermManageSettings,
		PermViewDashboard,
		PermSendNotifications,
	}
)

// AllPermissions returns every capability an account can be granted.
func AllPermissions() []string {
	all := make([]string, 0,
		len(FreightOperationPermissions)+len(RegistryPermissions)+
			len(DeletionPermissions)+len(BackOfficePermissions))
	all = append(all, FreightOperationPermissions...)
	all = append(all, RegistryPermissions...)
	all = append(all, DeletionPermissions...)
	all = append(all, BackOfficePermissions...)
	return all
}
