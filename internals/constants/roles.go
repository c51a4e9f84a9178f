package constants

import "fmt"

// Role yang dikenal aplikasi (kolom users.role)
const (
	RoleGuardian   = "guardian"
	RoleRegistrar  = "registrar"
	RoleCashier    = "cashier"
	RoleSuperAdmin = "superadmin"
)

// Template pesan error role
const (
	ErrOnlyRegistrarsCanAccess = "❌ Hanya registrar atau superadmin yang boleh mengakses fitur %s."
	ErrOnlyCashiersCanAccess   = "❌ Hanya cashier, registrar, atau superadmin yang boleh mengakses fitur %s."
	ErrOnlySuperAdminCanAccess = "❌ Hanya superadmin yang boleh mengakses fitur %s."
	ErrOnlyGuardiansCanAccess  = "❌ Hanya guardian yang boleh mengakses fitur %s."
)

func RoleErrorRegistrar(feature string) string {
	return fmt.Sprintf(ErrOnlyRegistrarsCanAccess, feature)
}

func RoleErrorCashier(feature string) string {
	return fmt.Sprintf(ErrOnlyCashiersCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

func RoleErrorGuardian(feature string) string {
	return fmt.Sprintf(ErrOnlyGuardiansCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleGuardian,
		RoleRegistrar,
		RoleCashier,
		RoleSuperAdmin,
	}

	StaffRoles = []string{
		RoleRegistrar,
		RoleCashier,
		RoleSuperAdmin,
	}

	RegistrarAndAbove = []string{
		RoleRegistrar,
		RoleSuperAdmin,
	}

	CashierAndAbove = []string{
		RoleCashier,
		RoleRegistrar,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
