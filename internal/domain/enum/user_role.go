package enum

// UserRole represents the role of an operator
type UserRole string

const (
	// UserRoleOwner can see cost/profit figures and manage users.
	UserRoleOwner UserRole = "owner"
	// UserRoleShopkeeper runs the till: billing, payments, catalog, customers.
	UserRoleShopkeeper UserRole = "shopkeeper"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleOwner, UserRoleShopkeeper:
		return true
	}
	return false
}
