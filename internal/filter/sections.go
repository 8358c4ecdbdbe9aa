package filter

import "admin-dashboard/internal/model"

// UserRole keeps users with the given role; All keeps everyone.
func UserRole(role string) Predicate[model.User] {
	return Equals(func(u model.User) string { return u.Role }, role)
}

// UserSearch matches name or email.
func UserSearch(query string) Predicate[model.User] {
	return Contains(query,
		func(u model.User) string { return u.Name },
		func(u model.User) string { return u.Email },
	)
}

// ProductSearch matches the product name.
func ProductSearch(query string) Predicate[model.Product] {
	return Contains(query, func(p model.Product) string { return p.Name })
}

// SaleSearch matches customer name or customer email. Sales without an
// email only match on the name.
func SaleSearch(query string) Predicate[model.Sale] {
	return Contains(query,
		func(s model.Sale) string { return s.Customer },
		func(s model.Sale) string { return s.CustomerEmail },
	)
}
