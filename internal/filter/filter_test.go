package filter

import (
	"testing"

	"admin-dashboard/internal/model"

	"github.com/stretchr/testify/require"
)

var users = []model.User{
	{ID: 1, Name: "Ana Torres", Email: "ana@example.com", Role: model.RoleAdmin},
	{ID: 2, Name: "Mariana Ruiz", Email: "mruiz@example.com", Role: model.RoleClient},
	{ID: 3, Name: "Pedro", Email: "pedro@ana.io", Role: model.RoleAdmin},
	{ID: 4, Name: "Luis", Email: "luis@example.com", Role: model.RoleModerator},
}

func ids(us []model.User) []int {
	out := []int{}
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out
}

func TestUserRole(t *testing.T) {
	require.Equal(t, []int{1, 3}, ids(Apply(users, UserRole(model.RoleAdmin))))
	require.Equal(t, []int{1, 2, 3, 4}, ids(Apply(users, UserRole(All))))
	require.Equal(t, []int{1, 2, 3, 4}, ids(Apply(users, UserRole(""))))
}

func TestUserSearchIsCaseInsensitive(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, ids(Apply(users, UserSearch("ANA"))))
	require.Equal(t, []int{4}, ids(Apply(users, UserSearch("luis@"))))
	require.Len(t, Apply(users, UserSearch("")), 4)
	require.Empty(t, Apply(users, UserSearch("zzz")))
}

func TestPredicatesCompose(t *testing.T) {
	role := UserRole(model.RoleAdmin)
	search := UserSearch("ana")

	ab := Apply(users, role, search)
	ba := Apply(users, search, role)
	require.Equal(t, []int{1, 3}, ids(ab))
	require.Equal(t, ids(ab), ids(ba))

	stepwise := Apply(Apply(users, role), search)
	require.Equal(t, ids(ab), ids(stepwise))

	require.Equal(t, ids(ab), ids(Apply(ab, role, search)))
}

func TestApplyIgnoresNilAndKeepsInput(t *testing.T) {
	in := append([]model.User(nil), users...)
	out := Apply(in, nil, UserRole(model.RoleClient))
	require.Equal(t, []int{2}, ids(out))
	require.Equal(t, users, in)
	require.NotNil(t, Apply[model.User](nil))
}

func TestSaleSearch(t *testing.T) {
	sales := []model.Sale{
		{ID: 1, Customer: "María López", CustomerEmail: "maria@example.com"},
		{ID: 2, Customer: "Juan Pérez"},
	}
	require.Len(t, Apply(sales, SaleSearch("MARIA@")), 1)
	require.Len(t, Apply(sales, SaleSearch("juan")), 1)
	require.Empty(t, Apply(sales, SaleSearch("example.org")))
}

func TestProductSearch(t *testing.T) {
	products := []model.Product{{ID: 1, Name: "Widget"}, {ID: 2, Name: "Gadget"}}
	out := Apply(products, ProductSearch("wid"))
	require.Len(t, out, 1)
	require.Equal(t, 1, out[0].ID)
}
