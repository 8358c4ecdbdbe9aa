package section

import (
	"context"
	"log/slog"

	"admin-dashboard/internal/apiclient"
	"admin-dashboard/internal/filter"
	"admin-dashboard/internal/form"
	"admin-dashboard/internal/liststate"
	"admin-dashboard/internal/model"
)

const (
	UsersLoadError    = "No se pudieron cargar los datos de usuarios."
	UsersCreateError  = "Error al crear usuario"
	UsersUpdateError  = "No se pudo editar el usuario."
	UsersDeleteError  = "Error al eliminar usuario"
	UsersEmpty        = "No hay usuarios registrados."
	UsersDeletePrompt = "¿Seguro que deseas eliminar este usuario?"
)

// UserSchema is the users form: create sends the password, edit does not.
var UserSchema = form.Schema[model.User, model.UserPayload]{
	Fields: []form.Field{
		{Name: "name", Label: "Nombre"},
		{Name: "email", Label: "Email"},
		{Name: "password", Label: "Contraseña", Secret: true, CreateOnly: true},
		{Name: "role", Label: "Rol", Default: model.RoleClient, Options: model.Roles},
		{Name: "status", Label: "Estado", Default: model.StatusActive, Options: model.Statuses},
	},
	Record: func(u model.User) (int, form.Values) {
		return u.ID, form.Values{
			"name":   u.Name,
			"email":  u.Email,
			"role":   u.Role,
			"status": u.Status,
		}
	},
	Build: func(mode form.Mode, v form.Values) (model.UserPayload, error) {
		p := model.UserPayload{
			Name:   v["name"],
			Email:  v["email"],
			Role:   v["role"],
			Status: v["status"],
		}
		if mode == form.ModeCreate {
			password := v["password"]
			p.Password = &password
		}
		return p, nil
	},
}

// Users is the users section.
type Users struct {
	List *liststate.Controller[[]model.User]
	Form *form.Controller[model.User, model.UserPayload]

	// Role and Search are the filter inputs owned by the view.
	Role   string
	Search string
}

func NewUsers(client *apiclient.Client, logger *slog.Logger) *Users {
	resource := apiclient.NewResource[model.User, model.UserPayload](client, "users")
	list := liststate.New(resource.List,
		liststate.WithErrorMessage[[]model.User](UsersLoadError),
		liststate.WithLogger[[]model.User](logger),
	)
	return &Users{
		List: list,
		Form: form.New(UserSchema, resource, list, form.Messages{
			Create: form.Message{Fallback: UsersCreateError, UseServer: true},
			Update: form.Message{Fallback: UsersUpdateError},
			Delete: form.Message{Fallback: UsersDeleteError, UseServer: true},
		}, logger),
		Role: filter.All,
	}
}

func (s *Users) ID() ID                   { return UsersID }
func (s *Users) Load(ctx context.Context) { s.List.Reload(ctx) }
func (s *Users) Close()                   { s.List.Close() }

// Visible returns the users passing the role and search filters.
func (s *Users) Visible() []model.User {
	users, ok := s.List.State().Data()
	if !ok {
		return nil
	}
	return filter.Apply(users, filter.UserRole(s.Role), filter.UserSearch(s.Search))
}

// Find looks id up in the current snapshot.
func (s *Users) Find(id int) (model.User, bool) {
	users, _ := s.List.State().Data()
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// RoleOptions are the choices of the role filter.
func RoleOptions() []string {
	return append([]string{filter.All}, model.Roles...)
}
