// File: internal/model/user.go
package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role 使用者角色
type Role = string

// Status 使用者狀態
type Status = string

const (
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderador"
	RoleClient    Role = "Cliente"

	StatusActive   Status = "Activo"
	StatusInactive Status = "Inactivo"
)

// Roles lists the selectable roles in display order.
var Roles = []Role{RoleAdmin, RoleModerator, RoleClient}

// Statuses lists the selectable statuses in display order.
var Statuses = []Status{StatusActive, StatusInactive}

type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Status     Status `json:"status"`
	JoinedDate string `json:"joined_date"`
}

// UserPayload is the body of POST /users and PUT /users/{id}.
// Password is set on create, where the key is always sent, and left nil
// on update.
type UserPayload struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
	Role     Role    `json:"role"`
	Status   Status  `json:"status"`
}

// DisplayStatus capitalises the first letter of the status, the way the
// users table shows it regardless of how the backend stores it.
func (u User) DisplayStatus() string {
	if u.Status == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(u.Status)
	return string(unicode.ToUpper(r)) + u.Status[size:]
}

// IsActive reports whether the status reads as active, case-insensitively.
func (u User) IsActive() bool {
	return strings.EqualFold(u.Status, StatusActive)
}
