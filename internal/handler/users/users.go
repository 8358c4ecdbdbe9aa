package users

import (
	"net/http"
	"strings"

	"admin-dashboard/internal/api"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	listUsers    = store.ListUsers
	createUser   = store.CreateUser
	updateUser   = store.UpdateUser
	deleteUser   = store.DeleteUser
)

const (
	msgNotFound  = "usuario no encontrado"
	msgDuplicate = "El email ya está registrado"
)

// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array}  model.User
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, err, msgNotFound, "")
		}
		return c.JSON(http.StatusOK, users)
	}
}

// @Summary     Create a user
// @Description 建立使用者；Email 會轉為小寫，密碼以 bcrypt 儲存
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} model.User
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB, rec service.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if msg := handler.BindValid(c, &req); msg != "" {
			return handler.BadRequest(c, msg)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return handler.BadRequest(c, "no se pudo procesar la contraseña")
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:   req.Name,
			Email:  strings.ToLower(req.Email),
			Role:   req.Role,
			Status: req.Status,
		}, hash)
		if err != nil {
			return handler.StoreError(c, err, msgNotFound, msgDuplicate)
		}

		rec.Record(user.Name, "Se registró como "+user.Role, "")
		return c.JSON(http.StatusCreated, user)
	}
}

// @Summary     Update a user
// @Description 更新姓名、Email、角色與狀態；密碼不變
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "使用者 ID"
// @Param       body body     api.UpdateUserRequest true "使用者資料"
// @Success     200  {object} model.User
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB, rec service.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.BadRequest(c, "ID de usuario inválido")
		}

		var req api.UpdateUserRequest
		if msg := handler.BindValid(c, &req); msg != "" {
			return handler.BadRequest(c, msg)
		}

		user, err := updateUser(c.Request().Context(), db, &model.User{
			ID:     id,
			Name:   req.Name,
			Email:  strings.ToLower(req.Email),
			Role:   req.Role,
			Status: req.Status,
		})
		if err != nil {
			return handler.StoreError(c, err, msgNotFound, msgDuplicate)
		}

		rec.Record(user.Name, "Perfil actualizado ("+user.Status+")", "")
		return c.JSON(http.StatusOK, user)
	}
}

// @Summary     Delete a user
// @Tags        users
// @Param       id  path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, rec service.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.BadRequest(c, "ID de usuario inválido")
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return handler.StoreError(c, err, msgNotFound, "")
		}
		rec.Record("", "Usuario eliminado", "")
		return c.NoContent(http.StatusNoContent)
	}
}
