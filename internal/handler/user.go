package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"PontoWeb/internal/middleware"
	"PontoWeb/internal/model/dto"
	"PontoWeb/internal/service"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/response"
)

// GetProfile devolve o perfil do usuário logado
// GET /v1/me/profile
func GetProfile(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	result, err := service.User().GetProfile(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateProfile regrava o cadastro do próprio usuário logado. O id vem
// sempre da sessão, nunca do corpo: ninguém edita o perfil de outro por aqui.
// PUT /v1/me/profile
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.UserRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	req.IDUsuario = userID

	result, err := service.User().Update(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// pathID extrai o parâmetro :id da rota.
func pathID(c *app.RequestContext) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, pkgerrors.InvalidUserID
	}
	return id, nil
}

// ListUsers lista os colaboradores do dashboard administrativo
// GET /v1/admin/users
func ListUsers(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	result, err := service.User().List(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetUser busca um colaborador pelo id
// GET /v1/admin/users/:id
func GetUser(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	id, err := pathID(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	result, err := service.User().Get(ctx, userID, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// CreateUser cadastra um colaborador
// POST /v1/admin/users
func CreateUser(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.UserRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.User().Create(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateUser regrava um colaborador
// PUT /v1/admin/users/:id
func UpdateUser(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	id, err := pathID(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	var req dto.UserRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	req.IDUsuario = id

	result, err := service.User().Update(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DeleteUser desativa um colaborador (exclusão lógica no backend)
// DELETE /v1/admin/users/:id
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	id, err := pathID(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	if err := service.User().Delete(ctx, userID, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
