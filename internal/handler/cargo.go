package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"PontoWeb/internal/middleware"
	"PontoWeb/internal/model/dto"
	"PontoWeb/internal/service"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/response"
)

// ListCargos lista os cargos do dashboard administrativo
// GET /v1/admin/cargos
func ListCargos(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	result, err := service.Cargo().List(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetCargo busca um cargo pelo id
// GET /v1/admin/cargos/:id
func GetCargo(ctx context.Context, c *app.RequestContext) {
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

	result, err := service.Cargo().Get(ctx, userID, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// CreateCargo cadastra um cargo
// POST /v1/admin/cargos
func CreateCargo(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.CargoRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Cargo().Create(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateCargo regrava um cargo
// PUT /v1/admin/cargos/:id
func UpdateCargo(ctx context.Context, c *app.RequestContext) {
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

	var req dto.CargoRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	req.IDCargo = id

	result, err := service.Cargo().Update(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DeleteCargo remove um cargo
// DELETE /v1/admin/cargos/:id
func DeleteCargo(ctx context.Context, c *app.RequestContext) {
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

	if err := service.Cargo().Delete(ctx, userID, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
