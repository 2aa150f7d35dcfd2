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

// GetToday devolve os pontos do dia, o próximo tipo esperado e a saudação
// GET /v1/me/ponto/today
func GetToday(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	result, err := service.Ponto().Today(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// RegisterPunch grava o ponto do próximo tipo esperado
// POST /v1/me/ponto/punch
func RegisterPunch(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.PunchRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Ponto().Punch(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetHistory devolve o histórico diário consolidado
// GET /v1/me/ponto/history
func GetHistory(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	result, err := service.Ponto().History(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetAdjustPrefill reconcilia um dia e devolve horários e ids por slot
// GET /v1/me/ponto/adjust-prefill?dia=sex,%2020/03&entrada_saida=08:00%20-%2017:00
func GetAdjustPrefill(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	dia := c.Query("dia")
	entradaSaida := c.Query("entrada_saida")

	result, err := service.Ponto().AdjustPrefill(ctx, userID, dia, entradaSaida)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitAjuste envia uma solicitação de alteração de ponto
// POST /v1/me/ponto/ajuste
func SubmitAjuste(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.AjusteRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Ponto().SubmitAjuste(ctx, userID, &req); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"submitted": true})
}

// GetMonthlySummary devolve os agregados mensais de saldo e pontualidade
// GET /v1/me/ponto/summary
func GetMonthlySummary(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	result, err := service.Ponto().MonthlySummary(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
