package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"PontoWeb/internal/backend"
	"PontoWeb/internal/model"
	"PontoWeb/internal/model/dto"
	"PontoWeb/pkg/logger"
)

var (
	cargoService *CargoService
	cargoOnce    sync.Once
)

func Cargo() *CargoService {
	cargoOnce.Do(func() {
		cargoService = &CargoService{}
	})
	return cargoService
}

// CargoService repassa o CRUD de cargos ao backend. Não há cache: a tabela
// administrativa sempre relista após cada mutação, então a lista fresca é o
// contrato.
type CargoService struct{}

func (s *CargoService) Create(ctx context.Context, sessionUserID int64, req *dto.CargoRequest) (*model.Cargo, error) {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}
	cargo, err := backend.Get().CreateCargo(ctx, remoteToken, req.ToModel())
	if err != nil {
		return nil, err
	}
	logger.Logger.Info("cargo created", zap.String("nome", req.NomeCargo))
	return cargo, nil
}

func (s *CargoService) List(ctx context.Context, sessionUserID int64) (*dto.CargoListResponse, error) {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}
	cargos, err := backend.Get().ListCargos(ctx, remoteToken)
	if err != nil {
		return nil, err
	}
	return &dto.CargoListResponse{Cargos: cargos}, nil
}

func (s *CargoService) Get(ctx context.Context, sessionUserID, id int64) (*model.Cargo, error) {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}
	return backend.Get().GetCargo(ctx, remoteToken, id)
}

func (s *CargoService) Update(ctx context.Context, sessionUserID int64, req *dto.CargoRequest) (*model.Cargo, error) {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}
	return backend.Get().UpdateCargo(ctx, remoteToken, req.ToModel())
}

func (s *CargoService) Delete(ctx context.Context, sessionUserID, id int64) error {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return err
	}
	if err := backend.Get().DeleteCargo(ctx, remoteToken, id); err != nil {
		return err
	}
	logger.Logger.Info("cargo deleted", zap.Int64("cargo_id", id))
	return nil
}
