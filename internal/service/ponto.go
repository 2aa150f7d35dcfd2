package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"PontoWeb/config"
	"PontoWeb/internal/backend"
	"PontoWeb/internal/cache"
	"PontoWeb/internal/model"
	"PontoWeb/internal/model/dto"
	"PontoWeb/internal/ponto"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/geocode"
	"PontoWeb/pkg/logger"
	"PontoWeb/pkg/snowflake"
)

var (
	pontoService *PontoService
	pontoOnce    sync.Once
)

func Ponto() *PontoService {
	pontoOnce.Do(func() {
		pontoService = &PontoService{}
	})
	return pontoService
}

type PontoService struct{}

func (s *PontoService) schedule() ponto.Schedule {
	cfg := config.Cfg
	return ponto.Schedule{
		Entrada:      cfg.ScheduleEntrada,
		InicioAlmoco: cfg.ScheduleInicioAlmoco,
		FimAlmoco:    cfg.ScheduleFimAlmoco,
		Saida:        cfg.ScheduleSaida,
	}
}

// punches devolve os registros brutos do usuário, preferindo o cache. O
// token remoto volta junto para as chamadas seguintes da mesma operação.
func (s *PontoService) punches(ctx context.Context, userID int64) ([]model.TimePunch, string, error) {
	remoteToken, err := backendToken(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if cached, hit, err := cache.GetUserPunches(ctx, userID); err == nil && hit {
		return cached, remoteToken, nil
	}

	punches, err := backend.Get().ListUserPunches(ctx, remoteToken, userID)
	if err != nil {
		return nil, "", err
	}
	if err := cache.SetUserPunches(ctx, userID, punches); err != nil {
		logger.Logger.Warn("failed to cache punches", zap.Int64("user_id", userID), zap.Error(err))
	}
	return punches, remoteToken, nil
}

func greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return "Bom dia"
	case hour < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}

// Today monta a tela inicial: pontos do dia com atraso frente à jornada e o
// próximo tipo esperado.
func (s *PontoService) Today(ctx context.Context, userID int64) (*dto.TodayResponse, error) {
	punches, _, err := s.punches(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sched := s.schedule()
	todays := ponto.FilterDay(punches, userID, now)

	resp := &dto.TodayResponse{
		Pontos:   make([]dto.TodayPunch, 0, len(todays)),
		Saudacao: greeting(now),
	}
	for _, p := range todays {
		t := p.Type()
		if !t.Valid() {
			logger.Logger.Warn("punch with unknown type ignored",
				zap.Int64("record_id", p.IDRegistro),
				zap.Int("type", p.IDTipoRegistroPonto),
			)
			continue
		}
		at, ok := ponto.ParsePunchTime(p.HoraRegistro)
		if !ok {
			continue
		}
		resp.Pontos = append(resp.Pontos, dto.TodayPunch{
			Tipo:          int(t),
			TipoLabel:     model.PunchTypeLabels[t],
			Hora:          at.Format("15:04"),
			AtrasoMinutos: ponto.DelayMinutes(t, at, sched),
		})
	}

	if next := ponto.NextExpected(todays); next != nil {
		tipo := int(*next)
		resp.ProximoTipo = &tipo
	}
	return resp, nil
}

// Punch registra o próximo ponto do dia, com o horário do servidor. A
// localização é resolvida só para exibição; falha degrada para o placeholder.
func (s *PontoService) Punch(ctx context.Context, userID int64, req *dto.PunchRequest) (*dto.PunchResponse, error) {
	punches, remoteToken, err := s.punches(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next := ponto.NextExpected(ponto.FilterDay(punches, userID, now))
	if next == nil {
		return nil, pkgerrors.PunchDayComplete
	}

	// cerca virtual opcional: só barra quando o raio está configurado e o
	// cliente mandou coordenadas
	if cfg := config.Cfg; cfg.GeofenceRadiusMeters > 0 && req.Latitude != nil && req.Longitude != nil {
		if !geocode.WithinRadius(*req.Latitude, *req.Longitude, cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.GeofenceRadiusMeters) {
			logger.Logger.Info("punch rejected outside geofence",
				zap.Int64("user_id", userID),
				zap.Float64("lat", *req.Latitude),
				zap.Float64("lon", *req.Longitude),
			)
			return nil, pkgerrors.PunchOutsideGeofence
		}
	}

	insert := backend.PunchInsert{
		IDUsuario:           userID,
		HoraRegistro:        now.Format("2006-01-02T15:04:05"),
		DataRegistro:        now.Format("2006-01-02") + "T00:00:00",
		IDTipoRegistroPonto: int(*next),
	}
	if err := backend.Get().InsertPunch(ctx, remoteToken, insert); err != nil {
		return nil, err
	}
	if err := cache.InvalidateUserPunches(ctx, userID); err != nil {
		logger.Logger.Warn("failed to invalidate punch cache", zap.Error(err))
	}

	location := geocode.FallbackLocation
	if req.Latitude != nil && req.Longitude != nil {
		location = geocode.Resolve(ctx, *req.Latitude, *req.Longitude)
	}

	logger.Logger.Info("punch recorded",
		zap.Int64("user_id", userID),
		zap.Int("type", int(*next)),
	)

	return &dto.PunchResponse{
		Tipo:        int(*next),
		TipoLabel:   model.PunchTypeLabels[*next],
		Hora:        now.Format("15:04"),
		Localizacao: location,
	}, nil
}

// History devolve o resumo diário do histórico, derivado a cada busca.
func (s *PontoService) History(ctx context.Context, userID int64) (*dto.HistoryResponse, error) {
	punches, _, err := s.punches(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryResponse{
		Registros: ponto.BuildDaySummaries(punches, s.schedule(), time.Now()),
	}, nil
}

// AdjustPrefill reconcilia o dia pedido e devolve horários e ids por slot
// para o modal de ajuste. Ausência de registros produz slots vazios, nunca
// erro: o chamador trata slot vazio como "sem ponto a corrigir".
func (s *PontoService) AdjustPrefill(ctx context.Context, userID int64, dia, entradaSaida string) (*dto.AdjustPrefillResponse, error) {
	punches, _, err := s.punches(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := ponto.Reconcile(dia, entradaSaida, punches)
	return &dto.AdjustPrefillResponse{
		Horarios: rec.Times(),
		IDs:      rec.IDs(),
	}, nil
}

// SubmitAjuste envia a solicitação de alteração ao backend, endereçando
// cada slot pelo id reconciliado do dia.
func (s *PontoService) SubmitAjuste(ctx context.Context, userID int64, req *dto.AjusteRequest) error {
	punches, remoteToken, err := s.punches(ctx, userID)
	if err != nil {
		return err
	}

	rec := ponto.Reconcile(req.Dia, req.EntradaSaida, punches)
	if !rec.Resolved {
		return pkgerrors.AjusteNoRecords
	}

	id, err := snowflake.NextID()
	if err != nil {
		return fmt.Errorf("failed to generate ajuste id: %w", err)
	}

	payload := backend.AjustePayload{
		IDSolicitacao: id,
		IDUsuario:     userID,
		Dia:           req.Dia,
		Entrada:       backend.AjusteSlot{IDRegistro: rec.Entrada.ID, Horario: req.Entrada.Time},
		InicioAlmoco:  backend.AjusteSlot{IDRegistro: rec.InicioAlmoco.ID, Horario: req.InicioAlmoco.Time},
		FimAlmoco:     backend.AjusteSlot{IDRegistro: rec.FimAlmoco.ID, Horario: req.FimAlmoco.Time},
		Saida:         backend.AjusteSlot{IDRegistro: rec.Saida.ID, Horario: req.Saida.Time},
		Motivo:        req.Motivo,
	}
	if err := backend.Get().CreateAjuste(ctx, remoteToken, payload); err != nil {
		return err
	}

	if err := cache.InvalidateUserPunches(ctx, userID); err != nil {
		logger.Logger.Warn("failed to invalidate punch cache", zap.Error(err))
	}
	logger.Logger.Info("ajuste submitted",
		zap.Int64("user_id", userID),
		zap.Int64("ajuste_id", id),
		zap.String("dia", req.Dia),
	)
	return nil
}

// MonthlySummary agrega os dados reais dos gráficos de saldo e pontualidade.
func (s *PontoService) MonthlySummary(ctx context.Context, userID int64) (*dto.MonthlySummaryResponse, error) {
	punches, _, err := s.punches(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ponto.MonthlySummary(punches, s.schedule(), time.Now())
	return &resp, nil
}
