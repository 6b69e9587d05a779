package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-dashboard-api/internal/config"
	"github.com/vfg2006/crm-dashboard-api/internal/usecases/analytics"
)

// ReferenceWarmupConfig representa a configuração da recarga das listas de referência
type ReferenceWarmupConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// ReferenceWarmupService recarrega vendedores, arquitetos, clientes e lojas antes do expediente
type ReferenceWarmupService struct {
	scheduler  *gocron.Scheduler
	config     ReferenceWarmupConfig
	maintainer analytics.Maintainer
	state      jobState
}

func NewReferenceWarmupService(maintainer analytics.Maintainer, appConfig *config.Config) *ReferenceWarmupService {
	warmupConfig := ReferenceWarmupConfig{
		CronSchedule: appConfig.Scheduler.WarmupCron,
		SyncEnabled:  appConfig.Scheduler.WarmupEnabled,
		Timeout:      5 * time.Minute,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"sync_enabled":  warmupConfig.SyncEnabled,
	}).Info("Configuração da recarga de listas de referência carregada")

	return &ReferenceWarmupService{
		scheduler:  gocron.NewScheduler(appConfig.Location()),
		config:     warmupConfig,
		maintainer: maintainer,
	}
}

func (s *ReferenceWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga de listas de referência desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da recarga de listas de referência")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de listas de referência: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da recarga de listas de referência")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReferenceWarmupService) warmup(ctx context.Context) {
	if !s.state.tryStart(time.Now()) {
		logrus.Info("Recarga de listas de referência já em andamento, ignorando")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	err := s.maintainer.WarmReferences(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar listas de referência")
	} else {
		logrus.WithField("duration", time.Since(startTime).String()).Info("Listas de referência recarregadas")
	}

	s.state.finish(time.Now(), nil, err)
}

func (s *ReferenceWarmupService) TriggerManualSync() {
	if s.state.isRunning() {
		logrus.Info("Recarga de listas de referência já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando recarga manual das listas de referência")
	go s.warmup(context.Background())
}

func (s *ReferenceWarmupService) GetStatus() map[string]any {
	return s.state.status(s.config.CronSchedule, s.config.SyncEnabled)
}
