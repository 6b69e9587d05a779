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

// Sweeper remove do cache as entradas expiradas
type Sweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// CacheSweepConfig representa a configuração do sweep periódico do cache
type CacheSweepConfig struct {
	CronSchedule   string
	SyncEnabled    bool
	RunOnStartup   bool
	SessionMaxIdle time.Duration
	Timeout        time.Duration
}

// CacheSweepService agenda a remoção de entradas expiradas e o descarte das gerações de sessões inativas
type CacheSweepService struct {
	scheduler  *gocron.Scheduler
	config     CacheSweepConfig
	sweeper    Sweeper
	maintainer analytics.Maintainer
	state      jobState
}

func NewCacheSweepService(sweeper Sweeper, maintainer analytics.Maintainer, appConfig *config.Config) *CacheSweepService {
	sweepConfig := CacheSweepConfig{
		CronSchedule:   appConfig.Scheduler.SweepCron,
		SyncEnabled:    appConfig.Scheduler.SweepEnabled,
		RunOnStartup:   appConfig.Scheduler.SweepOnStartup,
		SessionMaxIdle: appConfig.Cache.ReferenceTTL,
		Timeout:        time.Minute,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    sweepConfig.CronSchedule,
		"sync_enabled":     sweepConfig.SyncEnabled,
		"run_on_startup":   sweepConfig.RunOnStartup,
		"session_max_idle": sweepConfig.SessionMaxIdle.String(),
	}).Info("Configuração do sweep de cache carregada")

	return &CacheSweepService{
		scheduler:  gocron.NewScheduler(appConfig.Location()),
		config:     sweepConfig,
		sweeper:    sweeper,
		maintainer: maintainer,
	}
}

// Start executa o sweep inicial, se configurado, e agenda os seguintes
func (s *CacheSweepService) Start(ctx context.Context) error {
	if s.config.RunOnStartup {
		s.sweep(ctx)
	}

	if !s.config.SyncEnabled {
		logrus.Info("Sweep periódico do cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do sweep de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sweep do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do sweep de cache")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheSweepService) sweep(ctx context.Context) {
	if !s.state.tryStart(time.Now()) {
		logrus.Info("Sweep do cache já em andamento, ignorando")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	removed, err := s.sweeper.SweepExpired(ctx)
	pruned := s.maintainer.PruneSessions(s.config.SessionMaxIdle)

	fields := logrus.Fields{
		"removed":         removed,
		"sessions_pruned": pruned,
		"duration":        time.Since(startTime).String(),
	}
	if err != nil {
		logrus.WithError(err).WithFields(fields).Error("Erro no sweep do cache")
	} else {
		logrus.WithFields(fields).Info("Sweep do cache concluído")
	}

	s.state.finish(time.Now(), map[string]int{"removed": removed, "sessions_pruned": pruned}, err)
}

// TriggerManualSync dispara um sweep fora do agendamento
func (s *CacheSweepService) TriggerManualSync() {
	if s.state.isRunning() {
		logrus.Info("Sweep do cache já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando sweep manual do cache")
	go s.sweep(context.Background())
}

func (s *CacheSweepService) GetStatus() map[string]any {
	return s.state.status(s.config.CronSchedule, s.config.SyncEnabled)
}
