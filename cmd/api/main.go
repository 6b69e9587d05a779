package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/crm-dashboard-api/internal/api"
	"github.com/vfg2006/crm-dashboard-api/internal/api/handler"
	"github.com/vfg2006/crm-dashboard-api/internal/config"
	"github.com/vfg2006/crm-dashboard-api/internal/scheduler"
	"github.com/vfg2006/crm-dashboard-api/internal/usecases/analytics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := cacheStore(ctx, cfg)
	defer store.Close()

	cacheLayer := cache.NewLayer(store, cfg.Cache)

	crmClient := crmclient.NewClient(cfg)
	crmIntegrator := crm.New(crmClient)

	analyticsService := analytics.NewService(cfg, crmIntegrator, cacheLayer)

	// O sweep de inicialização roda dentro do Start
	cacheSweepService := scheduler.NewCacheSweepService(cacheLayer, analyticsService, cfg)
	referenceWarmupService := scheduler.NewReferenceWarmupService(analyticsService, cfg)

	if err := cacheSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do sweep de cache")
	} else {
		logrus.Info("Agendador do sweep de cache iniciado com sucesso")
	}

	if err := referenceWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da recarga de listas de referência")
	} else {
		logrus.Info("Agendador da recarga de listas de referência iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		cacheLayer,
		handler.CronJobServices{
			CacheSweepService:      cacheSweepService,
			ReferenceWarmupService: referenceWarmupService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// cacheStore cria o backend do cache e testa a conexão
func cacheStore(ctx context.Context, cfg *config.Config) cache.Store {
	store, err := cache.NewStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).WithField("backend", cfg.Cache.Backend).Fatal("Erro ao criar o backend do cache")
	}

	if err := store.Ping(ctx); err != nil {
		logrus.WithError(err).WithField("backend", cfg.Cache.Backend).Fatal("Erro ao testar conexão com o cache")
	}

	logrus.WithField("backend", cfg.Cache.Backend).Info("Cache inicializado com sucesso")
	return store
}
