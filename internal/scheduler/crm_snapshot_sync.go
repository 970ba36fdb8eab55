package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/metrics"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

var ErrSyncAlreadyRunning = errors.New("sincronização do snapshot do CRM já em andamento")

// CRMSnapshotSyncConfig representa a configuração do agendador do snapshot do CRM
type CRMSnapshotSyncConfig struct {
	CronSchedule  string
	LookbackDays  int
	LookaheadDays int
	SyncEnabled   bool
}

// CRMSnapshotSyncService copia clientes e agendamentos do CRM para o banco local
type CRMSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              CRMSnapshotSyncConfig
	crmService          crm.CRMIntegrator
	clientRepo          repository.ClientRepository
	recordRepo          repository.RecordRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastClients         int
	lastRecords         int
}

// NewCRMSnapshotSyncService cria uma nova instância do serviço de sincronização do snapshot
func NewCRMSnapshotSyncService(
	crmService crm.CRMIntegrator,
	clientRepo repository.ClientRepository,
	recordRepo repository.RecordRepository,
	appConfig *config.Config,
) *CRMSnapshotSyncService {
	syncConfig := CRMSnapshotSyncConfig{
		CronSchedule:  appConfig.CRMSnapshotSync.CronSchedule,
		LookbackDays:  appConfig.CRMSnapshotSync.LookbackDays,
		LookaheadDays: appConfig.CRMSnapshotSync.LookaheadDays,
		SyncEnabled:   appConfig.CRMSnapshotSync.Enabled,
	}

	// O cron segue o fuso do salão, não o do servidor
	location := appConfig.CRM.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"lookback_days":  syncConfig.LookbackDays,
		"lookahead_days": syncConfig.LookaheadDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do snapshot do CRM carregada")

	return &CRMSnapshotSyncService{
		scheduler:  gocron.NewScheduler(location),
		config:     syncConfig,
		crmService: crmService,
		clientRepo: clientRepo,
		recordRepo: recordRepo,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *CRMSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do snapshot do CRM desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do snapshot do CRM")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runInBackground(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do snapshot do CRM: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do snapshot do CRM")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CRMSnapshotSyncService) runInBackground(ctx context.Context) {
	if err := s.Sync(ctx); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
		logrus.WithError(err).Error("Erro na sincronização do snapshot do CRM")
	}
}

// Sync executa uma sincronização completa. Execuções sobrepostas são recusadas.
func (s *CRMSnapshotSyncService) Sync(ctx context.Context) error {
	runID, startTime, ok := s.reserveRun()
	if !ok {
		logrus.Info("Sincronização do snapshot do CRM já em andamento, ignorando")
		return ErrSyncAlreadyRunning
	}

	return s.run(ctx, runID, startTime)
}

// reserveRun marca a sincronização como em andamento na mesma seção crítica que a verifica
func (s *CRMSnapshotSyncService) reserveRun() (string, time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return "", time.Time{}, false
	}
	s.syncRunning = true

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da sincronização")
	}

	startTime := s.now()
	s.lastRunID = runID
	s.lastSyncStartedAt = startTime

	return runID, startTime, true
}

func (s *CRMSnapshotSyncService) run(ctx context.Context, runID string, startTime time.Time) error {
	logger := logrus.WithFields(logrus.Fields{
		"job":    "crm-snapshot",
		"run_id": runID,
	})
	logger.Info("Iniciando sincronização do snapshot do CRM")

	clients, records, err := s.syncSnapshot(ctx, startTime)
	duration := time.Since(startTime)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastClients = clients
	s.lastRecords = records
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		metrics.RecordSyncRun(metrics.SyncResultFailure, duration)
		return err
	}

	metrics.RecordSyncRun(metrics.SyncResultSuccess, duration)
	metrics.RecordSyncedItems(metrics.ItemKindClients, clients)
	metrics.RecordSyncedItems(metrics.ItemKindRecords, records)

	logger.WithFields(logrus.Fields{
		"duration": duration.String(),
		"clients":  clients,
		"records":  records,
	}).Info("Sincronização do snapshot do CRM concluída")

	return nil
}

// syncSnapshot busca clientes e agendamentos em paralelo e grava os dois conjuntos
func (s *CRMSnapshotSyncService) syncSnapshot(ctx context.Context, now time.Time) (int, int, error) {
	start := now.AddDate(0, 0, -s.config.LookbackDays)
	end := now.AddDate(0, 0, s.config.LookaheadDays)

	var clients []domain.ClientRecord
	var records []domain.AppointmentRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.crmService.ListClients(gctx)
		if err != nil {
			return fmt.Errorf("erro ao buscar clientes do CRM: %w", err)
		}
		clients = result
		return nil
	})
	g.Go(func() error {
		result, err := s.crmService.ListRecords(gctx, start, end)
		if err != nil {
			return fmt.Errorf("erro ao buscar agendamentos do CRM: %w", err)
		}
		records = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	if err := s.clientRepo.SaveOrUpdate(ctx, clients); err != nil {
		return 0, 0, fmt.Errorf("erro ao salvar clientes: %w", err)
	}

	if err := s.recordRepo.SaveOrUpdate(ctx, records); err != nil {
		return len(clients), 0, fmt.Errorf("erro ao salvar agendamentos: %w", err)
	}

	return len(clients), len(records), nil
}

// TriggerManualSync inicia manualmente uma sincronização, retornando false se já houver uma em andamento
func (s *CRMSnapshotSyncService) TriggerManualSync() bool {
	runID, startTime, ok := s.reserveRun()
	if !ok {
		logrus.Info("Sincronização do snapshot do CRM já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual do snapshot do CRM")
	go func() {
		if err := s.run(context.Background(), runID, startTime); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do snapshot do CRM")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *CRMSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_lookahead_days":    s.config.LookaheadDays,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_synced_clients":    s.lastClients,
		"last_synced_records":    s.lastRecords,
	}
}
