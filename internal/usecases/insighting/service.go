package insighting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/predicting"
	"github.com/vfg2006/salon-manager-api/internal/usecases/scoring"
	"github.com/vfg2006/salon-manager-api/internal/usecases/segmenting"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"github.com/vfg2006/salon-manager-api/pkg/metrics"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

// Service lê o snapshot do CRM no banco e delega os cálculos aos motores.
// Nada do que é calculado aqui é persistido.
type Service struct {
	cfg              config.Insights
	clientRepository repository.ClientRepository
	recordRepository repository.RecordRepository
	scorer           *scoring.Scorer
	predictor        *predicting.Predictor
	segmenter        *segmenting.Segmenter
	now              func() time.Time
	location         *time.Location
}

type Option func(*Service)

// WithClock define a referência de "agora" usada pelos motores
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocation define o fuso do salão. Dia da semana e faixa horária dos agendamentos
// são calculados nesse fuso, qualquer que seja o fuso em que o banco devolve as datas.
func WithLocation(location *time.Location) Option {
	return func(s *Service) {
		s.location = location
	}
}

func WithScorer(scorer *scoring.Scorer) Option {
	return func(s *Service) {
		s.scorer = scorer
	}
}

func WithSegmenter(segmenter *segmenting.Segmenter) Option {
	return func(s *Service) {
		s.segmenter = segmenter
	}
}

// NewService cria o serviço de insights com os motores padrão
func NewService(
	cfg config.Insights,
	clientRepo repository.ClientRepository,
	recordRepo repository.RecordRepository,
	opts ...Option,
) *Service {
	s := &Service{
		cfg:              cfg,
		clientRepository: clientRepo,
		recordRepository: recordRepo,
		scorer:           scoring.NewScorer(),
		predictor:        predicting.NewPredictor(),
		segmenter:        segmenting.NewSegmenter(),
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ Insighter = (*Service)(nil)

func (s *Service) GetClientScore(ctx context.Context, clientID domain.ClientID) (*domain.ClientScore, error) {
	client, err := s.clientRepository.GetByID(ctx, clientID)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"client_id": clientID,
			"error":     err.Error(),
		}).Error("Erro ao buscar cliente no snapshot")
		return nil, NewInsightError(ErrSnapshotUnavailable, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if client == nil {
		return nil, NewInsightError(ErrClientNotFound, apiErrors.ErrClientNotFound, fmt.Sprintf("id %d", clientID))
	}

	start := time.Now()
	score := s.scoreClient(*client, s.now())
	metrics.ObserveEngine(metrics.EngineScoring, time.Since(start))

	return &score, nil
}

func (s *Service) ListClientScores(ctx context.Context, filters domain.ClientScoreFilters) (*domain.ClientScoresResponse, error) {
	clients, err := s.loadClients(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := time.Now()

	scores := make([]domain.ClientScore, 0, len(clients))
	for _, client := range clients {
		scores = append(scores, s.scoreClient(client, now))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].IVK.Score != scores[j].IVK.Score {
			return scores[i].IVK.Score > scores[j].IVK.Score
		}
		return scores[i].ClientID < scores[j].ClientID
	})

	response := &domain.ClientScoresResponse{
		TierSummary:   make(map[domain.Tier]int),
		StatusSummary: make(map[domain.ClientStatus]int),
		Clients:       make([]domain.ClientScore, 0),
	}

	for _, score := range scores {
		response.TierSummary[score.IVK.Tier]++
		response.StatusSummary[score.Status]++

		if filters.Tier != "" && score.IVK.Tier != filters.Tier {
			continue
		}
		if filters.Status != "" && score.Status != filters.Status {
			continue
		}
		response.Clients = append(response.Clients, score)
	}

	response.Total = len(response.Clients)
	if limit := s.limit(filters.Limit); len(response.Clients) > limit {
		response.Clients = response.Clients[:limit]
	}

	metrics.ObserveEngine(metrics.EngineScoring, time.Since(start))

	log.ForContext(ctx).WithFields(log.Fields{
		"clients": len(clients),
		"matched": response.Total,
	}).Debug("Scores de clientes calculados")

	return response, nil
}

func (s *Service) PredictNoShows(ctx context.Context, filters domain.NoShowFilters) (*domain.NoShowReport, error) {
	now := s.now()
	daysAhead := filters.DaysAhead
	if daysAhead <= 0 {
		daysAhead = s.cfg.DefaultDaysAhead
	}

	var past, upcoming []domain.AppointmentRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.recordRepository.ListByPeriod(gctx, now.AddDate(0, 0, -s.cfg.HistoryDays), now)
		if err != nil {
			return fmt.Errorf("erro ao carregar histórico de agendamentos: %w", err)
		}
		past = records
		return nil
	})
	g.Go(func() error {
		records, err := s.recordRepository.ListByPeriod(gctx, now, now.AddDate(0, 0, daysAhead))
		if err != nil {
			return fmt.Errorf("erro ao carregar próximos agendamentos: %w", err)
		}
		upcoming = records
		return nil
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar agendamentos do snapshot")
		return nil, NewInsightError(ErrSnapshotUnavailable, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if s.location != nil {
		now = now.In(s.location)
		past = inLocation(past, s.location)
		upcoming = inLocation(upcoming, s.location)
	}

	start := time.Now()
	result := s.predictor.Predict(past, upcoming, now, daysAhead)
	metrics.ObserveEngine(metrics.EnginePredicting, time.Since(start))

	report := &domain.NoShowReport{
		GeneratedAt:       now,
		DaysAhead:         daysAhead,
		AverageNoShowRate: utils.RoundWithOneDecimalPlace(result.AverageNoShowRate * 100),
		Predictions:       make([]domain.NoShowPrediction, 0),
	}

	limit := s.limit(filters.Limit)
	for _, prediction := range result.Predictions {
		report.Summary.Add(prediction.RiskLevel)
		metrics.RecordNoShowPrediction(string(prediction.RiskLevel))

		if filters.RiskLevel != nil && prediction.RiskLevel != *filters.RiskLevel {
			continue
		}
		if len(report.Predictions) < limit {
			report.Predictions = append(report.Predictions, prediction)
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"records":    len(upcoming),
		"days_ahead": daysAhead,
		"critical":   report.Summary.Critical,
	}).Debug("Previsão de faltas calculada")

	return report, nil
}

func (s *Service) GetSegments(ctx context.Context, filters domain.SegmentFilters) (*domain.SegmentsReport, error) {
	clients, err := s.loadClients(ctx)
	if err != nil {
		return nil, err
	}

	filters.Limit = s.limit(filters.Limit)

	start := time.Now()
	report := s.segmenter.Report(clients, s.now(), filters)
	metrics.ObserveEngine(metrics.EngineSegmenting, time.Since(start))

	return &report, nil
}

func (s *Service) loadClients(ctx context.Context) ([]domain.ClientRecord, error) {
	clients, err := s.clientRepository.ListClients(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar clientes do snapshot")
		return nil, NewInsightError(ErrSnapshotUnavailable, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return clients, nil
}

func (s *Service) scoreClient(client domain.ClientRecord, now time.Time) domain.ClientScore {
	ivk := s.scorer.Score(client, now)
	risk := scoring.AssessRisk(ivk)

	return domain.ClientScore{
		ClientID:        client.ID,
		Name:            client.Name,
		Phone:           client.Phone,
		IVK:             ivk,
		Status:          risk.Status,
		RiskLevel:       risk.RiskLevel,
		Recommendations: scoring.Recommendations(ivk),
	}
}

// limit aplica o default e o teto configurados
func (s *Service) limit(requested int) int {
	if requested <= 0 {
		return s.cfg.DefaultLimit
	}
	return min(requested, s.cfg.MaxLimit)
}

func inLocation(records []domain.AppointmentRecord, location *time.Location) []domain.AppointmentRecord {
	converted := make([]domain.AppointmentRecord, len(records))
	for i, record := range records {
		record.Datetime = record.Datetime.In(location)
		converted[i] = record
	}
	return converted
}
