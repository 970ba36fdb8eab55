package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// maxPages protege contra um CRM que devolve sempre páginas cheias
const maxPages = 1000

type CRMIntegrator interface {
	ListClients(ctx context.Context) ([]domain.ClientRecord, error)
	ListRecords(ctx context.Context, start, end time.Time) ([]domain.AppointmentRecord, error)
	CheckConnection(ctx context.Context) (bool, error)
}

type CRMService struct {
	cfg        config.CRM
	normalizer *Normalizer
	Client     crmclient.Client
}

func New(cfg config.CRM, client crmclient.Client) CRMIntegrator {
	return &CRMService{
		cfg:        cfg,
		normalizer: NewNormalizer(cfg.DefaultRegion, cfg.Location),
		Client:     client,
	}
}

// ListClients percorre todas as páginas de clientes até receber uma página incompleta
func (s *CRMService) ListClients(ctx context.Context) ([]domain.ClientRecord, error) {
	clients := make([]domain.ClientRecord, 0)

	for page := 1; page <= maxPages; page++ {
		items, err := s.Client.GetClients(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar clientes do CRM (página %d): %w", page, err)
		}

		for _, item := range items {
			clients = append(clients, s.normalizer.Client(item))
		}

		if len(items) < s.cfg.PageSize || len(items) == 0 {
			break
		}
	}

	return clients, nil
}

// ListRecords busca os agendamentos entre start e end, datas inclusivas
func (s *CRMService) ListRecords(ctx context.Context, start, end time.Time) ([]domain.AppointmentRecord, error) {
	records := make([]domain.AppointmentRecord, 0)

	for page := 1; page <= maxPages; page++ {
		items, err := s.Client.GetRecords(ctx, crmclient.RecordsParams{
			StartDate: start.Format(time.DateOnly),
			EndDate:   end.Format(time.DateOnly),
			Page:      page,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar agendamentos do CRM (página %d): %w", page, err)
		}

		for _, item := range items {
			record, ok := s.normalizer.Record(item)
			if !ok {
				continue
			}
			records = append(records, record)
		}

		if len(items) < s.cfg.PageSize || len(items) == 0 {
			break
		}
	}

	return records, nil
}

func (s *CRMService) CheckConnection(ctx context.Context) (bool, error) {
	if _, err := s.Client.GetClients(ctx, 1); err != nil {
		return false, err
	}

	return true, nil
}
