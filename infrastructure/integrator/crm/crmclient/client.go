package crmclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/crmdomain"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetClients(ctx context.Context, page int) ([]crmdomain.Client, error)
	GetRecords(ctx context.Context, params RecordsParams) ([]crmdomain.Record, error)
}

type CRMClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        config.CRM
}

// NewClient cria o cliente HTTP do CRM de agendamento com limite de requisições por segundo
func NewClient(cfg config.CRM) Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &CRMClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		limiter: rate.NewLimiter(limit, 1),
		cfg:     cfg,
	}
}

func (c *CRMClient) endpoint(resource string, query url.Values) (string, error) {
	endpoint, err := url.Parse(c.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource, strconv.FormatInt(c.cfg.CompanyID, 10))
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}

// get executa a requisição e devolve o campo data do envelope
func get[T any](ctx context.Context, c *CRMClient, endpoint string) (T, error) {
	var envelope crmdomain.Response[T]

	if err := c.limiter.Wait(ctx); err != nil {
		return envelope.Data, fmt.Errorf("erro aguardando limite de requisições: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return envelope.Data, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s, User %s", c.cfg.PartnerToken, c.cfg.UserToken))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope.Data, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope.Data, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = json.Unmarshal(body, &envelope)
		return envelope.Data, &RequestError{StatusCode: resp.StatusCode, Message: envelope.Meta.Message}
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return envelope.Data, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if !envelope.Success {
		return envelope.Data, &RequestError{StatusCode: resp.StatusCode, Message: envelope.Meta.Message}
	}

	return envelope.Data, nil
}

// RequestError é uma resposta do CRM com status diferente de 200 ou success=false
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("requisição ao CRM falhou com status %d", e.StatusCode)
	}
	return fmt.Sprintf("requisição ao CRM falhou com status %d: %s", e.StatusCode, e.Message)
}
