// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	crmClientsTable = "crm_clients"

	// limite de linhas por INSERT para ficar abaixo do máximo de parâmetros do Postgres
	upsertBatchSize = 500
)

var clientColumns = []string{
	"id",
	"name",
	"phone",
	"email",
	"first_visit_date",
	"last_visit_date",
	"visit_count",
	"spent",
	"sold_amount",
	"avg_sum",
}

type ClientRepository interface {
	SaveOrUpdate(ctx context.Context, clients []domain.ClientRecord) error
	ListClients(ctx context.Context) ([]domain.ClientRecord, error)
	GetByID(ctx context.Context, id domain.ClientID) (*domain.ClientRecord, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) SaveOrUpdate(ctx context.Context, clients []domain.ClientRecord) error {
	if len(clients) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, batch := range chunk(clients, upsertBatchSize) {
			queryBuilder := squirrel.
				Insert(crmClientsTable).
				Columns(clientColumns...).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					phone = EXCLUDED.phone,
					email = EXCLUDED.email,
					first_visit_date = EXCLUDED.first_visit_date,
					last_visit_date = EXCLUDED.last_visit_date,
					visit_count = EXCLUDED.visit_count,
					spent = EXCLUDED.spent,
					sold_amount = EXCLUDED.sold_amount,
					avg_sum = EXCLUDED.avg_sum,
					synced_at = NOW()`).
				PlaceholderFormat(squirrel.Dollar)

			for _, c := range batch {
				queryBuilder = queryBuilder.Values(
					c.ID,
					c.Name,
					c.Phone,
					c.Email,
					nullTime(c.FirstVisitDate),
					nullTime(c.LastVisitDate),
					nullInt(c.VisitCount),
					nullFloat(c.Spent),
					nullFloat(c.SoldAmount),
					nullFloat(c.AvgSum),
				)
			}

			query, args, err := queryBuilder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao salvar clientes: %w", err)
			}
		}

		return nil
	})
}

func (r *clientRepository) ListClients(ctx context.Context) ([]domain.ClientRecord, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(crmClientsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.ClientRecord, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, *client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

// GetByID retorna nil sem erro quando o cliente não existe
func (r *clientRepository) GetByID(ctx context.Context, id domain.ClientID) (*domain.ClientRecord, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(crmClientsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cliente %d: %w", id, err)
	}

	return client, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.ClientRecord, error) {
	var (
		client      domain.ClientRecord
		firstVisit  sql.NullTime
		lastVisit   sql.NullTime
		visitCount  sql.NullInt64
		spent       sql.NullFloat64
		soldAmount  sql.NullFloat64
		avgSum      sql.NullFloat64
		phone, mail sql.NullString
	)

	if err := row.Scan(
		&client.ID,
		&client.Name,
		&phone,
		&mail,
		&firstVisit,
		&lastVisit,
		&visitCount,
		&spent,
		&soldAmount,
		&avgSum,
	); err != nil {
		return nil, err
	}

	client.Phone = phone.String
	client.Email = mail.String
	client.FirstVisitDate = timePtr(firstVisit)
	client.LastVisitDate = timePtr(lastVisit)
	client.VisitCount = intPtr(visitCount)
	client.Spent = floatPtr(spent)
	client.SoldAmount = floatPtr(soldAmount)
	client.AvgSum = floatPtr(avgSum)

	return &client, nil
}
