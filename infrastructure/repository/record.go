package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const crmRecordsTable = "crm_records"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var recordColumns = []string{
	"id",
	"client_id",
	"client_name",
	"client_phone",
	"staff_id",
	"staff_name",
	"datetime",
	"attendance",
	"confirmed",
	"deleted",
	"services",
}

type RecordRepository interface {
	SaveOrUpdate(ctx context.Context, records []domain.AppointmentRecord) error
	ListByPeriod(ctx context.Context, start, end time.Time) ([]domain.AppointmentRecord, error)
}

type recordRepository struct {
	conn *postgres.Connection
}

func NewRecordRepository(conn *postgres.Connection) RecordRepository {
	return &recordRepository{
		conn: conn,
	}
}

func (r *recordRepository) SaveOrUpdate(ctx context.Context, records []domain.AppointmentRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, batch := range chunk(records, upsertBatchSize) {
			queryBuilder := squirrel.
				Insert(crmRecordsTable).
				Columns(recordColumns...).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					client_id = EXCLUDED.client_id,
					client_name = EXCLUDED.client_name,
					client_phone = EXCLUDED.client_phone,
					staff_id = EXCLUDED.staff_id,
					staff_name = EXCLUDED.staff_name,
					datetime = EXCLUDED.datetime,
					attendance = EXCLUDED.attendance,
					confirmed = EXCLUDED.confirmed,
					deleted = EXCLUDED.deleted,
					services = EXCLUDED.services,
					synced_at = NOW()`).
				PlaceholderFormat(squirrel.Dollar)

			for _, rec := range batch {
				services, err := json.Marshal(rec.Services)
				if err != nil {
					return fmt.Errorf("erro ao serializar serviços do agendamento %d: %w", rec.ID, err)
				}

				queryBuilder = queryBuilder.Values(
					rec.ID,
					rec.ClientID,
					rec.ClientName,
					rec.ClientPhone,
					rec.StaffID,
					rec.StaffName,
					rec.Datetime,
					int(rec.Attendance),
					rec.Confirmed,
					rec.Deleted,
					string(services),
				)
			}

			query, args, err := queryBuilder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao salvar agendamentos: %w", err)
			}
		}

		return nil
	})
}

// ListByPeriod inclui agendamentos excluídos; o filtro fica com os motores
func (r *recordRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]domain.AppointmentRecord, error) {
	query, args, err := squirrel.
		Select(recordColumns...).
		From(crmRecordsTable).
		Where(squirrel.GtOrEq{"datetime": start}).
		Where(squirrel.LtOrEq{"datetime": end}).
		OrderBy("datetime ASC", "id ASC").
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

	records := make([]domain.AppointmentRecord, 0)
	for rows.Next() {
		var (
			record      domain.AppointmentRecord
			attendance  int
			services    []byte
			clientName  sql.NullString
			clientPhone sql.NullString
			staffName   sql.NullString
		)

		if err := rows.Scan(
			&record.ID,
			&record.ClientID,
			&clientName,
			&clientPhone,
			&record.StaffID,
			&staffName,
			&record.Datetime,
			&attendance,
			&record.Confirmed,
			&record.Deleted,
			&services,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
		}

		record.Attendance = domain.Attendance(attendance)
		record.ClientName = clientName.String
		record.ClientPhone = clientPhone.String
		record.StaffName = staffName.String

		record.Services = make([]domain.ServiceLine, 0)
		if len(services) > 0 {
			if err := json.Unmarshal(services, &record.Services); err != nil {
				return nil, fmt.Errorf("erro ao decodificar serviços do agendamento %d: %w", record.ID, err)
			}
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
