// Package predicting estima o risco de falta (no-show) dos agendamentos futuros a partir
// do histórico de comparecimento por cliente, dia da semana e faixa horária.
package predicting

import (
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// DefaultNoShowRate é a taxa base assumida quando não existe nenhum histórico
const DefaultNoShowRate = 0.05

// RateBucket acumula agendamentos passados e faltas de um grupo
type RateBucket struct {
	Total   int
	NoShows int
}

// Rate retorna NoShows/Total, 0 para bucket vazio
func (b RateBucket) Rate() float64 {
	if b.Total == 0 {
		return 0
	}
	return float64(b.NoShows) / float64(b.Total)
}

func (b *RateBucket) add(noShow bool) {
	b.Total++
	if noShow {
		b.NoShows++
	}
}

// HistoricalRateTable é construída uma vez por execução e compartilhada, somente leitura,
// entre todos os agendamentos avaliados
type HistoricalRateTable struct {
	byClient map[domain.ClientID]*RateBucket
	byDay    map[time.Weekday]*RateBucket
	bySlot   map[domain.TimeSlot]*RateBucket
	overall  RateBucket
}

// BuildHistoricalRateTable agrupa os agendamentos não excluídos anteriores a now
func BuildHistoricalRateTable(past []domain.AppointmentRecord, now time.Time) *HistoricalRateTable {
	table := &HistoricalRateTable{
		byClient: make(map[domain.ClientID]*RateBucket),
		byDay:    make(map[time.Weekday]*RateBucket),
		bySlot:   make(map[domain.TimeSlot]*RateBucket),
	}

	for _, record := range past {
		if record.Deleted || !record.Datetime.Before(now) {
			continue
		}

		noShow := record.IsNoShow()
		table.overall.add(noShow)

		if record.HasClient() {
			bucketFor(table.byClient, record.ClientID).add(noShow)
		}

		bucketFor(table.byDay, record.Datetime.Weekday()).add(noShow)

		if slot, ok := domain.TimeSlotOf(record.Datetime); ok {
			bucketFor(table.bySlot, slot).add(noShow)
		}
	}

	return table
}

func bucketFor[K comparable](buckets map[K]*RateBucket, key K) *RateBucket {
	bucket, ok := buckets[key]
	if !ok {
		bucket = &RateBucket{}
		buckets[key] = bucket
	}
	return bucket
}

func lookup[K comparable](buckets map[K]*RateBucket, key K) (RateBucket, bool) {
	bucket, ok := buckets[key]
	if !ok {
		return RateBucket{}, false
	}
	return *bucket, true
}

// AverageRate é a taxa global de faltas, DefaultNoShowRate sem histórico
func (t *HistoricalRateTable) AverageRate() float64 {
	if t.overall.Total == 0 {
		return DefaultNoShowRate
	}
	return t.overall.Rate()
}

// Overall retorna os totais globais do histórico
func (t *HistoricalRateTable) Overall() RateBucket {
	return t.overall
}

func (t *HistoricalRateTable) Client(id domain.ClientID) (RateBucket, bool) {
	return lookup(t.byClient, id)
}

func (t *HistoricalRateTable) Day(day time.Weekday) (RateBucket, bool) {
	return lookup(t.byDay, day)
}

func (t *HistoricalRateTable) Slot(slot domain.TimeSlot) (RateBucket, bool) {
	return lookup(t.bySlot, slot)
}
