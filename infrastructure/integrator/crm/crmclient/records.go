package crmclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/crmdomain"
)

// RecordsParams usa datas no formato 2006-01-02, inclusivas
type RecordsParams struct {
	StartDate string
	EndDate   string
	Page      int
}

func (c *CRMClient) GetRecords(ctx context.Context, params RecordsParams) ([]crmdomain.Record, error) {
	query := url.Values{}
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("count", strconv.Itoa(c.cfg.PageSize))
	query.Set("with_deleted", "1")

	endpoint, err := c.endpoint("records", query)
	if err != nil {
		return nil, err
	}

	return get[[]crmdomain.Record](ctx, c, endpoint)
}
