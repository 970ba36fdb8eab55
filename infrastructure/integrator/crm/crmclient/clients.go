package crmclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/crmdomain"
)

func (c *CRMClient) GetClients(ctx context.Context, page int) ([]crmdomain.Client, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("count", strconv.Itoa(c.cfg.PageSize))

	endpoint, err := c.endpoint("clients", query)
	if err != nil {
		return nil, err
	}

	return get[[]crmdomain.Client](ctx, c, endpoint)
}
