package crm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/crmdomain"
	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/mocks"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newService(client crmclient.Client) CRMIntegrator {
	return New(config.CRM{PageSize: 2, DefaultRegion: "BR", Location: time.UTC}, client)
}

func TestCRMService_ListClients_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	gomock.InOrder(
		mockClient.EXPECT().GetClients(gomock.Any(), 1).Return([]crmdomain.Client{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bia"}}, nil),
		mockClient.EXPECT().GetClients(gomock.Any(), 2).Return([]crmdomain.Client{{ID: 3, Name: "Carla"}}, nil),
	)

	clients, err := newService(mockClient).ListClients(context.Background())

	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Carla", clients[2].Name)
}

func TestCRMService_ListClients_EmptyLastPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	gomock.InOrder(
		mockClient.EXPECT().GetClients(gomock.Any(), 1).Return([]crmdomain.Client{{ID: 1}, {ID: 2}}, nil),
		mockClient.EXPECT().GetClients(gomock.Any(), 2).Return([]crmdomain.Client{}, nil),
	)

	clients, err := newService(mockClient).ListClients(context.Background())

	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, domain.ClientID(1), clients[0].ID)
	assert.Equal(t, domain.ClientID(2), clients[1].ID)
}

func TestCRMService_ListClients_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GetClients(gomock.Any(), 1).Return(nil, errors.New("timeout"))

	clients, err := newService(mockClient).ListClients(context.Background())

	assert.Nil(t, clients)
	assert.ErrorContains(t, err, "página 1")
	assert.ErrorContains(t, err, "timeout")
}

func TestCRMService_ListRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	start := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 11, 13, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		mockClient.EXPECT().
			GetRecords(gomock.Any(), crmclient.RecordsParams{StartDate: "2025-10-14", EndDate: "2026-11-13", Page: 1}).
			Return([]crmdomain.Record{
				{ID: 1, Datetime: "2026-10-16 10:00:00", Client: &crmdomain.Customer{ID: 9, Name: "Ana"}},
				{ID: 2, Datetime: ""},
			}, nil),
		mockClient.EXPECT().
			GetRecords(gomock.Any(), crmclient.RecordsParams{StartDate: "2025-10-14", EndDate: "2026-11-13", Page: 2}).
			Return([]crmdomain.Record{
				{ID: 3, Datetime: "2026-10-17 15:00:00", Client: &crmdomain.Customer{ID: 10, Name: "Bia"}},
			}, nil),
	)

	records, err := newService(mockClient).ListRecords(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, records, 2, "agendamento sem data é descartado")
	assert.Equal(t, "Ana", records[0].ClientName)
	assert.Equal(t, "Bia", records[1].ClientName)
}

func TestCRMService_CheckConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GetClients(gomock.Any(), 1).Return(nil, errors.New("401"))

	ok, err := newService(mockClient).CheckConnection(context.Background())

	assert.False(t, ok)
	assert.Error(t, err)
}
