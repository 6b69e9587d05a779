package crm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/mocks"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCRMService_ListBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	dateRange := domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	mockClient.EXPECT().
		FetchAll(gomock.Any(), crmdomain.CollectionBudget, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ crmdomain.Collection, constraints []crmdomain.Constraint) ([]crmdomain.Record, error) {
			require.Len(t, constraints, 2)
			assert.Equal(t, crmdomain.ConstraintGreaterThan, constraints[0].ConstraintType)
			assert.Equal(t, "2024-02-29T23:59:59Z", constraints[0].Value)
			assert.Equal(t, crmdomain.ConstraintLessThan, constraints[1].ConstraintType)
			assert.Equal(t, "2024-04-01T00:00:00Z", constraints[1].Value)

			return []crmdomain.Record{
				{
					"_id":                    "b1",
					"Created Date":           "2024-03-10T14:30:00.000Z",
					"projeto":                "p1",
					"status":                 "Enviado ao Cliente",
					"valor_total":            500.0,
					"valor_liquido_produtos": "1000",
					"itens":                  []any{"i1", "i2"},
					"nucleo":                 []any{"", "Marcenaria"},
				},
				{
					"_id":      "b2",
					"status":   "Reprovado",
					"removido": true,
				},
				{
					"_id":          "b3",
					"Created Date": "não é data",
				},
			}, nil
		})

	budgets, err := service.ListBudgets(context.Background(), dateRange, domain.FunnelClosed)
	require.NoError(t, err)
	require.Len(t, budgets, 2)

	assert.Equal(t, "b1", budgets[0].ID)
	assert.Equal(t, "p1", budgets[0].ProjectID)
	assert.Equal(t, domain.StageInApproval, budgets[0].Stage)
	assert.Equal(t, 1000.0, budgets[0].Revenue)
	assert.Equal(t, []string{"i1", "i2"}, budgets[0].LineItemIDs)
	assert.Equal(t, "Marcenaria", budgets[0].Nucleo)
	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), budgets[0].CreatedDate.UTC())

	assert.Equal(t, domain.StageRejected, budgets[1].Stage)
	assert.True(t, budgets[1].Removed)
	assert.Zero(t, budgets[1].Revenue)
}

func TestCRMService_ListBudgets_OpenFunnelIgnoresStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	dateRange := domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	mockClient.EXPECT().
		FetchAll(gomock.Any(), crmdomain.CollectionBudget, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ crmdomain.Collection, constraints []crmdomain.Constraint) ([]crmdomain.Record, error) {
			require.Len(t, constraints, 1)
			assert.Equal(t, crmdomain.ConstraintLessThan, constraints[0].ConstraintType)
			return nil, nil
		})

	budgets, err := service.ListBudgets(context.Background(), dateRange, domain.FunnelOpen)
	require.NoError(t, err)
	assert.Empty(t, budgets)
}

func TestCRMService_ListBudgets_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	mockClient.EXPECT().
		FetchAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewNetworkError("orcamento", 500, errors.New("boom")))

	budgets, err := service.ListBudgets(context.Background(), domain.DateRange{}, domain.FunnelClosed)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Nil(t, budgets)
}

func TestCRMService_ListProjectsByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	mockClient.EXPECT().
		FetchByIDs(gomock.Any(), crmdomain.CollectionProject, []string{"p1"}).
		Return([]crmdomain.Record{
			{
				"_id":                  "p1",
				"nucleo":               "Marcenaria",
				"loja":                 "l1",
				"arquiteto":            "a1",
				"cliente":              "c1",
				"vendedor":             "v1",
				"vendedor_responsavel": "v1",
				"vendedor_parceiro":    []any{"v2", "v3"},
				"orcamentos":           []any{"b1"},
			},
		}, nil)

	projects, err := service.ListProjectsByIDs(context.Background(), []string{"p1"})
	require.NoError(t, err)
	require.Len(t, projects, 1)

	project := projects[0]
	assert.Equal(t, []string{"Marcenaria"}, project.NucleoList)
	assert.Equal(t, "l1", project.Loja)
	assert.Equal(t, "a1", project.Arquiteto)
	assert.Equal(t, "c1", project.Cliente)
	assert.Equal(t, []string{"v1", "v2"}, project.Vendedores)
	assert.Equal(t, []string{"b1"}, project.BudgetIDs)
}

func TestCRMService_ListLineItemsByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	mockClient.EXPECT().
		FetchByIDs(gomock.Any(), crmdomain.CollectionLineItem, []string{"i1", "i2"}).
		Return([]crmdomain.Record{
			{"_id": "i1", "orcamento": "b1", "produto": "prd1", "quantidade": 2.0, "custo_total": 300.0, "valor_total": 500.0},
			{"_id": "i2", "orcamento": "b1", "produto": "prd2", "quantidade": "3", "custo_unitario": 100.0},
		}, nil)

	items, err := service.ListLineItemsByIDs(context.Background(), []string{"i1", "i2"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 300.0, items[0].TotalCost)
	assert.Equal(t, 500.0, items[0].TotalPrice)
	// sem custo total, usa custo unitário x quantidade
	assert.Equal(t, 300.0, items[1].TotalCost)
	assert.Equal(t, 3.0, items[1].Quantity)
}

func TestCRMService_ListReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	mockClient.EXPECT().
		FetchAll(gomock.Any(), crmdomain.CollectionSeller, gomock.Nil()).
		Return([]crmdomain.Record{
			{"_id": "v1", "nome": "Ana"},
			{"_id": "v2", "name": "Bruno"},
			{"nome": "sem id"},
		}, nil)

	items, err := service.ListReference(context.Background(), crmdomain.CollectionSeller)
	require.NoError(t, err)
	assert.Equal(t, []domain.ReferenceItem{
		{ID: "v1", Name: "Ana"},
		{ID: "v2", Name: "Bruno"},
	}, items)
}
