package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
)

func TestComputeTopClients(t *testing.T) {
	ds := newDataset()
	ds.References[crmdomain.CollectionClient] = domain.NewReferenceIndex([]domain.ReferenceItem{{ID: "c0", Name: "Cliente Zero"}})

	for i := 0; i < 12; i++ {
		projectID := fmt.Sprintf("p%d", i)
		ds.Projects[projectID] = domain.Project{ID: projectID, Cliente: fmt.Sprintf("c%d", i)}
		ds.Budgets = append(ds.Budgets,
			domain.Budget{ID: fmt.Sprintf("b%d-a", i), ProjectID: projectID, Revenue: float64(1000 - i*10)},
			domain.Budget{ID: fmt.Sprintf("b%d-b", i), ProjectID: projectID, Revenue: 1.5},
		)
	}
	ds.Budgets = append(ds.Budgets, domain.Budget{ID: "orfao", ProjectID: "sem-projeto", Revenue: 99999})

	result := ComputeTopClients(ds)

	require.Len(t, result.Clients, 10)
	assert.Equal(t, "c0", result.Clients[0].ID)
	assert.Equal(t, "Cliente Zero", result.Clients[0].Name)
	assert.Equal(t, 1001.5, result.Clients[0].Revenue)
	assert.Equal(t, 2, result.Clients[0].BudgetCount)
	assert.Equal(t, 1, result.Clients[0].Position)
	assert.Equal(t, "c9", result.Clients[9].ID)
	assert.Equal(t, "c9", result.Clients[9].Name)
}

func TestComputeTopProducts(t *testing.T) {
	ds := newDataset()
	ds.Budgets = []domain.Budget{{ID: "b1"}, {ID: "b2"}}
	ds.Items["b1"] = []domain.LineItem{
		{ProductID: "prd1", ProductName: "Armário", TotalPrice: 500, Quantity: 1},
		{ProductID: "prd2", TotalPrice: 800, Quantity: 2},
		{TotalPrice: 1000, Quantity: 1},
	}
	ds.Items["b2"] = []domain.LineItem{
		{ProductID: "prd1", TotalPrice: 400, Quantity: 3},
	}
	// itens de orçamentos fora do dataset não contam
	ds.Items["b3"] = []domain.LineItem{{ProductID: "prd3", TotalPrice: 5000}}

	result := ComputeTopProducts(ds)

	require.Len(t, result.Products, 2)
	assert.Equal(t, domain.RankedProduct{ID: "prd1", Name: "Armário", Position: 1, Price: 900, Quantity: 4}, result.Products[0])
	assert.Equal(t, domain.RankedProduct{ID: "prd2", Name: "prd2", Position: 2, Price: 800, Quantity: 2}, result.Products[1])
}
