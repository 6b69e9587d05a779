package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestComputePerformance(t *testing.T) {
	ds := newDataset()
	ds.Filter = domain.Filter{DateRange: domain.DateRange{Start: day(2024, 1, 15), End: day(2024, 3, 10)}}
	ds.References[crmdomain.CollectionSeller] = domain.NewReferenceIndex([]domain.ReferenceItem{
		{ID: "v1", Name: "Ana"},
		{ID: "v2", Name: "Bruno"},
	})

	ds.Projects["p1"] = domain.Project{ID: "p1", Arquiteto: "a1", Vendedores: []string{"v1", "v2"}}
	ds.Projects["p2"] = domain.Project{ID: "p2", Arquiteto: "a1", Vendedores: []string{"v2"}}
	ds.Projects["p3"] = domain.Project{ID: "p3", Arquiteto: "a2", Vendedores: []string{"v3"}}

	ds.Budgets = []domain.Budget{
		{ID: "b1", ProjectID: "p1", Stage: domain.StageApproved, Revenue: 1000, CreatedDate: day(2024, 1, 20)},
		{ID: "b2", ProjectID: "p1", Stage: domain.StageReleased, Revenue: 500, CreatedDate: day(2024, 3, 1)},
		{ID: "b3", ProjectID: "p2", Stage: domain.StageApproved, Revenue: 300, CreatedDate: day(2024, 3, 2)},
		// não ganho: não soma receita, mas conta o projeto do arquiteto
		{ID: "b4", ProjectID: "p3", Stage: domain.StageRejected, Revenue: 9000, CreatedDate: day(2024, 2, 5)},
		{ID: "b5", ProjectID: "ausente", Stage: domain.StageApproved, Revenue: 700, CreatedDate: day(2024, 2, 5)},
	}

	result := ComputePerformance(ds)

	require.Len(t, result.Sellers, 2)
	assert.Equal(t, "v2", result.Sellers[0].ID)
	assert.Equal(t, "Bruno", result.Sellers[0].Name)
	assert.Equal(t, 1800.0, result.Sellers[0].Value)
	assert.Equal(t, 1, result.Sellers[0].Position)
	assert.Equal(t, []domain.TrendPoint{
		{Period: "2024-01", Value: 1000},
		{Period: "2024-02", Value: 0},
		{Period: "2024-03", Value: 800},
	}, result.Sellers[0].Trend)

	assert.Equal(t, "v1", result.Sellers[1].ID)
	assert.Equal(t, 1500.0, result.Sellers[1].Value)

	require.Len(t, result.Architects, 2)
	assert.Equal(t, "a1", result.Architects[0].ID)
	assert.Equal(t, 2.0, result.Architects[0].Value)
	// lista de referência ausente: nome é o ID
	assert.Equal(t, "a1", result.Architects[0].Name)
	assert.Equal(t, []domain.TrendPoint{
		{Period: "2024-01", Value: 1},
		{Period: "2024-02", Value: 0},
		{Period: "2024-03", Value: 2},
	}, result.Architects[0].Trend)
	assert.Equal(t, 1.0, result.Architects[1].Value)
}

func TestComputePerformance_TopFive(t *testing.T) {
	ds := newDataset()
	ds.Filter = domain.Filter{DateRange: domain.DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 31)}}

	for i := 1; i <= 8; i++ {
		projectID := fmt.Sprintf("p%d", i)
		ds.Projects[projectID] = domain.Project{
			ID:         projectID,
			Arquiteto:  fmt.Sprintf("a%d", i),
			Vendedores: []string{fmt.Sprintf("v%d", i)},
		}
		ds.Budgets = append(ds.Budgets, domain.Budget{
			ID:          fmt.Sprintf("b%d", i),
			ProjectID:   projectID,
			Stage:       domain.StageApproved,
			Revenue:     float64(i * 100),
			CreatedDate: day(2024, 1, i),
		})
	}

	result := ComputePerformance(ds)

	require.Len(t, result.Sellers, 5)
	assert.Equal(t, "v8", result.Sellers[0].ID)
	assert.Equal(t, "v4", result.Sellers[4].ID)
	assert.Equal(t, 5, result.Sellers[4].Position)

	require.Len(t, result.Architects, 5)
	// empate em quantidade: ordem pelo ID
	assert.Equal(t, "a1", result.Architects[0].ID)
	assert.Len(t, result.Architects[0].Trend, 1)
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01"},
		monthsBetween(domain.DateRange{Start: day(2023, 11, 30), End: day(2024, 1, 1)}))
	assert.Empty(t, monthsBetween(domain.DateRange{}))
}
