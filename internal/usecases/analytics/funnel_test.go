package analytics

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
)

func budgetWithStatus(id, status string) domain.Budget {
	return domain.Budget{ID: id, Status: status, Stage: domain.NormalizeStatus(status)}
}

func TestComputeFunnel_AllSent(t *testing.T) {
	budgets := make([]domain.Budget, 0, 10)
	for i := 0; i < 10; i++ {
		budgets = append(budgets, budgetWithStatus(fmt.Sprintf("b%d", i), "enviado ao cliente"))
	}

	result := ComputeFunnel(budgets, domain.FunnelClosed)

	assert.Equal(t, 10, result.Total)
	assert.Equal(t, 10, result.Sent.Count)
	assert.Equal(t, 100.0, result.Sent.Percentage.Value)
	assert.Equal(t, "100.0%", result.Sent.Percentage.Label)
	assert.Equal(t, 10, result.Sent.Percentage.Denominator)
	assert.Equal(t, 10, result.InApproval.Count)
	assert.Equal(t, 0, result.NotSent.Count)
}

func TestComputeFunnel_StagesSumToSent(t *testing.T) {
	statuses := []string{
		"Em elaboração",
		"Enviado ao cliente",
		"Em aprovação",
		"Aprovado",
		"Reprovado",
		"Liberado para produção",
		"APROVADO",
		"Recusado pelo cliente",
		"",
		"Negociação",
	}

	budgets := make([]domain.Budget, 0, len(statuses))
	for i, status := range statuses {
		budgets = append(budgets, budgetWithStatus(fmt.Sprintf("b%d", i), status))
	}

	result := ComputeFunnel(budgets, domain.FunnelOpen)

	assert.Equal(t, domain.FunnelOpen, result.Mode)
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, 2, result.NotSent.Count)
	assert.Equal(t, 8, result.Sent.Count)
	assert.Equal(t, result.Sent.Count,
		result.InApproval.Count+result.Approved.Count+result.Rejected.Count+result.Released.Count)
	assert.Equal(t, 3, result.InApproval.Count)
	assert.Equal(t, 2, result.Approved.Count)
	assert.Equal(t, 2, result.Rejected.Count)
	assert.Equal(t, 1, result.Released.Count)

	// subestágios são relativos aos enviados
	assert.Equal(t, 8, result.Approved.Percentage.Denominator)
	assert.Equal(t, 25.0, result.Approved.Percentage.Value)
	assert.Equal(t, 80.0, result.Sent.Percentage.Value)
}

func TestComputeFunnel_ZeroDenominator(t *testing.T) {
	tests := []struct {
		name    string
		budgets []domain.Budget
	}{
		{name: "sem orçamentos", budgets: nil},
		{name: "nenhum enviado", budgets: []domain.Budget{budgetWithStatus("b1", "rascunho")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeFunnel(tt.budgets, domain.FunnelClosed)

			for _, metric := range []domain.StageMetric{result.InApproval, result.Approved, result.Rejected, result.Released} {
				assert.Equal(t, domain.PercentageSentinel, metric.Percentage.Label)
				assert.False(t, math.IsNaN(metric.Percentage.Value))
				assert.False(t, math.IsInf(metric.Percentage.Value, 0))
				assert.Zero(t, metric.Percentage.Value)
			}
		})
	}
}

func TestComputeFunnel_NormalizesMissingStage(t *testing.T) {
	budgets := []domain.Budget{{ID: "b1", Status: "Aprovado"}}

	result := ComputeFunnel(budgets, domain.FunnelClosed)
	assert.Equal(t, 1, result.Approved.Count)
}
