package analytics

import "github.com/vfg2006/crm-dashboard-api/internal/domain"

// ComputeFunnel conta os orçamentos por estágio. Sent é relativo ao total e
// cada subestágio é relativo a Sent.
func ComputeFunnel(budgets []domain.Budget, mode domain.FunnelMode) *domain.FunnelResult {
	counts := make(map[domain.BudgetStage]int, len(domain.AllStages))
	for _, b := range budgets {
		stage := b.Stage
		if !stage.Valid() {
			stage = domain.NormalizeStatus(b.Status)
		}
		counts[stage]++
	}

	total := len(budgets)
	sent := total - counts[domain.StageNotSent]

	return &domain.FunnelResult{
		Mode:       mode,
		Total:      total,
		NotSent:    stageMetric(counts[domain.StageNotSent], total),
		Sent:       stageMetric(sent, total),
		InApproval: stageMetric(counts[domain.StageInApproval], sent),
		Approved:   stageMetric(counts[domain.StageApproved], sent),
		Rejected:   stageMetric(counts[domain.StageRejected], sent),
		Released:   stageMetric(counts[domain.StageReleased], sent),
	}
}

func stageMetric(count, denominator int) domain.StageMetric {
	return domain.StageMetric{
		Count:      count,
		Percentage: domain.NewPercentage(count, denominator),
	}
}
