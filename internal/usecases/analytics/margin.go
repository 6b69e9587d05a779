package analytics

import (
	"sort"

	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/pkg/utils"
)

const ungroupedKey = "sem_grupo"

// BudgetMarginOf calcula a margem individual: custo é a soma do custo total dos itens
func BudgetMarginOf(b domain.Budget, items []domain.LineItem) domain.BudgetMargin {
	cost := 0.0
	for _, item := range items {
		cost += item.TotalCost
	}

	profit := b.Revenue - cost
	return domain.BudgetMargin{
		BudgetID: b.ID,
		Revenue:  b.Revenue,
		Cost:     cost,
		Profit:   profit,
		Margin:   WeightedMargin(profit, b.Revenue),
	}
}

// WeightedMargin é Σlucro/Σreceita em percentual; receita <= 0 resulta em 0
func WeightedMargin(profit, revenue float64) float64 {
	return utils.Ratio(profit, revenue)
}

// ComputeMargin agrupa por núcleo ou loja somando receita e lucro separadamente.
// A margem de cada grupo e a geral são recalculadas a partir das somas.
func ComputeMargin(ds *Dataset, groupBy domain.MarginGroupBy) *domain.MarginResult {
	groups := make(map[string]*domain.MarginGroup)
	overall := domain.MarginTotals{}

	for _, b := range ds.Budgets {
		m := BudgetMarginOf(b, ds.Items[b.ID])
		project, _ := ds.ProjectOf(b)

		key := groupKey(b, project, groupBy)
		group, ok := groups[key]
		if !ok {
			group = &domain.MarginGroup{Key: key, Label: groupLabel(ds, groupBy, key)}
			groups[key] = group
		}

		addMargin(&group.MarginTotals, m)
		addMargin(&overall, m)
	}

	result := &domain.MarginResult{
		GroupBy: groupBy,
		Groups:  make([]domain.MarginGroup, 0, len(groups)),
	}

	for _, group := range groups {
		group.Margin = WeightedMargin(group.Profit, group.Revenue)
		result.Groups = append(result.Groups, *group)
	}

	sort.Slice(result.Groups, func(i, j int) bool {
		if result.Groups[i].Revenue != result.Groups[j].Revenue {
			return result.Groups[i].Revenue > result.Groups[j].Revenue
		}
		return result.Groups[i].Key < result.Groups[j].Key
	})

	overall.Margin = WeightedMargin(overall.Profit, overall.Revenue)
	result.Overall = overall
	return result
}

func addMargin(totals *domain.MarginTotals, m domain.BudgetMargin) {
	totals.Revenue += m.Revenue
	totals.Cost += m.Cost
	totals.Profit += m.Profit
	totals.BudgetCount++
}

func groupKey(b domain.Budget, p domain.Project, groupBy domain.MarginGroupBy) string {
	var key string
	if groupBy == domain.GroupByLoja {
		key = lojaOf(b, p)
	} else {
		key = nucleoOf(b, p)
	}

	if key == "" {
		return ungroupedKey
	}
	return key
}

func groupLabel(ds *Dataset, groupBy domain.MarginGroupBy, key string) string {
	switch {
	case key == ungroupedKey && groupBy == domain.GroupByLoja:
		return "Sem loja"
	case key == ungroupedKey:
		return "Sem núcleo"
	case groupBy == domain.GroupByLoja:
		return ds.NameOf(crmdomain.CollectionStore, key)
	default:
		// núcleo é um enum: o próprio valor é o rótulo
		return key
	}
}
