package analytics

import (
	"context"

	"github.com/sirupsen/logrus"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/telemetry"
)

// Dataset é o resultado do join orçamento -> projeto -> itens, já filtrado
type Dataset struct {
	Filter   domain.Filter
	Budgets  []domain.Budget
	Projects map[string]domain.Project
	// Items agrupa os itens pelo orçamento que os lista
	Items      map[string][]domain.LineItem
	References map[crmdomain.Collection]domain.ReferenceIndex
	// Degraded indica que uma etapa secundária falhou e o cálculo seguiu sem ela
	Degraded bool
}

// ProjectOf retorna o projeto do orçamento, se o join encontrou
func (d *Dataset) ProjectOf(b domain.Budget) (domain.Project, bool) {
	if b.ProjectID == "" {
		return domain.Project{}, false
	}
	p, ok := d.Projects[b.ProjectID]
	return p, ok
}

// NameOf resolve o nome pela lista de referência, caindo para o próprio ID
func (d *Dataset) NameOf(collection crmdomain.Collection, id string) string {
	return d.References[collection].NameOf(id)
}

type loadOptions struct {
	mode       domain.FunnelMode
	lineItems  bool
	references []crmdomain.Collection
}

// loadDataset busca e junta as coleções. Falha ao buscar os orçamentos é fatal;
// itens e listas de referência com falha marcam o resultado como degradado.
func (s *Service) loadDataset(ctx context.Context, filter domain.Filter, opts loadOptions) (*Dataset, error) {
	budgets, err := s.crm.ListBudgets(ctx, filter.DateRange, opts.mode)
	if err != nil {
		return nil, err
	}

	budgets = filterByPeriod(budgets, filter, opts.mode)

	projects, err := s.crm.ListProjectsByIDs(ctx, projectIDs(budgets))
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Filter:     filter,
		Projects:   make(map[string]domain.Project, len(projects)),
		Items:      make(map[string][]domain.LineItem),
		References: make(map[crmdomain.Collection]domain.ReferenceIndex, len(opts.references)),
	}
	for _, p := range projects {
		ds.Projects[p.ID] = p
	}

	ds.Budgets = applyFilter(budgets, ds)

	if opts.lineItems {
		if err := s.joinLineItems(ctx, ds); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logrus.WithError(err).Warn("analytics: falha ao buscar itens de orçamento, seguindo sem custos")
			telemetry.MetricFallbacksTotal.WithLabelValues("line_items", "degraded").Inc()
			ds.Degraded = true
		}
	}

	for _, collection := range opts.references {
		items, err := s.Reference(ctx, collection, false)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logrus.WithError(err).WithField("collection", collection).Warn("analytics: lista de referência indisponível, usando IDs")
			telemetry.MetricFallbacksTotal.WithLabelValues(collection.String(), "degraded").Inc()
			ds.Degraded = true
			ds.References[collection] = domain.ReferenceIndex{}
			continue
		}
		ds.References[collection] = domain.NewReferenceIndex(items)
	}

	logrus.WithFields(logrus.Fields{
		"budgets":  len(ds.Budgets),
		"projects": len(ds.Projects),
		"mode":     opts.mode,
		"degraded": ds.Degraded,
	}).Debug("analytics: dataset montado")

	return ds, nil
}

func (s *Service) joinLineItems(ctx context.Context, ds *Dataset) error {
	ids := make([]string, 0)
	for _, b := range ds.Budgets {
		ids = append(ids, b.LineItemIDs...)
	}
	if len(ids) == 0 {
		return nil
	}

	items, err := s.crm.ListLineItemsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[string]domain.LineItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for _, b := range ds.Budgets {
		for _, id := range b.LineItemIDs {
			if item, ok := byID[id]; ok {
				ds.Items[b.ID] = append(ds.Items[b.ID], item)
			}
		}
	}
	return nil
}

// filterByPeriod reaplica o período localmente: o CRM compara instantes, o dashboard compara dias
func filterByPeriod(budgets []domain.Budget, filter domain.Filter, mode domain.FunnelMode) []domain.Budget {
	out := make([]domain.Budget, 0, len(budgets))
	for _, b := range budgets {
		if mode == domain.FunnelOpen {
			if !filter.DateRange.End.IsZero() && !filter.DateRange.UpToDay(b.CreatedDate) {
				continue
			}
		} else if !filter.DateRange.ContainsDay(b.CreatedDate) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// applyFilter remove orçamentos excluídos e aplica os filtros categóricos após o join
func applyFilter(budgets []domain.Budget, ds *Dataset) []domain.Budget {
	f := ds.Filter
	out := make([]domain.Budget, 0, len(budgets))

	for _, b := range budgets {
		if b.Removed && !f.IncludeRemoved {
			continue
		}
		if f.Status != "" && b.Stage != f.Status {
			continue
		}

		project, hasProject := ds.ProjectOf(b)

		if f.Nucleo != "" && !belongsToNucleo(b, project, f.Nucleo) {
			continue
		}
		if f.Loja != "" && lojaOf(b, project) != f.Loja {
			continue
		}
		if f.Vendedor != "" && !(hasProject && project.HasVendedor(f.Vendedor)) {
			continue
		}
		if f.Arquiteto != "" && !(hasProject && project.Arquiteto == f.Arquiteto) {
			continue
		}

		out = append(out, b)
	}
	return out
}

func projectIDs(budgets []domain.Budget) []string {
	seen := make(map[string]bool, len(budgets))
	ids := make([]string, 0, len(budgets))
	for _, b := range budgets {
		if b.ProjectID == "" || seen[b.ProjectID] {
			continue
		}
		seen[b.ProjectID] = true
		ids = append(ids, b.ProjectID)
	}
	return ids
}

// O campo do próprio orçamento tem precedência sobre o do projeto.
// Projeto ausente no join vale como projeto vazio.

func nucleoOf(b domain.Budget, p domain.Project) string {
	if b.Nucleo != "" {
		return b.Nucleo
	}
	return p.PrimaryNucleo()
}

func belongsToNucleo(b domain.Budget, p domain.Project, nucleo string) bool {
	if b.Nucleo != "" {
		return b.Nucleo == nucleo
	}
	return p.HasNucleo(nucleo)
}

func lojaOf(b domain.Budget, p domain.Project) string {
	if b.Loja != "" {
		return b.Loja
	}
	return p.Loja
}
