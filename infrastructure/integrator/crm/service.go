package crm

import (
	"context"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/crmclient"
	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
)

type CRMIntegrator interface {
	ListBudgets(ctx context.Context, dateRange domain.DateRange, mode domain.FunnelMode) ([]domain.Budget, error)
	ListProjectsByIDs(ctx context.Context, ids []string) ([]domain.Project, error)
	ListLineItemsByIDs(ctx context.Context, ids []string) ([]domain.LineItem, error)
	ListReference(ctx context.Context, collection crmdomain.Collection) ([]domain.ReferenceItem, error)
}

type CRMService struct {
	Client crmclient.Client
}

func New(client crmclient.Client) CRMIntegrator {
	return &CRMService{
		Client: client,
	}
}

// ListBudgets busca os orçamentos criados no intervalo. No funil aberto
// apenas o limite superior é aplicado.
func (s *CRMService) ListBudgets(ctx context.Context, dateRange domain.DateRange, mode domain.FunnelMode) ([]domain.Budget, error) {
	var after time.Time
	if mode != domain.FunnelOpen && !dateRange.Start.IsZero() {
		// "greater than" é exclusivo
		after = dateRange.Start.Add(-time.Second)
	}

	var before time.Time
	if !dateRange.End.IsZero() {
		before = dateRange.EndExclusive()
	}

	records, err := s.Client.FetchAll(ctx, crmdomain.CollectionBudget, crmdomain.CreatedBetween(after, before))
	if err != nil {
		return nil, err
	}

	budgets := make([]domain.Budget, 0, len(records))
	for _, record := range records {
		var raw crmdomain.BudgetRecord
		if err := decodeRecord(record, &raw); err != nil {
			logDecodeFailure(crmdomain.CollectionBudget, record, err)
			continue
		}

		budgets = append(budgets, domain.Budget{
			ID:          raw.ID,
			ProjectID:   raw.ProjectID,
			Status:      raw.Status,
			Stage:       domain.NormalizeStatus(raw.Status),
			CreatedDate: raw.CreatedDate,
			Revenue:     record.FirstNumber(crmdomain.RevenueAliases...),
			Nucleo:      record.FirstString("nucleo"),
			Loja:        record.FirstString("loja"),
			Removed:     raw.Removed,
			LineItemIDs: raw.LineItemIDs,
		})
	}

	return budgets, nil
}

func (s *CRMService) ListProjectsByIDs(ctx context.Context, ids []string) ([]domain.Project, error) {
	records, err := s.Client.FetchByIDs(ctx, crmdomain.CollectionProject, ids)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(records))
	for _, record := range records {
		var raw crmdomain.ProjectRecord
		if err := decodeRecord(record, &raw); err != nil {
			logDecodeFailure(crmdomain.CollectionProject, record, err)
			continue
		}

		projects = append(projects, domain.Project{
			ID:          raw.ID,
			CreatedDate: raw.CreatedDate,
			NucleoList:  raw.Nucleos,
			Loja:        record.FirstString("loja"),
			Arquiteto:   record.FirstString("arquiteto"),
			Cliente:     record.FirstString("cliente"),
			Vendedores:  record.PeopleIDs(crmdomain.SellerFields...),
			BudgetIDs:   raw.BudgetIDs,
			Status:      raw.Status,
		})
	}

	return projects, nil
}

func (s *CRMService) ListLineItemsByIDs(ctx context.Context, ids []string) ([]domain.LineItem, error) {
	records, err := s.Client.FetchByIDs(ctx, crmdomain.CollectionLineItem, ids)
	if err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, record := range records {
		var raw crmdomain.LineItemRecord
		if err := decodeRecord(record, &raw); err != nil {
			logDecodeFailure(crmdomain.CollectionLineItem, record, err)
			continue
		}

		totalCost := raw.TotalCost
		if totalCost == 0 && raw.UnitCost != 0 {
			totalCost = raw.UnitCost * raw.Quantity
		}

		items = append(items, domain.LineItem{
			ID:          raw.ID,
			BudgetID:    raw.BudgetID,
			ProductID:   raw.ProductID,
			ProductName: raw.ProductName,
			Quantity:    raw.Quantity,
			UnitCost:    raw.UnitCost,
			TotalCost:   totalCost,
			TotalPrice:  raw.TotalPrice,
		})
	}

	return items, nil
}

// ListReference carrega uma lista de referência inteira (vendedores, arquitetos, clientes, lojas)
func (s *CRMService) ListReference(ctx context.Context, collection crmdomain.Collection) ([]domain.ReferenceItem, error) {
	records, err := s.Client.FetchAll(ctx, collection, nil)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ReferenceItem, 0, len(records))
	for _, record := range records {
		id := record.ID()
		if id == "" {
			continue
		}
		items = append(items, domain.ReferenceItem{
			ID:   id,
			Name: record.FirstString(crmdomain.NameAliases...),
		})
	}

	return items, nil
}

func decodeRecord(record crmdomain.Record, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(record))
}

func logDecodeFailure(collection crmdomain.Collection, record crmdomain.Record, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"collection": collection,
		"id":         record.ID(),
	}).Warn("crm: registro ignorado por formato inesperado")
}
