package analytics

import (
	"sort"

	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/pkg/utils"
)

const rankingTopN = 10

// ComputeTopClients agrupa os orçamentos pelo cliente do projeto, somando a receita
func ComputeTopClients(ds *Dataset) *domain.TopClientsResult {
	byClient := make(map[string]*domain.RankedClient)

	for _, b := range ds.Budgets {
		project, ok := ds.ProjectOf(b)
		if !ok || project.Cliente == "" {
			continue
		}

		client, ok := byClient[project.Cliente]
		if !ok {
			client = &domain.RankedClient{ID: project.Cliente}
			byClient[project.Cliente] = client
		}
		client.Revenue += b.Revenue
		client.BudgetCount++
	}

	clients := make([]domain.RankedClient, 0, len(byClient))
	for _, c := range byClient {
		clients = append(clients, *c)
	}

	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Revenue != clients[j].Revenue {
			return clients[i].Revenue > clients[j].Revenue
		}
		return clients[i].ID < clients[j].ID
	})

	if len(clients) > rankingTopN {
		clients = clients[:rankingTopN]
	}

	for i := range clients {
		clients[i].Position = i + 1
		clients[i].Name = ds.NameOf(crmdomain.CollectionClient, clients[i].ID)
		clients[i].Revenue = utils.RoundWithTwoDecimalPlace(clients[i].Revenue)
	}

	return &domain.TopClientsResult{Clients: clients}
}

// ComputeTopProducts agrupa os itens dos orçamentos por produto, somando preço e quantidade
func ComputeTopProducts(ds *Dataset) *domain.TopProductsResult {
	byProduct := make(map[string]*domain.RankedProduct)

	for _, b := range ds.Budgets {
		for _, item := range ds.Items[b.ID] {
			id := item.ProductID
			if id == "" {
				id = item.ProductName
			}
			if id == "" {
				continue
			}

			product, ok := byProduct[id]
			if !ok {
				product = &domain.RankedProduct{ID: id}
				byProduct[id] = product
			}
			if product.Name == "" && item.ProductName != "" {
				product.Name = item.ProductName
			}
			product.Price += item.TotalPrice
			product.Quantity += item.Quantity
		}
	}

	products := make([]domain.RankedProduct, 0, len(byProduct))
	for _, p := range byProduct {
		products = append(products, *p)
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Price != products[j].Price {
			return products[i].Price > products[j].Price
		}
		return products[i].ID < products[j].ID
	})

	if len(products) > rankingTopN {
		products = products[:rankingTopN]
	}

	for i := range products {
		products[i].Position = i + 1
		if products[i].Name == "" {
			products[i].Name = products[i].ID
		}
		products[i].Price = utils.RoundWithTwoDecimalPlace(products[i].Price)
	}

	return &domain.TopProductsResult{Products: products}
}
