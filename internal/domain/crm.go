package domain

import "time"

// Project é o registro central de vendas do CRM (somente leitura)
type Project struct {
	ID          string    `json:"id"`
	CreatedDate time.Time `json:"created_date"`
	NucleoList  []string  `json:"nucleo_list,omitempty"`
	Loja        string    `json:"loja,omitempty"`
	Arquiteto   string    `json:"arquiteto,omitempty"`
	Cliente     string    `json:"cliente,omitempty"`
	// Vendedores já vem na ordem de prioridade: principais antes dos parceiros, sem repetição
	Vendedores []string `json:"vendedores,omitempty"`
	BudgetIDs  []string `json:"budget_ids,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// HasNucleo verifica se o projeto pertence ao núcleo informado
func (p *Project) HasNucleo(nucleo string) bool {
	for _, n := range p.NucleoList {
		if n == nucleo {
			return true
		}
	}
	return false
}

// HasVendedor verifica se o vendedor participa do projeto
func (p *Project) HasVendedor(vendedor string) bool {
	for _, v := range p.Vendedores {
		if v == vendedor {
			return true
		}
	}
	return false
}

// PrimaryNucleo retorna o primeiro núcleo do projeto
func (p *Project) PrimaryNucleo() string {
	if len(p.NucleoList) == 0 {
		return ""
	}
	return p.NucleoList[0]
}

// Budget é um orçamento ("orçamento") vinculado a um projeto
type Budget struct {
	ID          string      `json:"id"`
	ProjectID   string      `json:"project_id,omitempty"`
	Status      string      `json:"status,omitempty"`
	Stage       BudgetStage `json:"stage"`
	CreatedDate time.Time   `json:"created_date"`
	Revenue     float64     `json:"revenue"`
	Nucleo      string      `json:"nucleo,omitempty"`
	Loja        string      `json:"loja,omitempty"`
	Removed     bool        `json:"removed,omitempty"`
	LineItemIDs []string    `json:"line_item_ids,omitempty"`
}

// LineItem é um item de orçamento
type LineItem struct {
	ID          string  `json:"id"`
	BudgetID    string  `json:"budget_id,omitempty"`
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
	TotalCost   float64 `json:"total_cost"`
	TotalPrice  float64 `json:"total_price"`
}

// ReferenceItem representa listas quase estáticas (vendedores, arquitetos, clientes, lojas)
type ReferenceItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReferenceIndex indexa itens de referência por ID
type ReferenceIndex map[string]string

func NewReferenceIndex(items []ReferenceItem) ReferenceIndex {
	idx := make(ReferenceIndex, len(items))
	for _, item := range items {
		idx[item.ID] = item.Name
	}
	return idx
}

// NameOf retorna o nome do item; quando o join falha, o próprio ID é usado
func (idx ReferenceIndex) NameOf(id string) string {
	if name, ok := idx[id]; ok && name != "" {
		return name
	}
	return id
}
