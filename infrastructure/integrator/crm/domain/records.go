package crmdomain

import (
	"strconv"
	"strings"
	"time"
)

const (
	FieldID          = "_id"
	FieldCreatedDate = "Created Date"
)

// ConstraintType é o operador suportado pelo parâmetro "constraints"
type ConstraintType string

const (
	ConstraintEquals      ConstraintType = "equals"
	ConstraintGreaterThan ConstraintType = "greater than"
	ConstraintLessThan    ConstraintType = "less than"
	ConstraintContains    ConstraintType = "contains"
	ConstraintIn          ConstraintType = "in"
)

type Constraint struct {
	Key            string         `json:"key"`
	ConstraintType ConstraintType `json:"constraint_type"`
	Value          any            `json:"value,omitempty"`
}

// CreatedBetween monta as constraints de data de criação. Datas zero são ignoradas.
func CreatedBetween(after, before time.Time) []Constraint {
	constraints := make([]Constraint, 0, 2)
	if !after.IsZero() {
		constraints = append(constraints, Constraint{
			Key:            FieldCreatedDate,
			ConstraintType: ConstraintGreaterThan,
			Value:          after.UTC().Format(time.RFC3339),
		})
	}
	if !before.IsZero() {
		constraints = append(constraints, Constraint{
			Key:            FieldCreatedDate,
			ConstraintType: ConstraintLessThan,
			Value:          before.UTC().Format(time.RFC3339),
		})
	}
	return constraints
}

// RevenueAliases são os nomes legados do valor líquido de produtos, em ordem de prioridade
var RevenueAliases = []string{
	"valor_liquido_produtos",
	"valor_produtos_liquido",
	"valor_liquido",
	"valor_total_produtos",
	"valor_total",
}

// SellerFields são os campos de vendedor do projeto: principais antes dos parceiros
var SellerFields = []string{
	"vendedor",
	"vendedor_responsavel",
	"vendedor_2",
	"vendedor_parceiro",
	"vendedor_parceiro_2",
}

// NameAliases são os campos de nome das listas de referência
var NameAliases = []string{"nome", "name", "razao_social", "nome_fantasia"}

type BudgetRecord struct {
	ID          string    `mapstructure:"_id"`
	CreatedDate time.Time `mapstructure:"Created Date"`
	ProjectID   string    `mapstructure:"projeto"`
	Status      string    `mapstructure:"status"`
	Removed     bool      `mapstructure:"removido"`
	LineItemIDs []string  `mapstructure:"itens"`
	// nucleo e loja chegam como texto ou lista, extraídos via FirstString
	Nucleo string `mapstructure:"-"`
	Loja   string `mapstructure:"-"`
}

type ProjectRecord struct {
	ID          string    `mapstructure:"_id"`
	CreatedDate time.Time `mapstructure:"Created Date"`
	Nucleos     []string  `mapstructure:"nucleo"`
	BudgetIDs   []string  `mapstructure:"orcamentos"`
	Status      string    `mapstructure:"status"`
	Loja        string    `mapstructure:"-"`
	Arquiteto   string    `mapstructure:"-"`
	Cliente     string    `mapstructure:"-"`
}

type LineItemRecord struct {
	ID          string  `mapstructure:"_id"`
	BudgetID    string  `mapstructure:"orcamento"`
	ProductID   string  `mapstructure:"produto"`
	ProductName string  `mapstructure:"produto_nome"`
	Quantity    float64 `mapstructure:"quantidade"`
	UnitCost    float64 `mapstructure:"custo_unitario"`
	TotalCost   float64 `mapstructure:"custo_total"`
	TotalPrice  float64 `mapstructure:"valor_total"`
}

// FirstNumber devolve o primeiro alias presente com valor numérico
func (r Record) FirstNumber(aliases ...string) float64 {
	for _, alias := range aliases {
		raw, ok := r[alias]
		if !ok || raw == nil {
			continue
		}
		if value, ok := toFloat(raw); ok {
			return value
		}
	}
	return 0
}

// FirstString devolve o primeiro alias presente com texto não vazio
func (r Record) FirstString(aliases ...string) string {
	for _, alias := range aliases {
		if value := firstNonEmpty(r[alias]); value != "" {
			return value
		}
	}
	return ""
}

// PeopleIDs extrai IDs dos campos na ordem informada, cada pessoa uma única vez.
// Campos em lista contribuem com o primeiro valor não vazio.
func (r Record) PeopleIDs(fields ...string) []string {
	seen := make(map[string]bool, len(fields))
	ids := make([]string, 0, len(fields))
	for _, field := range fields {
		id := firstNonEmpty(r[field])
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func firstNonEmpty(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	case []string:
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		value, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return value, true
	}
	return 0, false
}
