package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/crm-dashboard-api/pkg/utils"
)

// PercentageSentinel é exibido quando o denominador é zero
const PercentageSentinel = "0%"

// Percentage representa um percentual sempre relativo a um denominador explícito
type Percentage struct {
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Denominator int     `json:"denominator"`
}

// NewPercentage calcula part/total*100 sem nunca produzir NaN ou Inf
func NewPercentage(part, total int) Percentage {
	if total <= 0 {
		return Percentage{Value: 0, Label: PercentageSentinel, Denominator: total}
	}

	value := utils.Ratio(float64(part), float64(total))
	return Percentage{
		Value:       value,
		Label:       fmt.Sprintf("%.1f%%", value),
		Denominator: total,
	}
}

// ResultMeta descreve a origem de uma métrica
type ResultMeta struct {
	CacheKey    string    `json:"cache_key"`
	Stale       bool      `json:"stale"`
	Degraded    bool      `json:"degraded"`
	GeneratedAt time.Time `json:"generated_at"`
}

type FunnelMode string

const (
	FunnelClosed FunnelMode = "closed"
	FunnelOpen   FunnelMode = "open"
)

func (m FunnelMode) Valid() bool {
	return m == FunnelClosed || m == FunnelOpen
}

type StageMetric struct {
	Count      int        `json:"count"`
	Percentage Percentage `json:"percentage"`
}

// FunnelResult conta orçamentos por estágio. Sent é relativo ao total,
// os subestágios são relativos a Sent.
type FunnelResult struct {
	Mode       FunnelMode  `json:"mode"`
	Total      int         `json:"total"`
	NotSent    StageMetric `json:"not_sent"`
	Sent       StageMetric `json:"sent"`
	InApproval StageMetric `json:"in_approval"`
	Approved   StageMetric `json:"approved"`
	Rejected   StageMetric `json:"rejected"`
	Released   StageMetric `json:"released"`
	Meta       ResultMeta  `json:"meta"`
}

type MarginGroupBy string

const (
	GroupByNucleo MarginGroupBy = "nucleo"
	GroupByLoja   MarginGroupBy = "loja"
)

func (g MarginGroupBy) Valid() bool {
	return g == GroupByNucleo || g == GroupByLoja
}

// BudgetMargin é a margem individual de um orçamento
type BudgetMargin struct {
	BudgetID string  `json:"budget_id"`
	Revenue  float64 `json:"revenue"`
	Cost     float64 `json:"cost"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
}

// MarginTotals soma lucro e receita; a margem é sempre Σlucro/Σreceita
type MarginTotals struct {
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Profit      float64 `json:"profit"`
	Margin      float64 `json:"margin"`
	BudgetCount int     `json:"budget_count"`
}

type MarginGroup struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	MarginTotals
}

type MarginResult struct {
	GroupBy MarginGroupBy `json:"group_by"`
	Overall MarginTotals  `json:"overall"`
	Groups  []MarginGroup `json:"groups"`
	Meta    ResultMeta    `json:"meta"`
}

// TrendPoint é um ponto real agrupado por mês de criação do orçamento
type TrendPoint struct {
	Period string  `json:"period"` // yyyy-mm
	Value  float64 `json:"value"`
}

type PersonPerformance struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Position int          `json:"position"`
	Value    float64      `json:"value"`
	Trend    []TrendPoint `json:"trend"`
}

type PerformanceResult struct {
	Sellers    []PersonPerformance `json:"sellers"`    // por receita
	Architects []PersonPerformance `json:"architects"` // por quantidade de projetos
	Meta       ResultMeta          `json:"meta"`
}

type RankedClient struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Position    int     `json:"position"`
	Revenue     float64 `json:"revenue"`
	BudgetCount int     `json:"budget_count"`
}

type RankedProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position int     `json:"position"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type TopClientsResult struct {
	Clients []RankedClient `json:"clients"`
	Meta    ResultMeta     `json:"meta"`
}

type TopProductsResult struct {
	Products []RankedProduct `json:"products"`
	Meta     ResultMeta      `json:"meta"`
}

func (r *FunnelResult) Metadata() *ResultMeta { return &r.Meta }

func (r *MarginResult) Metadata() *ResultMeta { return &r.Meta }

func (r *PerformanceResult) Metadata() *ResultMeta { return &r.Meta }

func (r *TopClientsResult) Metadata() *ResultMeta { return &r.Meta }

func (r *TopProductsResult) Metadata() *ResultMeta { return &r.Meta }
