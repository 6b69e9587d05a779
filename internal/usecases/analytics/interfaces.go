package analytics

import (
	"context"
	"time"

	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
)

// Analyzer expõe as famílias de métricas do dashboard.
// sessionID identifica a aba do dashboard para o descarte de respostas superadas; vazio desliga a checagem.
type Analyzer interface {
	// Funnel conta orçamentos por estágio no modo fechado (criados no período) ou aberto (acumulado até o fim)
	Funnel(ctx context.Context, filter domain.Filter, mode domain.FunnelMode, sessionID string) (*domain.FunnelResult, error)

	// Margin calcula receita, custo e margem ponderada por núcleo ou loja
	Margin(ctx context.Context, filter domain.Filter, groupBy domain.MarginGroupBy, sessionID string) (*domain.MarginResult, error)

	// Performance ranqueia os 5 melhores vendedores (receita) e arquitetos (projetos)
	Performance(ctx context.Context, filter domain.Filter, sessionID string) (*domain.PerformanceResult, error)

	TopClients(ctx context.Context, filter domain.Filter, sessionID string) (*domain.TopClientsResult, error)

	TopProducts(ctx context.Context, filter domain.Filter, sessionID string) (*domain.TopProductsResult, error)

	// Reference retorna uma lista de referência com TTL longo
	Reference(ctx context.Context, collection crmdomain.Collection, forceRefresh bool) ([]domain.ReferenceItem, error)
}

// Maintainer agrupa as rotinas usadas pelo scheduler
type Maintainer interface {
	// WarmReferences recarrega todas as listas de referência no cache
	WarmReferences(ctx context.Context) error

	// PruneSessions descarta os contadores de geração de sessões inativas
	PruneSessions(maxIdle time.Duration) int
}

// Analytics é a interface completa implementada por Service
type Analytics interface {
	Analyzer
	Maintainer
}
