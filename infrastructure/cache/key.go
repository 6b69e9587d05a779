package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/crm-dashboard-api/internal/domain"
)

const (
	// SchemaVersion entra em toda chave; incrementar ao mudar o formato dos payloads
	SchemaVersion = 1

	KeyPrefix     = "crm_cache"
	SessionPrefix = "crm_session:"

	hashLength = 12
)

// Aggregate é o nome lógico do que está em cache
type Aggregate string

const (
	AggregateFunnel      Aggregate = "funnel"
	AggregateMargin      Aggregate = "margin"
	AggregatePerformance Aggregate = "performance"
	AggregateTopClients  Aggregate = "top_clients"
	AggregateTopProducts Aggregate = "top_products"
	AggregateReference   Aggregate = "reference"
)

// QueryAggregates são os agregados transacionais (TTL curto)
var QueryAggregates = []Aggregate{
	AggregateFunnel,
	AggregateMargin,
	AggregatePerformance,
	AggregateTopClients,
	AggregateTopProducts,
}

func (a Aggregate) String() string {
	return string(a)
}

// IsReference indica listas quase estáticas, que usam o TTL longo
func (a Aggregate) IsReference() bool {
	return a == AggregateReference
}

// Prefix retorna o prefixo comum de todas as chaves do agregado
func Prefix(aggregate Aggregate) string {
	return fmt.Sprintf("%s:v%d:%s:", KeyPrefix, SchemaVersion, aggregate)
}

// Key deriva a chave do agregado a partir do filtro normalizado.
// variant distingue resultados do mesmo agregado (modo do funil, agrupamento da margem).
func Key(aggregate Aggregate, variant string, filter domain.Filter) string {
	sum := sha256.Sum256([]byte(CanonicalFilter(aggregate, variant, filter)))
	return Prefix(aggregate) + hex.EncodeToString(sum[:])[:hashLength]
}

// ReferenceKey é a chave da lista de referência de uma coleção
func ReferenceKey(collection string) string {
	return Prefix(AggregateReference) + collection
}

// SessionKey é a chave da flag de sessão usada na detecção de reload
func SessionKey(sessionID string) string {
	return SessionPrefix + sessionID
}

// CanonicalFilter serializa o filtro em ordem fixa. Datas usam apenas o dia,
// ForceRefresh não participa. Espera um filtro já normalizado.
func CanonicalFilter(aggregate Aggregate, variant string, filter domain.Filter) string {
	fields := []string{
		"aggregate=" + aggregate.String(),
		"variant=" + variant,
		"start=" + formatDay(filter.DateRange.Start),
		"end=" + formatDay(filter.DateRange.End),
		"nucleo=" + filter.Nucleo,
		"loja=" + filter.Loja,
		"vendedor=" + filter.Vendedor,
		"arquiteto=" + filter.Arquiteto,
		"status=" + string(filter.Status),
		"removed=" + strconv.FormatBool(filter.IncludeRemoved),
	}
	return strings.Join(fields, "|")
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
