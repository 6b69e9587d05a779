package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateRange é um intervalo fechado com granularidade de dia
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Filter representa a combinação de filtros emitida pelo dashboard.
// É um valor imutável: qualquer alteração gera um novo Filter.
type Filter struct {
	DateRange      DateRange   `json:"date_range"`
	Nucleo         string      `json:"nucleo,omitempty"`
	Loja           string      `json:"loja,omitempty"`
	Vendedor       string      `json:"vendedor,omitempty"`
	Arquiteto      string      `json:"arquiteto,omitempty"`
	Status         BudgetStage `json:"status,omitempty"`
	IncludeRemoved bool        `json:"include_removed,omitempty"`
	ForceRefresh   bool        `json:"-"`
}

// Normalize trunca as datas para o início do dia no fuso informado e remove
// espaços dos filtros categóricos. Chave de cache e cálculo usam o mesmo valor.
func (f Filter) Normalize(loc *time.Location) Filter {
	if loc == nil {
		loc = time.UTC
	}

	f.DateRange.Start = TruncateDay(f.DateRange.Start, loc)
	f.DateRange.End = TruncateDay(f.DateRange.End, loc)
	f.Nucleo = strings.TrimSpace(f.Nucleo)
	f.Loja = strings.TrimSpace(f.Loja)
	f.Vendedor = strings.TrimSpace(f.Vendedor)
	f.Arquiteto = strings.TrimSpace(f.Arquiteto)
	return f
}

// Validate verifica se o intervalo de datas é utilizável
func (f Filter) Validate() error {
	if f.DateRange.Start.IsZero() || f.DateRange.End.IsZero() {
		return fmt.Errorf("%w: é necessário informar as datas de início e fim", ErrInvalidFilter)
	}

	if f.DateRange.Start.After(f.DateRange.End) {
		return fmt.Errorf("%w: a data de início não pode ser posterior à data de fim", ErrInvalidFilter)
	}

	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("%w: status desconhecido: %s", ErrInvalidFilter, f.Status)
	}

	return nil
}

// ContainsDay indica se o dia de t está dentro do intervalo (inclusivo)
func (r DateRange) ContainsDay(t time.Time) bool {
	day := TruncateDay(t, r.Start.Location())
	return !day.Before(r.Start) && !day.After(r.End)
}

// UpToDay indica se o dia de t é anterior ou igual ao fim do intervalo
func (r DateRange) UpToDay(t time.Time) bool {
	day := TruncateDay(t, r.End.Location())
	return !day.After(r.End)
}

// EndExclusive retorna o primeiro instante após o último dia do intervalo
func (r DateRange) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

func TruncateDay(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
