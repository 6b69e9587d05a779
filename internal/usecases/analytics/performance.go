package analytics

import (
	"sort"
	"time"

	crmdomain "github.com/vfg2006/crm-dashboard-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/crm-dashboard-api/internal/domain"
	"github.com/vfg2006/crm-dashboard-api/pkg/utils"
)

const (
	performanceTopN = 5
	periodLayout    = "2006-01"
)

type personTally struct {
	id       string
	value    float64
	byPeriod map[string]float64
}

// ComputePerformance ranqueia vendedores pela receita dos orçamentos ganhos e
// arquitetos pela quantidade de projetos. A tendência é mensal, pela data de criação do orçamento.
func ComputePerformance(ds *Dataset) *domain.PerformanceResult {
	periods := monthsBetween(ds.Filter.DateRange)

	sellers := make(map[string]*personTally)
	architects := make(map[string]*personTally)
	projectsSeen := make(map[string]map[string]bool) // arquiteto -> projetos
	projectsByPeriod := make(map[string]map[string]bool)

	for _, b := range ds.Budgets {
		project, ok := ds.ProjectOf(b)
		if !ok {
			continue
		}
		period := periodOf(b.CreatedDate, ds.Filter.DateRange.Start.Location())

		if b.Stage.Won() {
			for _, sellerID := range project.Vendedores {
				tally := tallyFor(sellers, sellerID)
				tally.value += b.Revenue
				tally.byPeriod[period] += b.Revenue
			}
		}

		if project.Arquiteto == "" {
			continue
		}
		tally := tallyFor(architects, project.Arquiteto)
		if projectsSeen[project.Arquiteto] == nil {
			projectsSeen[project.Arquiteto] = make(map[string]bool)
		}
		if !projectsSeen[project.Arquiteto][project.ID] {
			projectsSeen[project.Arquiteto][project.ID] = true
			tally.value++
		}

		// o projeto conta uma vez por mês em que teve orçamento
		bucket := project.Arquiteto + "|" + period
		if projectsByPeriod[bucket] == nil {
			projectsByPeriod[bucket] = make(map[string]bool)
		}
		if !projectsByPeriod[bucket][project.ID] {
			projectsByPeriod[bucket][project.ID] = true
			tally.byPeriod[period]++
		}
	}

	return &domain.PerformanceResult{
		Sellers:    rankPeople(ds, sellers, crmdomain.CollectionSeller, periods),
		Architects: rankPeople(ds, architects, crmdomain.CollectionArchitect, periods),
	}
}

func tallyFor(tallies map[string]*personTally, id string) *personTally {
	tally, ok := tallies[id]
	if !ok {
		tally = &personTally{id: id, byPeriod: make(map[string]float64)}
		tallies[id] = tally
	}
	return tally
}

func rankPeople(ds *Dataset, tallies map[string]*personTally, collection crmdomain.Collection, periods []string) []domain.PersonPerformance {
	ranked := make([]*personTally, 0, len(tallies))
	for _, tally := range tallies {
		ranked = append(ranked, tally)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].value != ranked[j].value {
			return ranked[i].value > ranked[j].value
		}
		return ranked[i].id < ranked[j].id
	})

	if len(ranked) > performanceTopN {
		ranked = ranked[:performanceTopN]
	}

	people := make([]domain.PersonPerformance, 0, len(ranked))
	for i, tally := range ranked {
		trend := make([]domain.TrendPoint, 0, len(periods))
		for _, period := range periods {
			trend = append(trend, domain.TrendPoint{
				Period: period,
				Value:  utils.RoundWithTwoDecimalPlace(tally.byPeriod[period]),
			})
		}

		people = append(people, domain.PersonPerformance{
			ID:       tally.id,
			Name:     ds.NameOf(collection, tally.id),
			Position: i + 1,
			Value:    utils.RoundWithTwoDecimalPlace(tally.value),
			Trend:    trend,
		})
	}
	return people
}

// monthsBetween lista os meses (yyyy-mm) do intervalo, inclusive
func monthsBetween(r domain.DateRange) []string {
	if r.Start.IsZero() || r.End.IsZero() || r.Start.After(r.End) {
		return []string{}
	}

	periods := make([]string, 0)
	cursor := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, r.Start.Location())
	last := time.Date(r.End.Year(), r.End.Month(), 1, 0, 0, 0, 0, r.Start.Location())
	for !cursor.After(last) {
		periods = append(periods, cursor.Format(periodLayout))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return periods
}

func periodOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(periodLayout)
}
