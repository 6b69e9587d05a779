package analytics

import (
	"sync"
	"time"
)

type generation struct {
	token   uint64
	touched time.Time
}

// generationGuard entrega um token por (sessão, painel). Só a requisição com o
// token mais recente pode entregar o resultado.
type generationGuard struct {
	mu      sync.Mutex
	current map[string]generation
	now     func() time.Time
}

func newGenerationGuard(now func() time.Time) *generationGuard {
	return &generationGuard{
		current: make(map[string]generation),
		now:     now,
	}
}

func (g *generationGuard) begin(sessionID, panel string) uint64 {
	if sessionID == "" {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := sessionID + "|" + panel
	next := g.current[key].token + 1
	g.current[key] = generation{token: next, touched: g.now()}
	return next
}

func (g *generationGuard) isCurrent(sessionID, panel string, token uint64) bool {
	if sessionID == "" {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.current[sessionID+"|"+panel].token == token
}

// prune remove painéis sem requisições há mais de maxIdle
func (g *generationGuard) prune(maxIdle time.Duration) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := g.now().Add(-maxIdle)
	removed := 0
	for key, gen := range g.current {
		if gen.touched.Before(cutoff) {
			delete(g.current, key)
			removed++
		}
	}
	return removed
}
