package scheduler

import (
	"sync"
	"time"
)

// jobState controla a execução exclusiva de um job e guarda o histórico para GetStatus
type jobState struct {
	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastResult      any
}

// tryStart marca o job como em execução; false se já houver uma execução em andamento
func (j *jobState) tryStart(now time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return false
	}
	j.running = true
	j.lastStartedAt = now
	return true
}

func (j *jobState) finish(now time.Time, result any, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	j.lastCompletedAt = now
	j.lastResult = result
	j.lastError = ""
	if err != nil {
		j.lastError = err.Error()
	}
}

func (j *jobState) isRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

func (j *jobState) status(cron string, enabled bool) map[string]any {
	j.mu.Lock()
	defer j.mu.Unlock()

	return map[string]any{
		"sync_running":           j.running,
		"sync_cron":              cron,
		"sync_enabled":           enabled,
		"last_sync_started_at":   j.lastStartedAt,
		"last_sync_completed_at": j.lastCompletedAt,
		"last_result":            j.lastResult,
		"last_error":             j.lastError,
	}
}
