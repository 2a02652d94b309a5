package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// JobStatus é o estado exposto em /v1/cron/status
type JobStatus struct {
	Name            string     `json:"name" yaml:"name"`
	Enabled         bool       `json:"enabled" yaml:"enabled"`
	Schedule        string     `json:"schedule" yaml:"schedule"`
	Running         bool       `json:"running" yaml:"running"`
	Runs            int        `json:"runs" yaml:"runs"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty" yaml:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty" yaml:"last_completed_at,omitempty"`
	LastError       string     `json:"last_error,omitempty" yaml:"last_error,omitempty"`
	LastResult      any        `json:"last_result,omitempty" yaml:"last_result,omitempty"`
}

type Job interface {
	Name() string
	Start(ctx context.Context) error
	// TriggerManual dispara uma execução fora do agendamento; false se já houver uma em andamento
	TriggerManual() bool
	Status() JobStatus
	// Wait aguarda as execuções disparadas manualmente
	Wait()
}

// runner serializa as execuções de um job e guarda o resultado da última
type runner struct {
	name string
	task func(ctx context.Context) (any, error)
	now  func() time.Time

	mu              sync.Mutex
	running         bool
	runs            int
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastErr         error
	lastResult      any

	wg sync.WaitGroup
}

func newRunner(name string, task func(ctx context.Context) (any, error)) *runner {
	return &runner{name: name, task: task, now: time.Now}
}

// run executa a tarefa, ignorando a chamada se outra execução estiver em andamento
func (r *runner) run(ctx context.Context) bool {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		logrus.WithField("job", r.name).Info("Job já em andamento, ignorando")
		return false
	}
	r.running = true
	r.lastStartedAt = r.now()
	r.mu.Unlock()

	startTime := time.Now()
	result, err := r.task(ctx)

	r.mu.Lock()
	r.running = false
	r.runs++
	r.lastCompletedAt = r.now()
	r.lastErr = err
	if err == nil {
		r.lastResult = result
	}
	r.mu.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"job":      r.name,
		"duration": time.Since(startTime).String(),
	})
	if err != nil {
		logger.WithError(err).Error("Job finalizado com erro")
	} else {
		logger.Info("Job concluído")
	}
	return true
}

func (r *runner) trigger() bool {
	r.mu.Lock()
	busy := r.running
	r.mu.Unlock()
	if busy {
		logrus.WithField("job", r.name).Info("Job já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.WithField("job", r.name).Info("Iniciando execução manual")
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(context.Background())
	}()
	return true
}

func (r *runner) wait() {
	r.wg.Wait()
}

func (r *runner) status(enabled bool, schedule string) JobStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := JobStatus{
		Name:       r.name,
		Enabled:    enabled,
		Schedule:   schedule,
		Running:    r.running,
		Runs:       r.runs,
		LastResult: r.lastResult,
	}
	if !r.lastStartedAt.IsZero() {
		started := r.lastStartedAt
		status.LastStartedAt = &started
	}
	if !r.lastCompletedAt.IsZero() {
		completed := r.lastCompletedAt
		status.LastCompletedAt = &completed
	}
	if r.lastErr != nil {
		status.LastError = r.lastErr.Error()
	}
	return status
}
