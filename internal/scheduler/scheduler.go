package scheduler

import (
	"context"
	"errors"
	"fmt"
)

// JobAll dispara todos os jobs registrados
const JobAll = "all"

var ErrUnknownJob = errors.New("job desconhecido")

type Manager interface {
	TriggerManual(name string) (map[string]bool, error)
	Status() map[string]JobStatus
	Names() []string
}

type Scheduler struct {
	jobs []Job
}

func New(jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs}
}

func (s *Scheduler) Start(ctx context.Context) error {
	for _, job := range s.jobs {
		if err := job.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TriggerManual dispara o job pelo nome (ou todos com "all") e informa quais foram iniciados
func (s *Scheduler) TriggerManual(name string) (map[string]bool, error) {
	started := make(map[string]bool)
	for _, job := range s.jobs {
		if name == JobAll || job.Name() == name {
			started[job.Name()] = job.TriggerManual()
		}
	}
	if len(started) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return started, nil
}

func (s *Scheduler) Status() map[string]JobStatus {
	status := make(map[string]JobStatus, len(s.jobs))
	for _, job := range s.jobs {
		status[job.Name()] = job.Status()
	}
	return status
}

func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.jobs))
	for _, job := range s.jobs {
		names = append(names, job.Name())
	}
	return names
}

// Wait aguarda as execuções manuais em andamento, usado no desligamento
func (s *Scheduler) Wait() {
	for _, job := range s.jobs {
		job.Wait()
	}
}
