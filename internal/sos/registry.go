package sos

import (
	"sync"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/metrics"
	"github.com/shenikar/tourist_safety_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

// Registry хранит машины SOS по пользователям
type Registry struct {
	mu       sync.Mutex
	machines map[string]*Machine
	clock    clock.Clock
	maps     MapProvider
	logger   *logrus.Logger
}

func NewRegistry(clk clock.Clock, maps MapProvider, logger *logrus.Logger) *Registry {
	return &Registry{
		machines: make(map[string]*Machine),
		clock:    clk,
		maps:     maps,
		logger:   logger,
	}
}

// Get возвращает машину пользователя, создавая ее при первом обращении
func (r *Registry) Get(userID string) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.machines[userID]; ok {
		return m
	}
	m := NewMachine(userID, r.clock, r.maps,
		WithLogger(r.logger),
		WithTransitionHook(func(_ string, from, to State) {
			metrics.SOSTransitions.WithLabelValues(string(from), string(to)).Inc()
		}),
	)
	r.machines[userID] = m
	metrics.SOSSessions.Set(float64(len(r.machines)))
	return m
}

// Lookup возвращает машину без создания
func (r *Registry) Lookup(userID string) (*Machine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.machines[userID]
	return m, ok
}

// Sweep закрывает и удаляет сессии без активности дольше maxIdle.
// Возвращает количество удаленных сессий.
func (r *Registry) Sweep(now time.Time, maxIdle time.Duration) int {
	r.mu.Lock()
	var idle []*Machine
	for id, m := range r.machines {
		if now.Sub(m.IdleSince()) > maxIdle {
			idle = append(idle, m)
			delete(r.machines, id)
		}
	}
	metrics.SOSSessions.Set(float64(len(r.machines)))
	r.mu.Unlock()

	for _, m := range idle {
		m.Close()
	}
	return len(idle)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.machines)
}
