package sos

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

const (
	// SentDelay - задержка перехода sending → sent
	SentDelay = 2000 * time.Millisecond
	// WaitingDelay - задержка перехода sent → waiting
	WaitingDelay = 2000 * time.Millisecond

	DefaultEmergencyDescription = "Emergency SOS activated - immediate assistance required"
)

// DefaultLocation используется, когда позиция пользователя неизвестна
var DefaultLocation = orb.Point{55.2708, 25.2048}

// PointerKind - тип события указателя для слайдера
type PointerKind string

const (
	PointerDown PointerKind = "down"
	PointerMove PointerKind = "move"
	PointerUp   PointerKind = "up"
)

// PointerEvent - событие нажатия, перемещения или отпускания по оси X
type PointerEvent struct {
	Kind PointerKind `json:"kind"`
	X    float64     `json:"x"`
}

// EmergencySubmitter регистрирует экстренное обращение
type EmergencySubmitter interface {
	SubmitEmergency(ctx context.Context, userID string, report models.EmergencyReport) (*models.Complaint, error)
}

// TransitionFunc вызывается при каждой смене состояния под блокировкой машины
// и не должна обращаться к ней.
type TransitionFunc func(userID string, from, to State)

// Snapshot - снимок состояния для отображения клиенту
type Snapshot struct {
	State             State    `json:"state"`
	Progress          float64  `json:"progress"`
	Dragging          bool     `json:"dragging"`
	HelpFormAvailable bool     `json:"help_form_available"`
	Responders        []Marker `json:"responders,omitempty"`
	LastReportID      string   `json:"last_report_id,omitempty"`
	Generation        uint64   `json:"generation"`
}

type Option func(*Machine)

func WithLogger(logger *logrus.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

func WithTransitionHook(fn TransitionFunc) Option {
	return func(m *Machine) { m.onTransition = fn }
}

// Machine - машина состояний SOS одного пользователя.
// Автопереходы планируются через clock.Clock и помечаются поколением:
// таймер, сработавший после сброса, ничего не меняет.
type Machine struct {
	mu sync.Mutex

	userID       string
	clock        clock.Clock
	maps         MapProvider
	logger       *logrus.Logger
	onTransition TransitionFunc

	state        State
	gesture      Gesture
	progress     float64
	generation   uint64
	timers       []clock.Timer
	location     orb.Point
	responderMap MapHandle
	lastReportID string
	lastActivity time.Time
}

func NewMachine(userID string, clk clock.Clock, maps MapProvider, opts ...Option) *Machine {
	m := &Machine{
		userID:   userID,
		clock:    clk,
		maps:     maps,
		logger:   logrus.StandardLogger(),
		state:    StateInactive,
		location: DefaultLocation,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastActivity = clk.Now()
	return m
}

// Activate переводит inactive → swipe и обнуляет прогресс.
// Повторная активация в swipe только сбрасывает жест.
func (m *Machine) Activate(location orb.Point) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInactive && m.state != StateSwipe {
		return m.snapshotLocked(), fmt.Errorf("activate from %s: %w", m.state, ErrInvalidTransition)
	}

	m.location = location
	m.lastReportID = ""
	m.gesture.Reset()
	m.progress = 0
	m.touchLocked()
	if m.state != StateSwipe {
		m.transitionLocked(StateSwipe)
	}
	return m.snapshotLocked(), nil
}

// Input передает событие указателя в жест. Работает только в swipe.
func (m *Machine) Input(ev PointerEvent) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSwipe {
		return m.snapshotLocked(), fmt.Errorf("pointer %s in %s: %w", ev.Kind, m.state, ErrInvalidTransition)
	}
	m.touchLocked()

	switch ev.Kind {
	case PointerDown:
		m.gesture.Begin(ev.X)
		m.progress = 0
	case PointerMove:
		completed, err := m.gesture.Move(ev.X)
		if err != nil {
			return m.snapshotLocked(), err
		}
		m.progress = m.gesture.Progress()
		if completed {
			m.completeSwipeLocked()
		}
	case PointerUp:
		if err := m.gesture.End(); err != nil {
			return m.snapshotLocked(), err
		}
		m.progress = m.gesture.Progress()
	default:
		return m.snapshotLocked(), fmt.Errorf("%q: %w", ev.Kind, ErrUnknownPointer)
	}
	return m.snapshotLocked(), nil
}

// Close возвращает машину в inactive из любого состояния,
// отменяет таймеры и закрывает карту ожидания
func (m *Machine) Close() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelTimersLocked()
	m.generation++
	m.gesture.Reset()
	m.progress = 0
	m.lastReportID = ""
	m.touchLocked()
	if m.state != StateInactive {
		m.transitionLocked(StateInactive)
	}
	m.closeMapLocked()
	return m.snapshotLocked()
}

// Snapshot возвращает текущее состояние
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// IdleSince - время последнего действия пользователя или автоперехода
func (m *Machine) IdleSince() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActivity
}

// LogEmergency отправляет экстренное обращение из sent или waiting.
// Состояние при ошибке не меняется. Ответ, пришедший после Close или новой
// активации, возвращается вызывающему, но в машине не сохраняется.
func (m *Machine) LogEmergency(ctx context.Context, submitter EmergencySubmitter, description string) (*models.Complaint, error) {
	m.mu.Lock()
	if !m.state.reportable() {
		state := m.state
		m.mu.Unlock()
		return nil, fmt.Errorf("log emergency in %s: %w", state, ErrInvalidTransition)
	}
	gen := m.generation
	report := emergencyReport(m.location, description)
	m.touchLocked()
	m.mu.Unlock()

	complaint, err := submitter.SubmitEmergency(ctx, m.userID, report)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen == m.generation && m.state.reportable() {
		m.lastReportID = complaint.ID.String()
	} else {
		m.logger.WithFields(logrus.Fields{
			"component":    "sos",
			"user_id":      m.userID,
			"complaint_id": complaint.ID,
		}).Info("Emergency report completed after session reset, result discarded")
	}
	return complaint, nil
}

func emergencyReport(location orb.Point, description string) models.EmergencyReport {
	if description == "" {
		description = DefaultEmergencyDescription
	}
	coords := [2]float64{location.Lon(), location.Lat()}
	return models.EmergencyReport{
		Description: description,
		Location: models.Address{
			Address:     fmt.Sprintf("Location: %.4f, %.4f", location.Lat(), location.Lon()),
			Coordinates: &coords,
		},
	}
}

func (m *Machine) completeSwipeLocked() {
	m.gesture.Reset()
	m.progress = 100
	m.generation++
	m.transitionLocked(StateSending)

	gen := m.generation
	m.timers = append(m.timers,
		m.clock.AfterFunc(SentDelay, func() { m.advance(gen, StateSending, StateSent) }),
		m.clock.AfterFunc(SentDelay+WaitingDelay, func() { m.advance(gen, StateSent, StateWaiting) }),
	)
}

// advance выполняет автопереход, если поколение и исходное состояние не изменились
func (m *Machine) advance(gen uint64, from, to State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation || m.state != from {
		return
	}
	m.touchLocked()
	m.transitionLocked(to)
	if to == StateWaiting {
		m.timers = nil
	}
}

func (m *Machine) transitionLocked(to State) {
	from := m.state
	m.state = to

	if to == StateWaiting {
		m.openMapLocked()
	} else {
		m.closeMapLocked()
	}

	m.logger.WithFields(logrus.Fields{
		"component": "sos",
		"user_id":   m.userID,
		"from":      from,
		"to":        to,
	}).Debug("SOS state changed")

	if m.onTransition != nil {
		m.onTransition(m.userID, from, to)
	}
}

func (m *Machine) openMapLocked() {
	if m.responderMap != nil || m.maps == nil {
		return
	}
	handle, err := m.maps.Open(m.location)
	if err != nil {
		m.logger.WithError(err).WithFields(logrus.Fields{
			"component": "sos",
			"user_id":   m.userID,
		}).Error("Failed to open responder map")
		return
	}
	m.responderMap = handle
}

func (m *Machine) closeMapLocked() {
	if m.responderMap == nil {
		return
	}
	if err := m.responderMap.Close(); err != nil {
		m.logger.WithError(err).WithField("user_id", m.userID).Warn("Failed to close responder map")
	}
	m.responderMap = nil
}

func (m *Machine) cancelTimersLocked() {
	for _, t := range m.timers {
		t.Stop()
	}
	m.timers = nil
}

func (m *Machine) touchLocked() {
	m.lastActivity = m.clock.Now()
}

func (m *Machine) snapshotLocked() Snapshot {
	s := Snapshot{
		State:             m.state,
		Progress:          m.progress,
		Dragging:          m.gesture.Active(),
		HelpFormAvailable: m.state.reportable(),
		LastReportID:      m.lastReportID,
		Generation:        m.generation,
	}
	if m.responderMap != nil {
		s.Responders = m.responderMap.Markers()
	}
	return s
}
