package calcx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Transition records one applied action.
type Transition struct {
	MachineID string    `json:"machineID" yaml:"machineID"`
	Action    string    `json:"action" yaml:"action"`
	Before    State     `json:"before" yaml:"before"`
	After     State     `json:"after" yaml:"after"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Publisher receives every transition a Machine applies.
type Publisher interface {
	Publish(ctx context.Context, t Transition) error
	Close() error
}

// Renderer turns a state into something a user can look at.
type Renderer interface {
	Render(s State) string
	ExportJSON(s State) ([]byte, error)
}

// Machine owns one calculator state and applies actions to it.
// Safe for concurrent use; actions are applied one at a time.
type Machine struct {
	id        string
	mu        sync.RWMutex
	state     State
	initial   State
	logger    *zap.Logger
	publisher Publisher
	renderer  Renderer
}

// NewMachine creates a Machine in the initial state.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		id:      uuid.NewString(),
		initial: InitialState(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = m.initial.clone()
	m.logger = m.logger.With(zap.String("machine_id", m.id))
	return m
}

// ID returns the machine identifier.
func (m *Machine) ID() string {
	return m.id
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.clone()
}

// Send applies a to the current state and returns the new state.
func (m *Machine) Send(ctx context.Context, a Action) (State, error) {
	if err := ctx.Err(); err != nil {
		return m.State(), err
	}
	if err := ValidateAction(a); err != nil {
		return m.State(), err
	}

	m.mu.Lock()
	before := m.state
	m.state = Reduce(before, a)
	after := m.state.clone()
	m.mu.Unlock()

	m.logger.Debug("action applied",
		zap.Stringer("action", a),
		zap.String("display", after.DisplayText),
		zap.Bool("awaiting", after.AwaitingNewOperand),
	)

	m.publish(ctx, a, before, after)
	return after, nil
}

// SendAll applies actions in order, stopping at the first error.
func (m *Machine) SendAll(ctx context.Context, actions ...Action) (State, error) {
	s := m.State()
	for i, a := range actions {
		var err error
		if s, err = m.Send(ctx, a); err != nil {
			return s, fmt.Errorf("action %d: %w", i, err)
		}
	}
	return s, nil
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset(ctx context.Context) State {
	s, _ := m.Send(ctx, ClearAll{})
	return s
}

// Render renders the current state with the configured Renderer.
func (m *Machine) Render() string {
	s := m.State()
	if m.renderer == nil {
		return s.DisplayText
	}
	return m.renderer.Render(s)
}

// ExportJSON serializes the current state with the configured Renderer.
func (m *Machine) ExportJSON() ([]byte, error) {
	if m.renderer == nil {
		return nil, errors.New("no renderer configured")
	}
	return m.renderer.ExportJSON(m.State())
}

// Close closes the publisher, if any.
func (m *Machine) Close() error {
	if m.publisher == nil {
		return nil
	}
	return m.publisher.Close()
}

func (m *Machine) publish(ctx context.Context, a Action, before, after State) {
	if m.publisher == nil {
		return
	}
	t := Transition{
		MachineID: m.id,
		Action:    a.String(),
		Before:    before.clone(),
		After:     after.clone(),
		Timestamp: time.Now(),
	}
	if err := m.publisher.Publish(ctx, t); err != nil {
		m.logger.Warn("publish transition", zap.Error(err))
	}
}
