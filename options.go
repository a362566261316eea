package calcx

import "go.uber.org/zap"

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// WithID sets the machine identifier. Defaults to a random UUID.
func WithID(id string) Option {
	return func(m *Machine) {
		if id != "" {
			m.id = id
		}
	}
}

// WithLogger configures the Machine with a zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPublisher configures the Machine with a transition Publisher.
func WithPublisher(p Publisher) Option {
	return func(m *Machine) {
		m.publisher = p
	}
}

// WithRenderer configures the Machine with a Renderer.
func WithRenderer(r Renderer) Option {
	return func(m *Machine) {
		m.renderer = r
	}
}

// WithInitialState seeds the machine with s. ClearAll and Reset still
// return to InitialState.
func WithInitialState(s State) Option {
	return func(m *Machine) {
		m.initial = s
	}
}
