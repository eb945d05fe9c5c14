package cuts

import (
	"errors"
	"log/slog"

	"github.com/NagibSuaid/jorlib/events"
)

// component names this package as the source of published events.
const component = "cuts.Manager"

// Manager maintains a registration-ordered set of separation generators and
// runs them against the current master-problem snapshot.
type Manager struct {
	opts   Options
	log    *slog.Logger
	bus    *events.Bus
	gens   []Generator // registration order; dispatch and reporting order
	closed bool
}

// NewManager creates a Manager publishing on bus (nil disables events),
// configured by opts.
func NewManager(bus *events.Bus, opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Manager{opts: opts, log: log, bus: bus}
}

// SetMasterData forwards the snapshot, unmodified, to every registered
// generator.
func (m *Manager) SetMasterData(data MasterData) {
	for _, g := range m.gens {
		g.SetMasterData(data)
	}
}

// AddGenerator registers g. Registering an already registered generator is a
// no-op (set semantics); registration order is preserved. Nil is ignored.
func (m *Manager) AddGenerator(g Generator) {
	if g == nil || m.registered(g) {
		return
	}
	m.gens = append(m.gens, g)
}

// RemoveGenerator unregisters g, preserving the order of the remaining
// generators. Unknown generators are ignored.
func (m *Manager) RemoveGenerator(g Generator) {
	for i, reg := range m.gens {
		if reg == g {
			m.gens = append(m.gens[:i:i], m.gens[i+1:]...)

			return
		}
	}
}

// registered reports whether g is currently in the generator set.
func (m *Manager) registered(g Generator) bool {
	for _, reg := range m.gens {
		if reg == g {
			return true
		}
	}

	return false
}

// Generate runs one separation round: it publishes a start event, invokes
// every registered generator in registration order, publishes a finish event
// carrying the aggregate, and reports whether any cut was found.
//
// With Options.QuickReturn set, iteration stops after the first generator
// that separates a nonempty set.
func (m *Manager) Generate() bool {
	m.publish(events.KindCutGeneration, events.StartCutGeneration{From: component})

	var separated []Inequality
	for _, g := range m.gens {
		separated = append(separated, g.Separate()...)
		if m.opts.QuickReturn && len(separated) > 0 {
			break
		}
	}

	m.publish(events.KindCutGeneration, events.FinishCutGeneration{
		From:      component,
		Separated: asEventCuts(separated),
	})

	return len(separated) > 0
}

// AddCuts stores externally supplied cuts with their owning generators.
// The call is all-or-nothing: every cut is checked before any is stored, and
// a cut whose owner is missing or unregistered fails the whole call with an
// UnregisteredGeneratorError.
func (m *Manager) AddCuts(cutList []Inequality) error {
	for _, c := range cutList {
		if c == nil || c.Owner() == nil || !m.registered(c.Owner()) {
			return &UnregisteredGeneratorError{Cut: c}
		}
	}
	for _, c := range cutList {
		c.Owner().AddCut(c)
	}
	m.log.Debug("added external cuts", slog.Int("count", len(cutList)))

	return nil
}

// Cuts returns the union of all cuts held by the registered generators, in
// generator registration order.
func (m *Manager) Cuts() []Inequality {
	var all []Inequality
	for _, g := range m.gens {
		all = append(all, g.Cuts()...)
	}

	return all
}

// Close releases every registered generator's resources, joining any close
// errors. Close is idempotent: later calls return nil without touching the
// generators again.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for _, g := range m.gens {
		if err := g.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// publish forwards an event to the bus, if one is attached.
func (m *Manager) publish(kind events.Kind, e events.Event) {
	if m.bus != nil {
		m.bus.Publish(kind, e)
	}
}

// asEventCuts converts the aggregate to the bus-facing cut view.
func asEventCuts(separated []Inequality) []events.Cut {
	if len(separated) == 0 {
		return nil
	}
	out := make([]events.Cut, len(separated))
	for i, c := range separated {
		out[i] = c
	}

	return out
}
