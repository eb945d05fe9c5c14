// Package cuts_test validates the cut manager.
// Focus:
//  1. Generate aggregates in registration order and reports growth truthfully.
//  2. QuickReturn stops after the first successful generator.
//  3. AddCuts is all-or-nothing and rejects unregistered owners.
//  4. Close is idempotent and joins generator errors.
//  5. Event ordering: one start strictly before one finish, listeners in
//     subscription order.
package cuts_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NagibSuaid/jorlib/cuts"
	"github.com/NagibSuaid/jorlib/events"
)

// stubCut is an opaque inequality owned by a stub generator.
type stubCut struct {
	owner cuts.Generator
	name  string
}

func (c *stubCut) String() string        { return c.name }
func (c *stubCut) Owner() cuts.Generator { return c.owner }

// stubGen is a scripted separation oracle: each Separate call pops the next
// pending batch and records it, as a real generator would.
type stubGen struct {
	name        string
	pending     [][]cuts.Inequality
	held        []cuts.Inequality
	data        cuts.MasterData
	separations int
	closes      int
	closeErr    error
}

func (g *stubGen) Name() string { return g.name }

func (g *stubGen) SetMasterData(d cuts.MasterData) { g.data = d }

func (g *stubGen) AddCut(iq cuts.Inequality) { g.held = append(g.held, iq) }

func (g *stubGen) Cuts() []cuts.Inequality { return append([]cuts.Inequality(nil), g.held...) }

func (g *stubGen) Close() error {
	g.closes++

	return g.closeErr
}

func (g *stubGen) Separate() []cuts.Inequality {
	g.separations++
	if len(g.pending) == 0 {
		return nil
	}
	batch := g.pending[0]
	g.pending = g.pending[1:]
	g.held = append(g.held, batch...)

	return batch
}

// cut builds a stub inequality owned by g.
func cut(g *stubGen, name string) cuts.Inequality { return &stubCut{owner: g, name: name} }

func names(list []cuts.Inequality) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.String()
	}

	return out
}

func TestGenerateAggregatesInRegistrationOrder(t *testing.T) {
	g1 := &stubGen{name: "clique"}
	g1.pending = [][]cuts.Inequality{{cut(g1, "c1")}}
	g2 := &stubGen{name: "cover"}
	g2.pending = [][]cuts.Inequality{{cut(g2, "k1"), cut(g2, "k2")}}

	m := cuts.NewManager(nil, cuts.DefaultOptions())
	m.AddGenerator(g1)
	m.AddGenerator(g2)

	before := len(m.Cuts())
	require.True(t, m.Generate())
	require.Equal(t, before+3, len(m.Cuts()), "Generate()==true must mean the cut set grew")
	require.Equal(t, []string{"c1", "k1", "k2"}, names(m.Cuts()))
}

func TestGenerateWithoutViolationsReturnsFalse(t *testing.T) {
	g := &stubGen{name: "empty"}
	m := cuts.NewManager(nil, cuts.DefaultOptions())
	m.AddGenerator(g)

	require.False(t, m.Generate())
	require.Empty(t, m.Cuts())
	require.Equal(t, 1, g.separations)
}

func TestGenerateQuickReturnStopsEarly(t *testing.T) {
	g1 := &stubGen{name: "first"}
	g1.pending = [][]cuts.Inequality{{cut(g1, "c1")}}
	g2 := &stubGen{name: "second"}
	g2.pending = [][]cuts.Inequality{{cut(g2, "never")}}

	m := cuts.NewManager(nil, cuts.Options{QuickReturn: true})
	m.AddGenerator(g1)
	m.AddGenerator(g2)

	require.True(t, m.Generate())
	require.Zero(t, g2.separations, "QuickReturn must skip later generators")
	require.Equal(t, []string{"c1"}, names(m.Cuts()))
}

func TestSetMasterDataForwardedUnmodified(t *testing.T) {
	g1 := &stubGen{name: "g1"}
	g2 := &stubGen{name: "g2"}
	m := cuts.NewManager(nil, cuts.DefaultOptions())
	m.AddGenerator(g1)
	m.AddGenerator(g2)

	snapshot := &struct{ objective float64 }{objective: 42}
	m.SetMasterData(snapshot)
	require.Same(t, snapshot, g1.data)
	require.Same(t, snapshot, g2.data)
}

func TestAddCutsDelegatesToOwner(t *testing.T) {
	g := &stubGen{name: "g"}
	m := cuts.NewManager(nil, cuts.DefaultOptions())
	m.AddGenerator(g)

	require.NoError(t, m.AddCuts([]cuts.Inequality{cut(g, "warm1"), cut(g, "warm2")}))
	require.Equal(t, []string{"warm1", "warm2"}, names(m.Cuts()))
}

func TestAddCutsRejectsUnregisteredOwnerAllOrNothing(t *testing.T) {
	registered := &stubGen{name: "registered"}
	stranger := &stubGen{name: "stranger"}
	m := cuts.NewManager(nil, cuts.DefaultOptions())
	m.AddGenerator(registered)

	err := m.AddCuts([]cuts.Inequality{cut(registered, "ok"), cut(stranger, "bad")})
	require.ErrorIs(t, err, cuts.ErrUnregisteredGenerator)

	var ugErr *cuts.UnregisteredGeneratorError
	require.ErrorAs(t, err, &ugErr)
	require.Contains(t, ugErr.Error(), "bad")
	require.Contains(t, ugErr.Error(), "stranger")

	// All-or-nothing: the valid cut must not have been stored either.
	require.Empty(t, m.Cuts())
}

func TestRemoveGeneratorDropsItsCuts(t *testing.T) {
	g1 := &stubGen{name: "keep"}
	g2 := &stubGen{name: "drop"}
	m := cuts.NewManager(nil, cuts.DefaultOptions())
	m.AddGenerator(g1)
	m.AddGenerator(g2)
	require.NoError(t, m.AddCuts([]cuts.Inequality{cut(g1, "a"), cut(g2, "b")}))

	m.RemoveGenerator(g2)
	require.Equal(t, []string{"a"}, names(m.Cuts()))
	require.ErrorIs(t, m.AddCuts([]cuts.Inequality{cut(g2, "late")}), cuts.ErrUnregisteredGenerator)
}

func TestCloseIsIdempotent(t *testing.T) {
	failing := &stubGen{name: "failing", closeErr: errors.New("release failed")}
	clean := &stubGen{name: "clean"}
	m := cuts.NewManager(nil, cuts.DefaultOptions())
	m.AddGenerator(failing)
	m.AddGenerator(clean)

	err := m.Close()
	require.Error(t, err)
	require.Equal(t, 1, failing.closes)
	require.Equal(t, 1, clean.closes)

	// Second call: no error, no double release.
	require.NoError(t, m.Close())
	require.Equal(t, 1, failing.closes)
	require.Equal(t, 1, clean.closes)
}

// journalListener appends "<id>:<event>" entries to a shared journal so that
// cross-listener ordering can be asserted.
type journalListener struct {
	id      string
	journal *[]string
}

func (l *journalListener) Notify(e events.Event) {
	var tag string
	switch e.(type) {
	case events.StartCutGeneration:
		tag = "start"
	case events.FinishCutGeneration:
		tag = "finish"
	default:
		tag = fmt.Sprintf("%T", e)
	}
	*l.journal = append(*l.journal, l.id+":"+tag)
}

func TestGenerateEventOrdering(t *testing.T) {
	bus := events.NewBus(nil)
	var journal []string
	l1 := &journalListener{id: "L1", journal: &journal}
	l2 := &journalListener{id: "L2", journal: &journal}
	bus.Subscribe(events.KindCutGeneration, l1)
	bus.Subscribe(events.KindCutGeneration, l2)

	g := &stubGen{name: "g"}
	g.pending = [][]cuts.Inequality{{cut(g, "c1")}}
	m := cuts.NewManager(bus, cuts.DefaultOptions())
	m.AddGenerator(g)
	require.True(t, m.Generate())

	// Exactly one start strictly before any finish; per event type the
	// invocation order equals the subscription order.
	require.Equal(t, []string{"L1:start", "L2:start", "L1:finish", "L2:finish"}, journal)
}

func TestFinishCutGenerationCarriesSeparatedCuts(t *testing.T) {
	bus := events.NewBus(nil)
	rec := &finishRecorder{}
	bus.Subscribe(events.KindCutGeneration, rec)

	g := &stubGen{name: "g"}
	g.pending = [][]cuts.Inequality{{cut(g, "c1"), cut(g, "c2")}}
	m := cuts.NewManager(bus, cuts.DefaultOptions())
	m.AddGenerator(g)
	require.True(t, m.Generate())

	require.Len(t, rec.separated, 2)
	require.Equal(t, "c1", rec.separated[0].String())
	require.Equal(t, "c2", rec.separated[1].String())
}

// finishRecorder keeps the payload of the last FinishCutGeneration.
type finishRecorder struct {
	separated []events.Cut
}

func (r *finishRecorder) Notify(e events.Event) {
	if fin, ok := e.(events.FinishCutGeneration); ok {
		r.separated = fin.Separated
	}
}
