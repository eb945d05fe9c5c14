package cuts

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnregisteredGenerator is the sentinel wrapped by
// UnregisteredGeneratorError; test with errors.Is.
var ErrUnregisteredGenerator = errors.New("cuts: owning generator not registered with the manager")

// UnregisteredGeneratorError reports an attempt to add a cut whose owning
// generator is not registered. The offending cut is named in the message.
type UnregisteredGeneratorError struct {
	Cut Inequality
}

// Error names the offending cut and, when known, its owning generator.
func (e *UnregisteredGeneratorError) Error() string {
	if e.Cut == nil {
		return "cuts: cannot add nil cut: owning generator not registered"
	}
	owner := "<nil>"
	if g := e.Cut.Owner(); g != nil {
		owner = g.Name()
	}

	return fmt.Sprintf("cuts: cannot add cut %q: generator %q is not registered", e.Cut.String(), owner)
}

// Unwrap exposes the ErrUnregisteredGenerator sentinel.
func (e *UnregisteredGeneratorError) Unwrap() error { return ErrUnregisteredGenerator }

// MasterData is an opaque, read-only snapshot of the master-problem
// relaxation. It is produced by an external solver and forwarded unmodified
// to every registered generator.
type MasterData any

// Inequality is a valid inequality separated from a master-problem snapshot.
// Implementations are immutable after construction.
type Inequality interface {
	fmt.Stringer

	// Owner returns the generator that separated this cut and is responsible
	// for storing it. A cut is only ever created by a registered generator.
	Owner() Generator
}

// Generator is a separation oracle for one family of valid inequalities.
type Generator interface {
	// Name identifies the generator in errors and logs.
	Name() string

	// SetMasterData installs the snapshot inspected by subsequent Separate
	// calls. The generator must treat the snapshot as read-only.
	SetMasterData(data MasterData)

	// Separate inspects the current snapshot and returns zero or more newly
	// violated inequalities. The generator records every returned cut, so
	// that Cuts reflects it afterwards.
	Separate() []Inequality

	// AddCut stores an externally supplied cut of this generator's family.
	AddCut(iq Inequality)

	// Cuts returns every cut currently held by this generator.
	Cuts() []Inequality

	// Close releases the generator's resources.
	Close() error
}

// Options configures a Manager.
//
// QuickReturn – stop iterating generators as soon as one of them separates a
// nonempty set of cuts. This trades cut variety for speed and may
// under-collect available inequalities; it is off unless explicitly enabled.
// Logger – destination for non-hot-path diagnostics; nil means slog.Default().
type Options struct {
	QuickReturn bool
	Logger      *slog.Logger
}

// DefaultOptions returns the default Manager configuration: collect from
// every generator, log to slog.Default().
func DefaultOptions() Options { return Options{} }
