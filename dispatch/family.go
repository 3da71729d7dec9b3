package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/specialistvlad/typedispatch/internal/ctxlog"
	"github.com/specialistvlad/typedispatch/internal/signature"
	"github.com/specialistvlad/typedispatch/internal/typetag"
)

// Family is a named set of patterns and the call target that dispatches
// between them.
type Family struct {
	name   string
	logger *slog.Logger

	mu       sync.RWMutex
	patterns map[string]Implementation
	target   Implementation
	state    State
}

// Declare creates an unbound family. The name must not be empty.
func Declare(name string, opts ...Option) (*Family, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	o := buildOptions(opts)
	f := &Family{
		name:     name,
		logger:   o.logger.With("family", name),
		patterns: make(map[string]Implementation),
		target:   noop,
		state:    Unbound,
	}
	f.logger.Debug("Declared function family.")
	return f, nil
}

// noop is the call target of an unbound family.
func noop(...any) (any, error) {
	return nil, nil
}

// Name returns the family name.
func (f *Family) Name() string {
	return f.name
}

// State reports whether the family has been bound to its dispatcher.
func (f *Family) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Add registers impl under the types declared by sig. A later registration
// with the same types replaces this one.
func (f *Family) Add(sig Signature, impl Implementation) error {
	if impl == nil {
		return ErrNilImplementation
	}
	resolved, err := signature.Validate(f.context(), sig)
	if err != nil {
		return err
	}
	f.register(resolved, impl)
	return nil
}

// AddText registers impl under the parameter list found in the first
// parenthesized group of decl, e.g. "({a = Number, b = Number}) => a + b".
// Nothing is registered if decl cannot be parsed.
func (f *Family) AddText(decl string, impl Implementation) error {
	if impl == nil {
		return ErrNilImplementation
	}
	sig, err := signature.Parse(f.context(), decl)
	if err != nil {
		f.logger.Debug("Rejected declaration.", "declaration", decl, "error", err)
		return err
	}
	f.register(sig, impl)
	return nil
}

func (f *Family) register(sig Signature, impl Implementation) {
	key := signature.MergeTypeNames(sig)

	f.mu.Lock()
	defer f.mu.Unlock()

	_, replaced := f.patterns[key]
	f.patterns[key] = impl
	f.logger.Debug("Registered pattern.", "key", key, "signature", sig.String(), "replaced", replaced)

	if f.state == Unbound {
		f.target = f.dispatch
		f.state = Bound
		f.logger.Debug("Family bound to dispatcher.")
	}
}

// Call invokes the family with args. An unbound family returns (nil, nil).
func (f *Family) Call(args ...any) (any, error) {
	f.mu.RLock()
	target := f.target
	f.mu.RUnlock()
	return target(args...)
}

// Func returns the family as a plain function. It always forwards to the
// current call target, so a value taken before the first registration
// dispatches once the family is bound.
func (f *Family) Func() Implementation {
	return f.Call
}

func (f *Family) dispatch(args ...any) (any, error) {
	names := typetag.Names(args)
	key := signature.JoinTypeNames(names)

	for i, name := range names {
		if !signature.ValidTypeName(name) {
			f.logger.Debug("Argument type name cannot take part in a key.", "position", i, "type", name)
			return nil, &NoMatchError{Family: f.name, Key: key}
		}
	}

	f.mu.RLock()
	impl, ok := f.patterns[key]
	f.mu.RUnlock()

	if !ok {
		f.logger.Debug("No pattern matched.", "key", key)
		return nil, &NoMatchError{Family: f.name, Key: key}
	}
	f.logger.Debug("Dispatching call.", "key", key)
	return impl(args...)
}

func (f *Family) context() context.Context {
	return ctxlog.WithLogger(context.Background(), f.logger)
}

func (f *Family) String() string {
	return fmt.Sprintf("%s<%s>", f.name, f.State())
}
