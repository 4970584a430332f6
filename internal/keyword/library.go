// Package keyword exposes rfext operations as named keywords that can be
// looked up and run with loosely typed arguments, the way a test framework
// calls library keywords.
//
// Keyword names are matched case-insensitively with spaces and underscores
// ignored, so "Pretty Print", "pretty_print" and "prettyprint" all name the
// same keyword.
package keyword

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xolan/rfext/internal/logging"
)

// Sentinel errors returned by Library operations.
var (
	// ErrUnknownKeyword is returned when no keyword matches a name.
	ErrUnknownKeyword = errors.New("unknown keyword")

	// ErrDuplicateKeyword is returned when a name is registered twice.
	ErrDuplicateKeyword = errors.New("keyword already registered")
)

// Outcome is what a keyword reports back to its caller.
type Outcome struct {
	Success bool
	Message string
	// Lines holds multi-line output, one entry per line.
	Lines []string
	// Value is the keyword's return value, if it has one.
	Value any
}

// Func implements a keyword. A returned error means the keyword could not
// run at all; an operational failure is an Outcome with Success false.
type Func func(args Args) (Outcome, error)

// ArgSpec describes one keyword argument.
type ArgSpec struct {
	Name     string
	Doc      string
	Required bool
	// Default is shown in documentation. It is not injected into Args, so
	// implementations can tell an omitted argument from an explicit one.
	Default any
}

// Keyword is a named, documented operation.
type Keyword struct {
	Name string
	Doc  string
	Args []ArgSpec
	Run  Func
}

// Signature renders the keyword as "name(arg, arg=default)".
func (k Keyword) Signature() string {
	parts := make([]string, 0, len(k.Args))
	for _, a := range k.Args {
		if a.Required || a.Default == nil {
			parts = append(parts, a.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", a.Name, a.Default))
	}
	return k.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Bind maps positional and named values onto the keyword's arguments.
// Positional values fill arguments in declaration order; a named value for
// an argument already filled positionally, an unknown name, too many
// positional values or a missing required argument is an ErrBadArgument.
func (k Keyword) Bind(positional []any, named map[string]any) (Args, error) {
	if len(positional) > len(k.Args) {
		return nil, fmt.Errorf("%w: %s takes at most %d arguments, got %d",
			ErrBadArgument, k.Name, len(k.Args), len(positional))
	}

	args := make(Args, len(positional)+len(named))
	for i, v := range positional {
		args[k.Args[i].Name] = v
	}
	for name, v := range named {
		spec, ok := k.arg(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no argument %q", ErrBadArgument, k.Name, name)
		}
		if _, dup := args[spec.Name]; dup {
			return nil, fmt.Errorf("%w: %s got multiple values for %q", ErrBadArgument, k.Name, spec.Name)
		}
		args[spec.Name] = v
	}
	for _, spec := range k.Args {
		if _, ok := args[spec.Name]; spec.Required && !ok {
			return nil, fmt.Errorf("%w: %s requires %q", ErrBadArgument, k.Name, spec.Name)
		}
	}
	return args, nil
}

func (k Keyword) arg(name string) (ArgSpec, bool) {
	want := normalizeName(name)
	for _, a := range k.Args {
		if normalizeName(a.Name) == want {
			return a, true
		}
	}
	return ArgSpec{}, false
}

// Library is a registry of keywords. It is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	keywords map[string]Keyword
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{keywords: make(map[string]Keyword)}
}

// Register adds kw. Names that normalize to an existing keyword are rejected.
func (l *Library) Register(kw Keyword) error {
	key := normalizeName(kw.Name)
	if key == "" {
		return fmt.Errorf("keyword name must not be empty")
	}
	if kw.Run == nil {
		return fmt.Errorf("keyword %q has no implementation", kw.Name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.keywords[key]; ok {
		return fmt.Errorf("%w: %q collides with %q", ErrDuplicateKeyword, kw.Name, existing.Name)
	}
	l.keywords[key] = kw
	return nil
}

// Lookup finds the keyword matching name.
func (l *Library) Lookup(name string) (Keyword, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	kw, ok := l.keywords[normalizeName(name)]
	return kw, ok
}

// Keywords returns all keywords sorted by name.
func (l *Library) Keywords() []Keyword {
	l.mu.RLock()
	out := make([]Keyword, 0, len(l.keywords))
	for _, kw := range l.keywords {
		out = append(out, kw)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered keyword names, sorted.
func (l *Library) Names() []string {
	kws := l.Keywords()
	names := make([]string, len(kws))
	for i, kw := range kws {
		names[i] = kw.Name
	}
	return names
}

// Run binds positional and named arguments and runs the keyword.
func (l *Library) Run(name string, positional []any, named map[string]any) (Outcome, error) {
	kw, ok := l.Lookup(name)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownKeyword, name)
	}
	args, err := kw.Bind(positional, named)
	if err != nil {
		return Outcome{}, err
	}

	logger := logging.GetLogger("keyword")
	logger.Debug().Str("keyword", kw.Name).Interface("args", map[string]any(args)).Msg("run")

	out, err := kw.Run(args)
	if err != nil {
		logger.Warn().Err(err).Str("keyword", kw.Name).Msg("keyword error")
		return Outcome{}, fmt.Errorf("%s: %w", kw.Name, err)
	}
	if !out.Success {
		logger.Warn().Str("keyword", kw.Name).Msg(out.Message)
	}
	return out, nil
}

func normalizeName(name string) string {
	r := strings.NewReplacer(" ", "", "_", "", "\t", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}
