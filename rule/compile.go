package rule

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Namespace maps rule names to rules, keeping definition order.
type Namespace struct {
	rules map[string]Rule
	names []string
}

func NewNamespace() *Namespace {
	return &Namespace{rules: make(map[string]Rule), names: make([]string, 0)}
}

// Add adds named rules. Returns EmptyNameError or DuplicateRuleError on the first offending rule,
// rules before it stay added.
func (ns *Namespace) Add(rules ...Rule) error {
	for _, r := range rules {
		name := r.Name()
		if name == "" {
			return emptyNameError()
		}
		if _, has := ns.rules[name]; has {
			return duplicateError(name)
		}

		ns.rules[name] = r
		ns.names = append(ns.names, name)
	}
	return nil
}

func (ns *Namespace) Get(name string) (Rule, bool) {
	r, has := ns.rules[name]
	return r, has
}

// Names returns rule names in definition order.
func (ns *Namespace) Names() []string {
	return slices.Clone(ns.names)
}

func (ns *Namespace) Len() int {
	return len(ns.names)
}

// Compile compiles rule named root, see Compile function.
func (ns *Namespace) Compile(root string, opts ...Option) (Rule, error) {
	r, has := ns.rules[root]
	if !has {
		return nil, unknownRootError(root)
	}

	return r, Compile(r, ns, opts...)
}

// CompileAll compiles every rule of namespace including the ones not reachable from the first rule.
func (ns *Namespace) CompileAll(opts ...Option) error {
	c := newCompiler(ns, opts)
	for _, name := range ns.names {
		c.visit(ns.rules[name])
	}
	return c.result()
}

// Option configures compilation.
type Option func(*compiler)

// WithLogger sets logger for debug messages, default is logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *compiler) {
		c.log = log
	}
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	resolved
)

type compiler struct {
	ns      *Namespace
	log     logrus.FieldLogger
	states  map[Rule]visitState
	missing map[string]bool
	e       error
}

func newCompiler(ns *Namespace, opts []Option) *compiler {
	c := &compiler{
		ns:      ns,
		log:     logrus.StandardLogger(),
		states:  make(map[Rule]visitState),
		missing: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile resolves every reference reachable from root using ns and checks rules.
// Returns BoundsError or BadRegexpError for the first malformed rule found,
// otherwise UnresolvedReferenceError listing all names absent in ns.
// References resolved before the error stay resolved, compiling again after fixing namespace is allowed.
func Compile(root Rule, ns *Namespace, opts ...Option) error {
	c := newCompiler(ns, opts)
	c.visit(root)
	return c.result()
}

func (c *compiler) visit(r Rule) {
	if c.states[r] != unvisited {
		return
	}

	c.states[r] = visiting
	r.compile(c)
	c.states[r] = resolved
}

func (c *compiler) fail(e error) {
	if c.e == nil {
		c.e = e
	}
}

func (c *compiler) addMissing(name string) {
	c.missing[name] = true
}

func (c *compiler) result() error {
	if c.e != nil {
		return c.e
	}

	if len(c.missing) == 0 {
		return nil
	}

	names := make([]string, 0, len(c.missing))
	for name := range c.missing {
		names = append(names, name)
	}
	slices.Sort(names)
	return unresolvedError(names)
}
