package types

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type Config struct {
	// MaxDepth bounds how deeply a single query may recurse through rules of
	// foreign representations before it gives up and reports false.
	MaxDepth int `yaml:"max_depth"`
}

var DefaultConfig = Config{
	MaxDepth: 256,
}

func (c *Config) Validate(logger *slog.Logger) error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth must be at least 1, got %d", ErrInvalidConfig, c.MaxDepth)
	}

	return nil
}

// Checker evaluates the assignability relation and reports how it did so to
// its logger.
type Checker struct {
	logger *slog.Logger
	Config Config
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var defaultChecker = &Checker{
	logger: discardLogger,
	Config: DefaultConfig,
}

// DefaultChecker returns a copy of the checker used by the IsAssignableTo
// methods of the built-in representations. It discards all log output.
func DefaultChecker() *Checker {
	c := *defaultChecker
	return &c
}

func NewChecker(logger *slog.Logger, config Config) (*Checker, error) {
	if logger == nil {
		logger = discardLogger
	}

	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate checker config: %w", err)
	}

	return &Checker{
		logger: logger,
		Config: config,
	}, nil
}

func (c *Checker) IsAssignableTo(v, to Type) bool {
	return Query{c: c}.IsAssignableTo(v, to)
}

func (c *Checker) enabled(level slog.Level) bool {
	return c.logger.Handler().Enabled(context.Background(), level)
}

// Query is a single assignability evaluation in progress. Relation rules use
// it to compare component types so that depth and tracing carry through.
//
// Depth only counts rules of representations outside this package. Traits
// and functions are acyclic by construction and are never cut short.
// A foreign Type that does not implement Relation answers through its own
// IsAssignableTo and leaves the query, so neither the bound nor tracing reach
// past it.
type Query struct {
	c     *Checker
	depth int
}

func (q Query) Depth() int {
	return q.depth
}

func (q Query) IsAssignableTo(v, to Type) bool {
	if isNil(v) || isNil(to) {
		return false
	}

	if q.c == nil {
		q.c = defaultChecker
	}

	rel, ok := v.(Relation)
	if !ok {
		return v.IsAssignableTo(to)
	}

	next := q
	if !isBuiltin(v) {
		if q.depth >= q.c.Config.MaxDepth {
			if q.c.enabled(slog.LevelWarn) {
				q.c.logger.Warn("assignability query exceeded max depth",
					slog.String("type", v.String()),
					slog.String("target", to.String()),
					slog.Int("max_depth", q.c.Config.MaxDepth),
				)
			}
			return false
		}

		next.depth++
	}

	if assignable, decided := to.IsSupertypeOf(v); decided {
		if q.c.enabled(slog.LevelDebug) {
			q.c.logger.Debug("supertype hook decided",
				slog.String("type", v.String()),
				slog.String("target", to.String()),
				slog.Bool("assignable", assignable),
			)
		}
		return assignable
	}

	return rel.AssignableTo(next, to)
}

func (q Query) mismatch(v, to Type) bool {
	c := q.c
	if c == nil {
		c = defaultChecker
	}

	if c.enabled(slog.LevelDebug) {
		c.logger.Debug("representation mismatch",
			slog.String("type", v.String()),
			slog.String("target", to.String()),
			slog.String("kind", v.Kind().String()),
			slog.String("target_kind", to.Kind().String()),
		)
	}
	return false
}

func isBuiltin(t Type) bool {
	switch t.(type) {
	case Primitive, *Trait, *Function:
		return true
	default:
		return false
	}
}

// isNil also catches typed nil handles of the built-in representations.
func isNil(t Type) bool {
	switch t := t.(type) {
	case nil:
		return true
	case *Trait:
		return t == nil
	case *Function:
		return t == nil
	default:
		return false
	}
}
