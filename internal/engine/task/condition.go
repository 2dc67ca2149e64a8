package task

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/zerr"
)

// TextRequiredMessage is raised by a logContains condition without text.
const TextRequiredMessage = "the text attribute is required"

// IsTrue holds if the variable is set to true, yes, on or 1.
type IsTrue struct{ Var string }

// Evaluate implements Condition.
func (c *IsTrue) Evaluate(_ context.Context, env Env) (bool, error) {
	v, _ := env.Var(c.Var)
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true, nil
	default:
		return false, nil
	}
}

// IsSet holds if the variable is defined.
type IsSet struct{ Var string }

// Evaluate implements Condition.
func (c *IsSet) Evaluate(_ context.Context, env Env) (bool, error) {
	_, ok := env.Var(c.Var)
	return ok, nil
}

// Equals holds if the variable equals Value.
type Equals struct {
	Var   string
	Value string
}

// Evaluate implements Condition.
func (c *Equals) Evaluate(_ context.Context, env Env) (bool, error) {
	v, ok := env.Var(c.Var)
	return ok && v == c.Value, nil
}

// Contains holds if the variable contains Substring.
type Contains struct {
	Var       string
	Substring string
}

// Evaluate implements Condition.
func (c *Contains) Evaluate(_ context.Context, env Env) (bool, error) {
	v, ok := env.Var(c.Var)
	return ok && strings.Contains(v, c.Substring), nil
}

// FileExists holds if Path exists, relative to the script directory.
type FileExists struct{ Path string }

// Evaluate implements Condition.
func (c *FileExists) Evaluate(_ context.Context, env Env) (bool, error) {
	path := c.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(env.BaseDir(), path)
	}
	_, err := os.Stat(path)
	return err == nil, nil
}

// logSource is the captured log of the running test.
type logSource interface {
	Log(level domain.LogLevel, mergeLines bool) string
}

// LogContains holds if the captured log of the running test contains Text.
// Only messages at Level or more severe are searched.
type LogContains struct {
	Text       string
	Level      domain.LogLevel
	MergeLines bool
}

// NewLogContains creates a LogContains at info level with merged lines.
func NewLogContains(text string) *LogContains {
	return &LogContains{Text: text, Level: domain.LogLevelInfo, MergeLines: true}
}

// Evaluate implements Condition. Without a log capturer it does not hold.
func (c *LogContains) Evaluate(_ context.Context, env Env) (bool, error) {
	if c.Text == "" {
		return false, domain.NewExecutionError(TextRequiredMessage, nil)
	}
	ref, ok := env.Reference(domain.LogCapturerRef)
	if !ok {
		return false, nil
	}
	src, ok := ref.(logSource)
	if !ok {
		return false, nil
	}
	return strings.Contains(src.Log(c.Level, c.MergeLines), c.Text), nil
}

// Not negates its single operand.
type Not struct{ Operand Condition }

// Evaluate implements Condition.
func (c *Not) Evaluate(ctx context.Context, env Env) (bool, error) {
	ok, err := c.Operand.Evaluate(ctx, env)
	return !ok, err
}

// And holds if every operand holds. Evaluation stops at the first false operand.
type And struct{ Operands []Condition }

// Evaluate implements Condition.
func (c *And) Evaluate(ctx context.Context, env Env) (bool, error) {
	for _, op := range c.Operands {
		ok, err := op.Evaluate(ctx, env)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Or holds if any operand holds. Evaluation stops at the first true operand.
type Or struct{ Operands []Condition }

// Evaluate implements Condition.
func (c *Or) Evaluate(ctx context.Context, env Env) (bool, error) {
	for _, op := range c.Operands {
		ok, err := op.Evaluate(ctx, env)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// FromCondition builds the condition tree of c.
func FromCondition(c domain.Condition) (Condition, error) {
	switch c.Kind {
	case domain.CondIsTrue:
		return &IsTrue{Var: c.Var}, nil
	case domain.CondIsSet:
		return &IsSet{Var: c.Var}, nil
	case domain.CondEquals:
		return &Equals{Var: c.Var, Value: c.Value}, nil
	case domain.CondContains:
		return &Contains{Var: c.Var, Substring: c.Value}, nil
	case domain.CondFileExists:
		return &FileExists{Path: c.Path}, nil
	case domain.CondLogContains:
		return &LogContains{Text: c.Text, Level: c.Level, MergeLines: c.MergeLines}, nil
	case domain.CondNot:
		if len(c.Children) != 1 {
			return nil, zerr.With(domain.ErrInvalidCondition, "not_operands", len(c.Children))
		}
		op, err := FromCondition(c.Children[0])
		if err != nil {
			return nil, err
		}
		return &Not{Operand: op}, nil
	case domain.CondAnd, domain.CondOr:
		ops := make([]Condition, 0, len(c.Children))
		for _, child := range c.Children {
			op, err := FromCondition(child)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
		if c.Kind == domain.CondAnd {
			return &And{Operands: ops}, nil
		}
		return &Or{Operands: ops}, nil
	default:
		return nil, zerr.With(domain.ErrInvalidCondition, "kind", string(c.Kind))
	}
}
