// Package domain contains the core domain models of sameunit: scripts, targets,
// structured failures and suite outcomes.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	// SetUpTarget runs before every test target, on the same context.
	SetUpTarget = "setUp"
	// TearDownTarget runs after every test target, on the same context.
	TearDownTarget = "tearDown"
	// SuiteSetUpTarget runs once before all test targets.
	SuiteSetUpTarget = "suiteSetUp"
	// SuiteTearDownTarget runs once after all test targets.
	SuiteTearDownTarget = "suiteTearDown"
	// TestPrefix identifies test targets. A target named exactly TestPrefix is ignored.
	TestPrefix = "test"
)

// Target is an executable unit of a script, identified by name.
type Target struct {
	Name         string
	Dependencies []string
	Environment  map[string]string
	Steps        []Step
}

// Script is a named collection of targets kept in declaration order.
type Script struct {
	Name        string
	File        string
	Environment map[string]string

	targets []*Target
	index   map[string]*Target
}

// NewScript creates a new empty Script.
func NewScript(name, file string) *Script {
	return &Script{
		Name:  name,
		File:  file,
		index: make(map[string]*Target),
	}
}

// AddTarget appends a target to the script.
// It returns an error if a target with the same name already exists.
func (s *Script) AddTarget(t *Target) error {
	if _, exists := s.index[t.Name]; exists {
		return zerr.With(ErrDuplicateTarget, "target_name", t.Name)
	}
	s.targets = append(s.targets, t)
	s.index[t.Name] = t
	return nil
}

// Target returns the target with the given name.
func (s *Script) Target(name string) (*Target, bool) {
	t, ok := s.index[name]
	return t, ok
}

// HasTarget reports whether the script declares a target with the given name.
func (s *Script) HasTarget(name string) bool {
	_, ok := s.index[name]
	return ok
}

// TargetNames returns all target names in declaration order.
func (s *Script) TargetNames() []string {
	names := make([]string, len(s.targets))
	for i, t := range s.targets {
		names[i] = t.Name
	}
	return names
}

// FixturePresence records which of the four fixture targets a script declares.
type FixturePresence struct {
	HasSetUp         bool
	HasTearDown      bool
	HasSuiteSetUp    bool
	HasSuiteTearDown bool
}

// DetectFixtures computes the fixture presence for a list of target names.
func DetectFixtures(names []string) FixturePresence {
	var f FixturePresence
	for _, name := range names {
		switch name {
		case SetUpTarget:
			f.HasSetUp = true
		case TearDownTarget:
			f.HasTearDown = true
		case SuiteSetUpTarget:
			f.HasSuiteSetUp = true
		case SuiteTearDownTarget:
			f.HasSuiteTearDown = true
		}
	}
	return f
}

// Fixtures returns which fixture targets the script declares.
func (s *Script) Fixtures() FixturePresence {
	return DetectFixtures(s.TargetNames())
}

// TestTargets returns the test target names in declaration order.
func (s *Script) TestTargets() []string {
	return SelectTestTargets(s.TargetNames())
}

// IsFixture reports whether name is one of the four reserved fixture names.
func IsFixture(name string) bool {
	switch name {
	case SetUpTarget, TearDownTarget, SuiteSetUpTarget, SuiteTearDownTarget:
		return true
	default:
		return false
	}
}

// IsTestTarget reports whether name follows the test target convention.
func IsTestTarget(name string) bool {
	return name != TestPrefix && strings.HasPrefix(name, TestPrefix) && !IsFixture(name)
}

// SelectTestTargets filters names down to test targets, preserving order.
func SelectTestTargets(names []string) []string {
	tests := make([]string, 0, len(names))
	for _, name := range names {
		if IsTestTarget(name) {
			tests = append(tests, name)
		}
	}
	return tests
}

// ExecutionOrder returns the targets to run for the given names, dependencies first.
// Every target appears at most once, in the order it is first reached.
func (s *Script) ExecutionOrder(names []string) ([]*Target, error) {
	order := make([]*Target, 0, len(names))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		target, exists := s.index[name]
		if !exists {
			if len(path) == 0 {
				return zerr.With(ErrTargetNotFound, "target", name)
			}
			return zerr.With(ErrMissingDependency, "dependency", name)
		}

		visited[name] = 1
		path = append(path, name)

		for _, dep := range target.Dependencies {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[name] = 2
		path = path[:len(path)-1]
		order = append(order, target)
		return nil
	}

	for _, name := range names {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, dep string) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cycle := strings.Join(append(append([]string{}, path[start:]...), dep), " -> ")
	return zerr.With(ErrCycleDetected, "cycle", cycle)
}
