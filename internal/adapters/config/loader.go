// Package config provides the script loader for sameunit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ScriptLoader for YAML script files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validTargetNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)

// Load reads, validates and converts the script file at path.
func (l *Loader) Load(path string) (*domain.Script, error) {
	script, err := l.load(path)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return script, nil
}

func (l *Loader) load(path string) (*domain.Script, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	if err := validateNode(doc); err != nil {
		return nil, err
	}

	var file ScriptFile
	if err := doc.Decode(&file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	name := file.Name
	if name == "" {
		name = ScriptName(path)
	}
	script := domain.NewScript(name, path)
	script.Environment = file.Environment

	targets, err := orderedTargets(doc)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(targets))
	for _, t := range targets {
		declared[t.name] = true
	}

	for _, t := range targets {
		target, err := buildTarget(t.name, t.dto, declared)
		if err != nil {
			return nil, err
		}
		if err := script.AddTarget(target); err != nil {
			return nil, err
		}
	}

	if len(script.TestTargets()) == 0 && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("%s declares no test targets", path))
	}
	return script, nil
}

// ScriptName derives the default script name from a file path.
func ScriptName(path string) string {
	base := filepath.Base(path)
	for _, suffix := range []string{domain.ScriptSuffix, ".yaml", ".yml"} {
		if trimmed, ok := strings.CutSuffix(base, suffix); ok && trimmed != "" {
			return trimmed
		}
	}
	return base
}

// readDocument reads a YAML file into its mapping node.
func readDocument(path string) (*yaml.Node, error) {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, zerr.With(domain.ErrConfigParseFailed, "reason", "empty document")
	}
	return root.Content[0], nil
}

type namedTarget struct {
	name string
	dto  TargetDTO
}

// orderedTargets decodes the targets mapping in declaration order.
// A repeated key is reported as a duplicate target.
func orderedTargets(doc *yaml.Node) ([]namedTarget, error) {
	var targetsNode *yaml.Node
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "targets" {
			targetsNode = doc.Content[i+1]
			break
		}
	}
	if targetsNode == nil {
		return nil, nil
	}

	targets := make([]namedTarget, 0, len(targetsNode.Content)/2)
	for i := 0; i+1 < len(targetsNode.Content); i += 2 {
		name := targetsNode.Content[i].Value
		var dto TargetDTO
		if err := targetsNode.Content[i+1].Decode(&dto); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "target", name)
		}
		targets = append(targets, namedTarget{name: name, dto: dto})
	}
	return targets, nil
}

func buildTarget(name string, dto TargetDTO, declared map[string]bool) (*domain.Target, error) {
	if err := validateTargetName(name); err != nil {
		return nil, err
	}

	for _, dep := range dto.DependsOn {
		if !declared[dep] {
			err := zerr.With(domain.ErrMissingDependency, "missing_dependency", dep)
			return nil, zerr.With(err, "target", name)
		}
	}

	steps, err := buildSteps(dto.Steps)
	if err != nil {
		return nil, zerr.With(err, "target", name)
	}

	return &domain.Target{
		Name:         name,
		Dependencies: dto.DependsOn,
		Environment:  dto.Environment,
		Steps:        steps,
	}, nil
}

// validateTargetName checks that the name is non-empty and uses only allowed characters.
func validateTargetName(name string) error {
	if !validTargetNameRegex.MatchString(name) {
		return zerr.With(domain.ErrInvalidTargetName, "target_name", name)
	}
	return nil
}

func buildSteps(dtos []StepDTO) ([]domain.Step, error) {
	steps := make([]domain.Step, 0, len(dtos))
	for i := range dtos {
		step, err := buildStep(&dtos[i])
		if err != nil {
			return nil, zerr.With(err, "step", i)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func buildStep(dto *StepDTO) (domain.Step, error) {
	switch {
	case dto.Cmd != nil:
		return domain.Step{Kind: domain.StepCmd, Args: dto.Cmd}, nil
	case dto.Echo != nil:
		return domain.Step{Kind: domain.StepEcho, Message: *dto.Echo}, nil
	case dto.Fail != nil:
		return domain.Step{Kind: domain.StepFail, Message: *dto.Fail}, nil
	case dto.Log != nil:
		level, err := domain.ParseLogLevel(dto.Log.Level, domain.LogLevelInfo)
		if err != nil {
			return domain.Step{}, err
		}
		return domain.Step{Kind: domain.StepLog, Message: dto.Log.Message, Level: level}, nil
	case dto.Set != nil:
		return domain.Step{Kind: domain.StepSet, Name: dto.Set.Name, Value: dto.Set.Value}, nil
	case dto.Assert != nil:
		return buildAssert(domain.StepAssert, dto.Assert)
	case dto.AssertFalse != nil:
		return buildAssert(domain.StepAssertFalse, dto.AssertFalse)
	case dto.ExpectFailure != nil:
		nested, err := buildSteps(dto.ExpectFailure.Steps)
		if err != nil {
			return domain.Step{}, err
		}
		step := domain.Step{Kind: domain.StepExpectFailure, Steps: nested}
		if dto.ExpectFailure.ExpectedMessage != nil {
			step.ExpectedMessage = *dto.ExpectFailure.ExpectedMessage
		}
		if dto.ExpectFailure.Message != nil {
			step.Message = *dto.ExpectFailure.Message
		}
		return step, nil
	default:
		return domain.Step{}, domain.ErrInvalidStep
	}
}

func buildAssert(kind domain.StepKind, dto *AssertDTO) (domain.Step, error) {
	conditions, err := buildConditions(dto.Conditions)
	if err != nil {
		return domain.Step{}, err
	}
	return domain.Step{Kind: kind, Message: dto.Message, Conditions: conditions}, nil
}

func buildConditions(dtos []ConditionDTO) ([]domain.Condition, error) {
	conditions := make([]domain.Condition, 0, len(dtos))
	for i := range dtos {
		c, err := buildCondition(&dtos[i])
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, c)
	}
	return conditions, nil
}

func buildCondition(dto *ConditionDTO) (domain.Condition, error) {
	switch {
	case dto.IsTrue != nil:
		return domain.Condition{Kind: domain.CondIsTrue, Var: *dto.IsTrue}, nil
	case dto.IsSet != nil:
		return domain.Condition{Kind: domain.CondIsSet, Var: *dto.IsSet}, nil
	case dto.FileExists != nil:
		return domain.Condition{Kind: domain.CondFileExists, Path: *dto.FileExists}, nil
	case dto.Equals != nil:
		return domain.Condition{Kind: domain.CondEquals, Var: dto.Equals.Var, Value: dto.Equals.Value}, nil
	case dto.Contains != nil:
		return domain.Condition{Kind: domain.CondContains, Var: dto.Contains.Var, Value: dto.Contains.Substring}, nil
	case dto.LogContains != nil:
		level, err := domain.ParseLogLevel(dto.LogContains.Level, domain.LogLevelInfo)
		if err != nil {
			return domain.Condition{}, err
		}
		mergeLines := true
		if dto.LogContains.MergeLines != nil {
			mergeLines = *dto.LogContains.MergeLines
		}
		return domain.Condition{
			Kind:       domain.CondLogContains,
			Text:       dto.LogContains.Text,
			Level:      level,
			MergeLines: mergeLines,
		}, nil
	case dto.Not != nil:
		child, err := buildCondition(dto.Not)
		if err != nil {
			return domain.Condition{}, err
		}
		return domain.Condition{Kind: domain.CondNot, Children: []domain.Condition{child}}, nil
	case dto.And != nil:
		children, err := buildConditions(dto.And)
		if err != nil {
			return domain.Condition{}, err
		}
		return domain.Condition{Kind: domain.CondAnd, Children: children}, nil
	case dto.Or != nil:
		children, err := buildConditions(dto.Or)
		if err != nil {
			return domain.Condition{}, err
		}
		return domain.Condition{Kind: domain.CondOr, Children: children}, nil
	default:
		return domain.Condition{}, domain.ErrInvalidCondition
	}
}
