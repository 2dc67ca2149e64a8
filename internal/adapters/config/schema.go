package config

// ScriptFile represents the structure of a *_test.yaml script file.
// Targets are decoded separately to keep their declaration order.
type ScriptFile struct {
	Name        string            `yaml:"name"`
	Environment map[string]string `yaml:"environment"`
}

// TargetDTO represents a target definition in a script file.
type TargetDTO struct {
	DependsOn   []string          `yaml:"dependsOn"`
	Environment map[string]string `yaml:"environment"`
	Steps       []StepDTO         `yaml:"steps"`
}

// StepDTO represents one step. Exactly one field is set.
type StepDTO struct {
	Cmd           []string          `yaml:"cmd"`
	Echo          *string           `yaml:"echo"`
	Fail          *string           `yaml:"fail"`
	Log           *LogDTO           `yaml:"log"`
	Set           *SetDTO           `yaml:"set"`
	Assert        *AssertDTO        `yaml:"assert"`
	AssertFalse   *AssertDTO        `yaml:"assertFalse"`
	ExpectFailure *ExpectFailureDTO `yaml:"expectFailure"`
}

// LogDTO represents a log step.
type LogDTO struct {
	Message string `yaml:"message"`
	Level   string `yaml:"level"`
}

// SetDTO represents a variable assignment.
type SetDTO struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// AssertDTO represents an assert or assertFalse step.
type AssertDTO struct {
	Message    string         `yaml:"message"`
	Conditions []ConditionDTO `yaml:"conditions"`
}

// ExpectFailureDTO represents an expectFailure step.
type ExpectFailureDTO struct {
	ExpectedMessage *string   `yaml:"expectedMessage"`
	Message         *string   `yaml:"message"`
	Steps           []StepDTO `yaml:"steps"`
}

// ConditionDTO represents one condition. Exactly one field is set.
type ConditionDTO struct {
	IsTrue      *string         `yaml:"isTrue"`
	IsSet       *string         `yaml:"isSet"`
	FileExists  *string         `yaml:"fileExists"`
	Equals      *EqualsDTO      `yaml:"equals"`
	Contains    *ContainsDTO    `yaml:"contains"`
	LogContains *LogContainsDTO `yaml:"logContains"`
	Not         *ConditionDTO   `yaml:"not"`
	And         []ConditionDTO  `yaml:"and"`
	Or          []ConditionDTO  `yaml:"or"`
}

// EqualsDTO represents an equals condition.
type EqualsDTO struct {
	Var   string `yaml:"var"`
	Value string `yaml:"value"`
}

// ContainsDTO represents a contains condition.
type ContainsDTO struct {
	Var       string `yaml:"var"`
	Substring string `yaml:"substring"`
}

// LogContainsDTO represents a logContains condition.
type LogContainsDTO struct {
	Text       string `yaml:"text"`
	Level      string `yaml:"level"`
	MergeLines *bool  `yaml:"mergeLines"`
}
