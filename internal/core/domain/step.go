package domain

// StepKind identifies the action a step performs.
type StepKind string

const (
	// StepCmd runs an external command.
	StepCmd StepKind = "cmd"
	// StepEcho logs a message at info level.
	StepEcho StepKind = "echo"
	// StepLog logs a message at a chosen level.
	StepLog StepKind = "log"
	// StepFail raises an execution error with a message.
	StepFail StepKind = "fail"
	// StepSet assigns a script variable.
	StepSet StepKind = "set"
	// StepAssert raises an assertion failure if its condition is false.
	StepAssert StepKind = "assert"
	// StepAssertFalse raises an assertion failure if its condition is true.
	StepAssertFalse StepKind = "assertFalse"
	// StepExpectFailure requires its nested steps to fail.
	StepExpectFailure StepKind = "expectFailure"
)

// Step is one action in a target. Only the fields relevant to Kind are set.
type Step struct {
	Kind StepKind

	// Args holds the command line of a cmd step.
	Args []string

	// Message is the text of echo, log and fail steps, and the custom failure
	// message of assert and expectFailure steps.
	Message string
	// Level is the level of a log step.
	Level LogLevel

	// Name and Value are the variable assignment of a set step.
	Name  string
	Value string

	// Conditions are the nested conditions of assert and assertFalse steps.
	Conditions []Condition

	// ExpectedMessage is the substring an expectFailure step looks for in the failure.
	ExpectedMessage string
	// Steps are the nested steps of an expectFailure step.
	Steps []Step
}

// ConditionKind identifies a boolean check.
type ConditionKind string

const (
	CondIsTrue      ConditionKind = "isTrue"
	CondIsSet       ConditionKind = "isSet"
	CondEquals      ConditionKind = "equals"
	CondContains    ConditionKind = "contains"
	CondFileExists  ConditionKind = "fileExists"
	CondLogContains ConditionKind = "logContains"
	CondNot         ConditionKind = "not"
	CondAnd         ConditionKind = "and"
	CondOr          ConditionKind = "or"
)

// Condition is a boolean check evaluated by assert steps.
type Condition struct {
	Kind ConditionKind

	// Var names the variable read by isTrue, isSet, equals and contains.
	Var string
	// Value is the expected value of equals and the substring of contains.
	Value string
	// Path is the file checked by fileExists, relative to the script directory.
	Path string

	// Text, Level and MergeLines configure logContains.
	Text       string
	Level      LogLevel
	MergeLines bool

	// Children are the operands of not, and, or.
	Children []Condition
}

// Command is an external process invocation issued by a cmd step.
type Command struct {
	Args []string
	Dir  string
	Env  map[string]string
}
