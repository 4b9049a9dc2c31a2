// SPDX-License-Identifier: Apache-2.0

package models

// Command tags the executor that handles an action. The set is closed;
// an unrecognized tag is rejected at dispatch time, never silently skipped.
type Command string

const (
	CommandCreateFile       Command = "create-file"
	CommandCreateManifesto  Command = "create-manifesto"
	CommandGenerateCode     Command = "generate-code"
	CommandEditFile         Command = "edit-file"
	CommandLintCode         Command = "lint-code"
	CommandIndexCodebase    Command = "index-codebase"
	CommandCreateHelloWorld Command = "create-hello-world"
	CommandPreviewManifesto Command = "preview-manifesto"
)

// Commands lists every recognized command tag. The dispatcher's default
// registry must cover exactly this set.
var Commands = []Command{
	CommandCreateFile,
	CommandCreateManifesto,
	CommandGenerateCode,
	CommandEditFile,
	CommandLintCode,
	CommandIndexCodebase,
	CommandCreateHelloWorld,
	CommandPreviewManifesto,
}

// Valid reports whether c is one of the recognized command tags.
func (c Command) Valid() bool {
	for _, known := range Commands {
		if c == known {
			return true
		}
	}
	return false
}

// Safety is an advisory classification attached to an action. It is
// carried for display purposes only and never gates execution; only the
// auto-mode flag and the create-manifesto override do that.
type Safety string

const (
	SafetySafe     Safety = "safe"
	SafetyCautious Safety = "cautious"
)

// Action is a unit of requested work.
type Action struct {
	ID      string                 `yaml:"id" json:"id"`
	Label   string                 `yaml:"label" json:"label"`
	Command Command                `yaml:"command" json:"command"`
	Data    map[string]interface{} `yaml:"data,omitempty" json:"data,omitempty"`
	Safety  Safety                 `yaml:"safety,omitempty" json:"safety,omitempty"`
}

// DisplayLabel returns the label, falling back to the command tag when
// the caller did not set one.
func (a Action) DisplayLabel() string {
	if a.Label != "" {
		return a.Label
	}
	return string(a.Command)
}

// OperationType selects what the file writer does with an operation.
type OperationType string

const (
	OpCreate OperationType = "create"
	OpUpdate OperationType = "update"
	OpDelete OperationType = "delete"
	OpRead   OperationType = "read"
)

// OperationTypes lists the valid file operation types.
var OperationTypes = []OperationType{OpCreate, OpUpdate, OpDelete, OpRead}

// Valid reports whether t is a recognized operation type.
func (t OperationType) Valid() bool {
	for _, known := range OperationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FileOperation is the normalized instruction handed to the file writer.
type FileOperation struct {
	// Path is workspace-relative. Absolute paths into system directories
	// and traversal segments are rejected by the writer.
	Path    string        `yaml:"path" json:"path"`
	Content string        `yaml:"content" json:"content"`
	Type    OperationType `yaml:"type" json:"type"`
	// Backup triggers a pre-write backup of the current content. Only
	// honored for update operations.
	Backup bool `yaml:"backup,omitempty" json:"backup,omitempty"`
	// Encoding names the content encoding. Empty means UTF-8.
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}

// OperationResult is returned by the file writer for every operation,
// failed ones included.
type OperationResult struct {
	Success    bool   `yaml:"success" json:"success"`
	Path       string `yaml:"path,omitempty" json:"path,omitempty"`
	BackupPath string `yaml:"backup_path,omitempty" json:"backup_path,omitempty"`
	Error      string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Outcome is what the dispatcher returns for every processed action.
// When RequiresApproval is set the action was not executed and no side
// effects occurred; the action is carried back so the caller can
// re-submit it after collecting approval.
type Outcome struct {
	Executed         bool    `yaml:"executed" json:"executed"`
	RequiresApproval bool    `yaml:"requires_approval" json:"requires_approval"`
	Action           *Action `yaml:"action,omitempty" json:"action,omitempty"`
	Message          string  `yaml:"message" json:"message"`
}

// Plan is an ordered batch of actions loaded from a plan file.
type Plan struct {
	Name    string   `yaml:"name" json:"name"`
	Actions []Action `yaml:"actions" json:"actions"`
}

// PlanReport summarizes a plan run. Pending holds the actions that did
// not execute, either because they require approval or because their
// executor failed.
type PlanReport struct {
	Executed int      `yaml:"executed" json:"executed"`
	Pending  []Action `yaml:"pending,omitempty" json:"pending,omitempty"`
	Messages []string `yaml:"messages,omitempty" json:"messages,omitempty"`
}
