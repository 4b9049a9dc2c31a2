// SPDX-License-Identifier: Apache-2.0

// Package dispatch decides whether a requested action runs immediately or
// must wait for user approval, and runs it through the matching executor.
package dispatch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/piggie-dev/manifesto/internal/core/models"
	"github.com/piggie-dev/manifesto/internal/core/policy"
	"github.com/piggie-dev/manifesto/internal/core/schema"
)

// Executor performs the side-effecting work for one command and returns a
// human-readable status message.
type Executor interface {
	Execute(data map[string]interface{}) (string, error)
	Description() string
}

// Registry maps command tags to their executors.
type Registry struct {
	executors map[models.Command]Executor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[models.Command]Executor)}
}

// Register binds an executor to a command tag.
func (r *Registry) Register(cmd models.Command, ex Executor) {
	r.executors[cmd] = ex
}

// Get returns the executor for cmd. Unknown commands are an error here
// and degrade to an approval-required outcome at the Process boundary.
func (r *Registry) Get(cmd models.Command) (Executor, error) {
	ex, ok := r.executors[cmd]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", cmd)
	}
	return ex, nil
}

// Commands lists the registered command tags.
func (r *Registry) Commands() []models.Command {
	out := make([]models.Command, 0, len(r.executors))
	for _, cmd := range models.Commands {
		if _, ok := r.executors[cmd]; ok {
			out = append(out, cmd)
		}
	}
	return out
}

// Dispatcher is the sole entry point for processing actions.
type Dispatcher struct {
	registry   *Registry
	policy     *policy.Evaluator
	policyExpr string
	logger     *zap.Logger
}

// New creates a dispatcher over the given registry.
func New(registry *Registry, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// WithPolicy attaches an auto-execution policy expression. The policy can
// only restrict auto mode; it is never consulted for the create-manifesto
// override, which stays unconditional.
func (d *Dispatcher) WithPolicy(eval *policy.Evaluator, expression string) *Dispatcher {
	d.policy = eval
	d.policyExpr = expression
	return d
}

// Decide reports whether the action may run without approval.
// create-manifesto never auto-executes, whatever the mode says.
func (d *Dispatcher) Decide(act models.Action, autoMode bool) bool {
	if act.Command == models.CommandCreateManifesto {
		return false
	}
	if !autoMode {
		return false
	}
	if d.policy != nil && d.policyExpr != "" {
		allowed, err := d.policy.Allows(d.policyExpr, act)
		if err != nil {
			d.logger.Warn("policy evaluation failed, requiring approval",
				zap.String("command", string(act.Command)),
				zap.Error(err))
			return false
		}
		return allowed
	}
	return true
}

// Process runs the action if Decide permits. When approval is required
// the outcome carries the action back untouched and nothing was written.
// Executor failures degrade to an approval-required outcome instead of
// propagating; no error or panic crosses this boundary.
func (d *Dispatcher) Process(act models.Action, autoMode bool) models.Outcome {
	if !d.Decide(act, autoMode) {
		return models.Outcome{
			Executed:         false,
			RequiresApproval: true,
			Action:           &act,
			Message:          fmt.Sprintf("%s requires approval", act.DisplayLabel()),
		}
	}

	message, err := d.run(act)
	if err != nil {
		return models.Outcome{
			Executed:         false,
			RequiresApproval: true,
			Action:           &act,
			Message:          err.Error(),
		}
	}

	return models.Outcome{Executed: true, Message: message}
}

// Execute runs the action immediately, bypassing the approval decision.
// Callers use this after collecting explicit user approval for an action
// Process previously returned as pending.
func (d *Dispatcher) Execute(act models.Action) models.Outcome {
	message, err := d.run(act)
	if err != nil {
		return models.Outcome{Executed: false, Message: err.Error()}
	}
	return models.Outcome{Executed: true, Message: message}
}

func (d *Dispatcher) run(act models.Action) (message string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("executor panic while handling %s: %v", act.Command, r)
		}
	}()

	ex, err := d.registry.Get(act.Command)
	if err != nil {
		return "", err
	}

	if s := schema.PayloadSchema(act.Command); s != nil {
		if err := schema.ValidateParams(s, act.Data); err != nil {
			return "", fmt.Errorf("invalid payload for %s: %w", act.Command, err)
		}
	}

	return ex.Execute(act.Data)
}
