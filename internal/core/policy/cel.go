// SPDX-License-Identifier: Apache-2.0

// Package policy evaluates the optional auto-execution policy. A policy
// can only restrict what auto mode executes; the create-manifesto
// override is applied by the dispatcher before the policy is consulted
// and cannot be loosened here.
package policy

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

// Evaluator compiles and evaluates CEL policy expressions over action
// attributes.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator exposing the "action" variable.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("action", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %w", err)
	}

	return &Evaluator{env: env}, nil
}

// Allows reports whether the expression permits auto-execution of the
// action. The expression sees action.id, action.label, action.command,
// and action.safety as strings.
func (e *Evaluator) Allows(expression string, act models.Action) (bool, error) {
	ast, issues := e.env.Parse(expression)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("error parsing policy expression: %w", issues.Err())
	}

	checked, issues := e.env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("error type-checking policy expression: %w", issues.Err())
	}

	program, err := e.env.Program(checked)
	if err != nil {
		return false, fmt.Errorf("error compiling policy expression: %w", err)
	}

	vars := map[string]interface{}{
		"action": map[string]interface{}{
			"id":      act.ID,
			"label":   act.Label,
			"command": string(act.Command),
			"safety":  string(act.Safety),
		},
	}

	result, _, err := program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("error evaluating policy expression: %w", err)
	}

	if result.Type() != types.BoolType {
		return false, fmt.Errorf("policy expression did not evaluate to a boolean")
	}

	return result.Value().(bool), nil
}
