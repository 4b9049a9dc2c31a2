// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

// PlanRunner executes the actions of a plan in order. Each action still
// goes through the dispatcher's approval decision; a pending action is
// collected in the report, never silently executed.
type PlanRunner struct {
	dispatcher      *Dispatcher
	continueOnError bool
	logger          *zap.Logger
}

// NewPlanRunner creates a runner over the dispatcher.
func NewPlanRunner(dispatcher *Dispatcher, continueOnError bool, logger *zap.Logger) *PlanRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanRunner{
		dispatcher:      dispatcher,
		continueOnError: continueOnError,
		logger:          logger,
	}
}

// Run processes every action in the plan. Without continue-on-error the
// first action that does not execute stops the run; the report still
// covers everything attempted up to that point.
func (r *PlanRunner) Run(plan models.Plan, autoMode bool) (models.PlanReport, error) {
	report := models.PlanReport{}

	for i, act := range plan.Actions {
		r.logger.Debug("processing plan action",
			zap.String("plan", plan.Name),
			zap.Int("index", i+1),
			zap.Int("total", len(plan.Actions)),
			zap.String("command", string(act.Command)))

		outcome := r.dispatcher.Process(act, autoMode)
		report.Messages = append(report.Messages, outcome.Message)

		if outcome.Executed {
			report.Executed++
			continue
		}

		report.Pending = append(report.Pending, act)
		if !r.continueOnError {
			return report, fmt.Errorf("plan %q stopped at action %d/%d: %s",
				plan.Name, i+1, len(plan.Actions), outcome.Message)
		}
	}

	if len(report.Pending) > 0 {
		return report, fmt.Errorf("plan %q: %d of %d actions did not execute",
			plan.Name, len(report.Pending), len(plan.Actions))
	}

	return report, nil
}
