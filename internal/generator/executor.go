package generator

import (
	"context"
	"fmt"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	// OnResult is called after each operation is executed, before the next
	// one starts. Failed operations are reported too.
	OnResult func(Result)
}

// Execute runs operations with validation.
//
// All operations are validated first; nothing is written if any of them is
// invalid. Operations then run one at a time in slice order. The first
// execution error stops the run and is returned together with a report of
// everything attempted so far.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) (*Report, error) {
	report := &Report{}

	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx); err != nil {
			return report, fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Execute
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("execution interrupted: %w", err)
		}

		result := newResult(op)
		if err := op.Execute(ctx); err != nil {
			result.Err = err
			report.add(result, opts)
			return report, fmt.Errorf("execution failed: %w", err)
		}
		report.add(result, opts)
	}

	return report, nil
}
