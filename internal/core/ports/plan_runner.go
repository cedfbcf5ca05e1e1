package ports

import (
	"context"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
)

// PlanRunner executes an execution plan according to its combinator.
type PlanRunner interface {
	Run(ctx context.Context, plan alias.Plan) (alias.Result, error)
}
