package ports

import "github.com/AntonioJCosta/epithet/internal/core/domain/alias"

/*
AliasResolver turns an alias invocation into an execution plan.
Implementations must not execute anything and must not mutate cfg.
*/
type AliasResolver interface {
	Resolve(cfg *alias.Configuration, aliasName string, args []string) (alias.Plan, error)
}
