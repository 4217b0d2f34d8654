package pickup

import "context"

// UseCase runs one triage pass over the most recent messages.
type UseCase interface {
	Run(ctx context.Context) (RunOutput, error)
}
