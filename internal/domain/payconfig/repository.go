package payconfig

import "context"

type ConfigRepository interface {
	GetByName(ctx context.Context, name string) (Setting, error)
	Upsert(ctx context.Context, s Setting) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
}
