package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// Cada operação lógica de escrita (registro, criação de post, follow)
// executa dentro de uma transação única.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
