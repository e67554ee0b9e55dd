package service

import "context"

// TransactionManager runs fn inside one database transaction. Repositories
// pick the transaction up from ctx, so nested calls join the outer one.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
