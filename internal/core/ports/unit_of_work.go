package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per composite operation,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for composite writes. Client code
// manages the lifecycle explicitly: Begin, then repository operations, then
// Commit or Rollback. Repositories obtained from the unit of work run on
// the active transaction; before Begin (or after Commit/Rollback) they run
// directly on the base connection.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if _, err := uow.ProductRepository().Add(ctx, p); err != nil {
//	    return err
//	}
//	if err := uow.MOQRepository().AddBatch(ctx, p.ID(), tiers); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// The deferred Rollback after a successful Commit is a closed-transaction
// error and is ignored; it exists so every exit path releases the
// transaction.
type UnitOfWork interface {
	// Begin starts a database transaction. Calling Begin again on an
	// instance with an active transaction is a safe no-op.
	Begin(ctx context.Context) error

	// Commit commits the active transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the active transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository

	// MOQRepository returns a MOQRepository bound to the current
	// transaction.
	MOQRepository() MOQRepository

	// GroupRepository returns a GroupRepository bound to the current
	// transaction.
	GroupRepository() GroupRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// OrderDetailRepository returns an OrderDetailRepository bound to the
	// current transaction.
	OrderDetailRepository() OrderDetailRepository
}
