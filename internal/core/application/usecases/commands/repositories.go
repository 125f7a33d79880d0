package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of work interfaces scoped to what each handler actually touches.
// Handlers depend on the narrowest combination they need; the concrete
// unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MOQRepoFactory provides the MOQ repository within a transaction.
	MOQRepoFactory interface {
		MOQRepository() ports.MOQRepository
	}

	// GroupRepoFactory provides the group repository within a transaction.
	GroupRepoFactory interface {
		GroupRepository() ports.GroupRepository
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderDetailRepoFactory provides the order detail repository within a transaction.
	OrderDetailRepoFactory interface {
		OrderDetailRepository() ports.OrderDetailRepository
	}

	// UserRepoFactory provides the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ProductUoW manages transactions spanning products and their MOQ tiers.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		MOQRepoFactory
	}

	// ProductUoWFactory creates product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW manages transactions spanning orders and their detail lines.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderDetailRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// GroupUoW manages transactions spanning groups and the products that
	// reference them.
	GroupUoW interface {
		TxManager
		GroupRepoFactory
		ProductRepoFactory
	}

	// GroupUoWFactory creates group unit of work instances.
	GroupUoWFactory interface {
		Create() GroupUoW
	}

	// UserUoW manages transactions over user accounts.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
