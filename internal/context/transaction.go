package context

import (
	"context"

	"gorm.io/gorm"
)

type transactionKey struct{}

// TransactionFrom returns the transaction an outer TransactionService.Execute
// stored on ctx.
func TransactionFrom(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(transactionKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

func WithTransaction(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, transactionKey{}, tx)
}
