// Package repository provides account registry interfaces and implementations.
package repository

import (
	"context"

	"github.com/jnst/core-banking/internal/model"
)

// AccountRepository defines methods for account registry access.
// Implementations return the live account aggregate, not a copy: the
// transfer service mutates accounts through their own contracts.
type AccountRepository interface {
	Save(ctx context.Context, account *model.Account) error
	GetByNumber(ctx context.Context, accountNumber string) (*model.Account, error)
	List(ctx context.Context) ([]*model.Account, error)
}
