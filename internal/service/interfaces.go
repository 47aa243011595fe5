// Package service provides business logic layer implementations.
package service

import (
	"context"

	"github.com/jnst/core-banking/internal/model"
)

// TransferService defines business logic methods for moving money
// between accounts and computing interest.
type TransferService interface {
	Transfer(from, to *model.Account, amount float64) error
	CalculateInterest(account *model.Account, ratePercent float64, months int) (float64, error)
	TransactionFee() float64
	MaxTransferAmount() float64
}

// OnboardingService defines business logic methods for the
// account-opening workflow.
type OnboardingService interface {
	OpenAccount(ctx context.Context, params *OpenAccountParams) (*model.Account, error)
	GetAccount(ctx context.Context, accountNumber string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)
}
