package service

import (
	"github.com/jnst/core-banking/internal/model"
)

const (
	minRatePercent = 0
	maxRatePercent = 100
	monthsPerYear  = 12
)

// TransferServiceImpl implements TransferService. The fee and the
// transfer cap are configuration, fixed at construction.
//
// Transfer mutates accounts through their own deposit/withdraw
// contracts in three sequential steps with no atomicity across them.
// Validation is exhaustive up front so that in single-threaded use no
// step can fail once it starts; under concurrent access the caller must
// serialize access to both accounts.
type TransferServiceImpl struct {
	transactionFee    float64
	maxTransferAmount float64
}

// NewTransferServiceImpl creates a TransferService with the given
// transaction fee and maximum transfer amount.
func NewTransferServiceImpl(transactionFee, maxTransferAmount float64) TransferService {
	return &TransferServiceImpl{
		transactionFee:    transactionFee,
		maxTransferAmount: maxTransferAmount,
	}
}

// Transfer moves amount from one account to another, charging the
// transaction fee to the source on top of the transferred amount.
func (s *TransferServiceImpl) Transfer(from, to *model.Account, amount float64) error {
	if from == nil || to == nil {
		return model.NewInvalidArgument("Accounts cannot be nil")
	}
	if from == to {
		return model.NewInvalidArgument("Cannot transfer to same account")
	}
	if !from.IsActive() || !to.IsActive() {
		return model.NewInvalidState("Both accounts must be active")
	}
	if amount <= 0 {
		return model.NewInvalidArgument("Transfer amount must be positive")
	}
	if amount > s.maxTransferAmount {
		return model.NewInvalidArgument("Transfer amount exceeds maximum limit: %.2f", s.maxTransferAmount)
	}

	totalDeduction := amount + s.transactionFee

	if from.Balance() < totalDeduction {
		return model.NewInvalidArgument("Insufficient funds including transaction fee")
	}

	if err := from.Withdraw(amount); err != nil {
		return err
	}
	if err := from.Withdraw(s.transactionFee); err != nil {
		return err
	}

	return to.Deposit(amount)
}

// CalculateInterest computes simple interest on the account's current
// balance: balance * (ratePercent/100) * (months/12). It never mutates
// the account.
func (s *TransferServiceImpl) CalculateInterest(account *model.Account, ratePercent float64, months int) (float64, error) {
	if account == nil {
		return 0, model.NewInvalidArgument("Account cannot be nil")
	}
	if ratePercent < minRatePercent || ratePercent > maxRatePercent {
		return 0, model.NewInvalidArgument("Interest rate must be between 0 and 100")
	}
	if months <= 0 {
		return 0, model.NewInvalidArgument("Months must be positive")
	}

	principal := account.Balance()
	rate := ratePercent / maxRatePercent
	years := float64(months) / monthsPerYear

	return principal * rate * years, nil
}

// TransactionFee returns the configured fixed fee per transfer.
func (s *TransferServiceImpl) TransactionFee() float64 {
	return s.transactionFee
}

// MaxTransferAmount returns the configured transfer cap.
func (s *TransferServiceImpl) MaxTransferAmount() float64 {
	return s.maxTransferAmount
}
