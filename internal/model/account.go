package model

import (
	"fmt"
	"strings"
)

// Account is a mutable financial ledger owned by exactly one User.
// Invariants: the balance never goes negative, mutating operations are
// rejected while the account is inactive, and every successful
// state-changing operation appends one history entry.
type Account struct {
	accountNumber string
	accountHolder *User
	balance       float64
	active        bool
	history       []string
}

// NewAccount creates an active account for the given holder. A nonzero
// initial balance is recorded as the first history entry.
func NewAccount(accountNumber string, accountHolder *User, initialBalance float64) (*Account, error) {
	if strings.TrimSpace(accountNumber) == "" {
		return nil, NewInvalidArgument("Account number cannot be empty")
	}
	if accountHolder == nil {
		return nil, NewInvalidArgument("Account holder cannot be nil")
	}
	if initialBalance < 0 {
		return nil, NewInvalidArgument("Initial balance cannot be negative")
	}

	a := &Account{
		accountNumber: accountNumber,
		accountHolder: accountHolder,
		balance:       initialBalance,
		active:        true,
	}

	if initialBalance > 0 {
		a.history = append(a.history, fmt.Sprintf("Initial deposit: %.2f", initialBalance))
	}

	return a, nil
}

// Deposit adds a positive amount to the balance of an active account.
func (a *Account) Deposit(amount float64) error {
	if !a.active {
		return NewInvalidState("Account is not active")
	}
	if amount <= 0 {
		return NewInvalidArgument("Deposit amount must be positive")
	}

	a.balance += amount
	a.history = append(a.history, fmt.Sprintf("Deposited: %.2f", amount))

	return nil
}

// Withdraw removes a positive amount from the balance of an active
// account. The amount must not exceed the current balance.
func (a *Account) Withdraw(amount float64) error {
	if !a.active {
		return NewInvalidState("Account is not active")
	}
	if amount <= 0 {
		return NewInvalidArgument("Withdrawal amount must be positive")
	}
	if amount > a.balance {
		return NewInvalidArgument("Insufficient funds. Balance: %.2f", a.balance)
	}

	a.balance -= amount
	a.history = append(a.history, fmt.Sprintf("Withdrawn: %.2f", amount))

	return nil
}

// Close deactivates the account. The balance must already be zero.
func (a *Account) Close() error {
	if !a.active {
		return NewInvalidState("Account is already closed")
	}
	if a.balance > 0 {
		return NewInvalidState("Cannot close account with remaining balance please withdraw all amounts")
	}

	a.active = false
	a.history = append(a.history, "Account closed")

	return nil
}

// Reactivate turns an inactive account back on.
func (a *Account) Reactivate() error {
	if a.active {
		return NewInvalidState("Account is already active")
	}

	a.active = true
	a.history = append(a.history, "Account reactivated")

	return nil
}

// AccountNumber returns the caller-assigned account number.
func (a *Account) AccountNumber() string {
	return a.accountNumber
}

// AccountHolder returns the owning User.
func (a *Account) AccountHolder() *User {
	return a.accountHolder
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	return a.balance
}

// IsActive reports whether the account accepts deposits and withdrawals.
func (a *Account) IsActive() bool {
	return a.active
}

// TransactionHistory returns an independent copy of the history log.
// Mutating the returned slice never affects the account.
func (a *Account) TransactionHistory() []string {
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out
}

// String renders the account for logs and diagnostics.
func (a *Account) String() string {
	return fmt.Sprintf("Account{accountNumber=%q, balance=%.2f, active=%t}", a.accountNumber, a.balance, a.active)
}
