package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHolder(t *testing.T) *User {
	t.Helper()

	u, err := NewUser("U001", "John Doe", "john@email.com", 30)
	require.NoError(t, err)

	return u
}

func newTestAccount(t *testing.T, balance float64) *Account {
	t.Helper()

	a, err := NewAccount("12345678", newTestHolder(t), balance)
	require.NoError(t, err)

	return a
}

func TestNewAccount_ValidData(t *testing.T) {
	holder := newTestHolder(t)

	a, err := NewAccount("12345678", holder, 500)
	require.NoError(t, err)

	assert.Equal(t, "12345678", a.AccountNumber())
	assert.Same(t, holder, a.AccountHolder())
	assert.Equal(t, 500.0, a.Balance())
	assert.True(t, a.IsActive())
	assert.Equal(t, []string{"Initial deposit: 500.00"}, a.TransactionHistory())
}

func TestNewAccount_ZeroInitialBalance_NoHistoryEntry(t *testing.T) {
	a := newTestAccount(t, 0)

	assert.Equal(t, 0.0, a.Balance())
	assert.Empty(t, a.TransactionHistory())
}

func TestNewAccount_InvalidData(t *testing.T) {
	holder := newTestHolder(t)

	tests := []struct {
		name    string
		number  string
		holder  *User
		balance float64
		wantMsg string
	}{
		{name: "empty account number", number: "", holder: holder, balance: 0, wantMsg: "Account number cannot be empty"},
		{name: "blank account number", number: "   ", holder: holder, balance: 0, wantMsg: "Account number cannot be empty"},
		{name: "nil holder", number: "12345678", holder: nil, balance: 0, wantMsg: "Account holder cannot be nil"},
		{name: "negative initial balance", number: "12345678", holder: holder, balance: -1, wantMsg: "Initial balance cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAccount(tt.number, tt.holder, tt.balance)
			require.Nil(t, a)
			require.EqualError(t, err, tt.wantMsg)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestAccount_Deposit(t *testing.T) {
	a := newTestAccount(t, 0)

	require.NoError(t, a.Deposit(100))

	assert.Equal(t, 100.0, a.Balance())
	assert.Equal(t, []string{"Deposited: 100.00"}, a.TransactionHistory())
}

func TestAccount_Deposit_NonPositiveAmount(t *testing.T) {
	a := newTestAccount(t, 100)

	for _, amount := range []float64{0, -50} {
		err := a.Deposit(amount)
		require.EqualError(t, err, "Deposit amount must be positive")
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}

	assert.Equal(t, 100.0, a.Balance())
}

func TestAccount_Withdraw(t *testing.T) {
	a := newTestAccount(t, 100)

	require.NoError(t, a.Withdraw(40))

	assert.Equal(t, 60.0, a.Balance())
	assert.Equal(t, []string{"Initial deposit: 100.00", "Withdrawn: 40.00"}, a.TransactionHistory())
}

func TestAccount_Withdraw_InsufficientFunds(t *testing.T) {
	a := newTestAccount(t, 100)

	err := a.Withdraw(150)
	require.EqualError(t, err, "Insufficient funds. Balance: 100.00")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 100.0, a.Balance())
	assert.Len(t, a.TransactionHistory(), 1)
}

func TestAccount_Withdraw_NonPositiveAmount(t *testing.T) {
	a := newTestAccount(t, 100)

	for _, amount := range []float64{0, -10} {
		err := a.Withdraw(amount)
		require.EqualError(t, err, "Withdrawal amount must be positive")
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestAccount_Close(t *testing.T) {
	a := newTestAccount(t, 50)

	err := a.Close()
	require.EqualError(t, err, "Cannot close account with remaining balance please withdraw all amounts")
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.True(t, a.IsActive())

	require.NoError(t, a.Withdraw(50))
	require.NoError(t, a.Close())
	assert.False(t, a.IsActive())

	depositErr := a.Deposit(10)
	require.EqualError(t, depositErr, "Account is not active")
	assert.True(t, errors.Is(depositErr, ErrInvalidState))

	withdrawErr := a.Withdraw(10)
	require.EqualError(t, withdrawErr, "Account is not active")
	assert.True(t, errors.Is(withdrawErr, ErrInvalidState))

	closeErr := a.Close()
	require.EqualError(t, closeErr, "Account is already closed")
	assert.True(t, errors.Is(closeErr, ErrInvalidState))
}

func TestAccount_Reactivate(t *testing.T) {
	a := newTestAccount(t, 0)

	err := a.Reactivate()
	require.EqualError(t, err, "Account is already active")
	assert.True(t, errors.Is(err, ErrInvalidState))

	require.NoError(t, a.Close())
	require.NoError(t, a.Reactivate())
	assert.True(t, a.IsActive())

	require.NoError(t, a.Deposit(25))
	assert.Equal(t, 25.0, a.Balance())
}

func TestAccount_LifecycleHistory(t *testing.T) {
	a := newTestAccount(t, 0)

	require.NoError(t, a.Close())
	require.NoError(t, a.Reactivate())

	assert.Equal(t, []string{"Account closed", "Account reactivated"}, a.TransactionHistory())
}

func TestAccount_TransactionHistory_DefensiveCopy(t *testing.T) {
	a := newTestAccount(t, 100)

	history := a.TransactionHistory()
	history[0] = "tampered"
	_ = append(history, "extra")

	assert.Equal(t, []string{"Initial deposit: 100.00"}, a.TransactionHistory())
}
