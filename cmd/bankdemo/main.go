// Package main provides a scripted demonstration of the banking domain
// library: account opening, deposits, transfers with fee, interest
// calculation and the account lifecycle.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jnst/core-banking/internal/config"
	"github.com/jnst/core-banking/internal/logger"
	"github.com/jnst/core-banking/internal/model"
	"github.com/jnst/core-banking/internal/repository"
	"github.com/jnst/core-banking/internal/service"
	"github.com/jnst/core-banking/internal/validator"
)

const (
	exitCode = 1

	aliceInitialBalance = 2000.0
	bobInitialBalance   = 0.0
	bobDepositAmount    = 100.0
	transferAmount      = 1000.0
	interestRatePercent = 10.0
	interestMonths      = 12
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}

	loggerInstance := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(loggerInstance)

	// Dependency injection
	accountValidator := validator.NewWithBounds(cfg.AccountNumberMinLength, cfg.AccountNumberMaxLength)
	accountRepo := repository.NewAccountRepositoryImpl()
	onboarding := service.NewOnboardingServiceImpl(accountRepo, accountValidator)
	transfers := service.NewTransferServiceImpl(cfg.TransactionFee, cfg.MaxTransferAmount)

	if err := runScenario(context.Background(), onboarding, transfers); err != nil {
		slog.Error("scenario failed", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}
}

func runScenario(ctx context.Context, onboarding service.OnboardingService, transfers service.TransferService) error {
	alice, err := onboarding.OpenAccount(ctx, &service.OpenAccountParams{
		Name:           "Alice Smith",
		Email:          "alice@example.com",
		Age:            34,
		InitialBalance: aliceInitialBalance,
	})
	if err != nil {
		return err
	}

	bob, err := onboarding.OpenAccount(ctx, &service.OpenAccountParams{
		Name:           "Bob Jones",
		Email:          "bob@example.com",
		Age:            62,
		InitialBalance: bobInitialBalance,
	})
	if err != nil {
		return err
	}

	slog.Info("accounts opened",
		slog.String("alice", alice.String()),
		slog.String("bob", bob.String()),
		slog.Bool("bob_is_senior", bob.AccountHolder().IsSenior()),
	)

	if err := bob.Deposit(bobDepositAmount); err != nil {
		return err
	}

	if err := transfers.Transfer(alice, bob, transferAmount); err != nil {
		return err
	}

	slog.Info("transfer completed",
		slog.Float64("amount", transferAmount),
		slog.Float64("fee", transfers.TransactionFee()),
		slog.Float64("alice_balance", alice.Balance()),
		slog.Float64("bob_balance", bob.Balance()),
	)

	// Expected failure: amount over the configured cap is rejected up front.
	if err := transfers.Transfer(alice, bob, transfers.MaxTransferAmount()+1); err != nil {
		slog.Info("over-limit transfer rejected", slog.String("reason", err.Error()))
	}

	interest, err := transfers.CalculateInterest(bob, interestRatePercent, interestMonths)
	if err != nil {
		return err
	}

	slog.Info("interest computed",
		slog.Float64("principal", bob.Balance()),
		slog.Float64("rate_percent", interestRatePercent),
		slog.Int("months", interestMonths),
		slog.Float64("interest", interest),
	)

	if err := runLifecycle(ctx, onboarding); err != nil {
		return err
	}

	for _, account := range []*model.Account{alice, bob} {
		for _, entry := range account.TransactionHistory() {
			slog.Info("history", slog.String("account", account.AccountNumber()), slog.String("entry", entry))
		}
	}

	return nil
}

// runLifecycle demonstrates close and reactivate on a zero-balance account.
func runLifecycle(ctx context.Context, onboarding service.OnboardingService) error {
	account, err := onboarding.OpenAccount(ctx, &service.OpenAccountParams{
		Name:           "Carol White",
		Email:          "carol@example.com",
		Age:            29,
		InitialBalance: 0,
	})
	if err != nil {
		return err
	}

	if err := account.Close(); err != nil {
		return err
	}

	// Expected failure: a closed account rejects deposits.
	if err := account.Deposit(1); err != nil {
		slog.Info("deposit on closed account rejected", slog.String("reason", err.Error()))
	}

	if err := account.Reactivate(); err != nil {
		return err
	}

	slog.Info("lifecycle complete", slog.String("account", account.String()))

	return nil
}
