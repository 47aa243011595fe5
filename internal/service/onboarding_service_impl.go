package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jnst/core-banking/internal/model"
	"github.com/jnst/core-banking/internal/repository"
	"github.com/jnst/core-banking/internal/validator"
)

const (
	userIDPrefix        = "usr"
	accountNumberDigits = 10
)

// OpenAccountParams represents parameters for opening a new account.
type OpenAccountParams struct {
	Name           string  `validate:"required"`
	Email          string  `validate:"required"`
	Age            int     `validate:"gte=0"`
	InitialBalance float64 `validate:"gte=0"`
}

// OnboardingServiceImpl implements OnboardingService: it validates the
// request, constructs the User and Account, and registers the account.
type OnboardingServiceImpl struct {
	accountRepo      repository.AccountRepository
	accountValidator *validator.AccountValidator
	validate         *playground.Validate
}

// NewOnboardingServiceImpl creates a new OnboardingService implementation.
func NewOnboardingServiceImpl(
	accountRepo repository.AccountRepository,
	accountValidator *validator.AccountValidator,
) OnboardingService {
	return &OnboardingServiceImpl{
		accountRepo:      accountRepo,
		accountValidator: accountValidator,
		validate:         playground.New(),
	}
}

// OpenAccount runs the account-opening workflow: structural validation
// of the params, domain eligibility checks, entity construction with
// generated identifiers, and registration.
func (s *OnboardingServiceImpl) OpenAccount(ctx context.Context, params *OpenAccountParams) (*model.Account, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid open account request: %w", err)
	}

	if !s.accountValidator.IsValidEmail(params.Email) {
		return nil, model.NewInvalidArgument("Invalid email format")
	}
	if !s.accountValidator.CanOpenAccount(params.Age, params.InitialBalance) {
		return nil, model.NewInvalidArgument("Not eligible to open an account")
	}

	holder, err := model.NewUser(newUserID(), params.Name, params.Email, params.Age)
	if err != nil {
		return nil, fmt.Errorf("failed to create account holder: %w", err)
	}

	accountNumber, err := s.newAccountNumber()
	if err != nil {
		return nil, err
	}

	account, err := model.NewAccount(accountNumber, holder, params.InitialBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	return account, nil
}

// GetAccount retrieves an account by its account number.
func (s *OnboardingServiceImpl) GetAccount(ctx context.Context, accountNumber string) (*model.Account, error) {
	return s.accountRepo.GetByNumber(ctx, accountNumber)
}

// ListAccounts returns all registered accounts.
func (s *OnboardingServiceImpl) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	return s.accountRepo.List(ctx)
}

// newAccountNumber generates a random digit-only account number and
// checks it against the configured format before use.
func (s *OnboardingServiceImpl) newAccountNumber() (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(accountNumberDigits), nil)

	num, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate account number: %w", err)
	}

	accountNumber := fmt.Sprintf("%0*d", accountNumberDigits, num)
	if !s.accountValidator.IsValidAccountNumber(accountNumber) {
		return "", model.NewInvalidArgument("Generated account number does not satisfy the configured format")
	}

	return accountNumber, nil
}

// newUserID returns a prefixed unique user identifier.
func newUserID() string {
	return fmt.Sprintf("%s-%s", userIDPrefix, uuid.NewString())
}
