package accountsvc

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkrupp/catcafe-web/internal/domain"
	"github.com/mkrupp/catcafe-web/internal/infra/logging"
	"github.com/mkrupp/catcafe-web/internal/repo/user"
)

// Form field names used in validation errors and templates.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Messages for the uniqueness checks. Registration deliberately confirms
// that a username or email exists, so duplicate signups are caught early;
// login never does.
const (
	msgUsernameTaken = "Username already exists, please pick another."
	msgEmailTaken    = "Email already exists, please pick another."
)

// AccountConfig contains configuration parameters for the account directory.
type AccountConfig struct {
	// BcryptCost is the bcrypt work factor used when hashing passwords
	BcryptCost int `env:"BCRYPT_COST" default:"10"`
}

// AccountService is the account directory: it owns the set of registered
// users and enforces the uniqueness invariants on username and email.
type AccountService struct {
	Config   AccountConfig
	UserRepo user.Repository
	Log      logging.Logger
}

// NewAccountService creates a new AccountService with the given user
// repository factory and configuration.
// Returns an error if the user repository cannot be created.
func NewAccountService(repoFactory user.RepositoryFactory, cfg AccountConfig) (*AccountService, error) {
	log := logging.GetLogger("svc.accountsvc.account_service")

	userRepo, err := repoFactory()
	if err != nil {
		return nil, fmt.Errorf("new user repo: %w", err)
	}

	return &AccountService{
		Config:   cfg,
		UserRepo: userRepo,
		Log:      log,
	}, nil
}

// Register creates a new user account and returns its identifier.
// The password is bcrypt-hashed with a fresh per-call salt before storage.
// Validation failures come back as *domain.ValidationError carrying one
// entry per offending field; the fields are validated independently, so a
// submission with a taken username and a taken email reports both. No
// record is persisted on failure.
func (s *AccountService) Register(
	ctx context.Context,
	username, email, password string,
) (_ int64, err error) {
	log := s.Log.With(logging.Group("user", "username", username))

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "register user failed", "error", err)
		} else {
			log.DebugContext(ctx, "user registered")
		}
	}()

	if verr := s.validateRegistration(ctx, username, email, password); verr != nil {
		return 0, verr
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.Config.BcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.UserRepo.Insert(ctx, username, email, passwordHash)
	if err != nil {
		// A concurrent registration may win the uniqueness race between the
		// validators and the insert; the constraint violation is re-reported
		// as the matching field error.
		if verr := constraintValidationError(err); verr != nil {
			return 0, verr
		}

		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// validateRegistration applies the per-field validator chains and the
// uniqueness checks. All fields are validated; failures are aggregated
// rather than short-circuited across fields.
func (s *AccountService) validateRegistration(
	ctx context.Context,
	username, email, password string,
) *domain.ValidationError {
	var fields []domain.FieldError

	usernameErr := runValidators(username,
		requiredValidator(FieldUsername),
		maxLengthValidator(FieldUsername, domain.UsernameMaxLength),
	)
	if usernameErr == nil {
		usernameErr = s.usernameFree(ctx, username)
	}

	if usernameErr != nil {
		fields = append(fields, *usernameErr)
	}

	emailErr := runValidators(email,
		requiredValidator(FieldEmail),
		emailSyntaxValidator(FieldEmail),
		maxLengthValidator(FieldEmail, domain.EmailMaxLength),
	)
	if emailErr == nil {
		emailErr = s.emailFree(ctx, email)
	}

	if emailErr != nil {
		fields = append(fields, *emailErr)
	}

	passwordErr := runValidators(password,
		requiredValidator(FieldPassword),
		lengthRangeValidator(FieldPassword, domain.PasswordMinLength, domain.PasswordMaxLength),
	)
	if passwordErr != nil {
		fields = append(fields, *passwordErr)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	return nil
}

func (s *AccountService) usernameFree(ctx context.Context, username string) *domain.FieldError {
	if _, ok, _ := s.findBy(ctx, s.UserRepo.FindByUsername, username); ok {
		return &domain.FieldError{Field: FieldUsername, Message: msgUsernameTaken}
	}

	return nil
}

func (s *AccountService) emailFree(ctx context.Context, email string) *domain.FieldError {
	if _, ok, _ := s.findBy(ctx, s.UserRepo.FindByEmail, email); ok {
		return &domain.FieldError{Field: FieldEmail, Message: msgEmailTaken}
	}

	return nil
}

// FindByUsername looks up a user by username. Not-found is not an error:
// the result is nil and false.
func (s *AccountService) FindByUsername(
	ctx context.Context,
	username string,
) (*domain.User, bool, error) {
	return s.findBy(ctx, s.UserRepo.FindByUsername, username)
}

func (s *AccountService) findBy(
	ctx context.Context,
	lookup func(context.Context, string) (*domain.User, bool, error),
	key string,
) (*domain.User, bool, error) {
	found, ok, err := lookup(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("find user: %w", err)
	}

	return found, ok, nil
}

// constraintValidationError converts a uniqueness-constraint insert failure
// into the field-scoped validation error the form layer expects.
func constraintValidationError(err error) *domain.ValidationError {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return &domain.ValidationError{Fields: []domain.FieldError{
			{Field: FieldUsername, Message: msgUsernameTaken},
		}}
	case errors.Is(err, domain.ErrEmailTaken):
		return &domain.ValidationError{Fields: []domain.FieldError{
			{Field: FieldEmail, Message: msgEmailTaken},
		}}
	default:
		return nil
	}
}

// Close releases resources held by the service, such as database connections.
// Returns an error if cleanup fails.
func (s *AccountService) Close() error {
	if err := s.UserRepo.Close(); err != nil {
		return fmt.Errorf("close user repo: %w", err)
	}

	return nil
}
