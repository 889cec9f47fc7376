package accounts

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccountExists      = errors.New("an account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailTaken         = errors.New("email address already in use")
	ErrMissingFields      = errors.New("email and password are required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordMinLength = 6

// Service encapsulates administrator account logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Setup creates the single administrator account. It fails if any account
// already exists.
func (s *Service) Setup(ctx context.Context, email, password, name string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < passwordMinLength {
		return nil, ErrPasswordTooShort
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAccountExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}
	a := &models.Account{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         "admin",
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Authenticate verifies the credentials and returns the matching account.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// ChangePassword verifies the current password before hashing and storing the
// new one. Any validation failure leaves the account untouched.
func (s *Service) ChangePassword(ctx context.Context, id, current, next string) error {
	if len(next) < passwordMinLength {
		return ErrPasswordTooShort
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), 10)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hash), time.Now().UTC())
}

// ChangeEmail verifies the current password and the new address before
// overwriting the email. The change is rejected when another account already
// owns the address.
func (s *Service) ChangeEmail(ctx context.Context, id, password, email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	if other, err := s.repo.GetByEmail(ctx, email); err == nil && other.ID != id {
		return ErrEmailTaken
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return s.repo.UpdateEmail(ctx, id, email, time.Now().UTC())
}

func (s *Service) Get(ctx context.Context, id string) (*models.Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id string, p models.Profile) (*models.Account, error) {
	return s.repo.UpdateProfile(ctx, id, p)
}

// PublicProfile returns the administrator's public contact sub-document. When
// no account exists yet it returns an empty profile rather than an error.
func (s *Service) PublicProfile(ctx context.Context) (*models.Profile, error) {
	a, err := s.repo.First(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &models.Profile{}, nil
		}
		return nil, err
	}
	p := a.Profile
	if p.Email == "" {
		p.Email = a.Email
	}
	return &p, nil
}
