/*
Package auth implements the demo authentication backing the banking app.

PURPOSE:
  A deliberate placeholder, not a security layer: users live in an
  in-memory slice checked linearly, passwords are compared in plain
  text, and tokens are opaque one-time strings with no session registry
  behind them. It exists so the client's login and registration screens
  have something real to talk to.

ACCOUNT LIFECYCLE:
  Registration creates a "pending" account with no account number.
  Pending accounts cannot log in. The seed list ships one pre-approved
  demo user; nothing in this package flips pending to approved - that
  is the fictional "3-5 business days" back office.

SEE ALSO:
  - api/handlers.go: HTTP mapping for these operations
*/
package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// =============================================================================
// ERRORS - Mapped to HTTP statuses in the api package
// =============================================================================

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTermsNotAgreed     = errors.New("terms and conditions not agreed to")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPendingApproval    = errors.New("account is pending approval")
)

// =============================================================================
// USERS
// =============================================================================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

type User struct {
	Username      string
	Password      string
	FullName      string
	Email         string
	Phone         string
	AccountNumber string
	Status        Status
}

// seedUsers returns the demo accounts a fresh service starts with.
func seedUsers() []User {
	return []User{
		{
			Username:      "jachemlyn",
			Password:      "H@rlz@2836",
			FullName:      "Jachemlyn",
			Email:         "jachemlyn@chinabank.ph",
			Phone:         "9120000001",
			AccountNumber: "1234-5678-9012",
			Status:        StatusApproved,
		},
	}
}

// =============================================================================
// SERVICE
// =============================================================================

// Service holds the in-memory user list. Safe for concurrent use.
type Service struct {
	mu    sync.Mutex
	users []User
}

func NewService() *Service {
	return &Service{users: seedUsers()}
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	AgreedToTerms   bool
}

// Register validates the form and appends a pending account.
// The account number stays "PENDING" until the fictional approval.
func (s *Service) Register(in RegisterInput) error {
	if in.FullName == "" || in.Email == "" || in.Phone == "" ||
		in.Password == "" || in.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !in.AgreedToTerms {
		return ErrTermsNotAgreed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return ErrEmailTaken
		}
	}

	s.users = append(s.users, User{
		Username:      in.Email,
		Password:      in.Password,
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		AccountNumber: "PENDING",
		Status:        StatusPending,
	})
	return nil
}

// Session is the result of a successful login.
type Session struct {
	Token         string
	Username      string
	FullName      string
	AccountNumber string
}

// Login matches username-or-email plus password against the user list.
func (s *Service) Login(username, password string) (Session, error) {
	if username == "" || password == "" {
		return Session{}, ErrMissingCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if (u.Username == username || u.Email == username) && u.Password == password {
			if u.Status != StatusApproved {
				return Session{}, ErrPendingApproval
			}
			return Session{
				Token:         uuid.NewString(),
				Username:      u.Username,
				FullName:      u.FullName,
				AccountNumber: u.AccountNumber,
			}, nil
		}
	}
	return Session{}, ErrInvalidCredentials
}
