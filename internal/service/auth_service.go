package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/repository"
	"go-rental-inventory/internal/sanitize"
	"go-rental-inventory/pkg/jwt"
	"go-rental-inventory/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type AuthService interface {
	SignUp(email, password, fullName, phoneNumber string) (*SignUpResponse, error)
	SignIn(email, password string) (*SignInResponse, error)
	SignOut(userID uuid.UUID) error
}

type SignUpResponse struct {
	User    model.UserResponse `json:"user"`
	Profile model.UserProfile  `json:"profile"`
}

type SignInResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager, log *zap.Logger) AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &authService{userRepo: userRepo, tokens: tokens, log: log}
}

// SignUp is a two-step sequence: create the auth identity, then the linked
// profile record. When the profile step fails after the identity was created
// the whole operation reports failure; the orphaned identity is an accepted
// partial-failure state and is not rolled back here.
func (s *authService) SignUp(email, password, fullName, phoneNumber string) (*SignUpResponse, error) {
	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{Email: email}
	if err := user.SetPassword(password); err != nil {
		s.log.Error("sign-up: hashing password failed", zap.Error(err))
		return nil, err
	}
	if err := validator.ValidateStruct(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		s.log.Error("sign-up: creating identity failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	profile := &model.UserProfile{
		UserID:      user.ID,
		FullName:    sanitize.Clean(fullName),
		PhoneNumber: sanitize.Clean(phoneNumber),
		Role:        "user",
	}
	if err := s.userRepo.CreateProfile(profile); err != nil {
		s.log.Error("sign-up: profile creation failed after identity was created",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, err
	}

	user.Profile = profile
	return &SignUpResponse{User: user.ToResponse(), Profile: *profile}, nil
}

func (s *authService) SignIn(email, password string) (*SignInResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: a fresh token version invalidates earlier tokens.
	version := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, version); err != nil {
		s.log.Error("sign-in: updating session failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, errors.New("failed to update session")
	}

	fullName := ""
	if user.Profile != nil {
		fullName = user.Profile.FullName
	}
	token, err := s.tokens.Generate(user.ID, user.Email, fullName, version)
	if err != nil {
		s.log.Error("sign-in: token generation failed", zap.Error(err))
		return nil, errors.New("failed to generate token")
	}

	return &SignInResponse{Token: token, User: user.ToResponse()}, nil
}

// SignOut bumps the token version so outstanding tokens stop validating.
func (s *authService) SignOut(userID uuid.UUID) error {
	if err := s.userRepo.UpdateTokenVersion(userID, uuid.New().String()); err != nil {
		s.log.Error("sign-out failed", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}
