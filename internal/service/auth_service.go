package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

type AuthService interface {
	Register(req dto.RegisterRequest, meta ClientMeta) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest, meta ClientMeta) (*dto.AuthResponse, error)
	// EnsureAdmin guarantees an ADMIN account exists for the given email.
	// An existing account is promoted in place; the password only applies on
	// first creation.
	EnsureAdmin(email, name, password string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	audit    AuditService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, audit AuditService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, audit: audit}
}

func (s *authService) Register(req dto.RegisterRequest, meta ClientMeta) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, err
	}

	s.audit.Record(AuditEntry{
		UserID:    &user.ID,
		Action:    model.AuditUserRegister,
		Entity:    "User",
		EntityID:  fmt.Sprint(user.ID),
		Details:   fmt.Sprintf("registered %s", user.Email),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return s.issue(&user)
}

func (s *authService) EnsureAdmin(email, name, password string) error {
	existing, err := s.userRepo.FindByEmail(email)
	if err == nil {
		if existing.Role == model.RoleAdmin {
			return nil
		}
		existing.Role = model.RoleAdmin
		if err := s.userRepo.Update(existing); err != nil {
			return fmt.Errorf("promoting admin user: %w", err)
		}
		log.Info().Str("email", email).Msg("EnsureAdmin: promoted existing user to ADMIN")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("looking up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	admin := model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := s.userRepo.Create(&admin); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	s.audit.Record(AuditEntry{
		UserID:   &admin.ID,
		Action:   model.AuditUserRegister,
		Entity:   "User",
		EntityID: fmt.Sprint(admin.ID),
		Details:  fmt.Sprintf("seeded admin %s", admin.Email),
	})
	log.Info().Str("email", email).Msg("EnsureAdmin: created ADMIN account")
	return nil
}

func (s *authService) Login(req dto.LoginRequest, meta ClientMeta) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.audit.Record(AuditEntry{
		UserID:    &user.ID,
		Action:    model.AuditUserLogin,
		Entity:    "User",
		EntityID:  fmt.Sprint(user.ID),
		Details:   fmt.Sprintf("login %s", user.Email),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return s.issue(user)
}

func (s *authService) issue(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to sign token")
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserDTO{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role},
	}, nil
}
