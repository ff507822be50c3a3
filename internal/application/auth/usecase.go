// Package auth contiene el registro y login de usuarios del panel.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
	"github.com/agrocampo/agroadmin-api/pkg/jwt"
)

// UseCase registro y autenticación de usuarios.
type UseCase struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtIssuer     string
	jwtExpMinutes int
}

func NewUseCase(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, jwtExpMinutes int) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtIssuer:     jwtIssuer,
		jwtExpMinutes: jwtExpMinutes,
	}
}

// Register crea un usuario. Si no se indica rol, queda como vendedor.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Login valida credenciales y emite el token. Mismo error para email
// inexistente y contraseña incorrecta: no filtrar cuál falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Role, uc.jwtIssuer, uc.jwtExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Me devuelve el usuario autenticado.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
