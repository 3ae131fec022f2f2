package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	txRunner TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
//
// La unicidad del CEO es una precondición explícita verificada dentro de la
// transacción del insert (no un efecto lateral de un hook de guardado): si ya
// existe un CEO se devuelve ErrCEOAlreadyExists y el registro existente queda
// intacto. El índice parcial users_single_ceo respalda la regla en la DB.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunUsers(ctx, func(userRepo repository.UserRepository) error {
		existing, err := userRepo.GetByUsername(in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrUsernameAlreadyExists
		}
		if role == entity.RoleCEO {
			n, err := userRepo.CountByRole(entity.RoleCEO)
			if err != nil {
				return err
			}
			if n > 0 {
				return domain.ErrCEOAlreadyExists
			}
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT con el rol y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me devuelve el perfil del actor autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, actor entity.Actor) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Name:       u.Name,
		Role:       string(u.Role),
		Salary:     u.Salary,
		ShiftStart: u.ShiftStart,
		ShiftEnd:   u.ShiftEnd,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
