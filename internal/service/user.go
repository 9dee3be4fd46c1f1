package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/model"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileView, error)
	Login(ctx context.Context, req *dto.LoginRequest, sessionID string) (string, error)
	Profile(ctx context.Context, userID uint) (*dto.ProfileView, error)
}

type userServiceImpl struct {
	userRepo      repository.UserRepository
	sessionSecret string
	sessionTTL    time.Duration
}

func NewUserService(userRepo repository.UserRepository, sessionSecret string, sessionTTL time.Duration) UserService {
	return &userServiceImpl{
		userRepo:      userRepo,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileView, error) {
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, fmt.Errorf("%w: phone must be a 10-digit number", ErrValidation)
	}

	if taken, err := s.userRepo.UsernameExists(ctx, req.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if taken {
		return nil, fmt.Errorf("%w: username already exists", ErrValidation)
	}
	if taken, err := s.userRepo.EmailExists(ctx, req.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if taken {
		return nil, fmt.Errorf("%w: email already exists", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Gender:       req.Gender,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return profileView(user), nil
}

// Login checks the credentials and returns a signed session token
// carrying the user id and the caller's session id. Keeping the
// visitor's session id means a cart built before login is still there
// after it; a fresh id is minted only when the caller has none.
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest, sessionID string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"sid":     sessionID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.sessionTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.sessionSecret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *userServiceImpl) Profile(ctx context.Context, userID uint) (*dto.ProfileView, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return profileView(user), nil
}

func profileView(user *model.User) *dto.ProfileView {
	return &dto.ProfileView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Gender:   user.Gender,
	}
}
