package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhaabhishek9/Nutrifitnes/models"
	"github.com/jhaabhishek9/Nutrifitnes/storage"
	"github.com/jhaabhishek9/Nutrifitnes/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	store  storage.Store
	secret []byte
}

func NewAuthService(store storage.Store, secret []byte) *AuthService {
	return &AuthService{store: store, secret: secret}
}

type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Register creates the user and signs them in, returning a session token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  in.Username,
		Password:  hashed,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id uint) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}
