package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cricket-data-service/internal/domain/users"
	"cricket-data-service/internal/storage"
)

var (
	// ErrMissingFields is returned when a registration field is empty.
	ErrMissingFields = errors.New("please provide all required fields")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrNoUser and ErrWrongPassword are kept distinct on purpose; the
	// login form tells the user which one went wrong.
	ErrNoUser        = errors.New("no user found with this email")
	ErrWrongPassword = errors.New("invalid password")
	// ErrInvalidToken is returned for expired or malformed session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims represents the JWT claims for an authenticated user.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// UserStore is the slice of storage the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *users.User) error
	GetUserByEmail(ctx context.Context, email string) (*users.User, error)
	GetUserByID(ctx context.Context, id string) (*users.User, error)
}

// Service handles registration, login and session tokens.
type Service struct {
	store         UserStore
	jwtSecret     []byte
	tokenDuration time.Duration
	bcryptCost    int
	now           func() time.Time
}

// NewService creates a new auth service.
func NewService(store UserStore, jwtSecret string, tokenDuration time.Duration, bcryptCost int) *Service {
	if tokenDuration <= 0 {
		tokenDuration = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		store:         store,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: tokenDuration,
		bcryptCost:    bcryptCost,
		now:           time.Now,
	}
}

// Register creates a new account. The returned user carries no password
// material beyond the stored hash, which its JSON shape never exposes.
func (s *Service) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	name = strings.TrimSpace(name)
	email = storage.NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &users.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	u, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrUserNotFound) {
		return nil, "", ErrNoUser
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrWrongPassword
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) generateToken(u *users.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
