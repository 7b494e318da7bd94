package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/malidadi/storefront/internal/redisx"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Auth performs the demo-grade admin login: one configured account, a
// bcrypt check, and an opaque token flagged in redis.
type Auth struct {
	email    string
	passHash []byte
	redis    *redis.Client
}

func NewAuth(email, password string, rdb *redis.Client) (*Auth, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Auth{email: email, passHash: hash, redis: rdb}, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	if !strings.EqualFold(email, a.email) {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	key := fmt.Sprintf(redisx.KeyAdminAuth, token)
	if err := a.redis.Set(ctx, key, a.email, redisx.TTLAdminAuth).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (a *Auth) Logout(ctx context.Context, token string) error {
	return a.redis.Del(ctx, fmt.Sprintf(redisx.KeyAdminAuth, token)).Err()
}

func (a *Auth) Authenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := redisx.Exists(ctx, a.redis, fmt.Sprintf(redisx.KeyAdminAuth, token))
	return err == nil && ok
}
