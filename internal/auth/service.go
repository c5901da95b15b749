package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/telemetry/tracing"
	"github.com/2beens/forgezone/pkg"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	TokenLength      = 35
	sessionKeyPrefix = "forgezone-session||"
	tokensSetKey     = "forgezone-sessions"

	sessionFieldUserID    = "userId"
	sessionFieldCreatedAt = "createdAt"
)

type userStore interface {
	CreateUser(ctx context.Context, user *fitness.User) error
	UserByEmail(ctx context.Context, email string) (*fitness.User, error)
}

type Service struct {
	redisClient *redis.Client
	users       userStore
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	NewUserIDFunc  func() string
	Now            func() time.Time
}

func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
	users userStore,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		users:          users,
		RandStringFunc: pkg.GenerateRandomString,
		NewUserIDFunc:  uuid.NewString,
		Now:            time.Now,
	}
}

// NormalizeEmail validates the address and returns its lowercase form.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fitness.NewValidationError("email", "required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fitness.NewValidationError("email", "invalid address")
	}
	return strings.ToLower(addr.Address), nil
}

// Register creates a user with initial progress and opens a session for it.
func (s *Service) Register(ctx context.Context, email, password string) (_ *fitness.User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email, err = NormalizeEmail(email)
	if err != nil {
		return nil, "", err
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		if errors.Is(err, pkg.ErrPasswordTooShort) {
			return nil, "", fitness.NewValidationError("password", "must be at least %d characters", pkg.MinPasswordLength)
		}
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &fitness.User{
		ID:           s.NewUserIDFunc(),
		Email:        email,
		PasswordHash: passwordHash,
		Workouts:     []fitness.WorkoutEntry{},
		Progress:     fitness.InitialProgress(),
		CreatedAt:    s.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.newSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	log.Printf("auth service: new user registered [%s]", user.ID)
	return user, token, nil
}

// Login checks the credentials and opens a new session. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (_ *fitness.User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fitness.ErrInvalidCredential
	}

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, fitness.ErrUserNotFound) {
			return nil, "", fitness.ErrInvalidCredential
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", fitness.ErrInvalidCredential
	}

	token, err := s.newSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *Service) newSession(ctx context.Context, userID string) (string, error) {
	token, err := s.RandStringFunc(TokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := s.redisClient.HSet(ctx, sessionKey,
		sessionFieldUserID, userID,
		sessionFieldCreatedAt, s.Now().Unix(),
	)
	if err := cmdSet.Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	cmdSAdd := s.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}

	return token, nil
}

// Logout removes the session. Returns false if there was no such session.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmdDel := s.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := s.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (s *Service) ScanAndClean(ctx context.Context) {
	cmd := s.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Printf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		createdAtStr, err := s.redisClient.HGet(ctx, sessionKeyPrefix+token, sessionFieldCreatedAt).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// session key gone, only the set entry is left
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if s.Now().Sub(time.Unix(createdAtUnix, 0)) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if _, err := s.Logout(ctx, token); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Printf("=> auth service, scan and clean done, removed %d sessions", len(toRemove))
}
