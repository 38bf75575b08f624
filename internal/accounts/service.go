// Package accounts implements the credential flow of the Account Service:
// registration, login, token verification and user listing on top of the
// flat-file record store.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/internal/engine"
	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/google/uuid"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

// decoyPassword is hashed once per Service so a login for an unknown email
// still pays for a compare.
const decoyPassword = "gamingtech-decoy-password"

// Hasher derives and checks password hashes.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// Tokens issues and verifies session tokens.
type Tokens interface {
	Issue(u schema.UserRecord) (string, time.Time, error)
	Verify(token string) (*schema.Claims, error)
}

// Registration is the input of Register.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Session is the result of a successful Login.
type Session struct {
	User      schema.PublicUser
	Token     string
	ExpiresAt time.Time
}

// Service is the account flow. It holds no user state of its own: every call
// reads the store.
type Service struct {
	store  engine.RecordStore
	hasher Hasher
	tokens Tokens
	logger logging.Logger
	now    func() time.Time
	newID  func() (string, error)

	decoyOnce sync.Once
	decoyHash string
}

// NewService wires the account flow to its collaborators.
func NewService(store engine.RecordStore, hasher Hasher, tokens Tokens, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
		newID:  newRecordID,
	}
}

// newRecordID returns a UUIDv7: its leading 48 bits are the creation time in
// milliseconds, the rest is random, so ids sort by creation time and two
// registrations in the same millisecond do not collide.
func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Register validates r, rejects a taken email and appends a new "user" record.
func (s *Service) Register(ctx context.Context, r Registration) (schema.PublicUser, error) {
	return s.create(ctx, r, schema.RoleUser)
}

func (s *Service) create(ctx context.Context, r Registration, role schema.Role) (schema.PublicUser, error) {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Password == "" {
		return schema.PublicUser{}, common.ErrMissingFields
	}
	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		return schema.PublicUser{}, common.ErrPasswordTooShort
	}

	// Cheap pre-check so a duplicate does not pay for a bcrypt round. The
	// authoritative check runs again inside Update.
	file, err := s.store.Load(ctx)
	if err != nil {
		return schema.PublicUser{}, fmt.Errorf("load users: %w", err)
	}
	if file.FindByEmail(r.Email) >= 0 {
		return schema.PublicUser{}, common.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return schema.PublicUser{}, err
		}
		return schema.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		return schema.PublicUser{}, fmt.Errorf("generate id: %w", err)
	}

	user := schema.UserRecord{
		ID:           id,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
		Role:         role,
	}

	err = s.store.Update(ctx, func(f *schema.UserFile) error {
		if f.FindByEmail(user.Email) >= 0 {
			return common.ErrEmailTaken
		}
		f.Users = append(f.Users, user)
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return schema.PublicUser{}, err
		}
		return schema.PublicUser{}, fmt.Errorf("save user: %w", err)
	}

	s.logger.Info("user registered", "id", user.ID, "email", user.Email, "role", user.Role)
	return user.Public(), nil
}

// Login checks email and password and issues a session token. An unknown
// email and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, common.ErrMissingCredentials
	}

	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	idx := file.FindByEmail(email)
	if idx < 0 {
		s.hasher.Compare(s.decoy(), password)
		s.logger.Debug("login rejected", "reason", "unknown email")
		return nil, common.ErrInvalidCredentials
	}
	user := file.Users[idx]

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Debug("login rejected", "reason", "password mismatch", "id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "id", user.ID)
	return &Session{User: user.Public(), Token: token, ExpiresAt: exp}, nil
}

// decoy returns a hash at the hasher's cost that no real password matches.
func (s *Service) decoy() string {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(decoyPassword)
		if err != nil {
			s.logger.Warn("decoy hash failed", "err", err)
			return
		}
		s.decoyHash = hash
	})
	return s.decoyHash
}

// Verify checks a token's signature and expiry. It does not consult the
// store: a token outlives changes to its account until it expires.
func (s *Service) Verify(token string) (*schema.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, common.ErrMissingToken
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Debug("token rejected", "err", err)
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// Users returns every record without its hash, in file order.
func (s *Service) Users(ctx context.Context) ([]schema.PublicUser, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	out := make([]schema.PublicUser, 0, len(file.Users))
	for _, u := range file.Users {
		out = append(out, u.Public())
	}
	return out, nil
}
