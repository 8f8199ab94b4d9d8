package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
)

// Authenticator is the part of the API the store drives.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)
}

// Storage is the durable mirror. Save and Clear must touch both keys in one
// transaction.
type Storage interface {
	Load(ctx context.Context) (token string, user []byte, err error)
	Save(ctx context.Context, token string, user []byte) error
	SaveUser(ctx context.Context, user []byte) error
	Clear(ctx context.Context) error
}

// Listener observes session changes. It receives a private copy.
type Listener func(models.Session)

type Store struct {
	auth    Authenticator
	storage Storage
	logger  logging.Logger

	mu      sync.Mutex
	current models.Session

	subsMu sync.Mutex
	subs   map[int]Listener
	nextID int
}

func NewStore(auth Authenticator, storage Storage, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{
		auth:    auth,
		storage: storage,
		logger:  logger.With("component", "session"),
		subs:    make(map[int]Listener),
	}
}

// Bootstrap seeds memory from storage. A missing, partial or unreadable pair
// starts an empty session and is wiped from storage. No network call is made.
func (s *Store) Bootstrap(ctx context.Context) error {
	token, raw, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	sess, perr := decode(token, raw)

	s.mu.Lock()
	if perr != nil {
		s.logger.Warn(ctx, "discarding persisted session", "error", perr)
		if err := s.storage.Clear(ctx); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("clear corrupt session: %w", err)
		}
	}
	changed := s.swap(sess)
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	return nil
}

func decode(token string, raw []byte) (models.Session, error) {
	switch {
	case token == "" && len(raw) == 0:
		return models.Session{}, nil
	case token == "" || len(raw) == 0:
		return models.Session{}, fmt.Errorf("%w: only one of token/user present", common.ErrCorruptSession)
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", common.ErrCorruptSession, err)
	}
	if err := models.Validate(u); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", common.ErrCorruptSession, err)
	}
	return models.Session{Token: token, User: &u}, nil
}

// Login authenticates and installs the returned session. Invalid credentials
// are rejected locally and leave the session alone. Any other failure clears
// the session and storage before the error is returned.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := models.Validate(creds); err != nil {
		return models.Session{}, err
	}
	resp, err := s.auth.Login(ctx, creds)
	return s.complete(ctx, "login", resp, err)
}

// Register creates an account and logs it in, with the same contract as
// Login.
func (s *Store) Register(ctx context.Context, reg models.Registration) (models.Session, error) {
	if err := models.Validate(reg); err != nil {
		return models.Session{}, err
	}
	resp, err := s.auth.Register(ctx, reg)
	return s.complete(ctx, "register", resp, err)
}

func (s *Store) complete(ctx context.Context, op string, resp *models.AuthResponse, err error) (models.Session, error) {
	if err == nil {
		err = checkResponse(resp)
	}
	if err != nil {
		s.logger.Info(ctx, op+" failed", "error", err)
		return models.Session{}, s.fail(ctx, fmt.Errorf("%s: %w", op, err))
	}

	user := resp.User
	raw, err := json.Marshal(user)
	if err != nil {
		return models.Session{}, s.fail(ctx, fmt.Errorf("%s: encode user: %w", op, err))
	}

	sess := models.Session{Token: resp.Token, User: &user}

	s.mu.Lock()
	if err := s.storage.Save(ctx, sess.Token, raw); err != nil {
		s.mu.Unlock()
		return models.Session{}, s.fail(ctx, fmt.Errorf("%s: persist session: %w", op, err))
	}
	s.swap(sess)
	s.mu.Unlock()

	s.logger.Info(ctx, op+" succeeded", "user_id", user.ID)
	s.notify()
	return sess.Clone(), nil
}

func checkResponse(resp *models.AuthResponse) error {
	if resp == nil {
		return fmt.Errorf("%w: empty auth response", common.ErrValidation)
	}
	return models.Validate(resp)
}

// fail wipes memory and storage and returns cause, joined with the storage
// error if wiping failed too.
func (s *Store) fail(ctx context.Context, cause error) error {
	s.mu.Lock()
	clearErr := s.storage.Clear(ctx)
	changed := s.swap(models.Session{})
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	if clearErr != nil {
		return errors.Join(cause, fmt.Errorf("clear session: %w", clearErr))
	}
	return cause
}

// Logout clears the session. Storage is always cleared; listeners hear about
// it only if a session was active. On a storage error memory is kept so it
// still matches storage.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	if err := s.storage.Clear(ctx); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("logout: %w", err)
	}
	changed := s.swap(models.Session{})
	s.mu.Unlock()

	if changed {
		s.logger.Info(ctx, "logged out")
		s.notify()
	}
	return nil
}

// UpdateUser merges patch into the current user and re-persists the user
// record. The token is never touched. Without a session it does nothing.
func (s *Store) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	if !s.current.Active() {
		s.mu.Unlock()
		return nil
	}

	merged := patch.Apply(*s.current.User)
	if err := models.Validate(merged); err != nil {
		s.mu.Unlock()
		return err
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.SaveUser(ctx, raw); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("update user: %w", err)
	}
	changed := s.swap(models.Session{Token: s.current.Token, User: &merged})
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	return nil
}

// swap installs next and reports whether anything visible changed. Callers
// hold s.mu.
func (s *Store) swap(next models.Session) bool {
	prev := s.current
	s.current = next
	return !sameSession(prev, next)
}

func sameSession(a, b models.Session) bool {
	if a.Token != b.Token || (a.User == nil) != (b.User == nil) {
		return false
	}
	if a.User == nil {
		return true
	}
	x, _ := json.Marshal(a.User)
	y, _ := json.Marshal(b.User)
	return string(x) == string(y)
}

func (s *Store) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Active()
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

// User returns a copy of the logged-in user.
func (s *Store) User() (models.User, bool) {
	sess := s.Current()
	if sess.User == nil {
		return models.User{}, false
	}
	return *sess.User, true
}

// TokenExpiry reads the exp claim without verifying the signature. It is for
// display only; opaque or exp-less tokens report false.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Subscribe registers fn for every subsequent change. Listeners run
// synchronously, in registration order, on the goroutine that made the
// change.
func (s *Store) Subscribe(fn func(models.Session)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

func (s *Store) notify() {
	sess := s.Current()

	s.subsMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(sess.Clone())
	}
}
