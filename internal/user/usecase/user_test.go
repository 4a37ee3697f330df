package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/log"
	"auth-srv/pkg/password"
)

type fakeRepo struct {
	users     map[string]model.User
	getErr    error
	createErr error
	getCalls  int
	created   []repository.CreateUserOptions
}

func (r *fakeRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.getCalls++
	if r.getErr != nil {
		return model.User{}, r.getErr
	}
	u, ok := r.users[email]
	if !ok || !u.IsActive {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeRepo) CreateUser(_ context.Context, opts repository.CreateUserOptions) (model.User, error) {
	if r.createErr != nil {
		return model.User{}, r.createErr
	}
	r.created = append(r.created, opts)
	return model.User{
		ID:           int64(len(r.created)),
		FullName:     opts.FullName,
		Email:        opts.Email,
		PasswordHash: opts.PasswordHash,
		RoleName:     opts.RoleName,
		IsActive:     true,
	}, nil
}

type fakeCache struct {
	entries map[string]model.UserSummary
	getErr  error
	saveErr error
	saves   int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]model.UserSummary{}}
}

func (c *fakeCache) GetSummary(_ context.Context, email string) (model.UserSummary, error) {
	if c.getErr != nil {
		return model.UserSummary{}, c.getErr
	}
	s, ok := c.entries[email]
	if !ok {
		return model.UserSummary{}, repository.ErrCacheMiss
	}
	return s, nil
}

func (c *fakeCache) SaveSummary(_ context.Context, s model.UserSummary, _ time.Duration) error {
	c.saves++
	if c.saveErr != nil {
		return c.saveErr
	}
	c.entries[s.Email] = s
	return nil
}

func (c *fakeCache) DeleteSummary(_ context.Context, email string) error {
	c.deletes++
	delete(c.entries, email)
	return nil
}

func newTestPool(t *testing.T) *password.Pool {
	t.Helper()
	h, err := password.NewBcrypt(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcrypt failed: %v", err)
	}
	return password.NewPool(h, 2)
}

func ada() model.User {
	return model.User{ID: 7, FullName: "Ada", Email: "a@test.com", PasswordHash: "$2a$04$hash", RoleName: "ADMIN", IsActive: true}
}

func TestGetUserSummaryByEmail_ReadThrough(t *testing.T) {
	repo := &fakeRepo{users: map[string]model.User{"a@test.com": ada()}}
	cache := newFakeCache()
	uc := New(repo, cache, newTestPool(t), log.NewNop(), user.Config{SummaryCacheTTL: time.Minute})
	ctx := context.Background()

	first, err := uc.GetUserSummaryByEmail(ctx, "  A@Test.com ")
	if err != nil {
		t.Fatalf("GetUserSummaryByEmail failed: %v", err)
	}
	if first.UserID != 7 || first.FullName != "Ada" || first.Email != "a@test.com" {
		t.Errorf("unexpected summary: %+v", first)
	}

	second, err := uc.GetUserSummaryByEmail(ctx, "a@test.com")
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}
	if second != first {
		t.Errorf("cached summary %+v != %+v", second, first)
	}
	if repo.getCalls != 1 {
		t.Errorf("repo calls = %d, want 1", repo.getCalls)
	}
	if cache.saves != 1 {
		t.Errorf("cache saves = %d, want 1", cache.saves)
	}
}

func TestGetUserSummaryByEmail_CacheDisabled(t *testing.T) {
	repo := &fakeRepo{users: map[string]model.User{"a@test.com": ada()}}
	cache := newFakeCache()
	uc := New(repo, cache, newTestPool(t), log.NewNop(), user.Config{})

	for i := 0; i < 2; i++ {
		if _, err := uc.GetUserSummaryByEmail(context.Background(), "a@test.com"); err != nil {
			t.Fatal(err)
		}
	}
	if repo.getCalls != 2 || cache.saves != 0 {
		t.Errorf("repo calls = %d, cache saves = %d", repo.getCalls, cache.saves)
	}
}

func TestGetUserSummaryByEmail_CacheFailureFallsThrough(t *testing.T) {
	repo := &fakeRepo{users: map[string]model.User{"a@test.com": ada()}}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.saveErr = errors.New("redis down")
	uc := New(repo, cache, newTestPool(t), log.NewNop(), user.Config{SummaryCacheTTL: time.Minute})

	s, err := uc.GetUserSummaryByEmail(context.Background(), "a@test.com")
	if err != nil {
		t.Fatalf("GetUserSummaryByEmail failed: %v", err)
	}
	if s.UserID != 7 {
		t.Errorf("UserID = %d, want 7", s.UserID)
	}
}

func TestGetUserSummaryByEmail_NotFound(t *testing.T) {
	inactive := ada()
	inactive.IsActive = false
	repo := &fakeRepo{users: map[string]model.User{"a@test.com": inactive}}
	uc := New(repo, nil, newTestPool(t), log.NewNop(), user.Config{})

	tests := []string{"a@test.com", "missing@test.com", "   "}
	for _, email := range tests {
		if _, err := uc.GetUserSummaryByEmail(context.Background(), email); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("%q: error = %v, want ErrUserNotFound", email, err)
		}
	}
}

func TestGetUserSummaryByEmail_StorageFault(t *testing.T) {
	boom := errors.New("connection refused")
	uc := New(&fakeRepo{getErr: boom}, nil, newTestPool(t), log.NewNop(), user.Config{})

	_, err := uc.GetUserSummaryByEmail(context.Background(), "a@test.com")
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
	if errors.Is(err, user.ErrUserNotFound) {
		t.Error("storage fault must not look like a missing user")
	}
}

func TestGetCredentialRecordByEmail_BypassesCache(t *testing.T) {
	repo := &fakeRepo{users: map[string]model.User{"a@test.com": ada()}}
	cache := newFakeCache()
	uc := New(repo, cache, newTestPool(t), log.NewNop(), user.Config{SummaryCacheTTL: time.Minute})

	for i := 0; i < 2; i++ {
		cred, err := uc.GetCredentialRecordByEmail(context.Background(), "a@test.com")
		if err != nil {
			t.Fatal(err)
		}
		if cred.UserID != 7 || cred.PasswordHash != "$2a$04$hash" {
			t.Errorf("unexpected credential: %+v", cred)
		}
	}
	if repo.getCalls != 2 {
		t.Errorf("repo calls = %d, want 2", repo.getCalls)
	}
	if cache.saves != 0 {
		t.Error("credential lookups must not populate the cache")
	}
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	pool := newTestPool(t)
	uc := New(repo, newFakeCache(), pool, log.NewNop(), user.Config{SummaryCacheTTL: time.Minute})

	u, err := uc.Create(context.Background(), user.CreateInput{
		FullName: " Ada Lovelace ",
		Email:    "Ada@Test.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.Email != "ada@test.com" || u.FullName != "Ada Lovelace" || u.RoleName != DefaultRole {
		t.Errorf("unexpected user: %+v", u)
	}

	stored := repo.created[0]
	if stored.PasswordHash == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if ok, err := pool.Verify(context.Background(), "secret123", stored.PasswordHash); err != nil || !ok {
		t.Errorf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestCreate_ConfiguredDefaultRole(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(repo, nil, newTestPool(t), log.NewNop(), user.Config{DefaultRole: "MEMBER"})

	if _, err := uc.Create(context.Background(), user.CreateInput{FullName: "Ada", Email: "a@test.com", Password: "secret123"}); err != nil {
		t.Fatal(err)
	}
	if repo.created[0].RoleName != "MEMBER" {
		t.Errorf("role = %q, want MEMBER", repo.created[0].RoleName)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input user.CreateInput
	}{
		{"empty name", user.CreateInput{Email: "a@test.com", Password: "secret123"}},
		{"long name", user.CreateInput{FullName: strings.Repeat("x", user.MaxFullNameLen+1), Email: "a@test.com", Password: "secret123"}},
		{"bad email", user.CreateInput{FullName: "Ada", Email: "not-an-email", Password: "secret123"}},
		{"short password", user.CreateInput{FullName: "Ada", Email: "a@test.com", Password: "short"}},
		{"long password", user.CreateInput{FullName: "Ada", Email: "a@test.com", Password: strings.Repeat("p", user.MaxPasswordLen+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := New(repo, nil, newTestPool(t), log.NewNop(), user.Config{})
			if _, err := uc.Create(context.Background(), tt.input); !errors.Is(err, user.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
			if len(repo.created) != 0 {
				t.Error("invalid input reached the repository")
			}
		})
	}
}

func TestCreate_RepositoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"duplicate", repository.ErrDuplicateEmail, user.ErrEmailAlreadyExists},
		{"failure", repository.ErrUserCreateFailed, user.ErrCreateFailed},
		{"unknown role", repository.ErrRoleNotFound, user.ErrCreateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&fakeRepo{createErr: tt.repoErr}, nil, newTestPool(t), log.NewNop(), user.Config{})
			_, err := uc.Create(context.Background(), user.CreateInput{FullName: "Ada", Email: "a@test.com", Password: "secret123"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
