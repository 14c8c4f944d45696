package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	"github.com/MobeenM17/SuswearGProject/internal/testutil"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	"github.com/MobeenM17/SuswearGProject/pkg/photostore"
)

// ── fixtures ──

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SessionSecret: "test-secret-key-for-unit-testing-2026",
			SessionTTL:    24 * time.Hour,
			BcryptCost:    bcrypt.MinCost,
		},
	}
}

// pngBytes is enough of a PNG for content sniffing
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}, make([]byte, 64)...)

type fakePhotoStore struct {
	mu      sync.Mutex
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{saved: make(map[string][]byte)}
}

func (f *fakePhotoStore) Save(_ context.Context, name, _ string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := "photo-" + name
	f.saved[key] = data
	return key, nil
}

func (f *fakePhotoStore) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.saved[key]
	if !ok {
		return nil, "", photostore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), "image/png", nil
}

func (f *fakePhotoStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.saved[key]; !ok {
		return photostore.ErrNotFound
	}
	delete(f.saved, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakePhotoStore) URL(key string) string { return "/uploads/" + key }

type testEnv struct {
	db     *gorm.DB
	repo   *repository.Repository
	svc    *Service
	photos *fakePhotoStore
	jwtMgr *jwt.Manager
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	repo := repository.NewRepository(db)
	cfg := newTestConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	photos := newFakePhotoStore()
	return &testEnv{
		db:     db,
		repo:   repo,
		svc:    NewService(cfg, repo, jwtMgr, nil, photos, zap.NewNop()),
		photos: photos,
		jwtMgr: jwtMgr,
	}
}

func (e *testEnv) donor(t *testing.T, name, email string) *model.User {
	t.Helper()
	return testutil.CreateUser(t, e.db, name, email, "abc123", model.RoleDonor)
}

func (e *testEnv) staff(t *testing.T, name, email string) *model.User {
	t.Helper()
	return testutil.CreateUser(t, e.db, name, email, "abc123", model.RoleStaff)
}

func (e *testEnv) submit(t *testing.T, donorID int, category string) int {
	t.Helper()
	id, err := e.svc.Donation.Submit(context.Background(), donorID, &dto.SubmitDonationInput{
		Description:  "Warm " + category,
		CategoryName: category,
		WeightKg:     1.2,
		PhotoName:    "item.png",
		Photo:        bytes.NewReader(pngBytes),
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	return id
}

func (e *testEnv) accept(t *testing.T, staffID, donationID int) *dto.ReviewResponse {
	t.Helper()
	resp, err := e.svc.Donation.Review(context.Background(), staffID, model.RoleStaff, &dto.ReviewRequest{
		DonationID: donationID,
		Action:     ActionAccept,
	})
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	return resp
}

func (e *testEnv) count(t *testing.T, table interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := e.db.Model(table)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func strPtr(s string) *string { return &s }

var errBoom = errors.New("boom")
