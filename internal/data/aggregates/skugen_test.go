package aggregates

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	repotest "github.com/openshelf/catalog-backend/internal/data/repos/testutil"
	types "github.com/openshelf/catalog-backend/internal/domain"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

// fakeProductRepo drives the collision probe without a database.
type fakeProductRepo struct {
	mu         sync.Mutex
	collisions int
	probes     int
}

func (f *fakeProductRepo) ExistsByInternalSKU(dbc dbctx.Context, sku string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probes++
	if f.collisions > 0 {
		f.collisions--
		return true, nil
	}
	return false, nil
}

func (f *fakeProductRepo) Create(dbc dbctx.Context, rows []*types.Product) ([]*types.Product, error) {
	return rows, nil
}
func (f *fakeProductRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeProductRepo) ReassignCategory(dbc dbctx.Context, from uuid.UUID, to *uuid.UUID) (int64, error) {
	return 0, nil
}
func (f *fakeProductRepo) CountByCategory(dbc dbctx.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}

type hooksRecorder struct {
	mu         sync.Mutex
	skuRetries int
	conflicts  []string
	operations []string
}

func (h *hooksRecorder) ObserveOperation(name, status string, dur time.Duration) {
	h.mu.Lock()
	h.operations = append(h.operations, name+"/"+status)
	h.mu.Unlock()
}

func (h *hooksRecorder) IncConflict(name string) {
	h.mu.Lock()
	h.conflicts = append(h.conflicts, name)
	h.mu.Unlock()
}

func (h *hooksRecorder) IncSKURetry() {
	h.mu.Lock()
	h.skuRetries++
	h.mu.Unlock()
}

var skuPattern = regexp.MustCompile(`^PRD-\d{8}-[ABCDEFGHJKMNPQRSTUVWXYZ23456789]{6}$`)

func TestSKUGeneratorFormat(t *testing.T) {
	gen := NewSKUGenerator(&fakeProductRepo{}, &hooksRecorder{}, repotest.Logger(t))

	sku, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !skuPattern.MatchString(sku) {
		t.Fatalf("sku %q does not match expected shape", sku)
	}
}

func TestSKUGeneratorRetriesOnCollision(t *testing.T) {
	repo := &fakeProductRepo{collisions: 3}
	hooks := &hooksRecorder{}
	gen := NewSKUGenerator(repo, hooks, repotest.Logger(t))

	sku, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if sku == "" {
		t.Fatalf("expected a sku after retries")
	}
	if repo.probes != 4 {
		t.Fatalf("probes: want=4 got=%d", repo.probes)
	}
	if hooks.skuRetries != 3 {
		t.Fatalf("retry signals: want=3 got=%d", hooks.skuRetries)
	}
}

func TestSKUGeneratorExhaustsAfterCeiling(t *testing.T) {
	repo := &fakeProductRepo{collisions: skuMaxAttempts + 5}
	gen := NewSKUGenerator(repo, &hooksRecorder{}, repotest.Logger(t))

	_, err := gen.Generate(context.Background())
	if err == nil {
		t.Fatalf("expected exhaustion error")
	}
	if !catalog.IsCode(err, catalog.CodeExhausted) {
		t.Fatalf("expected exhausted code, got %v", err)
	}
	if repo.probes != skuMaxAttempts {
		t.Fatalf("probes: want=%d got=%d", skuMaxAttempts, repo.probes)
	}
}
