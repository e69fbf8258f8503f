package aggregates

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/openshelf/catalog-backend/internal/data/repos"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

const (
	skuPrefix      = "PRD"
	skuSuffixLen   = 6
	skuMaxAttempts = 10

	// No 0/O/1/I/L: generated SKUs get read aloud and retyped by operators.
	skuAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

type skuGenerator struct {
	products repos.ProductRepo
	hooks    Hooks
	log      *logger.Logger
}

// NewSKUGenerator returns a generator producing PRD-YYYYMMDD-XXXXXX internal
// SKUs. Each candidate is probed against the product table; collisions retry
// with fresh randomness up to an attempt ceiling. The probe narrows the race
// window but the unique index stays authoritative at insert time.
func NewSKUGenerator(products repos.ProductRepo, hooks Hooks, baseLog *logger.Logger) catalog.SKUGenerator {
	if hooks == nil {
		hooks = noopHooks{}
	}
	return &skuGenerator{
		products: products,
		hooks:    hooks,
		log:      baseLog.With("component", "SKUGenerator"),
	}
}

func (g *skuGenerator) Generate(ctx context.Context) (string, error) {
	const op = "Catalog.SKU.Generate"
	if g == nil || g.products == nil {
		return "", catalog.NewError(catalog.CodeInternal, op, "sku generator repos not configured", nil)
	}
	dbc := dbctx.Context{Ctx: ctx}
	for attempt := 1; attempt <= skuMaxAttempts; attempt++ {
		candidate, err := g.newCandidate()
		if err != nil {
			return "", catalog.Wrap(catalog.CodeInternal, op, err)
		}
		exists, err := g.products.ExistsByInternalSKU(dbc, candidate)
		if err != nil {
			return "", MapError(op, err)
		}
		if !exists {
			return candidate, nil
		}
		g.hooks.IncSKURetry()
		g.log.Warn("sku candidate collided, retrying",
			"candidate", candidate,
			"attempt", attempt,
		)
	}
	return "", catalog.NewError(catalog.CodeExhausted, op,
		fmt.Sprintf("sku generation exhausted after %d attempts", skuMaxAttempts), nil)
}

func (g *skuGenerator) newCandidate() (string, error) {
	buf := make([]byte, skuSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random suffix: %w", err)
	}
	for i, b := range buf {
		buf[i] = skuAlphabet[int(b)%len(skuAlphabet)]
	}
	return fmt.Sprintf("%s-%s-%s", skuPrefix, time.Now().UTC().Format("20060102"), string(buf)), nil
}
