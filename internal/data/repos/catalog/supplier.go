package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/openshelf/catalog-backend/internal/domain"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

// SupplierRepo is read-mostly here; suppliers are managed by onboarding.
type SupplierRepo interface {
	Create(dbc dbctx.Context, rows []*types.Supplier) ([]*types.Supplier, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Supplier, error)
}

type supplierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	return &supplierRepo{db: db, log: baseLog.With("repo", "SupplierRepo")}
}

func (r *supplierRepo) Create(dbc dbctx.Context, rows []*types.Supplier) ([]*types.Supplier, error) {
	if len(rows) == 0 {
		return []*types.Supplier{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *supplierRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Supplier, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.Supplier
	err := txx.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Take(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
