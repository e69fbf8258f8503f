package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/openshelf/catalog-backend/internal/domain"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

type SupplierItemRepo interface {
	Create(dbc dbctx.Context, rows []*types.SupplierItem) ([]*types.SupplierItem, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SupplierItem, error)
	LockByID(dbc dbctx.Context, id uuid.UUID) (*types.SupplierItem, error)
	ListByProductID(dbc dbctx.Context, productID uuid.UUID) ([]*types.SupplierItem, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type supplierItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierItemRepo(db *gorm.DB, baseLog *logger.Logger) SupplierItemRepo {
	return &supplierItemRepo{db: db, log: baseLog.With("repo", "SupplierItemRepo")}
}

func (r *supplierItemRepo) Create(dbc dbctx.Context, rows []*types.SupplierItem) ([]*types.SupplierItem, error) {
	if len(rows) == 0 {
		return []*types.SupplierItem{}, nil
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

func (r *supplierItemRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SupplierItem, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.SupplierItem
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

func (r *supplierItemRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.SupplierItem, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var out types.SupplierItem
	err := dbc.Tx.WithContext(dbc.Ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
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

func (r *supplierItemRepo) ListByProductID(dbc dbctx.Context, productID uuid.UUID) ([]*types.SupplierItem, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("missing product id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.SupplierItem
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.SupplierItem{}).
		Where("product_id = ?", productID).
		Order("supplier_sku ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *supplierItemRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing id")
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now().UTC()
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).
		Model(&types.SupplierItem{}).
		Where("id = ?", id).
		Updates(updates).Error
}
