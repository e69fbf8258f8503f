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

type CategoryRepo interface {
	Create(dbc dbctx.Context, rows []*types.Category) ([]*types.Category, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Category, error)
	LockByID(dbc dbctx.Context, id uuid.UUID) (*types.Category, error)
	FindActiveByNameAndParent(dbc dbctx.Context, name string, parentID *uuid.UUID) (*types.Category, error)
	ListPendingReview(dbc dbctx.Context, limit int) ([]*types.Category, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	BulkApprove(dbc dbctx.Context, ids []uuid.UUID) (int64, error)
	ReparentChildren(dbc dbctx.Context, from uuid.UUID, to *uuid.UUID) (int64, error)
	DeleteByID(dbc dbctx.Context, id uuid.UUID) error
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(dbc dbctx.Context, rows []*types.Category) ([]*types.Category, error) {
	if len(rows) == 0 {
		return []*types.Category{}, nil
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

func (r *categoryRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Category, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.Category
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

func (r *categoryRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.Category, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var out types.Category
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

// FindActiveByNameAndParent probes the (name, parent_id) uniqueness rule
// among active rows. parentID nil matches root categories.
func (r *categoryRepo) FindActiveByNameAndParent(dbc dbctx.Context, name string, parentID *uuid.UUID) (*types.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	q := txx.WithContext(dbc.Ctx).
		Model(&types.Category{}).
		Where("name = ? AND is_active", name)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	var out types.Category
	err := q.Take(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *categoryRepo) ListPendingReview(dbc dbctx.Context, limit int) ([]*types.Category, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Category
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Category{}).
		Where("needs_review AND is_active").
		Order("created_at ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
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
		Model(&types.Category{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// BulkApprove flips needs_review off for every currently-pending id in one
// statement and reports how many rows actually changed.
func (r *categoryRepo) BulkApprove(dbc dbctx.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).
		Model(&types.Category{}).
		Where("id IN ? AND needs_review", ids).
		Updates(map[string]interface{}{
			"needs_review": false,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ReparentChildren moves every direct child of `from` under `to` in one
// statement. `to` may be nil, promoting children to roots.
func (r *categoryRepo) ReparentChildren(dbc dbctx.Context, from uuid.UUID, to *uuid.UUID) (int64, error) {
	if from == uuid.Nil {
		return 0, fmt.Errorf("missing source category id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).
		Model(&types.Category{}).
		Where("parent_id = ?", from).
		Updates(map[string]interface{}{
			"parent_id":  to,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *categoryRepo) DeleteByID(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Delete(&types.Category{}).Error
}
