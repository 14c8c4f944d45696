package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MobeenM17/SuswearGProject/internal/model"
)

// ────────────────────── Category ──────────────────────

// CategoryRepository category reference list
type CategoryRepository interface {
	// GetByName exact, case-sensitive match
	GetByName(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Ensure(ctx context.Context, name string) (*model.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo creates a CategoryRepository
func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) GetByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Order("category_id ASC").Find(&list).Error
	return list, err
}

func (r *categoryRepo) Ensure(ctx context.Context, name string) (*model.Category, error) {
	c := model.Category{Name: name}
	if err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ────────────────────── Charity ──────────────────────

// CharityRepository charity reference list
type CharityRepository interface {
	GetByID(ctx context.Context, id int) (*model.Charity, error)
	List(ctx context.Context) ([]model.Charity, error)
	Ensure(ctx context.Context, name string) (*model.Charity, error)
}

type charityRepo struct {
	db *gorm.DB
}

// NewCharityRepo creates a CharityRepository
func NewCharityRepo(db *gorm.DB) CharityRepository {
	return &charityRepo{db: db}
}

func (r *charityRepo) GetByID(ctx context.Context, id int) (*model.Charity, error) {
	var c model.Charity
	if err := r.db.WithContext(ctx).Where("charity_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *charityRepo) List(ctx context.Context) ([]model.Charity, error) {
	var list []model.Charity
	err := r.db.WithContext(ctx).Order("charity_id ASC").Find(&list).Error
	return list, err
}

func (r *charityRepo) Ensure(ctx context.Context, name string) (*model.Charity, error) {
	c := model.Charity{CharityName: name}
	if err := r.db.WithContext(ctx).Where("charity_name = ?", name).FirstOrCreate(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ────────────────────── Metric ──────────────────────

// MetricRepository daily impact snapshots
type MetricRepository interface {
	// Upsert overwrites the row for m.MetricDate
	Upsert(ctx context.Context, m *model.Metric) error
	GetByDate(ctx context.Context, date string) (*model.Metric, error)
}

type metricRepo struct {
	db *gorm.DB
}

// NewMetricRepo creates a MetricRepository
func NewMetricRepo(db *gorm.DB) MetricRepository {
	return &metricRepo{db: db}
}

func (r *metricRepo) Upsert(ctx context.Context, m *model.Metric) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "metric_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_donations", "co2_saved_kg", "landfill_saved_kg"}),
		}).
		Create(m).Error
}

func (r *metricRepo) GetByDate(ctx context.Context, date string) (*model.Metric, error) {
	var m model.Metric
	if err := r.db.WithContext(ctx).Where("metric_date = ?", date).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
