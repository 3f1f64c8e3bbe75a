package implementation

import (
	"context"

	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/model"
	"voter-registry-be/internal/repository/contract"

	"gorm.io/gorm"
)

type StatsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) contract.StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

func (r *StatsRepositoryImpl) Totals(ctx context.Context) (*entity.RegistryTotals, error) {
	totals := entity.RegistryTotals{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Record{}).Count(&totals.Records).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Batch{}).Count(&totals.Batches).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Event{}).Count(&totals.Events).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.FamilyConnection{}).Count(&totals.Connections).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *StatsRepositoryImpl) GenderCounts(ctx context.Context, batchID *uint) ([]*entity.LabelCount, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Record{}).
		Select("gender AS label, COUNT(*) AS count").
		Where("gender IS NOT NULL AND gender != ''")
	if batchID != nil {
		query = query.Where("batch_id = ?", *batchID)
	}
	var rows []*entity.LabelCount
	if err := query.Group("gender").Order("count DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StatsRepositoryImpl) RelationshipStatusCounts(ctx context.Context) ([]*entity.LabelCount, error) {
	var rows []*entity.LabelCount
	err := r.db.WithContext(ctx).
		Model(&model.Record{}).
		Select("relationship_status AS label, COUNT(*) AS count").
		Group("relationship_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StatsRepositoryImpl) AgeDistribution(ctx context.Context) ([]*entity.LabelCount, error) {
	// Ten-year buckets ("20-29", "30-39", ...); records without an age are
	// left out entirely. Ordered by bucket start, not label text, so
	// "100-109" sorts after "90-99".
	var rows []*entity.LabelCount
	err := r.db.WithContext(ctx).
		Model(&model.Record{}).
		Select("(FLOOR(age / 10) * 10)::int || '-' || ((FLOOR(age / 10) * 10)::int + 9) AS label, COUNT(*) AS count").
		Where("age IS NOT NULL").
		Group("label").
		Order("MIN(age)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StatsRepositoryImpl) OccupationCounts(ctx context.Context, batchID *uint) ([]*entity.LabelCount, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Record{}).
		Select("occupation AS label, COUNT(*) AS count").
		Where("occupation IS NOT NULL AND occupation != ''")
	if batchID != nil {
		query = query.Where("batch_id = ?", *batchID)
	}
	var rows []*entity.LabelCount
	if err := query.Group("occupation").Order("count DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
