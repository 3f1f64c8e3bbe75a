package implementation

import (
	"context"
	"errors"

	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/mapper"
	"voter-registry-be/internal/model"
	"voter-registry-be/internal/repository/contract"
	"voter-registry-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BatchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BatchMapper
}

func NewBatchRepository(db *gorm.DB) contract.BatchRepository {
	return &BatchRepositoryImpl{
		db:     db,
		mapper: mapper.NewBatchMapper(),
	}
}

func (r *BatchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BatchRepositoryImpl) Ensure(ctx context.Context, name string) (*entity.Batch, error) {
	m := model.Batch{Name: name}
	if err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BatchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Batch, error) {
	var m model.Batch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BatchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Batch, error) {
	var models []*model.Batch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BatchRepositoryImpl) Delete(ctx context.Context, id uint) error {
	// Records go first; their FK cascades take the connections and event
	// links with them.
	if err := r.db.WithContext(ctx).Where("batch_id = ?", id).Delete(&model.Record{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Batch{}, id).Error
}

func (r *BatchRepositoryImpl) FileNames(ctx context.Context, id uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Record{}).
		Distinct("file_name").
		Where("batch_id = ?", id).
		Order("file_name").
		Pluck("file_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *BatchRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Batch{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
