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

type RecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecordMapper
}

func NewRecordRepository(db *gorm.DB) contract.RecordRepository {
	return &RecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecordMapper(),
	}
}

func (r *RecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecordRepositoryImpl) normalize(m *model.Record) {
	m.PhoneNumber = normalizePhone(m.PhoneNumber)
	m.WhatsappNumber = normalizeWhatsapp(m.WhatsappNumber)
	m.PhotoLink = normalizePhotoLink(m.PhotoLink)
	if m.RelationshipStatus == "" {
		m.RelationshipStatus = "Regular"
	}
}

func (r *RecordRepositoryImpl) Create(ctx context.Context, record *entity.Record) error {
	m := r.mapper.ToModel(record)
	r.normalize(m)
	if err := r.db.WithContext(ctx).Omit("Batch").Create(m).Error; err != nil {
		return err
	}
	events := record.Events
	*record = *r.mapper.ToEntity(m)
	record.Events = events
	return nil
}

func (r *RecordRepositoryImpl) Update(ctx context.Context, record *entity.Record) error {
	m := r.mapper.ToModel(record)
	r.normalize(m)
	// Save overwrites every column, zero values included; partial updates
	// are not part of this contract.
	if err := r.db.WithContext(ctx).Omit("Batch").Save(m).Error; err != nil {
		return err
	}
	events := record.Events
	*record = *r.mapper.ToEntity(m)
	record.Events = events
	return nil
}

func (r *RecordRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Record{}, id).Error
}

func (r *RecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Record, error) {
	var m model.Record
	query := r.applySpecifications(r.db.WithContext(ctx).Joins("Batch"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Record, error) {
	var models []*model.Record
	query := r.applySpecifications(r.db.WithContext(ctx).Joins("Batch"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecordRepositoryImpl) UpdateAge(ctx context.Context, id uint, age int) error {
	return r.db.WithContext(ctx).
		Model(&model.Record{}).
		Where("id = ?", id).
		Update("age", age).Error
}

func (r *RecordRepositoryImpl) UpdateRelationshipStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Record{}).
		Where("id = ?", id).
		Update("relationship_status", status).Error
}

func (r *RecordRepositoryImpl) AllWithBirthDate(ctx context.Context) ([]*entity.Record, error) {
	var models []*model.Record
	err := r.db.WithContext(ctx).
		Select("id", "birth_date").
		Where("birth_date IS NOT NULL AND birth_date != ''").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Record{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
