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

type EventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &EventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func (r *EventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EventRepositoryImpl) Ensure(ctx context.Context, name string) (*entity.Event, error) {
	m := model.Event{Name: name}
	if err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	var models []*model.Event
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	var m model.Event
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("event_id = ?", id).Delete(&model.RecordEvent{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Event{}, id).Error
}

func (r *EventRepositoryImpl) NamesForRecord(ctx context.Context, recordID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Joins("JOIN record_events ON record_events.event_id = events.id").
		Where("record_events.record_id = ?", recordID).
		Order("events.name").
		Pluck("events.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *EventRepositoryImpl) ReplaceForRecord(ctx context.Context, recordID uint, eventIDs []uint) error {
	// Wholesale replacement: clear the record's links, then insert the new
	// set. No diffing.
	if err := r.db.WithContext(ctx).Where("record_id = ?", recordID).Delete(&model.RecordEvent{}).Error; err != nil {
		return err
	}
	if len(eventIDs) == 0 {
		return nil
	}
	links := make([]model.RecordEvent, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		links = append(links, model.RecordEvent{RecordId: recordID, EventId: eventID})
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *EventRepositoryImpl) RecordIDsForEvent(ctx context.Context, eventID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.RecordEvent{}).
		Where("event_id = ?", eventID).
		Pluck("record_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Event{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
