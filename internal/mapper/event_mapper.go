package mapper

import (
	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}
	return &entity.Event{
		Id:        e.Id,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}

func (m *EventMapper) ToEntities(events []*model.Event) []*entity.Event {
	result := make([]*entity.Event, 0, len(events))
	for _, e := range events {
		result = append(result, m.ToEntity(e))
	}
	return result
}
