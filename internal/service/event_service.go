package service

import (
	"context"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/pkg/logger"
	"voter-registry-be/internal/pkg/serverutils"
	"voter-registry-be/internal/repository/specification"
	"voter-registry-be/internal/repository/unitofwork"
)

type IEventService interface {
	EnsureEvent(ctx context.Context, req *dto.EnsureEventRequest) (*dto.EnsureEventResponse, error)
	ListEvents(ctx context.Context) ([]*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, id uint) error
	EventRecords(ctx context.Context, eventID uint) ([]*dto.RecordResponse, error)
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	caches     *Caches
}

func NewEventService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger, caches *Caches) IEventService {
	return &eventService{
		uowFactory: uowFactory,
		logger:     sysLogger,
		caches:     caches,
	}
}

func (s *eventService) EnsureEvent(ctx context.Context, req *dto.EnsureEventRequest) (*dto.EnsureEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := uow.EventRepository().Ensure(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &dto.EnsureEventResponse{Id: event.Id, Name: event.Name}, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.EventRepository().FindAll(ctx,
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, &dto.EventResponse{
			Id:        event.Id,
			Name:      event.Name,
			CreatedAt: event.CreatedAt,
		})
	}
	return result, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if event == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.EventRepository().Delete(ctx, id); err != nil {
		s.logger.Error("event", "event deletion failed", map[string]interface{}{
			"event_id": id,
			"error":    err.Error(),
		})
		return err
	}
	// Cached search results carry hydrated event names.
	s.caches.FlushAll()
	return nil
}

func (s *eventService) EventRecords(ctx context.Context, eventID uint) ([]*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: eventID})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, serverutils.ErrNotFound
	}

	recordIDs, err := uow.EventRepository().RecordIDsForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RecordResponse, 0, len(recordIDs))
	for _, recordID := range recordIDs {
		record, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: recordID})
		if err != nil {
			return nil, err
		}
		if record == nil {
			continue
		}
		events, err := uow.EventRepository().NamesForRecord(ctx, record.Id)
		if err != nil {
			return nil, err
		}
		record.Events = events
		result = append(result, recordToResponse(record))
	}
	return result, nil
}
