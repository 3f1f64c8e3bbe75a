package service

import (
	"context"
	"fmt"
	"time"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/pkg/logger"
	"voter-registry-be/internal/pkg/serverutils"
	"voter-registry-be/internal/repository/specification"
	"voter-registry-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

// GenderAll is the sentinel that disables the gender filter in searches.
const GenderAll = "all"

type IRegistryService interface {
	EnsureBatch(ctx context.Context, req *dto.EnsureBatchRequest) (*dto.EnsureBatchResponse, error)
	ListBatches(ctx context.Context) ([]*dto.BatchResponse, error)
	DeleteBatch(ctx context.Context, id uint) error
	BatchRecords(ctx context.Context, batchID uint) ([]*dto.RecordResponse, error)
	BatchFiles(ctx context.Context, batchID uint) (*dto.BatchFilesResponse, error)
	FileRecords(ctx context.Context, batchID uint, fileName string) ([]*dto.RecordResponse, error)

	CreateRecord(ctx context.Context, req *dto.CreateRecordRequest) (*dto.CreateRecordResponse, error)
	UpdateRecord(ctx context.Context, req *dto.UpdateRecordRequest) (*dto.UpdateRecordResponse, error)
	SearchRecords(ctx context.Context, req *dto.SearchRecordsRequest) ([]*dto.RecordResponse, error)
	GetRecordByID(ctx context.Context, id uint) (*dto.RecordResponse, error)
	GetRecordByVoterNo(ctx context.Context, voterNo string) (*dto.RecordResponse, error)
	AssignEvents(ctx context.Context, req *dto.AssignEventsRequest) error

	UpdateRelationshipStatus(ctx context.Context, req *dto.UpdateRelationshipStatusRequest) error
	RecordsByStatus(ctx context.Context, status string) ([]*dto.RecordResponse, error)

	UpdateRecordAge(ctx context.Context, req *dto.UpdateRecordAgeRequest) error
	RecalculateAges(ctx context.Context) (*dto.RecalculateAgesResponse, error)
}

type registryService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	caches     *Caches
}

func NewRegistryService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger, caches *Caches) IRegistryService {
	return &registryService{
		uowFactory: uowFactory,
		logger:     sysLogger,
		caches:     caches,
	}
}

func (s *registryService) EnsureBatch(ctx context.Context, req *dto.EnsureBatchRequest) (*dto.EnsureBatchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch, err := uow.BatchRepository().Ensure(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &dto.EnsureBatchResponse{Id: batch.Id, Name: batch.Name}, nil
}

func (s *registryService) ListBatches(ctx context.Context) ([]*dto.BatchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batches, err := uow.BatchRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.BatchResponse, 0, len(batches))
	for _, batch := range batches {
		result = append(result, &dto.BatchResponse{
			Id:        batch.Id,
			Name:      batch.Name,
			CreatedAt: batch.CreatedAt,
		})
	}
	return result, nil
}

func (s *registryService) DeleteBatch(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	batch, err := uow.BatchRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if batch == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.BatchRepository().Delete(ctx, id); err != nil {
		s.logger.Error("registry", "batch deletion failed", map[string]interface{}{
			"batch_id": id,
			"error":    err.Error(),
		})
		uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	s.caches.FlushAll()
	return nil
}

func (s *registryService) BatchRecords(ctx context.Context, batchID uint) ([]*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.RecordRepository().FindAll(ctx,
		specification.ByBatchID{BatchID: batchID},
		specification.OrderBy{Field: "records.id"},
	)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, uow, records)
}

func (s *registryService) BatchFiles(ctx context.Context, batchID uint) (*dto.BatchFilesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	names, err := uow.BatchRepository().FileNames(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return &dto.BatchFilesResponse{BatchId: batchID, FileNames: names}, nil
}

func (s *registryService) FileRecords(ctx context.Context, batchID uint, fileName string) ([]*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.RecordRepository().FindAll(ctx,
		specification.ByBatchID{BatchID: batchID},
		specification.ByFileName{FileName: fileName},
		specification.OrderBy{Field: "records.id"},
	)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, uow, records)
}

func (s *registryService) CreateRecord(ctx context.Context, req *dto.CreateRecordRequest) (*dto.CreateRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Batch resolution and the record insert commit together.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	batch, err := uow.BatchRepository().Ensure(ctx, req.BatchName)
	if err != nil {
		uow.Rollback()
		return nil, err
	}

	record := recordFromFields(&req.RecordFields)
	record.BatchId = batch.Id
	record.FileName = req.FileName

	if err := uow.RecordRepository().Create(ctx, record); err != nil {
		s.logger.Error("registry", "record creation failed", map[string]interface{}{
			"batch": req.BatchName,
			"error": err.Error(),
		})
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.caches.FlushAll()

	return &dto.CreateRecordResponse{Id: record.Id, BatchId: batch.Id}, nil
}

func (s *registryService) UpdateRecord(ctx context.Context, req *dto.UpdateRecordRequest) (*dto.UpdateRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, serverutils.ErrNotFound
	}

	record := recordFromFields(&req.RecordFields)
	record.Id = existing.Id
	record.BatchId = existing.BatchId
	record.FileName = existing.FileName
	record.CreatedAt = existing.CreatedAt

	if err := uow.RecordRepository().Update(ctx, record); err != nil {
		s.logger.Error("registry", "record update failed", map[string]interface{}{
			"record_id": req.Id,
			"error":     err.Error(),
		})
		return nil, err
	}
	s.caches.FlushAll()

	return &dto.UpdateRecordResponse{Id: record.Id}, nil
}

func (s *registryService) SearchRecords(ctx context.Context, req *dto.SearchRecordsRequest) ([]*dto.RecordResponse, error) {
	cacheKey := searchCacheKey(req)
	if cached, found := s.caches.search.Get(cacheKey); found {
		return cached.([]*dto.RecordResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}

	// One string checked against name OR voter number is the "search by
	// name or ID" box; different strings narrow conjunctively.
	if req.Name != "" && req.Name == req.VoterNo {
		specs = append(specs, specification.NameOrVoterNo{Query: req.Name})
	} else {
		if req.Name != "" {
			specs = append(specs, specification.FieldContains{Column: "name", Query: req.Name})
		}
		if req.VoterNo != "" {
			specs = append(specs, specification.FieldContains{Column: "voter_no", Query: req.VoterNo})
		}
	}

	if req.Gender != "" && req.Gender != GenderAll {
		specs = append(specs, specification.ByGender{Gender: req.Gender})
	}

	contains := map[string]string{
		"father_name":      req.FatherName,
		"mother_name":      req.MotherName,
		"address":          req.Address,
		"occupation":       req.Occupation,
		"political_status": req.PoliticalStatus,
	}
	for column, query := range contains {
		if query != "" {
			specs = append(specs, specification.FieldContains{Column: column, Query: query})
		}
	}

	specs = append(specs, specification.OrderBy{Field: "records.id"})

	records, err := uow.RecordRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result, err := s.hydrate(ctx, uow, records)
	if err != nil {
		return nil, err
	}
	s.caches.search.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (s *registryService) GetRecordByID(ctx context.Context, id uint) (*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return s.hydrateOne(ctx, uow, record)
}

func (s *registryService) GetRecordByVoterNo(ctx context.Context, voterNo string) (*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.RecordRepository().FindOne(ctx, specification.ByVoterNo{VoterNo: voterNo})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return s.hydrateOne(ctx, uow, record)
}

func (s *registryService) AssignEvents(ctx context.Context, req *dto.AssignEventsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: req.RecordId})
	if err != nil {
		return err
	}
	if record == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.EventRepository().ReplaceForRecord(ctx, req.RecordId, req.EventIds); err != nil {
		s.logger.Error("registry", "event assignment failed", map[string]interface{}{
			"record_id": req.RecordId,
			"error":     err.Error(),
		})
		uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	s.caches.FlushAll()
	return nil
}

func (s *registryService) UpdateRelationshipStatus(ctx context.Context, req *dto.UpdateRelationshipStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: req.RecordId})
	if err != nil {
		return err
	}
	if record == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.RecordRepository().UpdateRelationshipStatus(ctx, req.RecordId, req.Status); err != nil {
		return err
	}
	s.caches.FlushAll()
	return nil
}

func (s *registryService) RecordsByStatus(ctx context.Context, status string) ([]*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.RecordRepository().FindAll(ctx,
		specification.ByRelationshipStatus{Status: status},
		specification.OrderBy{Field: "records.id"},
	)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, uow, records)
}

func (s *registryService) UpdateRecordAge(ctx context.Context, req *dto.UpdateRecordAgeRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: req.RecordId})
	if err != nil {
		return err
	}
	if record == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.RecordRepository().UpdateAge(ctx, req.RecordId, req.Age); err != nil {
		return err
	}
	s.caches.FlushAll()
	return nil
}

func (s *registryService) RecalculateAges(ctx context.Context) (*dto.RecalculateAgesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.RecordRepository().AllWithBirthDate(ctx)
	if err != nil {
		return nil, err
	}

	// All age updates land in one transaction so a half-recalculated
	// registry is never visible.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	updated := 0
	for _, record := range records {
		age, ok := ageFromBirthDate(record.BirthDate, now)
		if !ok {
			continue
		}
		if err := uow.RecordRepository().UpdateAge(ctx, record.Id, age); err != nil {
			s.logger.Error("registry", "age recalculation failed", map[string]interface{}{
				"record_id": record.Id,
				"error":     err.Error(),
			})
			uow.Rollback()
			return nil, err
		}
		updated++
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.caches.FlushAll()

	return &dto.RecalculateAgesResponse{
		Scanned: len(records),
		Updated: updated,
	}, nil
}

// hydrate attaches event names and maps records into responses.
func (s *registryService) hydrate(ctx context.Context, uow unitofwork.UnitOfWork, records []*entity.Record) ([]*dto.RecordResponse, error) {
	result := make([]*dto.RecordResponse, 0, len(records))
	for _, record := range records {
		res, err := s.hydrateOne(ctx, uow, record)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *registryService) hydrateOne(ctx context.Context, uow unitofwork.UnitOfWork, record *entity.Record) (*dto.RecordResponse, error) {
	events, err := uow.EventRepository().NamesForRecord(ctx, record.Id)
	if err != nil {
		return nil, err
	}
	record.Events = events
	return recordToResponse(record), nil
}

func searchCacheKey(req *dto.SearchRecordsRequest) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%s",
		req.Name, req.VoterNo, req.Gender, req.FatherName,
		req.MotherName, req.Address, req.Occupation, req.PoliticalStatus)
}

func recordFromFields(fields *dto.RecordFields) *entity.Record {
	return &entity.Record{
		SerialNo:           fields.SerialNo,
		Name:               fields.Name,
		VoterNo:            fields.VoterNo,
		FatherName:         fields.FatherName,
		MotherName:         fields.MotherName,
		Occupation:         fields.Occupation,
		OccupationDetails:  fields.OccupationDetails,
		BirthDate:          fields.BirthDate,
		Address:            fields.Address,
		PhoneNumber:        fields.PhoneNumber,
		WhatsappNumber:     fields.WhatsappNumber,
		FacebookLink:       fields.FacebookLink,
		TiktokLink:         fields.TiktokLink,
		YoutubeLink:        fields.YoutubeLink,
		InstaLink:          fields.InstaLink,
		PhotoLink:          fields.PhotoLink,
		Description:        fields.Description,
		PoliticalStatus:    fields.PoliticalStatus,
		RelationshipStatus: fields.RelationshipStatus,
		Gender:             fields.Gender,
		Age:                fields.Age,
	}
}

func recordToResponse(record *entity.Record) *dto.RecordResponse {
	return &dto.RecordResponse{
		Id:                 record.Id,
		BatchId:            record.BatchId,
		BatchName:          record.BatchName,
		FileName:           record.FileName,
		SerialNo:           record.SerialNo,
		Name:               record.Name,
		VoterNo:            record.VoterNo,
		FatherName:         record.FatherName,
		MotherName:         record.MotherName,
		Occupation:         record.Occupation,
		OccupationDetails:  record.OccupationDetails,
		BirthDate:          record.BirthDate,
		Address:            record.Address,
		PhoneNumber:        record.PhoneNumber,
		WhatsappNumber:     record.WhatsappNumber,
		FacebookLink:       record.FacebookLink,
		TiktokLink:         record.TiktokLink,
		YoutubeLink:        record.YoutubeLink,
		InstaLink:          record.InstaLink,
		PhotoLink:          record.PhotoLink,
		Description:        record.Description,
		PoliticalStatus:    record.PoliticalStatus,
		RelationshipStatus: record.RelationshipStatus,
		Gender:             record.Gender,
		Age:                record.Age,
		CreatedAt:          record.CreatedAt,
		Events:             record.Events,
	}
}
