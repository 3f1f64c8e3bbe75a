package service

import (
	"context"
	"fmt"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/pkg/logger"
	"voter-registry-be/internal/pkg/serverutils"
	"voter-registry-be/internal/repository/specification"
	"voter-registry-be/internal/repository/unitofwork"
	"voter-registry-be/pkg/kinship"

	"github.com/patrickmn/go-cache"
)

const (
	// Records created through the family tree quick-add land in a dedicated
	// batch so they are distinguishable from imported voter rolls.
	familyTreeBatchName = "Family Tree Additions"
	familyTreeFileName  = "family_tree_manual"
)

type IFamilyService interface {
	AddExistingMember(ctx context.Context, req *dto.AddExistingMemberRequest) (*dto.AddMemberResponse, error)
	AddNewMember(ctx context.Context, req *dto.AddNewMemberRequest) (*dto.AddMemberResponse, error)
	RemoveConnection(ctx context.Context, req *dto.RemoveConnectionRequest) error
	Connections(ctx context.Context, recordID uint) ([]*dto.FamilyConnectionResponse, error)
	RelationshipOptions() *dto.RelationshipOptionsResponse
}

type familyService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	caches     *Caches
}

func NewFamilyService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger, caches *Caches) IFamilyService {
	return &familyService{
		uowFactory: uowFactory,
		logger:     sysLogger,
		caches:     caches,
	}
}

func (s *familyService) AddExistingMember(ctx context.Context, req *dto.AddExistingMemberRequest) (*dto.AddMemberResponse, error) {
	if req.SourceRecordId == req.TargetRecordId {
		return nil, fmt.Errorf("%w: record cannot be linked to itself", serverutils.ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	source, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: req.SourceRecordId})
	if err != nil {
		return nil, err
	}
	target, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: req.TargetRecordId})
	if err != nil {
		return nil, err
	}
	if source == nil || target == nil {
		return nil, serverutils.ErrNotFound
	}

	pair := kinship.Resolve(req.Relationship)

	// Forward and inverse edge commit together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := s.writeEdgePair(ctx, uow, req.SourceRecordId, req.TargetRecordId, pair); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.caches.FlushAll()

	return &dto.AddMemberResponse{
		SourceRecordId: req.SourceRecordId,
		TargetRecordId: req.TargetRecordId,
		Forward:        pair.Forward,
		Reverse:        pair.Reverse,
	}, nil
}

func (s *familyService) AddNewMember(ctx context.Context, req *dto.AddNewMemberRequest) (*dto.AddMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: req.SourceRecordId})
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, serverutils.ErrNotFound
	}

	pair := kinship.Resolve(req.Relationship)

	// New record plus both directed edges is one transaction: a crash can
	// never leave a member without its links or links without a member.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	batch, err := uow.BatchRepository().Ensure(ctx, familyTreeBatchName)
	if err != nil {
		uow.Rollback()
		return nil, err
	}

	member := &entity.Record{
		BatchId:     batch.Id,
		FileName:    familyTreeFileName,
		Name:        req.Name,
		FatherName:  req.FatherName,
		VoterNo:     req.VoterNo,
		Gender:      req.Gender,
		Description: "Added from family tree",
	}
	if err := uow.RecordRepository().Create(ctx, member); err != nil {
		s.logger.Error("family", "member creation failed", map[string]interface{}{
			"source_record_id": req.SourceRecordId,
			"error":            err.Error(),
		})
		uow.Rollback()
		return nil, err
	}

	if err := s.writeEdgePair(ctx, uow, req.SourceRecordId, member.Id, pair); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.caches.FlushAll()

	return &dto.AddMemberResponse{
		SourceRecordId: req.SourceRecordId,
		TargetRecordId: member.Id,
		Forward:        pair.Forward,
		Reverse:        pair.Reverse,
	}, nil
}

func (s *familyService) RemoveConnection(ctx context.Context, req *dto.RemoveConnectionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pair := kinship.Resolve(req.Relationship)

	// Both directions go in the same transaction so a symmetric pair never
	// degrades into a one-way edge.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	repo := uow.FamilyConnectionRepository()
	if err := repo.Delete(ctx, req.SourceRecordId, req.TargetRecordId, pair.Forward); err != nil {
		uow.Rollback()
		return err
	}
	if err := repo.Delete(ctx, req.TargetRecordId, req.SourceRecordId, pair.Reverse); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	s.caches.FlushAll()
	return nil
}

func (s *familyService) Connections(ctx context.Context, recordID uint) ([]*dto.FamilyConnectionResponse, error) {
	cacheKey := fmt.Sprintf("connections:%d", recordID)
	if cached, found := s.caches.connections.Get(cacheKey); found {
		return cached.([]*dto.FamilyConnectionResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: recordID})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, serverutils.ErrNotFound
	}

	links, err := uow.FamilyConnectionRepository().ListForRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FamilyConnectionResponse, 0, len(links))
	for _, link := range links {
		result = append(result, &dto.FamilyConnectionResponse{
			Relationship: link.Relationship,
			Target: dto.RecordSummaryResponse{
				Id:         link.Target.Id,
				Name:       link.Target.Name,
				VoterNo:    link.Target.VoterNo,
				FatherName: link.Target.FatherName,
				MotherName: link.Target.MotherName,
				PhotoLink:  link.Target.PhotoLink,
				Gender:     link.Target.Gender,
				Age:        link.Target.Age,
			},
		})
	}

	s.caches.connections.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (s *familyService) RelationshipOptions() *dto.RelationshipOptionsResponse {
	return &dto.RelationshipOptionsResponse{Options: kinship.Labels()}
}

func (s *familyService) writeEdgePair(ctx context.Context, uow unitofwork.UnitOfWork, sourceID, targetID uint, pair kinship.Pair) error {
	repo := uow.FamilyConnectionRepository()
	if err := repo.Create(ctx, sourceID, targetID, pair.Forward); err != nil {
		s.logger.Error("family", "forward edge insert failed", map[string]interface{}{
			"source_record_id": sourceID,
			"target_record_id": targetID,
			"error":            err.Error(),
		})
		return err
	}
	if err := repo.Create(ctx, targetID, sourceID, pair.Reverse); err != nil {
		s.logger.Error("family", "reverse edge insert failed", map[string]interface{}{
			"source_record_id": targetID,
			"target_record_id": sourceID,
			"error":            err.Error(),
		})
		return err
	}
	return nil
}
