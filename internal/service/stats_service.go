package service

import (
	"context"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/repository/unitofwork"
)

type IStatsService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	GenderStats(ctx context.Context, batchID *uint) ([]*dto.LabelCountResponse, error)
	OccupationStats(ctx context.Context, batchID *uint) ([]*dto.LabelCountResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{uowFactory: uowFactory}
}

func (s *statsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.StatsRepository()

	totals, err := repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	genders, err := repo.GenderCounts(ctx, nil)
	if err != nil {
		return nil, err
	}
	statuses, err := repo.RelationshipStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	ages, err := repo.AgeDistribution(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalRecords:       totals.Records,
		TotalBatches:       totals.Batches,
		TotalEvents:        totals.Events,
		TotalConnections:   totals.Connections,
		Genders:            toLabelCounts(genders),
		RelationshipStatus: toLabelCounts(statuses),
		AgeDistribution:    toLabelCounts(ages),
	}, nil
}

func (s *statsService) GenderStats(ctx context.Context, batchID *uint) ([]*dto.LabelCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	counts, err := uow.StatsRepository().GenderCounts(ctx, batchID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.LabelCountResponse, 0, len(counts))
	for _, count := range counts {
		result = append(result, &dto.LabelCountResponse{Label: count.Label, Count: count.Count})
	}
	return result, nil
}

func (s *statsService) OccupationStats(ctx context.Context, batchID *uint) ([]*dto.LabelCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	counts, err := uow.StatsRepository().OccupationCounts(ctx, batchID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.LabelCountResponse, 0, len(counts))
	for _, count := range counts {
		result = append(result, &dto.LabelCountResponse{Label: count.Label, Count: count.Count})
	}
	return result, nil
}

func toLabelCounts(counts []*entity.LabelCount) []dto.LabelCountResponse {
	result := make([]dto.LabelCountResponse, 0, len(counts))
	for _, count := range counts {
		result = append(result, dto.LabelCountResponse{Label: count.Label, Count: count.Count})
	}
	return result
}
