package mapper

import (
	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/model"
)

type BatchMapper struct{}

func NewBatchMapper() *BatchMapper {
	return &BatchMapper{}
}

func (m *BatchMapper) ToEntity(b *model.Batch) *entity.Batch {
	if b == nil {
		return nil
	}
	return &entity.Batch{
		Id:        b.Id,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
}

func (m *BatchMapper) ToModel(b *entity.Batch) *model.Batch {
	if b == nil {
		return nil
	}
	return &model.Batch{
		Id:        b.Id,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
}

func (m *BatchMapper) ToEntities(batches []*model.Batch) []*entity.Batch {
	result := make([]*entity.Batch, 0, len(batches))
	for _, b := range batches {
		result = append(result, m.ToEntity(b))
	}
	return result
}
