package mapper

import (
	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/model"
)

type FamilyConnectionMapper struct{}

func NewFamilyConnectionMapper() *FamilyConnectionMapper {
	return &FamilyConnectionMapper{}
}

func (m *FamilyConnectionMapper) ToEntity(c *model.FamilyConnection) *entity.FamilyConnection {
	if c == nil {
		return nil
	}
	return &entity.FamilyConnection{
		Id:             c.Id,
		SourceRecordId: c.SourceRecordId,
		TargetRecordId: c.TargetRecordId,
		Relationship:   c.RelationshipToSource,
		CreatedAt:      c.CreatedAt,
	}
}
