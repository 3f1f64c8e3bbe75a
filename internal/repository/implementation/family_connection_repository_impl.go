package implementation

import (
	"context"

	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/model"
	"voter-registry-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FamilyConnectionRepositoryImpl struct {
	db *gorm.DB
}

func NewFamilyConnectionRepository(db *gorm.DB) contract.FamilyConnectionRepository {
	return &FamilyConnectionRepositoryImpl{db: db}
}

func (r *FamilyConnectionRepositoryImpl) Create(ctx context.Context, sourceID, targetID uint, label string) error {
	m := model.FamilyConnection{
		SourceRecordId:       sourceID,
		TargetRecordId:       targetID,
		RelationshipToSource: label,
	}
	// The unique index on (source, target, label) makes re-adding the same
	// edge a no-op instead of an error.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Source", "Target").
		Create(&m).Error
}

func (r *FamilyConnectionRepositoryImpl) Delete(ctx context.Context, sourceID, targetID uint, label string) error {
	return r.db.WithContext(ctx).
		Where("source_record_id = ? AND target_record_id = ? AND relationship_to_source = ?",
			sourceID, targetID, label).
		Delete(&model.FamilyConnection{}).Error
}

// familyLinkRow is the flat scan target for the edge + target-summary join.
type familyLinkRow struct {
	Relationship string
	Id           uint
	Name         string
	VoterNo      string
	FatherName   string
	MotherName   string
	PhotoLink    string
	Gender       string
	Age          *int
}

func (r *FamilyConnectionRepositoryImpl) ListForRecord(ctx context.Context, sourceID uint) ([]*entity.FamilyLink, error) {
	var rows []familyLinkRow
	err := r.db.WithContext(ctx).
		Table("family_connections AS fc").
		Select("fc.relationship_to_source AS relationship, r.id, r.name, r.voter_no, r.father_name, r.mother_name, r.photo_link, r.gender, r.age").
		Joins("JOIN records r ON r.id = fc.target_record_id").
		Where("fc.source_record_id = ?", sourceID).
		Order("r.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	links := make([]*entity.FamilyLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, &entity.FamilyLink{
			Relationship: row.Relationship,
			Target: entity.RecordSummary{
				Id:         row.Id,
				Name:       row.Name,
				VoterNo:    row.VoterNo,
				FatherName: row.FatherName,
				MotherName: row.MotherName,
				PhotoLink:  row.PhotoLink,
				Gender:     row.Gender,
				Age:        row.Age,
			},
		})
	}
	return links, nil
}

func (r *FamilyConnectionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.FamilyConnection{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
