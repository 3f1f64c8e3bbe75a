package model

import "time"

// FamilyConnection is one directed, labeled edge between two records.
// A logical relationship is stored as two rows: (A,B,label) and
// (B,A,inverse) — the rows are created and deleted together by the
// family service but carry no foreign key between them.
type FamilyConnection struct {
	Id                   uint      `gorm:"primaryKey;autoIncrement"`
	SourceRecordId       uint      `gorm:"column:source_record_id;not null;uniqueIndex:uk_family_edge"`
	TargetRecordId       uint      `gorm:"column:target_record_id;not null;uniqueIndex:uk_family_edge"`
	RelationshipToSource string    `gorm:"column:relationship_to_source;type:varchar(50);not null;uniqueIndex:uk_family_edge"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`

	Source Record `gorm:"foreignKey:SourceRecordId;constraint:OnDelete:CASCADE"`
	Target Record `gorm:"foreignKey:TargetRecordId;constraint:OnDelete:CASCADE"`
}

func (FamilyConnection) TableName() string {
	return "family_connections"
}
