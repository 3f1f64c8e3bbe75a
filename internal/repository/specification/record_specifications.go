package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// Record queries always join the owning batch, so every record column is
// qualified to keep Postgres from flagging ambiguous names.

// NameOrVoterNo matches records whose name OR voter number contains the
// query. This backs the "search by name or ID" box in the UI, where one
// string is checked against both columns.
type NameOrVoterNo struct {
	Query string
}

func (s NameOrVoterNo) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	// ILIKE for Postgres (case insensitive)
	return db.Where("records.name ILIKE ? OR records.voter_no ILIKE ?", pattern, pattern)
}

// FieldContains applies a case-insensitive substring match on a single
// record column. Column must come from the search whitelist, never from
// user input.
type FieldContains struct {
	Column string
	Query  string
}

func (s FieldContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("records.%s ILIKE ?", s.Column), "%"+s.Query+"%")
}

// ByGender filters by exact gender value.
type ByGender struct {
	Gender string
}

func (s ByGender) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("records.gender = ?", s.Gender)
}

// ByVoterNo filters by exact voter number.
type ByVoterNo struct {
	VoterNo string
}

func (s ByVoterNo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("records.voter_no = ?", s.VoterNo)
}

// ByBatchID filters records by owning batch.
type ByBatchID struct {
	BatchID uint
}

func (s ByBatchID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("records.batch_id = ?", s.BatchID)
}

// ByFileName filters records by source file within a batch.
type ByFileName struct {
	FileName string
}

func (s ByFileName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("records.file_name = ?", s.FileName)
}

// ByRelationshipStatus filters records by their relationship status tag.
type ByRelationshipStatus struct {
	Status string
}

func (s ByRelationshipStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("records.relationship_status = ?", s.Status)
}

// ByRecordID filters by records.id explicitly (the unqualified ByID is
// ambiguous once the batch join is present).
type ByRecordID struct {
	ID uint
}

func (s ByRecordID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("records.id = ?", s.ID)
}
