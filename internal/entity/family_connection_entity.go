package entity

import "time"

// FamilyConnection is a single directed edge: Relationship describes how the
// target relates to the source (e.g. "Father" = target is source's father).
type FamilyConnection struct {
	Id             uint
	SourceRecordId uint
	TargetRecordId uint
	Relationship   string
	CreatedAt      time.Time
}

// FamilyLink is one outgoing edge hydrated with a summary of the target
// record, as shown in the family tree listing.
type FamilyLink struct {
	Relationship string
	Target       RecordSummary
}

// RecordSummary carries just the fields the connection listing and search
// pickers need.
type RecordSummary struct {
	Id         uint
	Name       string
	VoterNo    string
	FatherName string
	MotherName string
	PhotoLink  string
	Gender     string
	Age        *int
}
