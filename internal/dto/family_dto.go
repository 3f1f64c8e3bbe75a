package dto

// AddExistingMemberRequest links two records already in the registry.
// Relationship describes how the target relates to the source voter.
type AddExistingMemberRequest struct {
	SourceRecordId uint   `json:"-"`
	TargetRecordId uint   `json:"target_record_id" validate:"required"`
	Relationship   string `json:"relationship" validate:"required"`
}

// AddNewMemberRequest creates a brand new record and links it to the source
// voter in one step. Only the name is mandatory, matching the quick-add form.
type AddNewMemberRequest struct {
	SourceRecordId uint   `json:"-"`
	Name           string `json:"name" validate:"required"`
	FatherName     string `json:"father_name"`
	VoterNo        string `json:"voter_no"`
	Gender         string `json:"gender"`
	Relationship   string `json:"relationship" validate:"required"`
}

type AddMemberResponse struct {
	SourceRecordId uint   `json:"source_record_id"`
	TargetRecordId uint   `json:"target_record_id"`
	Forward        string `json:"forward"`
	Reverse        string `json:"reverse"`
}

type RemoveConnectionRequest struct {
	SourceRecordId uint   `json:"-"`
	TargetRecordId uint   `json:"target_record_id" validate:"required"`
	Relationship   string `json:"relationship" validate:"required"`
}

type RecordSummaryResponse struct {
	Id         uint   `json:"id"`
	Name       string `json:"name"`
	VoterNo    string `json:"voter_no"`
	FatherName string `json:"father_name"`
	MotherName string `json:"mother_name"`
	PhotoLink  string `json:"photo_link"`
	Gender     string `json:"gender"`
	Age        *int   `json:"age"`
}

type FamilyConnectionResponse struct {
	Relationship string                `json:"relationship"`
	Target       RecordSummaryResponse `json:"target"`
}

type RelationshipOptionsResponse struct {
	Options []string `json:"options"`
}
