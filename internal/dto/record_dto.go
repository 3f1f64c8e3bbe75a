package dto

import "time"

// RecordFields is the explicit record shape shared by create and update
// requests. Field names mirror the persisted columns.
type RecordFields struct {
	SerialNo           string `json:"serial_no"`
	Name               string `json:"name" validate:"required"`
	VoterNo            string `json:"voter_no"`
	FatherName         string `json:"father_name"`
	MotherName         string `json:"mother_name"`
	Occupation         string `json:"occupation"`
	OccupationDetails  string `json:"occupation_details"`
	BirthDate          string `json:"birth_date"`
	Address            string `json:"address"`
	PhoneNumber        string `json:"phone_number"`
	WhatsappNumber     string `json:"whatsapp_number"`
	FacebookLink       string `json:"facebook_link"`
	TiktokLink         string `json:"tiktok_link"`
	YoutubeLink        string `json:"youtube_link"`
	InstaLink          string `json:"insta_link"`
	PhotoLink          string `json:"photo_link"`
	Description        string `json:"description"`
	PoliticalStatus    string `json:"political_status"`
	RelationshipStatus string `json:"relationship_status"`
	Gender             string `json:"gender"`
	Age                *int   `json:"age"`
}

type CreateRecordRequest struct {
	BatchName string `json:"batch_name" validate:"required"`
	FileName  string `json:"file_name"`
	RecordFields
}

type CreateRecordResponse struct {
	Id      uint `json:"id"`
	BatchId uint `json:"batch_id"`
}

type UpdateRecordRequest struct {
	Id uint `json:"-"`
	RecordFields
}

type UpdateRecordResponse struct {
	Id uint `json:"id"`
}

// SearchRecordsRequest is bound from query parameters. Supplying the same
// string for Name and VoterNo triggers the name-or-voter-number OR search;
// every other populated field narrows the result conjunctively. Gender "all"
// (or empty) means no gender filter.
type SearchRecordsRequest struct {
	Name            string `query:"name"`
	VoterNo         string `query:"voter_no"`
	Gender          string `query:"gender"`
	FatherName      string `query:"father_name"`
	MotherName      string `query:"mother_name"`
	Address         string `query:"address"`
	Occupation      string `query:"occupation"`
	PoliticalStatus string `query:"political_status"`
}

type RecordResponse struct {
	Id                 uint      `json:"id"`
	BatchId            uint      `json:"batch_id"`
	BatchName          string    `json:"batch_name"`
	FileName           string    `json:"file_name"`
	SerialNo           string    `json:"serial_no"`
	Name               string    `json:"name"`
	VoterNo            string    `json:"voter_no"`
	FatherName         string    `json:"father_name"`
	MotherName         string    `json:"mother_name"`
	Occupation         string    `json:"occupation"`
	OccupationDetails  string    `json:"occupation_details"`
	BirthDate          string    `json:"birth_date"`
	Address            string    `json:"address"`
	PhoneNumber        string    `json:"phone_number"`
	WhatsappNumber     string    `json:"whatsapp_number"`
	FacebookLink       string    `json:"facebook_link"`
	TiktokLink         string    `json:"tiktok_link"`
	YoutubeLink        string    `json:"youtube_link"`
	InstaLink          string    `json:"insta_link"`
	PhotoLink          string    `json:"photo_link"`
	Description        string    `json:"description"`
	PoliticalStatus    string    `json:"political_status"`
	RelationshipStatus string    `json:"relationship_status"`
	Gender             string    `json:"gender"`
	Age                *int      `json:"age"`
	CreatedAt          time.Time `json:"created_at"`
	Events             []string  `json:"events"`
}

type AssignEventsRequest struct {
	RecordId uint   `json:"-"`
	EventIds []uint `json:"event_ids"`
}

type UpdateRelationshipStatusRequest struct {
	RecordId uint   `json:"-"`
	Status   string `json:"relationship_status" validate:"required"`
}

type UpdateRecordAgeRequest struct {
	RecordId uint `json:"-"`
	Age      int  `json:"age" validate:"gte=0,lte=150"`
}

type RecalculateAgesResponse struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}
