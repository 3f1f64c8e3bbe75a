package entity

import "time"

// Record is one person entry in the registry, either an imported voter or a
// member added by hand through the family tree workflow.
type Record struct {
	Id                 uint
	BatchId            uint
	BatchName          string
	FileName           string
	SerialNo           string
	Name               string
	VoterNo            string
	FatherName         string
	MotherName         string
	Occupation         string
	OccupationDetails  string
	BirthDate          string
	Address            string
	PhoneNumber        string
	WhatsappNumber     string
	FacebookLink       string
	TiktokLink         string
	YoutubeLink        string
	InstaLink          string
	PhotoLink          string
	Description        string
	PoliticalStatus    string
	RelationshipStatus string
	Gender             string
	Age                *int
	CreatedAt          time.Time

	// Names of events the record is assigned to, hydrated on reads.
	Events []string
}
