package model

import "time"

// Record column names are the persisted-state contract shared with the
// legacy registry database. Do not rename columns without a data migration.
type Record struct {
	Id                 uint      `gorm:"primaryKey;autoIncrement"`
	BatchId            uint      `gorm:"column:batch_id;not null;index"`
	FileName           string    `gorm:"column:file_name;type:varchar(255)"`
	SerialNo           string    `gorm:"column:serial_no;type:varchar(50)"`
	Name               string    `gorm:"column:name;type:text"`
	VoterNo            string    `gorm:"column:voter_no;type:varchar(100)"`
	FatherName         string    `gorm:"column:father_name;type:text"`
	MotherName         string    `gorm:"column:mother_name;type:text"`
	Occupation         string    `gorm:"column:occupation;type:text"`
	OccupationDetails  string    `gorm:"column:occupation_details;type:text"`
	BirthDate          string    `gorm:"column:birth_date;type:varchar(100)"` // free text, not a date type
	Address            string    `gorm:"column:address;type:text"`
	PhoneNumber        string    `gorm:"column:phone_number;type:varchar(50)"`
	WhatsappNumber     string    `gorm:"column:whatsapp_number;type:varchar(100)"`
	FacebookLink       string    `gorm:"column:facebook_link;type:text"`
	TiktokLink         string    `gorm:"column:tiktok_link;type:text"`
	YoutubeLink        string    `gorm:"column:youtube_link;type:text"`
	InstaLink          string    `gorm:"column:insta_link;type:text"`
	PhotoLink          string    `gorm:"column:photo_link;type:text;default:'https://placehold.co/100x100/EEE/31343C?text=No+Image'"`
	Description        string    `gorm:"column:description;type:text"`
	PoliticalStatus    string    `gorm:"column:political_status;type:text"`
	RelationshipStatus string    `gorm:"column:relationship_status;type:varchar(20);default:'Regular'"`
	Gender             string    `gorm:"column:gender;type:varchar(10)"`
	Age                *int      `gorm:"column:age"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`

	Batch Batch `gorm:"foreignKey:BatchId;constraint:OnDelete:CASCADE"`
}

func (Record) TableName() string {
	return "records"
}
