package model

// RecordEvent is the explicit many-to-many join between records and events.
type RecordEvent struct {
	RecordId uint `gorm:"column:record_id;primaryKey"`
	EventId  uint `gorm:"column:event_id;primaryKey"`

	Record Record `gorm:"foreignKey:RecordId;constraint:OnDelete:CASCADE"`
	Event  Event  `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

func (RecordEvent) TableName() string {
	return "record_events"
}
