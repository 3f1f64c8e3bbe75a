package entity

import "time"

type Batch struct {
	Id        uint
	Name      string
	CreatedAt time.Time
}
