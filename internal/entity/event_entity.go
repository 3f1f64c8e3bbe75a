package entity

import "time"

type Event struct {
	Id        uint
	Name      string
	CreatedAt time.Time
}
