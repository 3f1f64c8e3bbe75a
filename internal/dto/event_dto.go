package dto

import "time"

type EnsureEventRequest struct {
	Name string `json:"name" validate:"required"`
}

type EnsureEventResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type EventResponse struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
