package dto

import "time"

type EnsureBatchRequest struct {
	Name string `json:"name" validate:"required"`
}

type EnsureBatchResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type BatchResponse struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type BatchFilesResponse struct {
	BatchId   uint     `json:"batch_id"`
	FileNames []string `json:"file_names"`
}
