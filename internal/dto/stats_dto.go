package dto

type LabelCountResponse struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DashboardResponse struct {
	TotalRecords       int64                `json:"total_records"`
	TotalBatches       int64                `json:"total_batches"`
	TotalEvents        int64                `json:"total_events"`
	TotalConnections   int64                `json:"total_connections"`
	Genders            []LabelCountResponse `json:"genders"`
	RelationshipStatus []LabelCountResponse `json:"relationship_status"`
	AgeDistribution    []LabelCountResponse `json:"age_distribution"`
}
