// Package banking implements the Anti-Corruption Layer translators for the
// banking aggregator's connection resources.
package banking

// ConnectionDTO matches the aggregator's connection schema.
type ConnectionDTO struct {
	ID              string `json:"id"`
	UserID          int64  `json:"user_id"`
	InstitutionName string `json:"institution_name"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// ConnectionListResponseDTO matches the aggregator's list response.
type ConnectionListResponseDTO struct {
	Connections []ConnectionDTO `json:"connections"`
}
