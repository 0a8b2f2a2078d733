package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
)

// MaxAuditListLimit caps how many audit records one request may ask for.
const MaxAuditListLimit = 500

// AuditListQuery holds the query parameters of the audit record listing.
// A zero Limit lets the service apply its default.
type AuditListQuery struct {
	Limit int
}

// ParseAuditListQuery reads and validates the listing's query parameters.
// Returns a *domain.ValidationError when a parameter is malformed.
func ParseAuditListQuery(values url.Values) (AuditListQuery, error) {
	var q AuditListQuery

	raw := strings.TrimSpace(values.Get("limit"))
	if raw == "" {
		return q, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return q, &domain.ValidationError{
			Fields: map[string]string{"limit": "must be an integer"},
		}
	}
	q.Limit = n

	if err := q.Validate(); err != nil {
		return AuditListQuery{}, err
	}
	return q, nil
}

// Validate checks the limit bounds.
func (q *AuditListQuery) Validate() error {
	if q.Limit < 0 || q.Limit > MaxAuditListLimit {
		return &domain.ValidationError{
			Fields: map[string]string{"limit": fmt.Sprintf("must be between 1 and %d", MaxAuditListLimit)},
		}
	}
	return nil
}
