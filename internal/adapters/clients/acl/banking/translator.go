package banking

import (
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
)

// ToDomainConnection converts an aggregator ConnectionDTO to a domain
// BankConnection. An unparseable timestamp becomes the zero time.
func ToDomainConnection(dto *ConnectionDTO) account.BankConnection {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)

	return account.BankConnection{
		ID:          dto.ID,
		UserID:      dto.UserID,
		Institution: dto.InstitutionName,
		Status:      dto.Status,
		CreatedAt:   createdAt,
	}
}

// ToDomainConnectionList converts a list response to domain connections,
// preserving the aggregator's order.
func ToDomainConnectionList(dto ConnectionListResponseDTO) []account.BankConnection {
	conns := make([]account.BankConnection, len(dto.Connections))
	for i := range dto.Connections {
		conns[i] = ToDomainConnection(&dto.Connections[i])
	}
	return conns
}
