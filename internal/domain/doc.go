// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/action, domain/audit,
// domain/account). This root package holds the sentinel errors and the
// validation error type shared by all of them, plus the correlation ID carried
// in context from inbound adapters to the application layer.
package domain
