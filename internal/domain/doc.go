// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/cooperation,
// domain/contact, domain/invitation, domain/news). This root package holds
// sentinel errors, the client-facing Error type and validation helpers shared
// by all entities.
package domain
