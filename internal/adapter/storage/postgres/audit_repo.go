package postgres

import (
	"context"
	"fmt"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
)

// AuditSchema creates the audit trail table.
const AuditSchema = `
CREATE TABLE IF NOT EXISTS audit_logs (
	id            UUID PRIMARY KEY,
	account_id    TEXT        NOT NULL DEFAULT '',
	action        TEXT        NOT NULL,
	resource_type TEXT        NOT NULL,
	resource_id   TEXT        NOT NULL DEFAULT '',
	details       JSONB,
	ip_address    TEXT        NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS audit_logs_account ON audit_logs (account_id, created_at);
`

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	var details any
	if log.Details != "" {
		details = log.Details
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, account_id, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		log.ID, log.AccountID, string(log.Action), log.ResourceType,
		log.ResourceID, details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
