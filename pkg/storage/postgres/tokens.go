package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const revokedTokensTable = "revoked_tokens"

func (p *PgSQL) RevokeToken(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error {
	if _, err := p.Builder.Insert(revokedTokensTable).
		Rows(PgRevokedToken{
			JTI:       jti,
			ExpiresAt: expiresAt,
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store revoked token into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) IsTokenRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	found, err := p.Builder.From(revokedTokensTable).
		Select(goqu.I("jti")).
		Where(goqu.I("jti").Eq(jti)).
		Executor().ScanValContext(ctx, new(uuid.UUID))
	if err != nil {
		return false, fmt.Errorf("could not check revoked token: %w", err)
	}

	return found, nil
}

func (p *PgSQL) PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := p.Builder.Delete(revokedTokensTable).
		Where(goqu.I("expires_at").Lt(now)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not purge expired tokens: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected, nil
}
