package postgres

import (
	"database/sql"
	"time"

	"catalog/pkg/domain"

	"github.com/google/uuid"
)

// Row types mirror the database schema. Generated columns carry the
// goqu:"skipinsert" tag so inserts rely on database defaults.

type PgUser struct {
	ID           uuid.UUID `db:"id" goqu:"skipinsert"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
		Admin:        p.IsAdmin,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

type PgStore struct {
	ID   uuid.UUID `db:"id" goqu:"skipinsert"`
	Name string    `db:"name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgStore) ToDomain() *domain.Store {
	return &domain.Store{
		ID:        domain.StoreID(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

type PgItem struct {
	ID          uuid.UUID      `db:"id" goqu:"skipinsert"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Price       float64        `db:"price"`
	StoreID     uuid.UUID      `db:"store_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgItem) ToDomain() *domain.Item {
	return &domain.Item{
		ID:          domain.ItemID(p.ID),
		Name:        p.Name,
		Description: p.Description.String,
		Price:       p.Price,
		StoreID:     domain.StoreID(p.StoreID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func pgItemsToDomain(items []PgItem) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for i := range items {
		out = append(out, *items[i].ToDomain())
	}

	return out
}

type PgTag struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	Name    string    `db:"name"`
	StoreID uuid.UUID `db:"store_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTag) ToDomain() *domain.Tag {
	return &domain.Tag{
		ID:        domain.TagID(p.ID),
		Name:      p.Name,
		StoreID:   domain.StoreID(p.StoreID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func pgTagsToDomain(tags []PgTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(tags))
	for i := range tags {
		out = append(out, *tags[i].ToDomain())
	}

	return out
}

type PgRevokedToken struct {
	JTI       uuid.UUID `db:"jti"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}
