package postgres

import (
	"context"
	"fmt"

	"catalog/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const storesTable = "stores"

func (p *PgSQL) CreateStore(ctx context.Context, name string) (*domain.Store, error) {
	var result PgStore
	found, err := p.Builder.Insert(storesTable).
		Rows(PgStore{Name: name}).
		Returning(&PgStore{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store store into pg: %w", mapConstraintErr(err))
	}
	if !found {
		return nil, fmt.Errorf("insert store returned no row")
	}

	return result.ToDomain(), nil
}

// Stores returns all stores with items and tags hydrated. Relations are
// fetched in two additional queries and grouped in memory instead of a join,
// which keeps row scanning simple.
func (p *PgSQL) Stores(ctx context.Context) ([]domain.Store, error) {
	var rows []PgStore
	if err := p.Builder.From(storesTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch stores from pg: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Store{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	itemsByStore, err := p.itemsByStoreIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	tagsByStore, err := p.tagsByStoreIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Store, 0, len(rows))
	for i := range rows {
		s := rows[i].ToDomain()
		s.Items = itemsByStore[rows[i].ID]
		s.Tags = tagsByStore[rows[i].ID]
		out = append(out, *s)
	}

	return out, nil
}

func (p *PgSQL) StoreByID(ctx context.Context, id domain.StoreID) (*domain.Store, error) {
	var row PgStore
	found, err := p.Builder.From(storesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch store by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	itemsByStore, err := p.itemsByStoreIDs(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}
	tagsByStore, err := p.tagsByStoreIDs(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}

	s := row.ToDomain()
	s.Items = itemsByStore[row.ID]
	s.Tags = tagsByStore[row.ID]

	return s, nil
}

func (p *PgSQL) DeleteStore(ctx context.Context, id domain.StoreID) (*domain.Store, error) {
	var row PgStore
	found, err := p.Builder.Delete(storesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgStore{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete store in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) itemsByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID][]domain.Item, error) {
	var rows []PgItem
	if err := p.Builder.From(itemsTable).
		Where(goqu.I("store_id").In(storeIDs)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch items by store ids: %w", err)
	}

	out := make(map[uuid.UUID][]domain.Item, len(storeIDs))
	for i := range rows {
		out[rows[i].StoreID] = append(out[rows[i].StoreID], *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) tagsByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("store_id").In(storeIDs)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags by store ids: %w", err)
	}

	out := make(map[uuid.UUID][]domain.Tag, len(storeIDs))
	for i := range rows {
		out[rows[i].StoreID] = append(out[rows[i].StoreID], *rows[i].ToDomain())
	}

	return out, nil
}
