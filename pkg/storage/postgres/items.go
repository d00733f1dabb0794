package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"catalog/pkg/domain"
	"catalog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	itemsTable    = "items"
	itemTagsTable = "item_tags"
)

func (p *PgSQL) CreateItem(ctx context.Context, params storage.CreateItemParams) (*domain.Item, error) {
	row := PgItem{
		Name:        params.Name,
		Description: sql.NullString{String: params.Description, Valid: params.Description != ""},
		Price:       params.Price,
		StoreID:     uuid.UUID(params.StoreID),
	}

	var result PgItem
	found, err := p.Builder.Insert(itemsTable).
		Rows(row).
		Returning(&PgItem{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store item into pg: %w", mapConstraintErr(err))
	}
	if !found {
		return nil, fmt.Errorf("insert item returned no row")
	}

	return result.ToDomain(), nil
}

// InsertItemWithID inserts an item with a client-supplied identifier, used by
// the idempotent PUT path. The id column is written explicitly, so the insert
// bypasses the PgItem row type and its skipinsert tag.
func (p *PgSQL) InsertItemWithID(ctx context.Context, id domain.ItemID, params storage.CreateItemParams) (*domain.Item, error) {
	var result PgItem
	found, err := p.Builder.Insert(itemsTable).
		Rows(goqu.Record{
			"id":          uuid.UUID(id),
			"name":        params.Name,
			"description": sql.NullString{String: params.Description, Valid: params.Description != ""},
			"price":       params.Price,
			"store_id":    uuid.UUID(params.StoreID),
		}).
		Returning(&PgItem{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store item with id into pg: %w", mapConstraintErr(err))
	}
	if !found {
		return nil, fmt.Errorf("insert item returned no row")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) Items(ctx context.Context) ([]domain.Item, error) {
	var rows []PgItem
	if err := p.Builder.From(itemsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch items from pg: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Item{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}
	tagsByItem, err := p.tagsByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Item, 0, len(rows))
	for i := range rows {
		item := rows[i].ToDomain()
		item.Tags = tagsByItem[rows[i].ID]
		out = append(out, *item)
	}

	return out, nil
}

func (p *PgSQL) ItemByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	var row PgItem
	found, err := p.Builder.From(itemsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch item by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	tagsByItem, err := p.tagsByItemIDs(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}

	item := row.ToDomain()
	item.Tags = tagsByItem[row.ID]

	return item, nil
}

func (p *PgSQL) UpdateItem(ctx context.Context, id domain.ItemID, updates storage.ItemUpdates) (*domain.Item, error) {
	var row PgItem
	found, err := p.Builder.Update(itemsTable).
		Set(goqu.Record{
			"name":       updates.Name,
			"price":      updates.Price,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgItem{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update item in pg: %w", mapConstraintErr(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteItem(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	var row PgItem
	found, err := p.Builder.Delete(itemsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgItem{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete item in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// pgItemTag carries a tag row joined with the item it is linked to.
type pgItemTag struct {
	PgTag
	ItemID uuid.UUID `db:"item_id"`
}

func (p *PgSQL) tagsByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	var rows []pgItemTag
	if err := p.Builder.From(goqu.T(tagsTable).As("t")).
		Select(
			goqu.I("t.id").As("id"),
			goqu.I("t.name").As("name"),
			goqu.I("t.store_id").As("store_id"),
			goqu.I("t.created_at").As("created_at"),
			goqu.I("t.updated_at").As("updated_at"),
			goqu.I("it.item_id").As("item_id"),
		).
		Join(goqu.T(itemTagsTable).As("it"), goqu.On(goqu.I("it.tag_id").Eq(goqu.I("t.id")))).
		Where(goqu.I("it.item_id").In(itemIDs)).
		Order(goqu.I("t.created_at").Asc(), goqu.I("t.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags by item ids: %w", err)
	}

	out := make(map[uuid.UUID][]domain.Tag, len(itemIDs))
	for i := range rows {
		out[rows[i].ItemID] = append(out[rows[i].ItemID], *rows[i].PgTag.ToDomain())
	}

	return out, nil
}
