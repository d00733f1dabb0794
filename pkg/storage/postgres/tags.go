package postgres

import (
	"context"
	"fmt"

	"catalog/pkg/domain"
	"catalog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const tagsTable = "tags"

func (p *PgSQL) CreateTag(ctx context.Context, storeID domain.StoreID, name string) (*domain.Tag, error) {
	row := PgTag{
		Name:    name,
		StoreID: uuid.UUID(storeID),
	}

	var result PgTag
	found, err := p.Builder.Insert(tagsTable).
		Rows(row).
		Returning(&PgTag{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store tag into pg: %w", mapConstraintErr(err))
	}
	if !found {
		return nil, fmt.Errorf("insert tag returned no row")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) TagsByStore(ctx context.Context, storeID domain.StoreID) ([]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("store_id").Eq(uuid.UUID(storeID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags by store: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func (p *PgSQL) TagByID(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	var row PgTag
	found, err := p.Builder.From(tagsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tag by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	var items []PgItem
	if err := p.Builder.From(goqu.T(itemsTable).As("i")).
		Select(
			goqu.I("i.id").As("id"),
			goqu.I("i.name").As("name"),
			goqu.I("i.description").As("description"),
			goqu.I("i.price").As("price"),
			goqu.I("i.store_id").As("store_id"),
			goqu.I("i.created_at").As("created_at"),
			goqu.I("i.updated_at").As("updated_at"),
		).
		Join(goqu.T(itemTagsTable).As("it"), goqu.On(goqu.I("it.item_id").Eq(goqu.I("i.id")))).
		Where(goqu.I("it.tag_id").Eq(row.ID)).
		Order(goqu.I("i.created_at").Asc(), goqu.I("i.id").Asc()).
		Executor().ScanStructsContext(ctx, &items); err != nil {
		return nil, fmt.Errorf("could not fetch items by tag: %w", err)
	}

	tag := row.ToDomain()
	tag.Items = pgItemsToDomain(items)

	return tag, nil
}

// DeleteTag removes a tag only when no items are linked to it. The guard and
// the delete run as two statements; callers that need atomicity should wrap
// the call in WithTx.
func (p *PgSQL) DeleteTag(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	linked, err := p.Builder.From(itemTagsTable).
		Select(goqu.I("item_id")).
		Where(goqu.I("tag_id").Eq(uuid.UUID(id))).
		Limit(1).
		Executor().ScanValContext(ctx, new(uuid.UUID))
	if err != nil {
		return nil, fmt.Errorf("could not check tag links: %w", err)
	}
	if linked {
		return nil, fmt.Errorf("tag still linked to items: %w", storage.ErrForeignKeyViolation)
	}

	var row PgTag
	found, err := p.Builder.Delete(tagsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgTag{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete tag in pg: %w", mapConstraintErr(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) error {
	if _, err := p.Builder.Insert(itemTagsTable).
		Rows(goqu.Record{
			"item_id": uuid.UUID(itemID),
			"tag_id":  uuid.UUID(tagID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not link tag to item: %w", mapConstraintErr(err))
	}

	return nil
}

func (p *PgSQL) UnlinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) (bool, error) {
	res, err := p.Builder.Delete(itemTagsTable).
		Where(
			goqu.I("item_id").Eq(uuid.UUID(itemID)),
			goqu.I("tag_id").Eq(uuid.UUID(tagID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not unlink tag from item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
