package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

var categoryColumns = []string{"id", "name", "created_at", "updated_at"}

func (s store) CreateCategory(ctx context.Context, category model.Category) error {
	query, args, err := qb.Insert(categoriesTableName).
		Columns(categoryColumns...).
		Values(category.ID, category.Name, category.CreatedAt, category.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetCategory(ctx context.Context, id string) (model.Category, error) {
	query, args, err := qb.Select(categoryColumns...).
		From(categoriesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var category model.Category
	if err := sqlx.GetContext(ctx, s.ext, &category, query, args...); err != nil {
		return model.Category{}, translate(err)
	}
	return category, nil
}

func (s store) GetCategoryByName(ctx context.Context, name string) (model.Category, error) {
	query, args, err := qb.Select(categoryColumns...).
		From(categoriesTableName).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var category model.Category
	if err := sqlx.GetContext(ctx, s.ext, &category, query, args...); err != nil {
		return model.Category{}, translate(err)
	}
	return category, nil
}

func (s store) UpdateCategory(ctx context.Context, category model.Category) error {
	query, args, err := qb.Update(categoriesTableName).
		Set("name", category.Name).
		Set("updated_at", category.UpdatedAt).
		Where(sq.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) DeleteCategory(ctx context.Context, id string) error {
	query, args, err := qb.Delete(categoriesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}
