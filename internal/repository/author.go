package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

var authorColumns = []string{"id", "name", "surname", "created_at", "updated_at"}

func (s store) CreateAuthor(ctx context.Context, author model.Author) error {
	query, args, err := qb.Insert(authorsTableName).
		Columns(authorColumns...).
		Values(author.ID, author.Name, author.Surname, author.CreatedAt, author.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	query, args, err := qb.Select(authorColumns...).
		From(authorsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := sqlx.GetContext(ctx, s.ext, &author, query, args...); err != nil {
		return model.Author{}, translate(err)
	}
	return author, nil
}

func (s store) GetAuthorByName(ctx context.Context, name, surname string) (model.Author, error) {
	query, args, err := qb.Select(authorColumns...).
		From(authorsTableName).
		Where(sq.Eq{"name": name, "surname": surname}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := sqlx.GetContext(ctx, s.ext, &author, query, args...); err != nil {
		return model.Author{}, translate(err)
	}
	return author, nil
}

func (s store) UpdateAuthor(ctx context.Context, author model.Author) error {
	query, args, err := qb.Update(authorsTableName).
		Set("name", author.Name).
		Set("surname", author.Surname).
		Set("updated_at", author.UpdatedAt).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) DeleteAuthor(ctx context.Context, id string) error {
	query, args, err := qb.Delete(authorsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}
