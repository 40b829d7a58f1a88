package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

var publicationColumns = []string{"id", "title", "created_at", "updated_at"}

func (s store) CreatePublication(ctx context.Context, pub model.Publication) error {
	query, args, err := qb.Insert(publicationsTableName).
		Columns(publicationColumns...).
		Values(pub.ID, pub.Title, pub.CreatedAt, pub.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetPublication(ctx context.Context, id string) (model.Publication, error) {
	query, args, err := qb.Select(publicationColumns...).
		From(publicationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Publication{}, err
	}
	var pub model.Publication
	if err := sqlx.GetContext(ctx, s.ext, &pub, query, args...); err != nil {
		return model.Publication{}, translate(err)
	}
	return pub, nil
}

func (s store) UpdatePublication(ctx context.Context, pub model.Publication) error {
	query, args, err := qb.Update(publicationsTableName).
		Set("title", pub.Title).
		Set("updated_at", pub.UpdatedAt).
		Where(sq.Eq{"id": pub.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

// DeletePublication cascades to instances, reservations and the link tables
// through the schema's foreign keys.
func (s store) DeletePublication(ctx context.Context, id string) error {
	query, args, err := qb.Delete(publicationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

// MatchAuthors resolves (name, surname) pairs to existing author rows. Fewer
// rows than requested pairs means some author does not exist yet.
func (s store) MatchAuthors(ctx context.Context, refs []model.AuthorRef) ([]model.Author, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	or := sq.Or{}
	for _, ref := range refs {
		or = append(or, sq.Eq{"name": ref.Name, "surname": ref.Surname})
	}
	query, args, err := qb.Select(authorColumns...).
		From(authorsTableName).
		Where(or).
		OrderBy("surname asc", "name asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var authors []model.Author
	if err := sqlx.SelectContext(ctx, s.ext, &authors, query, args...); err != nil {
		return nil, translate(err)
	}
	return authors, nil
}

func (s store) MatchCategories(ctx context.Context, names []string) ([]model.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select(categoryColumns...).
		From(categoriesTableName).
		Where(sq.Eq{"name": names}).
		OrderBy("name asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var categories []model.Category
	if err := sqlx.SelectContext(ctx, s.ext, &categories, query, args...); err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

// ReplacePublicationAuthors swaps the author set wholesale; it must run inside
// the same transaction as the publication write.
func (s store) ReplacePublicationAuthors(ctx context.Context, publicationID string, authorIDs []string) error {
	return s.replaceLinks(ctx, publicationsAuthorsTableName, "author_id", publicationID, authorIDs)
}

func (s store) ReplacePublicationCategories(ctx context.Context, publicationID string, categoryIDs []string) error {
	return s.replaceLinks(ctx, publicationsCategoriesTableName, "category_id", publicationID, categoryIDs)
}

func (s store) replaceLinks(ctx context.Context, table, column, publicationID string, ids []string) error {
	query, args, err := qb.Delete(table).
		Where(sq.Eq{"publication_id": publicationID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = s.ext.ExecContext(ctx, query, args...); err != nil {
		return translate(err)
	}
	if len(ids) == 0 {
		return nil
	}
	ins := qb.Insert(table).Columns("publication_id", column)
	for _, id := range ids {
		ins = ins.Values(publicationID, id)
	}
	query, args, err = ins.ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetPublicationAuthors(ctx context.Context, publicationID string) ([]model.AuthorRef, error) {
	query, args, err := qb.Select("a.name", "a.surname").
		From(authorsTableName+" a").
		Join(fmt.Sprintf("%s pa on a.id = pa.author_id", publicationsAuthorsTableName)).
		Where(sq.Eq{"pa.publication_id": publicationID}).
		OrderBy("a.surname asc", "a.name asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var refs []model.AuthorRef
	if err := sqlx.SelectContext(ctx, s.ext, &refs, query, args...); err != nil {
		return nil, translate(err)
	}
	return refs, nil
}

func (s store) GetPublicationCategories(ctx context.Context, publicationID string) ([]string, error) {
	query, args, err := qb.Select("c.name").
		From(categoriesTableName+" c").
		Join(fmt.Sprintf("%s pc on c.id = pc.category_id", publicationsCategoriesTableName)).
		Where(sq.Eq{"pc.publication_id": publicationID}).
		OrderBy("c.name asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var names []string
	if err := sqlx.SelectContext(ctx, s.ext, &names, query, args...); err != nil {
		return nil, translate(err)
	}
	return names, nil
}
