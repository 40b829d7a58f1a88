package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

var instanceColumns = []string{"id", "type", "publisher", "year", "status", "publication_id", "created_at", "updated_at"}

func (s store) CreateInstance(ctx context.Context, instance model.Instance) error {
	query, args, err := qb.Insert(instancesTableName).
		Columns(instanceColumns...).
		Values(instance.ID, instance.Type, instance.Publisher, instance.Year, instance.Status, instance.PublicationID, instance.CreatedAt, instance.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetInstance(ctx context.Context, id string) (model.Instance, error) {
	query, args, err := qb.Select(instanceColumns...).
		From(instancesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Instance{}, err
	}
	var instance model.Instance
	if err := sqlx.GetContext(ctx, s.ext, &instance, query, args...); err != nil {
		return model.Instance{}, translate(err)
	}
	return instance, nil
}

func (s store) UpdateInstance(ctx context.Context, instance model.Instance) error {
	query, args, err := qb.Update(instancesTableName).
		Set("type", instance.Type).
		Set("publisher", instance.Publisher).
		Set("year", instance.Year).
		Set("status", instance.Status).
		Set("publication_id", instance.PublicationID).
		Set("updated_at", instance.UpdatedAt).
		Where(sq.Eq{"id": instance.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) DeleteInstance(ctx context.Context, id string) error {
	query, args, err := qb.Delete(instancesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

// ListInstances returns a publication's instances in stable creation order,
// which is also the allocation tie-break order.
func (s store) ListInstances(ctx context.Context, publicationID string) ([]model.Instance, error) {
	query, args, err := qb.Select(instanceColumns...).
		From(instancesTableName).
		Where(sq.Eq{"publication_id": publicationID}).
		OrderBy("created_at asc", "id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var instances []model.Instance
	if err := sqlx.SelectContext(ctx, s.ext, &instances, query, args...); err != nil {
		return nil, translate(err)
	}
	return instances, nil
}

func (s store) SetInstanceStatus(ctx context.Context, id string, status model.InstanceStatus) error {
	query, args, err := qb.Update(instancesTableName).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}
