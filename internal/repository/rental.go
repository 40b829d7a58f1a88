package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

// No end_date column here on purpose: it is derived from start_date + duration
// on every read.
var rentalColumns = []string{"id", "user_id", "publication_instance_id", "duration", "start_date", "status"}

func (s store) CreateRental(ctx context.Context, rental model.Rental) error {
	query, args, err := qb.Insert(rentalsTableName).
		Columns(rentalColumns...).
		Values(rental.ID, rental.UserID, rental.PublicationInstanceID, rental.Duration, rental.StartDate, rental.Status).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetRental(ctx context.Context, id string) (model.Rental, error) {
	query, args, err := qb.Select(rentalColumns...).
		From(rentalsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var rental model.Rental
	if err := sqlx.GetContext(ctx, s.ext, &rental, query, args...); err != nil {
		return model.Rental{}, translate(err)
	}
	return rental, nil
}

func (s store) UpdateRentalDuration(ctx context.Context, id string, duration int) error {
	query, args, err := qb.Update(rentalsTableName).
		Set("duration", duration).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}
