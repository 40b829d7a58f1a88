package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

var reservationColumns = []string{"id", "user_id", "publication_id", "created_at"}

func (s store) CreateReservation(ctx context.Context, reservation model.Reservation) error {
	query, args, err := qb.Insert(reservationsTableName).
		Columns(reservationColumns...).
		Values(reservation.ID, reservation.UserID, reservation.PublicationID, reservation.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var reservation model.Reservation
	if err := sqlx.GetContext(ctx, s.ext, &reservation, query, args...); err != nil {
		return model.Reservation{}, translate(err)
	}
	return reservation, nil
}

func (s store) DeleteReservation(ctx context.Context, id string) error {
	query, args, err := qb.Delete(reservationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

// HeadReservation returns the oldest pending reservation for a publication,
// the FIFO queue head.
func (s store) HeadReservation(ctx context.Context, publicationID string) (model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"publication_id": publicationID}).
		OrderBy("created_at asc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var reservation model.Reservation
	if err := sqlx.GetContext(ctx, s.ext, &reservation, query, args...); err != nil {
		return model.Reservation{}, translate(err)
	}
	return reservation, nil
}
