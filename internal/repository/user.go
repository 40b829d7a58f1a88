package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

var userColumns = []string{"id", "name", "surname", "email", "birth_date", "personal_identificator", "created_at", "updated_at"}

func (s store) CreateUser(ctx context.Context, user model.User) error {
	query, args, err := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Surname, user.Email, user.BirthDate, user.PersonalIdentificator, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetUser(ctx context.Context, id string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := sqlx.GetContext(ctx, s.ext, &user, query, args...); err != nil {
		return model.User{}, translate(err)
	}
	return user, nil
}

func (s store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := sqlx.GetContext(ctx, s.ext, &user, query, args...); err != nil {
		return model.User{}, translate(err)
	}
	return user, nil
}

func (s store) UpdateUser(ctx context.Context, user model.User) error {
	query, args, err := qb.Update(usersTableName).
		Set("name", user.Name).
		Set("surname", user.Surname).
		Set("email", user.Email).
		Set("birth_date", user.BirthDate).
		Set("personal_identificator", user.PersonalIdentificator).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) ListUserRentals(ctx context.Context, userID string) ([]model.UserRental, error) {
	query, args, err := qb.Select("id", "user_id", "publication_instance_id", "duration", "status").
		From(rentalsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("start_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rentals []model.UserRental
	if err := sqlx.SelectContext(ctx, s.ext, &rentals, query, args...); err != nil {
		return nil, translate(err)
	}
	return rentals, nil
}

func (s store) ListUserReservations(ctx context.Context, userID string) ([]model.UserReservation, error) {
	query, args, err := qb.Select("id", "user_id", "publication_id").
		From(reservationsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var reservations []model.UserReservation
	if err := sqlx.SelectContext(ctx, s.ext, &reservations, query, args...); err != nil {
		return nil, translate(err)
	}
	return reservations, nil
}
