package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookdepot/library-service/internal/model"
)

var cardColumns = []string{"id", "user_id", "magstripe", "status", "created_at", "updated_at"}

func (s store) CreateCard(ctx context.Context, card model.Card) error {
	query, args, err := qb.Insert(cardsTableName).
		Columns(cardColumns...).
		Values(card.ID, card.UserID, card.Magstripe, card.Status, card.CreatedAt, card.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) GetCard(ctx context.Context, id string) (model.Card, error) {
	query, args, err := qb.Select(cardColumns...).
		From(cardsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Card{}, err
	}
	var card model.Card
	if err := sqlx.GetContext(ctx, s.ext, &card, query, args...); err != nil {
		return model.Card{}, translate(err)
	}
	return card, nil
}

func (s store) GetCardByUser(ctx context.Context, userID string) (model.Card, error) {
	query, args, err := qb.Select(cardColumns...).
		From(cardsTableName).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Card{}, err
	}
	var card model.Card
	if err := sqlx.GetContext(ctx, s.ext, &card, query, args...); err != nil {
		return model.Card{}, translate(err)
	}
	return card, nil
}

func (s store) UpdateCard(ctx context.Context, card model.Card) error {
	query, args, err := qb.Update(cardsTableName).
		Set("user_id", card.UserID).
		Set("magstripe", card.Magstripe).
		Set("status", card.Status).
		Set("updated_at", card.UpdatedAt).
		Where(sq.Eq{"id": card.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}

func (s store) DeleteCard(ctx context.Context, id string) error {
	query, args, err := qb.Delete(cardsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, query, args...)
	return translate(err)
}
