package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookdepot/library-service/internal/errs"
	"github.com/bookdepot/library-service/internal/model"
)

// Store is the transactional keyed-record surface the service works against.
// The same method set is served by the pool directly and by an open
// transaction inside InTx.
type Store interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) error
	ListUserRentals(ctx context.Context, userID string) ([]model.UserRental, error)
	ListUserReservations(ctx context.Context, userID string) ([]model.UserReservation, error)

	CreateCard(ctx context.Context, card model.Card) error
	GetCard(ctx context.Context, id string) (model.Card, error)
	GetCardByUser(ctx context.Context, userID string) (model.Card, error)
	UpdateCard(ctx context.Context, card model.Card) error
	DeleteCard(ctx context.Context, id string) error

	CreateAuthor(ctx context.Context, author model.Author) error
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	GetAuthorByName(ctx context.Context, name, surname string) (model.Author, error)
	UpdateAuthor(ctx context.Context, author model.Author) error
	DeleteAuthor(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, category model.Category) error
	GetCategory(ctx context.Context, id string) (model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (model.Category, error)
	UpdateCategory(ctx context.Context, category model.Category) error
	DeleteCategory(ctx context.Context, id string) error

	CreatePublication(ctx context.Context, pub model.Publication) error
	GetPublication(ctx context.Context, id string) (model.Publication, error)
	UpdatePublication(ctx context.Context, pub model.Publication) error
	DeletePublication(ctx context.Context, id string) error
	MatchAuthors(ctx context.Context, refs []model.AuthorRef) ([]model.Author, error)
	MatchCategories(ctx context.Context, names []string) ([]model.Category, error)
	ReplacePublicationAuthors(ctx context.Context, publicationID string, authorIDs []string) error
	ReplacePublicationCategories(ctx context.Context, publicationID string, categoryIDs []string) error
	GetPublicationAuthors(ctx context.Context, publicationID string) ([]model.AuthorRef, error)
	GetPublicationCategories(ctx context.Context, publicationID string) ([]string, error)

	CreateInstance(ctx context.Context, instance model.Instance) error
	GetInstance(ctx context.Context, id string) (model.Instance, error)
	UpdateInstance(ctx context.Context, instance model.Instance) error
	DeleteInstance(ctx context.Context, id string) error
	ListInstances(ctx context.Context, publicationID string) ([]model.Instance, error)
	SetInstanceStatus(ctx context.Context, id string, status model.InstanceStatus) error

	CreateRental(ctx context.Context, rental model.Rental) error
	GetRental(ctx context.Context, id string) (model.Rental, error)
	UpdateRentalDuration(ctx context.Context, id string, duration int) error

	CreateReservation(ctx context.Context, reservation model.Reservation) error
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
	HeadReservation(ctx context.Context, publicationID string) (model.Reservation, error)
}

type Repository interface {
	Store
	// InTx runs fn inside a serializable transaction and retries the whole
	// read-decide-write sequence when a concurrent writer wins.
	InTx(ctx context.Context, fn func(Store) error) error
}

const (
	usersTableName                  = `users`
	cardsTableName                  = `cards`
	authorsTableName                = `authors`
	categoriesTableName             = `categories`
	publicationsTableName           = `publications`
	publicationsAuthorsTableName    = `publications_authors`
	publicationsCategoriesTableName = `publications_categories`
	instancesTableName              = `instances`
	rentalsTableName                = `rentals`
	reservationsTableName           = `reservations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type store struct {
	ext sqlx.ExtContext
	log *zap.Logger
}

type repository struct {
	store
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	log = log.Named("repo")
	return &repository{
		store: store{ext: db, log: log},
		db:    db,
	}, nil
}

const txMaxAttempts = 3

func (r *repository) InTx(ctx context.Context, fn func(Store) error) error {
	return retrySerializable(r.log, func() error {
		return r.runTx(ctx, fn)
	})
}

// retrySerializable reruns run while it keeps losing serializable commits,
// up to txMaxAttempts. Any other outcome returns immediately.
func retrySerializable(log *zap.Logger, run func() error) error {
	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = run()
		if err == nil || !isSerializationFailure(err) {
			return err
		}
		log.Debug("serialization failure, retrying tx", zap.Int("attempt", attempt))
	}
	return pkgerrors.Wrap(errs.ErrTxMaxRetries, err.Error())
}

func (r *repository) runTx(ctx context.Context, fn func(Store) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return pkgerrors.Wrap(err, "begin tx")
	}
	if err := fn(store{ext: tx, log: r.log}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.SerializationFailure
}

// translate maps driver errors onto the domain sentinels. Serialization
// failures pass through untouched so InTx can retry on them.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errs.ErrConflict
		case pgerrcode.ForeignKeyViolation:
			return errs.ErrBadReference
		}
	}
	return err
}
