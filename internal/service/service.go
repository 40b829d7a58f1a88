package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookdepot/library-service/internal/errs"
	"github.com/bookdepot/library-service/internal/model"
	"github.com/bookdepot/library-service/internal/repository"
	"github.com/bookdepot/library-service/pkg/kafka"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events kafka.Enqueuer
}

// NewService wires the store and an optional event enqueuer. A nil enqueuer
// disables event emission.
func NewService(repo repository.Repository, events kafka.Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

func (s *Service) publish(event any) {
	if s.events == nil {
		return
	}
	if err := s.events.Enqueue(kafka.EventsTopic, event); err != nil {
		s.log.Warn("enqueue event", zap.Error(err))
	}
}

func now() model.Timestamp {
	return model.NewTimestamp(time.Now())
}

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	birth, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return model.User{}, err
	}
	ts := now()
	user := model.User{
		ID:                    req.ID,
		Name:                  req.Name,
		Surname:               req.Surname,
		Email:                 req.Email,
		BirthDate:             model.Date{Time: birth},
		PersonalIdentificator: req.PersonalIdentificator,
		CreatedAt:             ts,
		UpdatedAt:             ts,
	}
	err = s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetUser(ctx, user.ID); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		if _, err := st.GetUserByEmail(ctx, user.Email); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return st.CreateUser(ctx, user)
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// GetUser assembles the detail view: the user row plus inlined rentals and
// reservations, fetched concurrently. Empty lists stay nil so they are omitted
// from the response entirely.
func (s *Service) GetUser(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		rentals, err := s.repo.ListUserRentals(ctx, id)
		if err != nil {
			return err
		}
		user.Rentals = rentals
		return nil
	})
	gg.Go(func() error {
		reservations, err := s.repo.ListUserReservations(ctx, id)
		if err != nil {
			return err
		}
		user.Reservations = reservations
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req model.PatchUserRequest) (model.User, error) {
	var user model.User
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		var err error
		if user, err = st.GetUser(ctx, id); err != nil {
			return err
		}
		if req.Email != nil {
			if other, err := st.GetUserByEmail(ctx, *req.Email); err == nil && other.ID != id {
				return errs.ErrConflict
			} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
				return err
			}
			user.Email = *req.Email
		}
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Surname != nil {
			user.Surname = *req.Surname
		}
		if req.BirthDate != nil {
			birth, err := time.Parse(time.DateOnly, *req.BirthDate)
			if err != nil {
				return err
			}
			user.BirthDate = model.Date{Time: birth}
		}
		if req.PersonalIdentificator != nil {
			user.PersonalIdentificator = *req.PersonalIdentificator
		}
		user.UpdatedAt = now()
		return st.UpdateUser(ctx, user)
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Service) CreateCard(ctx context.Context, req model.CreateCardRequest) (model.Card, error) {
	ts := now()
	card := model.Card{
		ID:        req.ID,
		UserID:    req.UserID,
		Magstripe: req.Magstripe,
		Status:    req.Status,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetUser(ctx, card.UserID); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrBadReference
			}
			return err
		}
		// one card per user
		if _, err := st.GetCardByUser(ctx, card.UserID); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return st.CreateCard(ctx, card)
	})
	if err != nil {
		return model.Card{}, err
	}
	return card, nil
}

func (s *Service) GetCard(ctx context.Context, id string) (model.Card, error) {
	return s.repo.GetCard(ctx, id)
}

func (s *Service) UpdateCard(ctx context.Context, id string, req model.PatchCardRequest) (model.Card, error) {
	var card model.Card
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		var err error
		if card, err = st.GetCard(ctx, id); err != nil {
			return err
		}
		if req.UserID != nil {
			if _, err := st.GetUser(ctx, *req.UserID); err != nil {
				return err
			}
			if other, err := st.GetCardByUser(ctx, *req.UserID); err == nil && other.ID != id {
				return errs.ErrConflict
			} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
				return err
			}
			card.UserID = *req.UserID
		}
		if req.Magstripe != nil {
			card.Magstripe = *req.Magstripe
		}
		if req.Status != nil {
			card.Status = *req.Status
		}
		card.UpdatedAt = now()
		return st.UpdateCard(ctx, card)
	})
	if err != nil {
		return model.Card{}, err
	}
	return card, nil
}

func (s *Service) DeleteCard(ctx context.Context, id string) error {
	return s.repo.DeleteCard(ctx, id)
}
