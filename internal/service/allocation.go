package service

import (
	"context"
	"errors"

	"github.com/bookdepot/library-service/internal/errs"
	"github.com/bookdepot/library-service/internal/model"
	"github.com/bookdepot/library-service/internal/repository"
)

type rentalEvent struct {
	Event                 string `json:"event"`
	RentalID              string `json:"rental_id"`
	UserID                string `json:"user_id"`
	PublicationInstanceID string `json:"publication_instance_id"`
}

type reservationEvent struct {
	Event         string `json:"event"`
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
	PublicationID string `json:"publication_id"`
}

// CreateRental allocates an available instance to the requesting user. The
// whole read-decide-write sequence runs in one serializable transaction:
// availability and the reservation queue head must be observed in a single
// snapshot, and a losing concurrent writer retries the entire decision.
func (s *Service) CreateRental(ctx context.Context, req model.CreateRentalRequest) (model.Rental, error) {
	var rental model.Rental
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetRental(ctx, req.ID); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		if _, err := st.GetUser(ctx, req.UserID); err != nil {
			return err
		}
		if _, err := st.GetPublication(ctx, req.PublicationID); err != nil {
			return err
		}

		instances, err := st.ListInstances(ctx, req.PublicationID)
		if err != nil {
			return err
		}
		var chosen *model.Instance
		for i := range instances {
			if instances[i].Status == model.InstanceAvailable {
				chosen = &instances[i]
				break
			}
		}
		if chosen == nil {
			return errs.ErrUnavailable
		}

		// Only the queue head is inspected: a requester who is not the oldest
		// reservation's holder is blocked, whether or not they hold a
		// reservation themselves. The reservation is not consumed here.
		head, err := st.HeadReservation(ctx, req.PublicationID)
		switch {
		case err == nil:
			if head.UserID != req.UserID {
				return errs.ErrReservationPriority
			}
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}

		if err := st.SetInstanceStatus(ctx, chosen.ID, model.InstanceReserved); err != nil {
			return err
		}
		rental = model.Rental{
			ID:                    req.ID,
			UserID:                req.UserID,
			PublicationInstanceID: chosen.ID,
			Duration:              req.Duration,
			StartDate:             now(),
			Status:                model.RentalActive,
		}
		return st.CreateRental(ctx, rental)
	})
	if err != nil {
		return model.Rental{}, err
	}
	s.publish(rentalEvent{
		Event:                 "rental.created",
		RentalID:              rental.ID,
		UserID:                rental.UserID,
		PublicationInstanceID: rental.PublicationInstanceID,
	})
	return rental, nil
}

func (s *Service) GetRental(ctx context.Context, id string) (model.Rental, error) {
	return s.repo.GetRental(ctx, id)
}

// UpdateRental mutates duration only; end_date follows automatically since it
// is derived on read.
func (s *Service) UpdateRental(ctx context.Context, id string, req model.PatchRentalRequest) (model.Rental, error) {
	var rental model.Rental
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		var err error
		if rental, err = st.GetRental(ctx, id); err != nil {
			return err
		}
		if err := st.UpdateRentalDuration(ctx, id, req.Duration); err != nil {
			return err
		}
		rental.Duration = req.Duration
		return nil
	})
	if err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}

// CreateReservation queues the user for a fully-checked-out publication. A
// reservation while any copy is available is rejected: the caller should rent
// directly instead.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	var reservation model.Reservation
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetReservation(ctx, req.ID); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		if _, err := st.GetUser(ctx, req.UserID); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrBadReference
			}
			return err
		}
		if _, err := st.GetPublication(ctx, req.PublicationID); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrBadReference
			}
			return err
		}

		instances, err := st.ListInstances(ctx, req.PublicationID)
		if err != nil {
			return err
		}
		for _, instance := range instances {
			if instance.Status == model.InstanceAvailable {
				return errs.ErrCopyAvailable
			}
		}

		reservation = model.Reservation{
			ID:            req.ID,
			UserID:        req.UserID,
			PublicationID: req.PublicationID,
			CreatedAt:     now(),
		}
		return st.CreateReservation(ctx, reservation)
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(reservationEvent{
		Event:         "reservation.created",
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		PublicationID: reservation.PublicationID,
	})
	return reservation, nil
}

func (s *Service) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	return s.repo.GetReservation(ctx, id)
}

func (s *Service) DeleteReservation(ctx context.Context, id string) error {
	reservation, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.repo.DeleteReservation(ctx, id); err != nil {
		return err
	}
	s.publish(reservationEvent{
		Event:         "reservation.deleted",
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		PublicationID: reservation.PublicationID,
	})
	return nil
}
