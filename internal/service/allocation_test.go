package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookdepot/library-service/internal/errs"
	"github.com/bookdepot/library-service/internal/model"
	"github.com/bookdepot/library-service/internal/service"
)

const (
	rentalID      = "c0f1a7f0-9f6e-4f7d-8a32-6cbd9f3c1111"
	instanceID    = "2e5b3c4d-8899-4e5f-ab0c-6d7e8f901111"
	instanceID2   = "3f6c4d5e-99aa-4f60-bc1d-7e8f90a12222"
	reservationID = "4a7d5e6f-aabb-4071-cd2e-8f90a1b23333"
)

// seedCatalog stands up one publication with n instances, all available.
func seedCatalog(t *testing.T, f *fakeStore, n int) {
	t.Helper()
	f.publications[pubID] = model.Publication{ID: pubID, Title: "Solaris"}
	ids := []string{instanceID, instanceID2}
	for i := 0; i < n; i++ {
		inst := model.Instance{
			ID:            ids[i],
			Type:          model.InstancePhysical,
			Publisher:     "Faber",
			Year:          1961,
			Status:        model.InstanceAvailable,
			PublicationID: pubID,
		}
		f.instances[inst.ID] = inst
		f.instanceOrder = append(f.instanceOrder, inst.ID)
	}
}

func rentalReq() model.CreateRentalRequest {
	return model.CreateRentalRequest{
		ID:            rentalID,
		UserID:        userID,
		PublicationID: pubID,
		Duration:      7,
	}
}

func TestService_CreateRental(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	events := &recordingEnqueuer{}
	svc := service.NewService(f, events, zap.NewNop())
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")
	seedCatalog(t, f, 2)

	rental, err := svc.CreateRental(ctx, rentalReq())
	require.NoError(t, err)
	require.Equal(t, instanceID, rental.PublicationInstanceID)
	require.Equal(t, model.RentalActive, rental.Status)
	require.Equal(t, 7, rental.Duration)
	require.Equal(t, rental.StartDate.AddDate(0, 0, 7), rental.EndDate().Time)

	// the allocated copy is no longer available
	require.Equal(t, model.InstanceReserved, f.instances[instanceID].Status)
	require.Equal(t, model.InstanceAvailable, f.instances[instanceID2].Status)

	require.Len(t, events.events, 1)
	require.Equal(t, "library.events", events.topics[0])

	// duplicate rental id
	_, err = svc.CreateRental(ctx, rentalReq())
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestService_CreateRental_Errors(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name    string
		seed    func(t *testing.T, f *fakeStore, svc *service.Service)
		req     func() model.CreateRentalRequest
		wantErr error
	}{
		{
			name: "unknown user",
			seed: func(t *testing.T, f *fakeStore, svc *service.Service) {
				seedCatalog(t, f, 1)
			},
			req:     rentalReq,
			wantErr: errs.ErrNotFound,
		},
		{
			name: "unknown publication",
			seed: func(t *testing.T, f *fakeStore, svc *service.Service) {
				seedUser(t, svc, userID, "ada@bookdepot.io")
			},
			req:     rentalReq,
			wantErr: errs.ErrNotFound,
		},
		{
			name: "no available copy",
			seed: func(t *testing.T, f *fakeStore, svc *service.Service) {
				seedUser(t, svc, userID, "ada@bookdepot.io")
				seedCatalog(t, f, 1)
				inst := f.instances[instanceID]
				inst.Status = model.InstanceReserved
				f.instances[instanceID] = inst
			},
			req:     rentalReq,
			wantErr: errs.ErrUnavailable,
		},
		{
			name: "oldest reservation held by someone else",
			seed: func(t *testing.T, f *fakeStore, svc *service.Service) {
				seedUser(t, svc, userID, "ada@bookdepot.io")
				seedUser(t, svc, otherUserID, "grace@bookdepot.io")
				seedCatalog(t, f, 1)
				res := model.Reservation{ID: reservationID, UserID: otherUserID, PublicationID: pubID}
				f.reservations[res.ID] = res
				f.resOrder = append(f.resOrder, res.ID)
			},
			req:     rentalReq,
			wantErr: errs.ErrReservationPriority,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFakeStore()
			svc := service.NewService(f, nil, zap.NewNop())
			tt.seed(t, f, svc)

			_, err := svc.CreateRental(context.Background(), tt.req())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateRental_SingleInstanceMutualExclusion(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	svc := service.NewService(f, nil, zap.NewNop())
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")
	seedUser(t, svc, otherUserID, "grace@bookdepot.io")
	seedCatalog(t, f, 1)

	first, err := svc.CreateRental(ctx, rentalReq())
	require.NoError(t, err)
	require.Equal(t, instanceID, first.PublicationInstanceID)

	// the second request observes the committed claim on the only copy
	second := rentalReq()
	second.ID = "5b8e6f70-bbcc-4182-9e3f-90a1b2c34444"
	second.UserID = otherUserID
	_, err = svc.CreateRental(ctx, second)
	require.ErrorIs(t, err, errs.ErrUnavailable)
}

func TestService_CreateRental_QueueHeadHolderMayRent(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	svc := service.NewService(f, nil, zap.NewNop())
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")
	seedUser(t, svc, otherUserID, "grace@bookdepot.io")
	seedCatalog(t, f, 1)

	// head belongs to the requester, a younger reservation by someone else
	// does not block them
	head := model.Reservation{ID: reservationID, UserID: userID, PublicationID: pubID}
	younger := model.Reservation{ID: "5b8e6f70-bbcc-4182-de3f-90a1b2c34444", UserID: otherUserID, PublicationID: pubID}
	f.reservations[head.ID] = head
	f.reservations[younger.ID] = younger
	f.resOrder = append(f.resOrder, head.ID, younger.ID)

	rental, err := svc.CreateRental(ctx, rentalReq())
	require.NoError(t, err)
	require.Equal(t, instanceID, rental.PublicationInstanceID)

	// the reservation itself is not consumed by renting
	_, err = svc.GetReservation(ctx, reservationID)
	require.NoError(t, err)
}

func TestService_UpdateRental(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	svc := service.NewService(f, nil, zap.NewNop())
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")
	seedCatalog(t, f, 1)
	created, err := svc.CreateRental(ctx, rentalReq())
	require.NoError(t, err)

	patched, err := svc.UpdateRental(ctx, rentalID, model.PatchRentalRequest{Duration: 14})
	require.NoError(t, err)
	require.Equal(t, 14, patched.Duration)
	require.Equal(t, created.StartDate.AddDate(0, 0, 14), patched.EndDate().Time)

	_, err = svc.UpdateRental(ctx, "00000000-0000-4000-8000-000000000000", model.PatchRentalRequest{Duration: 5})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_CreateReservation(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	events := &recordingEnqueuer{}
	svc := service.NewService(f, events, zap.NewNop())
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")
	seedCatalog(t, f, 1)

	req := model.CreateReservationRequest{ID: reservationID, UserID: userID, PublicationID: pubID}

	// a copy is on the shelf: rent it, do not queue
	_, err := svc.CreateReservation(ctx, req)
	require.ErrorIs(t, err, errs.ErrCopyAvailable)

	inst := f.instances[instanceID]
	inst.Status = model.InstanceReserved
	f.instances[instanceID] = inst

	res, err := svc.CreateReservation(ctx, req)
	require.NoError(t, err)
	require.Equal(t, reservationID, res.ID)
	require.Len(t, events.events, 1)

	_, err = svc.CreateReservation(ctx, req)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestService_CreateReservation_BadReference(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	svc := service.NewService(f, nil, zap.NewNop())
	ctx := context.Background()

	req := model.CreateReservationRequest{ID: reservationID, UserID: userID, PublicationID: pubID}
	_, err := svc.CreateReservation(ctx, req)
	require.ErrorIs(t, err, errs.ErrBadReference)

	seedUser(t, svc, userID, "ada@bookdepot.io")
	_, err = svc.CreateReservation(ctx, req)
	require.ErrorIs(t, err, errs.ErrBadReference)
}

func TestService_DeleteReservation_Idempotent(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	events := &recordingEnqueuer{}
	svc := service.NewService(f, events, zap.NewNop())
	ctx := context.Background()

	res := model.Reservation{ID: reservationID, UserID: userID, PublicationID: pubID}
	f.reservations[res.ID] = res
	f.resOrder = append(f.resOrder, res.ID)

	require.NoError(t, svc.DeleteReservation(ctx, reservationID))
	require.Len(t, events.events, 1)

	// deleting again is a no-op and publishes nothing
	require.NoError(t, svc.DeleteReservation(ctx, reservationID))
	require.Len(t, events.events, 1)
}
