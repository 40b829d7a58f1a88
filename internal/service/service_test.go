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
	userID      = "7a1f3e61-12f4-4f88-9f1d-0d1c2b3a4444"
	otherUserID = "8b2f4e72-23a5-4a99-8e2e-1e2d3c4b5555"
	cardID      = "9b2e4c70-55aa-4f11-bb3c-8e9f0a1b2222"
	pubID       = "1f4a2b3c-7788-4d4e-9a9b-5c6d7e8f0000"
)

func newService(f *fakeStore) *service.Service {
	return service.NewService(f, nil, zap.NewNop())
}

func seedUser(t *testing.T, svc *service.Service, id, email string) model.User {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		ID:                    id,
		Name:                  "Ada",
		Surname:               "Lovelace",
		Email:                 email,
		BirthDate:             "1990-07-15",
		PersonalIdentificator: "900715/1234",
	})
	require.NoError(t, err)
	return u
}

func TestService_CreateUser(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeStore())
	ctx := context.Background()

	u := seedUser(t, svc, userID, "ada@bookdepot.io")
	require.Equal(t, userID, u.ID)
	require.Equal(t, "ada@bookdepot.io", u.Email)

	_, err := svc.CreateUser(ctx, model.CreateUserRequest{
		ID: userID, Name: "x", Surname: "y", Email: "dup@bookdepot.io",
		BirthDate: "1990-07-15", PersonalIdentificator: "z",
	})
	require.ErrorIs(t, err, errs.ErrConflict)

	// same email, different id
	_, err = svc.CreateUser(ctx, model.CreateUserRequest{
		ID: otherUserID, Name: "x", Surname: "y", Email: "ada@bookdepot.io",
		BirthDate: "1990-07-15", PersonalIdentificator: "z",
	})
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestService_GetUser_Projection(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	svc := newService(f)
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")

	u, err := svc.GetUser(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, u.Rentals)
	require.Nil(t, u.Reservations)

	f.rentals["c0f1a7f0-9f6e-4f7d-8a32-6cbd9f3c1111"] = model.Rental{
		ID: "c0f1a7f0-9f6e-4f7d-8a32-6cbd9f3c1111", UserID: userID, Duration: 3, Status: model.RentalActive,
	}
	u, err = svc.GetUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, u.Rentals, 1)
	require.Equal(t, 3, u.Rentals[0].Duration)

	_, err = svc.GetUser(ctx, otherUserID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_UpdateUser_EmailConflict(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeStore())
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")
	seedUser(t, svc, otherUserID, "grace@bookdepot.io")

	taken := "grace@bookdepot.io"
	_, err := svc.UpdateUser(ctx, userID, model.PatchUserRequest{Email: &taken})
	require.ErrorIs(t, err, errs.ErrConflict)

	// setting your own email back is not a conflict
	own := "ada@bookdepot.io"
	u, err := svc.UpdateUser(ctx, userID, model.PatchUserRequest{Email: &own})
	require.NoError(t, err)
	require.Equal(t, own, u.Email)

	name := "Augusta"
	u, err = svc.UpdateUser(ctx, userID, model.PatchUserRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Augusta", u.Name)
	require.Equal(t, "Lovelace", u.Surname)
}

func TestService_CreateCard(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeStore())
	ctx := context.Background()

	req := model.CreateCardRequest{
		ID:        cardID,
		UserID:    userID,
		Magstripe: "01234567890123456789",
		Status:    model.CardStatusActive,
	}

	// user must exist first
	_, err := svc.CreateCard(ctx, req)
	require.ErrorIs(t, err, errs.ErrBadReference)

	seedUser(t, svc, userID, "ada@bookdepot.io")
	card, err := svc.CreateCard(ctx, req)
	require.NoError(t, err)
	require.Equal(t, cardID, card.ID)

	// one card per user
	req.ID = "a0b1c2d3-e4f5-4678-9abc-def012345678"
	_, err = svc.CreateCard(ctx, req)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestService_UpdateCard_ReassignUser(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeStore())
	ctx := context.Background()

	seedUser(t, svc, userID, "ada@bookdepot.io")
	seedUser(t, svc, otherUserID, "grace@bookdepot.io")
	_, err := svc.CreateCard(ctx, model.CreateCardRequest{
		ID: cardID, UserID: userID, Magstripe: "01234567890123456789", Status: model.CardStatusActive,
	})
	require.NoError(t, err)

	// unknown target user keeps the not-found from the lookup
	missing := "00000000-0000-4000-8000-000000000000"
	_, err = svc.UpdateCard(ctx, cardID, model.PatchCardRequest{UserID: &missing})
	require.ErrorIs(t, err, errs.ErrNotFound)

	target := otherUserID
	card, err := svc.UpdateCard(ctx, cardID, model.PatchCardRequest{UserID: &target})
	require.NoError(t, err)
	require.Equal(t, otherUserID, card.UserID)

	status := model.CardStatusExpired
	card, err = svc.UpdateCard(ctx, cardID, model.PatchCardRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, model.CardStatusExpired, card.Status)
}

func TestService_DeleteCard_Idempotent(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeStore())
	ctx := context.Background()

	require.NoError(t, svc.DeleteCard(ctx, cardID))
	require.NoError(t, svc.DeleteCard(ctx, cardID))
}
