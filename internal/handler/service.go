package handler

import (
	"context"

	"github.com/bookdepot/library-service/internal/model"
	"github.com/bookdepot/library-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	UpdateUser(ctx context.Context, id string, req model.PatchUserRequest) (model.User, error)

	CreateCard(ctx context.Context, req model.CreateCardRequest) (model.Card, error)
	GetCard(ctx context.Context, id string) (model.Card, error)
	UpdateCard(ctx context.Context, id string, req model.PatchCardRequest) (model.Card, error)
	DeleteCard(ctx context.Context, id string) error

	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	UpdateAuthor(ctx context.Context, id string, req model.PatchAuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (model.Category, error)
	GetCategory(ctx context.Context, id string) (model.Category, error)
	UpdateCategory(ctx context.Context, id string, req model.PatchCategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreatePublication(ctx context.Context, req model.CreatePublicationRequest) (model.Publication, error)
	GetPublication(ctx context.Context, id string) (model.Publication, error)
	UpdatePublication(ctx context.Context, id string, req model.PatchPublicationRequest) (model.Publication, error)
	DeletePublication(ctx context.Context, id string) error

	CreateInstance(ctx context.Context, req model.CreateInstanceRequest) (model.Instance, error)
	GetInstance(ctx context.Context, id string) (model.Instance, error)
	UpdateInstance(ctx context.Context, id string, req model.PatchInstanceRequest) (model.Instance, error)
	DeleteInstance(ctx context.Context, id string) error

	CreateRental(ctx context.Context, req model.CreateRentalRequest) (model.Rental, error)
	GetRental(ctx context.Context, id string) (model.Rental, error)
	UpdateRental(ctx context.Context, id string, req model.PatchRentalRequest) (model.Rental, error)

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

var _ LibraryService = (*service.Service)(nil)
