package service_test

import (
	"context"

	"github.com/bookdepot/library-service/internal/errs"
	"github.com/bookdepot/library-service/internal/model"
	"github.com/bookdepot/library-service/internal/repository"
)

// fakeStore is a map-backed repository.Repository. InTx runs the closure
// directly: serialization conflicts are a live-database concern, the decision
// logic under test is the same either way.
type fakeStore struct {
	users         map[string]model.User
	cards         map[string]model.Card
	authors       map[string]model.Author
	categories    map[string]model.Category
	publications  map[string]model.Publication
	pubAuthors    map[string][]string
	pubCategories map[string][]string
	instances     map[string]model.Instance
	instanceOrder []string
	rentals       map[string]model.Rental
	reservations  map[string]model.Reservation
	resOrder      []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[string]model.User),
		cards:         make(map[string]model.Card),
		authors:       make(map[string]model.Author),
		categories:    make(map[string]model.Category),
		publications:  make(map[string]model.Publication),
		pubAuthors:    make(map[string][]string),
		pubCategories: make(map[string][]string),
		instances:     make(map[string]model.Instance),
		rentals:       make(map[string]model.Rental),
		reservations:  make(map[string]model.Reservation),
	}
}

var _ repository.Repository = (*fakeStore)(nil)

func (f *fakeStore) InTx(_ context.Context, fn func(repository.Store) error) error {
	return fn(f)
}

func (f *fakeStore) CreateUser(_ context.Context, user model.User) error {
	if _, ok := f.users[user.ID]; ok {
		return errs.ErrConflict
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

func (f *fakeStore) UpdateUser(_ context.Context, user model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return errs.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) ListUserRentals(_ context.Context, userID string) ([]model.UserRental, error) {
	var out []model.UserRental
	for _, r := range f.rentals {
		if r.UserID == userID {
			out = append(out, model.UserRental{
				Duration:              r.Duration,
				ID:                    r.ID,
				PublicationInstanceID: r.PublicationInstanceID,
				Status:                r.Status,
				UserID:                r.UserID,
			})
		}
	}
	return out, nil
}

func (f *fakeStore) ListUserReservations(_ context.Context, userID string) ([]model.UserReservation, error) {
	var out []model.UserReservation
	for _, id := range f.resOrder {
		r, ok := f.reservations[id]
		if ok && r.UserID == userID {
			out = append(out, model.UserReservation{ID: r.ID, PublicationID: r.PublicationID, UserID: r.UserID})
		}
	}
	return out, nil
}

func (f *fakeStore) CreateCard(_ context.Context, card model.Card) error {
	if _, ok := f.cards[card.ID]; ok {
		return errs.ErrConflict
	}
	f.cards[card.ID] = card
	return nil
}

func (f *fakeStore) GetCard(_ context.Context, id string) (model.Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return model.Card{}, errs.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) GetCardByUser(_ context.Context, userID string) (model.Card, error) {
	for _, c := range f.cards {
		if c.UserID == userID {
			return c, nil
		}
	}
	return model.Card{}, errs.ErrNotFound
}

func (f *fakeStore) UpdateCard(_ context.Context, card model.Card) error {
	if _, ok := f.cards[card.ID]; !ok {
		return errs.ErrNotFound
	}
	f.cards[card.ID] = card
	return nil
}

func (f *fakeStore) DeleteCard(_ context.Context, id string) error {
	delete(f.cards, id)
	return nil
}

func (f *fakeStore) CreateAuthor(_ context.Context, author model.Author) error {
	if _, ok := f.authors[author.ID]; ok {
		return errs.ErrConflict
	}
	f.authors[author.ID] = author
	return nil
}

func (f *fakeStore) GetAuthor(_ context.Context, id string) (model.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return model.Author{}, errs.ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) GetAuthorByName(_ context.Context, name, surname string) (model.Author, error) {
	for _, a := range f.authors {
		if a.Name == name && a.Surname == surname {
			return a, nil
		}
	}
	return model.Author{}, errs.ErrNotFound
}

func (f *fakeStore) UpdateAuthor(_ context.Context, author model.Author) error {
	if _, ok := f.authors[author.ID]; !ok {
		return errs.ErrNotFound
	}
	f.authors[author.ID] = author
	return nil
}

// DeleteAuthor drops link rows too, matching the schema's on delete cascade.
func (f *fakeStore) DeleteAuthor(_ context.Context, id string) error {
	delete(f.authors, id)
	for pubID, ids := range f.pubAuthors {
		f.pubAuthors[pubID] = without(ids, id)
	}
	return nil
}

func (f *fakeStore) CreateCategory(_ context.Context, category model.Category) error {
	if _, ok := f.categories[category.ID]; ok {
		return errs.ErrConflict
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeStore) GetCategory(_ context.Context, id string) (model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return model.Category{}, errs.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) GetCategoryByName(_ context.Context, name string) (model.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return model.Category{}, errs.ErrNotFound
}

func (f *fakeStore) UpdateCategory(_ context.Context, category model.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return errs.ErrNotFound
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeStore) DeleteCategory(_ context.Context, id string) error {
	delete(f.categories, id)
	for pubID, ids := range f.pubCategories {
		f.pubCategories[pubID] = without(ids, id)
	}
	return nil
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (f *fakeStore) CreatePublication(_ context.Context, pub model.Publication) error {
	if _, ok := f.publications[pub.ID]; ok {
		return errs.ErrConflict
	}
	f.publications[pub.ID] = pub
	return nil
}

func (f *fakeStore) GetPublication(_ context.Context, id string) (model.Publication, error) {
	p, ok := f.publications[id]
	if !ok {
		return model.Publication{}, errs.ErrNotFound
	}
	return p, nil
}

func (f *fakeStore) UpdatePublication(_ context.Context, pub model.Publication) error {
	if _, ok := f.publications[pub.ID]; !ok {
		return errs.ErrNotFound
	}
	f.publications[pub.ID] = pub
	return nil
}

func (f *fakeStore) DeletePublication(_ context.Context, id string) error {
	delete(f.publications, id)
	delete(f.pubAuthors, id)
	delete(f.pubCategories, id)
	return nil
}

func (f *fakeStore) MatchAuthors(_ context.Context, refs []model.AuthorRef) ([]model.Author, error) {
	var out []model.Author
	for _, ref := range refs {
		for _, a := range f.authors {
			if a.Name == ref.Name && a.Surname == ref.Surname {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) MatchCategories(_ context.Context, names []string) ([]model.Category, error) {
	var out []model.Category
	for _, name := range names {
		for _, c := range f.categories {
			if c.Name == name {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) ReplacePublicationAuthors(_ context.Context, publicationID string, authorIDs []string) error {
	f.pubAuthors[publicationID] = authorIDs
	return nil
}

func (f *fakeStore) ReplacePublicationCategories(_ context.Context, publicationID string, categoryIDs []string) error {
	f.pubCategories[publicationID] = categoryIDs
	return nil
}

func (f *fakeStore) GetPublicationAuthors(_ context.Context, publicationID string) ([]model.AuthorRef, error) {
	var out []model.AuthorRef
	for _, id := range f.pubAuthors[publicationID] {
		if a, ok := f.authors[id]; ok {
			out = append(out, model.AuthorRef{Name: a.Name, Surname: a.Surname})
		}
	}
	return out, nil
}

func (f *fakeStore) GetPublicationCategories(_ context.Context, publicationID string) ([]string, error) {
	var out []string
	for _, id := range f.pubCategories[publicationID] {
		if c, ok := f.categories[id]; ok {
			out = append(out, c.Name)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateInstance(_ context.Context, instance model.Instance) error {
	if _, ok := f.instances[instance.ID]; ok {
		return errs.ErrConflict
	}
	f.instances[instance.ID] = instance
	f.instanceOrder = append(f.instanceOrder, instance.ID)
	return nil
}

func (f *fakeStore) GetInstance(_ context.Context, id string) (model.Instance, error) {
	i, ok := f.instances[id]
	if !ok {
		return model.Instance{}, errs.ErrNotFound
	}
	return i, nil
}

func (f *fakeStore) UpdateInstance(_ context.Context, instance model.Instance) error {
	if _, ok := f.instances[instance.ID]; !ok {
		return errs.ErrNotFound
	}
	f.instances[instance.ID] = instance
	return nil
}

func (f *fakeStore) DeleteInstance(_ context.Context, id string) error {
	delete(f.instances, id)
	return nil
}

func (f *fakeStore) ListInstances(_ context.Context, publicationID string) ([]model.Instance, error) {
	var out []model.Instance
	for _, id := range f.instanceOrder {
		i, ok := f.instances[id]
		if ok && i.PublicationID == publicationID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeStore) SetInstanceStatus(_ context.Context, id string, status model.InstanceStatus) error {
	i, ok := f.instances[id]
	if !ok {
		return errs.ErrNotFound
	}
	i.Status = status
	f.instances[id] = i
	return nil
}

func (f *fakeStore) CreateRental(_ context.Context, rental model.Rental) error {
	if _, ok := f.rentals[rental.ID]; ok {
		return errs.ErrConflict
	}
	f.rentals[rental.ID] = rental
	return nil
}

func (f *fakeStore) GetRental(_ context.Context, id string) (model.Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return model.Rental{}, errs.ErrNotFound
	}
	return r, nil
}

func (f *fakeStore) UpdateRentalDuration(_ context.Context, id string, duration int) error {
	r, ok := f.rentals[id]
	if !ok {
		return errs.ErrNotFound
	}
	r.Duration = duration
	f.rentals[id] = r
	return nil
}

func (f *fakeStore) CreateReservation(_ context.Context, reservation model.Reservation) error {
	if _, ok := f.reservations[reservation.ID]; ok {
		return errs.ErrConflict
	}
	f.reservations[reservation.ID] = reservation
	f.resOrder = append(f.resOrder, reservation.ID)
	return nil
}

func (f *fakeStore) GetReservation(_ context.Context, id string) (model.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return model.Reservation{}, errs.ErrNotFound
	}
	return r, nil
}

func (f *fakeStore) DeleteReservation(_ context.Context, id string) error {
	delete(f.reservations, id)
	return nil
}

func (f *fakeStore) HeadReservation(_ context.Context, publicationID string) (model.Reservation, error) {
	for _, id := range f.resOrder {
		r, ok := f.reservations[id]
		if ok && r.PublicationID == publicationID {
			return r, nil
		}
	}
	return model.Reservation{}, errs.ErrNotFound
}

// recordingEnqueuer captures published events in order.
type recordingEnqueuer struct {
	topics []string
	events []any
}

func (r *recordingEnqueuer) Enqueue(topic string, v any) error {
	r.topics = append(r.topics, topic)
	r.events = append(r.events, v)
	return nil
}
