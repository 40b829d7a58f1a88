package model

import (
	"encoding/json"
)

type CardStatus string

const (
	CardStatusActive   CardStatus = "active"
	CardStatusExpired  CardStatus = "expired"
	CardStatusInactive CardStatus = "inactive"
)

type InstanceType string

const (
	InstancePhysical  InstanceType = "physical"
	InstanceEbook     InstanceType = "ebook"
	InstanceAudiobook InstanceType = "audiobook"
)

type InstanceStatus string

const (
	InstanceAvailable InstanceStatus = "available"
	InstanceReserved  InstanceStatus = "reserved"
)

type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
	RentalOverdue  RentalStatus = "overdue"
)

type User struct {
	ID                    string            `json:"id" db:"id"`
	Name                  string            `json:"name" db:"name"`
	Surname               string            `json:"surname" db:"surname"`
	Email                 string            `json:"email" db:"email"`
	BirthDate             Date              `json:"birth_date" db:"birth_date"`
	PersonalIdentificator string            `json:"personal_identificator" db:"personal_identificator"`
	CreatedAt             Timestamp         `json:"created_at" db:"created_at"`
	UpdatedAt             Timestamp         `json:"updated_at" db:"updated_at"`
	Rentals               []UserRental      `json:"rentals,omitempty" db:"-"`
	Reservations          []UserReservation `json:"reservations,omitempty" db:"-"`
}

// UserRental is the rental shape inlined into a user detail response.
type UserRental struct {
	Duration              int          `json:"duration" db:"duration"`
	ID                    string       `json:"id" db:"id"`
	PublicationInstanceID string       `json:"publication_instance_id" db:"publication_instance_id"`
	Status                RentalStatus `json:"status" db:"status"`
	UserID                string       `json:"user_id" db:"user_id"`
}

// UserReservation is the reservation shape inlined into a user detail response.
type UserReservation struct {
	ID            string `json:"id" db:"id"`
	PublicationID string `json:"publication_id" db:"publication_id"`
	UserID        string `json:"user_id" db:"user_id"`
}

type Card struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Magstripe string     `json:"magstripe" db:"magstripe"`
	Status    CardStatus `json:"status" db:"status"`
	CreatedAt Timestamp  `json:"created_at" db:"created_at"`
	UpdatedAt Timestamp  `json:"updated_at" db:"updated_at"`
}

type Author struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Surname   string    `json:"surname" db:"surname"`
	CreatedAt Timestamp `json:"created_at" db:"created_at"`
	UpdatedAt Timestamp `json:"updated_at" db:"updated_at"`
}

type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt Timestamp `json:"created_at" db:"created_at"`
	UpdatedAt Timestamp `json:"updated_at" db:"updated_at"`
}

// AuthorRef identifies an author by the (name, surname) pair, the shape
// publications carry in requests and responses.
type AuthorRef struct {
	Name    string `json:"name" db:"name" validate:"required"`
	Surname string `json:"surname" db:"surname" validate:"required"`
}

type Publication struct {
	ID         string      `json:"id" db:"id"`
	Title      string      `json:"title" db:"title"`
	Authors    []AuthorRef `json:"authors" db:"-"`
	Categories []string    `json:"categories" db:"-"`
	CreatedAt  Timestamp   `json:"created_at" db:"created_at"`
	UpdatedAt  Timestamp   `json:"updated_at" db:"updated_at"`
}

type Instance struct {
	ID            string         `json:"id" db:"id"`
	Type          InstanceType   `json:"type" db:"type"`
	Publisher     string         `json:"publisher" db:"publisher"`
	Year          int            `json:"year" db:"year"`
	Status        InstanceStatus `json:"status" db:"status"`
	PublicationID string         `json:"publication_id" db:"publication_id"`
	CreatedAt     Timestamp      `json:"created_at" db:"created_at"`
	UpdatedAt     Timestamp      `json:"updated_at" db:"updated_at"`
}

type Rental struct {
	ID                    string       `json:"id" db:"id"`
	UserID                string       `json:"user_id" db:"user_id"`
	PublicationInstanceID string       `json:"publication_instance_id" db:"publication_instance_id"`
	Duration              int          `json:"duration" db:"duration"`
	StartDate             Timestamp    `json:"start_date" db:"start_date"`
	Status                RentalStatus `json:"status" db:"status"`
}

// EndDate is derived from start_date + duration on every read. It is never
// persisted, so a patched duration moves it automatically.
func (r Rental) EndDate() Timestamp {
	return Timestamp{Time: r.StartDate.AddDate(0, 0, r.Duration)}
}

func (r Rental) MarshalJSON() ([]byte, error) {
	type alias Rental
	return json.Marshal(struct {
		alias
		EndDate Timestamp `json:"end_date"`
	}{
		alias:   alias(r),
		EndDate: r.EndDate(),
	})
}

type Reservation struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	PublicationID string    `json:"publication_id" db:"publication_id"`
	CreatedAt     Timestamp `json:"created_at" db:"created_at"`
}
