package model

// Identifiers are client-supplied and must be UUID strings, both in paths and
// bodies. The email and uuid rules are the custom ones from pkg/validate.

type CreateUserRequest struct {
	ID                    string `json:"id" validate:"required,uuid"`
	Name                  string `json:"name" validate:"required"`
	Surname               string `json:"surname" validate:"required"`
	Email                 string `json:"email" validate:"required,email"`
	BirthDate             string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	PersonalIdentificator string `json:"personal_identificator" validate:"required"`
}

type PatchUserRequest struct {
	Name                  *string `json:"name" validate:"omitempty,min=1"`
	Surname               *string `json:"surname" validate:"omitempty,min=1"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	BirthDate             *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	PersonalIdentificator *string `json:"personal_identificator" validate:"omitempty,min=1"`
}

type CreateCardRequest struct {
	ID        string     `json:"id" validate:"required,uuid"`
	UserID    string     `json:"user_id" validate:"required,uuid"`
	Magstripe string     `json:"magstripe" validate:"required,len=20"`
	Status    CardStatus `json:"status" validate:"required,oneof=active expired inactive"`
}

type PatchCardRequest struct {
	UserID    *string     `json:"user_id" validate:"omitempty,uuid"`
	Magstripe *string     `json:"magstripe" validate:"omitempty,len=20"`
	Status    *CardStatus `json:"status" validate:"omitempty,oneof=active expired inactive"`
}

type CreateAuthorRequest struct {
	ID      string `json:"id" validate:"required,uuid"`
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

type PatchAuthorRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Surname *string `json:"surname" validate:"omitempty,min=1"`
}

type CreateCategoryRequest struct {
	ID   string `json:"id" validate:"required,uuid"`
	Name string `json:"name" validate:"required"`
}

type PatchCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreatePublicationRequest struct {
	ID         string      `json:"id" validate:"required,uuid"`
	Title      string      `json:"title" validate:"required"`
	Authors    []AuthorRef `json:"authors" validate:"omitempty,dive"`
	Categories []string    `json:"categories" validate:"omitempty,dive,min=1"`
}

// PatchPublicationRequest replaces the author/category sets wholesale: the
// publication ends up with exactly the sets supplied here, empty included.
type PatchPublicationRequest struct {
	Title      string      `json:"title" validate:"required"`
	Authors    []AuthorRef `json:"authors" validate:"omitempty,dive"`
	Categories []string    `json:"categories" validate:"omitempty,dive,min=1"`
}

type CreateInstanceRequest struct {
	ID            string         `json:"id" validate:"required,uuid"`
	Type          InstanceType   `json:"type" validate:"required,oneof=physical ebook audiobook"`
	Publisher     string         `json:"publisher" validate:"required"`
	Year          int            `json:"year" validate:"required"`
	Status        InstanceStatus `json:"status" validate:"omitempty,oneof=available reserved"`
	PublicationID string         `json:"publication_id" validate:"required,uuid"`
}

type PatchInstanceRequest struct {
	Type          *InstanceType   `json:"type" validate:"omitempty,oneof=physical ebook audiobook"`
	Publisher     *string         `json:"publisher" validate:"omitempty,min=1"`
	Year          *int            `json:"year" validate:"omitempty"`
	Status        *InstanceStatus `json:"status" validate:"omitempty,oneof=available reserved"`
	PublicationID *string         `json:"publication_id" validate:"omitempty,uuid"`
}

type CreateRentalRequest struct {
	ID            string `json:"id" validate:"required,uuid"`
	UserID        string `json:"user_id" validate:"required,uuid"`
	PublicationID string `json:"publication_id" validate:"required,uuid"`
	Duration      int    `json:"duration" validate:"required,gte=1,lte=14"`
}

type PatchRentalRequest struct {
	Duration int `json:"duration" validate:"required,gte=1,lte=14"`
}

type CreateReservationRequest struct {
	ID            string `json:"id" validate:"required,uuid"`
	UserID        string `json:"user_id" validate:"required,uuid"`
	PublicationID string `json:"publication_id" validate:"required,uuid"`
}
