package auth

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes regular users from the professionals listed in the
// directory.
type UserType string

const (
	UserTypeUser    UserType = "user"
	UserTypeLawyer  UserType = "lawyer"
	UserTypeMokhtar UserType = "mokhtar"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeUser, UserTypeLawyer, UserTypeMokhtar:
		return true
	}
	return false
}

// User is an account. Lawyer and mokhtar accounts carry extra professional
// fields and start unapproved until reviewed.
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserType     UserType  `json:"userType"`
	BusinessName string    `json:"businessName,omitempty"`

	// Lawyer fields.
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	BarAssociation  string `json:"barAssociation,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Specialties     string `json:"specialties,omitempty"`
	Languages       string `json:"languages,omitempty"`
	PricePerSession string `json:"pricePerSession,omitempty"`
	Experience      string `json:"experience,omitempty"`

	// Mokhtar fields.
	MokhtarOffice string `json:"mokhtarOffice,omitempty"`

	Approved  bool      `json:"isApproved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterRequest carries everything the registration endpoint accepts.
type RegisterRequest struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	UserType        UserType `json:"userType"`
	BusinessName    string   `json:"businessName"`
	LicenseNumber   string   `json:"licenseNumber"`
	BarAssociation  string   `json:"barAssociation"`
	MokhtarOffice   string   `json:"mokhtarOffice"`
	Phone           string   `json:"phone"`
	Specialties     string   `json:"specialties"`
	Languages       string   `json:"languages"`
	PricePerSession string   `json:"pricePerSession"`
	Experience      string   `json:"experience"`
}
