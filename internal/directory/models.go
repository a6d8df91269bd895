package directory

import (
	"time"

	"lawmate/internal/auth"
)

// Listing is the public projection of a professional account. It never
// carries credentials or approval internals.
type Listing struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	BusinessName    string    `json:"businessName,omitempty"`
	UserType        string    `json:"userType"`
	Phone           string    `json:"phone,omitempty"`
	Specialties     string    `json:"specialties,omitempty"`
	Languages       string    `json:"languages,omitempty"`
	PricePerSession string    `json:"pricePerSession,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	MokhtarOffice   string    `json:"mokhtarOffice,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func listingFromUser(user *auth.User) Listing {
	return Listing{
		ID:              user.ID.String(),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		BusinessName:    user.BusinessName,
		UserType:        string(user.UserType),
		Phone:           user.Phone,
		Specialties:     user.Specialties,
		Languages:       user.Languages,
		PricePerSession: user.PricePerSession,
		Experience:      user.Experience,
		MokhtarOffice:   user.MokhtarOffice,
		CreatedAt:       user.CreatedAt,
	}
}
