package entity

import "time"

// UserProfile is the document stored for each provisioned user. It mirrors an
// identity-provider account but carries application-level attributes only;
// credentials never live here.
type UserProfile struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfile carries the fields for a profile write. CreatedAt is absent on
// purpose: the store assigns it server-side so ordering across documents is
// trustworthy.
type NewProfile struct {
	UID       string
	Email     string
	Role      string
	Phone     *string
	CreatedBy string
}
