package domain

import "time"

// User is the durable identity record. FirebaseUID is the federated subject
// reference and is immutable after creation; it and Email are unique across
// all records.
type User struct {
	ID               int64     `json:"id"`
	FirebaseUID      string    `json:"firebase_uid"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Gender           string    `json:"gender,omitempty"`
	MobileNumber     string    `json:"mobile_number,omitempty"`
	SignupType       string    `json:"signup_type,omitempty"`
	IsEmailVerified  bool      `json:"is_email_verified"`
	IsMobileVerified bool      `json:"is_mobile_verified"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CurrentUser is the minimal projection attached to the request context by
// the auth middleware. It deliberately excludes mutable and sensitive fields
// so handlers never act on stale or private data.
type CurrentUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
