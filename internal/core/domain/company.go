package domain

import "time"

// CompanyProfile is a company record owned by exactly one user. Ownership is
// enforced in every query; a profile is never visible to or mutable by a
// non-owner.
type CompanyProfile struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	ZipCode     string    `json:"zip_code"`
	LogoURL     string    `json:"logo_url,omitempty"`
	BannerURL   string    `json:"banner_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
