package handler

import "github.com/verihub/company-registry/internal/validate"

// Per-endpoint validation rule sets. Order matters only for the order of
// reported errors; every rule always runs.

// RegistrationRules guards POST /auth/register.
var RegistrationRules = validate.RuleSet{
	{Field: "firebase_uid", Message: "firebase uid is required"},
	{Field: "email", Check: "email", Message: "please include a valid email"},
	{Field: "full_name", Message: "full name is required"},
	{Field: "mobile_number", Check: "e164", Message: "a valid mobile number is required", Optional: true},
	{Field: "gender", Message: "gender is required", Optional: true},
}

// LoginRules guards POST /auth/login.
var LoginRules = validate.RuleSet{
	{Field: "id_token", Message: "id token is required"},
}

// ProfileRules guards PUT /auth/profile.
var ProfileRules = validate.RuleSet{
	{Field: "full_name", Message: "full name is required"},
	{Field: "mobile_number", Check: "e164", Message: "a valid mobile number is required", Optional: true},
}

// CompanyRules guards company profile create and update.
var CompanyRules = validate.RuleSet{
	{Field: "company_name", Message: "company name is required"},
	{Field: "address", Message: "company address is required"},
	{Field: "city", Message: "city is required"},
	{Field: "state", Message: "state is required"},
	{Field: "country", Message: "country is required"},
	{Field: "zip_code", Check: "postal_code", Message: "a valid zip code is required"},
	{Field: "logo_url", Check: "url", Message: "logo must be a valid URL", Optional: true},
	{Field: "banner_url", Check: "url", Message: "banner must be a valid URL", Optional: true},
}
