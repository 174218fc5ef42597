package validation_service

import (
	"regexp"

	"github.com/init-pkg/excel-users/domain/app"
)

var (
	nidPattern   = regexp.MustCompile(`^\d{16}$`)
	phonePattern = regexp.MustCompile(`^07[238]\d{7}$`)
)

// UserConstraints is the fixed rule table for uploaded user rows.
var UserConstraints = []app.Constraint{
	{
		Column: "Names",
		Label:  "Names",
		Rules: []app.Rule{
			{Kind: app.RuleRequired, Reason: "is required"},
			{Kind: app.RuleMinLength, Length: 3, Reason: "must be at least 3 characters long"},
		},
	},
	{
		Column: "NID",
		Label:  "NID",
		Rules: []app.Rule{
			{Kind: app.RuleRequired, Reason: "is required"},
			{Kind: app.RuleExactLength, Length: 16, Reason: "must be exactly 16 characters long"},
			{Kind: app.RulePattern, Pattern: nidPattern, Reason: "must contain exactly 16 digits"},
		},
	},
	{
		Column: "phone number",
		Label:  "Phone Number",
		Rules: []app.Rule{
			{Kind: app.RuleRequired, Reason: "is required"},
			{Kind: app.RuleExactLength, Length: 10, Reason: "must be exactly 10 characters long"},
			{Kind: app.RulePattern, Pattern: phonePattern, Reason: "must be in the format 07xxxxxxxx"},
		},
	},
	{
		Column: "gender",
		Label:  "Gender",
		Rules: []app.Rule{
			{Kind: app.RuleRequired, Reason: "is required"},
			{Kind: app.RuleOneOf, Values: []string{"F", "M"}, Reason: "must be either F or M"},
		},
	},
	{
		Column: "email",
		Label:  "Email",
		Rules: []app.Rule{
			{Kind: app.RuleRequired, Reason: "is required"},
			{Kind: app.RuleEmail, Reason: "must be a valid email"},
		},
	},
}

// UploadTemplate describes the expected sheet columns. Its tags mirror
// UserConstraints and are reflected into a JSON Schema for clients.
type UploadTemplate struct {
	Names       string `json:"Names" jsonschema:"required,minLength=3"`
	NID         string `json:"NID" jsonschema:"required,minLength=16,maxLength=16,pattern=^[0-9]{16}$"`
	PhoneNumber string `json:"phone number" jsonschema:"required,minLength=10,maxLength=10,pattern=^07[238][0-9]{7}$"`
	Gender      string `json:"gender" jsonschema:"required,enum=F,enum=M"`
	Email       string `json:"email" jsonschema:"required,format=email"`
}
