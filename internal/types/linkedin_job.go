package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LinkedInJob is one record of the LinkedIn job export feed.
// Only the fields the importer reads are declared; everything else in the feed is ignored.
type LinkedInJob struct {
	ID                  FlexibleID      `json:"id" validate:"required"`
	Title               string          `json:"title" validate:"required"`
	Organization        string          `json:"organization"`
	OrganizationURL     string          `json:"organization_url,omitempty"`
	OrganizationWebsite string          `json:"linkedin_org_url,omitempty"`
	OrganizationDesc    string          `json:"linkedin_org_description,omitempty"`
	LocationsDerived    []string        `json:"locations_derived,omitempty"`
	CitiesDerived       []string        `json:"cities_derived,omitempty"`
	CountriesDerived    []string        `json:"countries_derived,omitempty"`
	RemoteDerived       bool            `json:"remote_derived,omitempty"`
	Salary              *MonetaryAmount `json:"salary_raw,omitempty"`
	EmploymentType      []string        `json:"employment_type,omitempty"`
	URL                 string          `json:"url,omitempty"`
	ExternalApplyURL    string          `json:"external_apply_url,omitempty"`
	DescriptionText     string          `json:"description_text,omitempty"`
	Seniority           string          `json:"seniority,omitempty"`
	DatePosted          string          `json:"date_posted,omitempty"`
	DateValidThrough    string          `json:"date_validthrough,omitempty"`

	// DecodeErr is set when the record could not be decoded. The other fields
	// then hold whatever was read before the failure.
	DecodeErr error `json:"-" validate:"-"`
}

// MonetaryAmount mirrors the schema.org MonetaryAmount object LinkedIn emits for salaries.
type MonetaryAmount struct {
	Currency string             `json:"currency,omitempty"`
	Value    *QuantitativeValue `json:"value,omitempty"`
}

// QuantitativeValue holds salary bounds. Value is used when the feed only carries a single figure.
type QuantitativeValue struct {
	MinValue *float64 `json:"minValue,omitempty"`
	MaxValue *float64 `json:"maxValue,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	UnitText string   `json:"unitText,omitempty"`
}

// ApplyURL returns the external apply link when present, else the listing URL.
func (j *LinkedInJob) ApplyURL() string {
	if u := strings.TrimSpace(j.ExternalApplyURL); u != "" {
		return u
	}
	return strings.TrimSpace(j.URL)
}

var feedValidator = newFeedValidator()

func newFeedValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the record carries the fields every stored posting needs.
// Errors name the feed's JSON field, e.g. "id is required".
func (j *LinkedInJob) Validate() error {
	err := feedValidator.Struct(j)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return fmt.Errorf("%s is %s", fe.Field(), fe.Tag())
	}
	return err
}

// FlexibleID accepts both string and numeric ids; the export has shipped both.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

// String returns the id as a plain string.
func (id FlexibleID) String() string {
	return string(id)
}
