package entity

import (
	"fmt"

	"foodjourney/internal/pkg/errs"
)

// Role classifies a registered entity.
type Role int

const (
	// Unknown catches uninitialized Role values.
	Unknown Role = iota
	FoodDonor
	DeliveryLocation
	Ngo
	Volunteer
	Host
	Picker
	Institution
)

// Roles lists every valid role in declaration order.
func Roles() []Role {
	return []Role{FoodDonor, DeliveryLocation, Ngo, Volunteer, Host, Picker, Institution}
}

func getRoleCodes() map[Role]string {
	return map[Role]string{
		Unknown:          "Unknown",
		FoodDonor:        "FoodDonor",
		DeliveryLocation: "DeliveryLocation",
		Ngo:              "Ngo",
		Volunteer:        "Volunteer",
		Host:             "Host",
		Picker:           "Picker",
		Institution:      "Institution",
	}
}

func getRoleLabels() map[Role]string {
	//nolint:exhaustive // Unknown has no label
	return map[Role]string{
		FoodDonor:        "Food Donor",
		DeliveryLocation: "Delivery Location",
		Ngo:              "NGO",
		Volunteer:        "Volunteer",
		Host:             "Host",
		Picker:           "Picker",
		Institution:      "Institution",
	}
}

// Validate rejects Unknown and values outside the enumeration.
func (r Role) Validate() error {
	if _, ok := getRoleLabels()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire code of the role, e.g. "FoodDonor".
func (r Role) String() string {
	if code, ok := getRoleCodes()[r]; ok {
		return code
	}
	return "Unknown"
}

// Label returns the display name of the role, e.g. "Food Donor".
func (r Role) Label() string {
	if label, ok := getRoleLabels()[r]; ok {
		return label
	}
	return "Unknown"
}

// ParseRole accepts either the wire code or the display label.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if s == r.String() || s == r.Label() {
			return r, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
}

// CarriesFood reports whether entities of this role own a food identifier.
func (r Role) CarriesFood() bool {
	return r == FoodDonor
}
