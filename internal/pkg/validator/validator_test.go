package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type addressFixture struct {
	StreetNumber string `validate:"required,street_number"`
	PostalCode   string `validate:"required,ca_postal"`
	Province     string `validate:"required,province_code"`
}

func validFixture() addressFixture {
	return addressFixture{
		StreetNumber: "100",
		PostalCode:   "M5V 2T6",
		Province:     "ON",
	}
}

func TestValidate_CanadianPostalCode(t *testing.T) {
	cases := []struct {
		postal string
		valid  bool
	}{
		{"M5V 2T6", true},
		{"M5V2T6", true},
		{"k1p 5g3", true},
		{"M5V 2T", false},
		{"12345", false},
		{"M5V-2T6", false},
		{"", false},
	}

	for _, tc := range cases {
		fixture := validFixture()
		fixture.PostalCode = tc.postal
		err := Validate(fixture)
		if tc.valid {
			assert.NoError(t, err, "postal %q should be accepted", tc.postal)
		} else {
			assert.Error(t, err, "postal %q should be rejected", tc.postal)
		}
	}
}

func TestValidate_ProvinceCode(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"ON", true},
		{"BC", true},
		{"on", false},
		{"ONT", false},
		{"O", false},
	}

	for _, tc := range cases {
		fixture := validFixture()
		fixture.Province = tc.code
		err := Validate(fixture)
		if tc.valid {
			assert.NoError(t, err, "code %q should be accepted", tc.code)
		} else {
			assert.Error(t, err, "code %q should be rejected", tc.code)
		}
	}
}

func TestValidate_StreetNumber(t *testing.T) {
	cases := []struct {
		number string
		valid  bool
	}{
		{"100", true},
		{"100-A", true},
		{"12B", true},
		{"100 A", false},
		{"100-", false},
		{"-100", false},
	}

	for _, tc := range cases {
		fixture := validFixture()
		fixture.StreetNumber = tc.number
		err := Validate(fixture)
		if tc.valid {
			assert.NoError(t, err, "number %q should be accepted", tc.number)
		} else {
			assert.Error(t, err, "number %q should be rejected", tc.number)
		}
	}
}

func TestGetValidator(t *testing.T) {
	assert.NotNil(t, GetValidator())
	assert.Same(t, GetValidator(), GetValidator())
}
