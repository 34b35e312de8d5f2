package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Factory", "is required")
	ve.AddFieldError("Size", "is invalid")
	ve.AddFieldErrorf("Concurrency", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "Factory: is required")
	s.Assert().Contains(ve.Error(), "Size: is invalid")
	s.Assert().Contains(ve.Error(), "Concurrency: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("profile", "is required").
		Fieldf("pool-size", "must be between %d and %d", 1, 16).
		RequiredField("Consumer").
		InvalidField("items.Ocarina", "unknown item")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "speedrunner", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  speedrunner  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("profile", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("pool-size", 40, 1, 16, vb)
	errors.ValidateRange("concurrency", 4, 1, 13, vb)
	errors.ValidateRange("keys", -1, 0, 6, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["pool-size"][0], "must be between 1 and 16")
	s.Assert().Contains(validationErrors["keys"][0], "must be between 0 and 6")
	s.Assert().NotContains(validationErrors, "concurrency")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	formats := []string{"text", "json"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log-format", "xml", formats, vb)
	errors.ValidateEnum("output", "json", formats, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["log-format"][0], "must be one of: text, json")
	s.Assert().NotContains(validationErrors, "output")
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Size", "is invalid")
	ve.AddFieldError("Factory", "is required")
	ve.AddFieldError("Concurrency", "is invalid")

	s.Assert().Equal("validation failed: Concurrency: is invalid; Factory: is required; Size: is invalid", ve.Error())
	s.Assert().Equal("validation failed", errors.NewValidationError().Error())
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("Size", -2, vb)
	errors.ValidateNonNegative("Concurrency", 0, vb)
	errors.ValidateNonNegative("items.Lamp", 1, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"must be >= 0, got -2"}, validationErrors["Size"])
	s.Assert().Len(validationErrors, 1)
}
