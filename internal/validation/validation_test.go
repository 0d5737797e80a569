package validation_test

import (
	"testing"

	"github.com/aanand-mishra/student-registration/internal/types"
	"github.com/aanand-mishra/student-registration/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() types.RegisterRequest {
	return types.RegisterRequest{
		FullName:        "Asha Verma",
		Email:           "asha.verma@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "9876543210",
		PinCode:         "560001",
		Course:          "B.Tech",
		Branch:          "CSE",
		Year:            "2",
		College:         "NIT Example",
		RollNumber:      "CS2024-117",
	}
}

func TestCheck_ValidRequest(t *testing.T) {
	rules := validation.New()

	assert.Empty(t, rules.Check(validRequest()))
}

func TestCheck_RequiredTrio(t *testing.T) {
	rules := validation.New()

	t.Run("MissingFullName", func(t *testing.T) {
		req := validRequest()
		req.FullName = ""

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, "fullName", faults[0].Field)
		assert.Equal(t, validation.MsgRequiredFields, faults[0].Message)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		req := validRequest()
		req.Email = ""

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, validation.MsgRequiredFields, faults[0].Message)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		req := validRequest()
		req.Password = ""
		req.ConfirmPassword = ""

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, validation.MsgRequiredFields, faults[0].Message)
	})

	t.Run("AllThreeMissingCollapsesToOneFault", func(t *testing.T) {
		req := validRequest()
		req.FullName = ""
		req.Email = ""
		req.Password = ""
		req.ConfirmPassword = ""

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, validation.MsgRequiredFields, faults[0].Message)
	})
}

func TestCheck_EmailShape(t *testing.T) {
	rules := validation.New()

	valid := []string{
		"a@b.com",
		"a@b.c",
		"first.last+tag@sub.domain.org",
	}
	for _, email := range valid {
		req := validRequest()
		req.Email = email
		assert.Empty(t, rules.Check(req), "email %q should pass", email)
	}

	invalid := []string{
		"plainaddress",
		"a@b",
		"@b.com",
		"a@.com",
		"a b@c.com",
		"a@b c.com",
	}
	for _, email := range invalid {
		req := validRequest()
		req.Email = email

		faults := rules.Check(req)
		require.Len(t, faults, 1, "email %q should fail", email)
		assert.Equal(t, "email", faults[0].Field)
		assert.Equal(t, validation.MsgInvalidEmail, faults[0].Message)
	}
}

func TestCheck_PhoneDigits(t *testing.T) {
	rules := validation.New()

	t.Run("FormattedPhoneStripsToTenDigits", func(t *testing.T) {
		req := validRequest()
		req.Phone = "987-654-3210"

		assert.Empty(t, rules.Check(req))
	})

	t.Run("TooFewDigits", func(t *testing.T) {
		req := validRequest()
		req.Phone = "12345"

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, "phone", faults[0].Field)
		assert.Equal(t, validation.MsgPhoneDigits, faults[0].Message)
	})

	t.Run("TooManyDigits", func(t *testing.T) {
		req := validRequest()
		req.Phone = "98765432101"

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, validation.MsgPhoneDigits, faults[0].Message)
	})

	t.Run("OmittedPhoneIsAllowed", func(t *testing.T) {
		req := validRequest()
		req.Phone = ""

		assert.Empty(t, rules.Check(req))
	})

	t.Run("AltPhoneCheckedWhenPresent", func(t *testing.T) {
		req := validRequest()
		req.AltPhone = "98765"

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, "altPhone", faults[0].Field)
		assert.Equal(t, validation.MsgPhoneDigits, faults[0].Message)
	})
}

func TestCheck_PinCode(t *testing.T) {
	rules := validation.New()

	t.Run("SixDigitsPasses", func(t *testing.T) {
		req := validRequest()
		req.PinCode = "110001"

		assert.Empty(t, rules.Check(req))
	})

	t.Run("WrongLengthFails", func(t *testing.T) {
		for _, pin := range []string{"123", "12345", "1234567"} {
			req := validRequest()
			req.PinCode = pin

			faults := rules.Check(req)
			require.Len(t, faults, 1, "pin %q should fail", pin)
			assert.Equal(t, "pinCode", faults[0].Field)
			assert.Equal(t, validation.MsgPinDigits, faults[0].Message)
		}
	})

	t.Run("NonDigitsFail", func(t *testing.T) {
		req := validRequest()
		req.PinCode = "12a456"

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, validation.MsgPinDigits, faults[0].Message)
	})

	t.Run("OmittedPinIsAllowed", func(t *testing.T) {
		req := validRequest()
		req.PinCode = ""

		assert.Empty(t, rules.Check(req))
	})
}

func TestCheck_PasswordRules(t *testing.T) {
	rules := validation.New()

	t.Run("ShortPassword", func(t *testing.T) {
		req := validRequest()
		req.Password = "abc"
		req.ConfirmPassword = "abc"

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, "password", faults[0].Field)
		assert.Equal(t, validation.MsgPasswordLength, faults[0].Message)
	})

	t.Run("ConfirmationMismatch", func(t *testing.T) {
		req := validRequest()
		req.ConfirmPassword = "secret2"

		faults := rules.Check(req)
		require.Len(t, faults, 1)
		assert.Equal(t, "confirmPassword", faults[0].Field)
		assert.Equal(t, validation.MsgPasswordMismatch, faults[0].Message)
	})

	t.Run("OmittedConfirmationIsAllowed", func(t *testing.T) {
		// API clients may post without the form's confirm field.
		req := validRequest()
		req.ConfirmPassword = ""

		assert.Empty(t, rules.Check(req))
	})
}

func TestCheck_ReportsEveryFault(t *testing.T) {
	rules := validation.New()

	req := validRequest()
	req.FullName = ""
	req.Phone = "12345"
	req.PinCode = "99"

	faults := rules.Check(req)
	require.Len(t, faults, 3)

	// Struct field order: the required trio first, then phone, then pin.
	assert.Equal(t, validation.MsgRequiredFields, faults[0].Message)
	assert.Equal(t, "phone", faults[1].Field)
	assert.Equal(t, "pinCode", faults[2].Field)
}
