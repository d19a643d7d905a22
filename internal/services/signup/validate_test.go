package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() Payload {
	return Payload{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "JOHN@Example.com ",
		Password:  "secret",
		Agreement: true,
	}
}

func TestValidateAndNormalize(t *testing.T) {
	tests := []struct {
		name    string
		payload func() Payload
		wantMsg string
	}{
		{
			name:    "valid minimal payload",
			payload: validPayload,
		},
		{
			name: "missing first name",
			payload: func() Payload {
				p := validPayload()
				p.FirstName = ""
				return p
			},
			wantMsg: MsgRequiredFields,
		},
		{
			name: "whitespace-only last name",
			payload: func() Payload {
				p := validPayload()
				p.LastName = "   "
				return p
			},
			wantMsg: MsgRequiredFields,
		},
		{
			name: "missing email",
			payload: func() Payload {
				p := validPayload()
				p.Email = ""
				return p
			},
			wantMsg: MsgRequiredFields,
		},
		{
			name: "missing password",
			payload: func() Payload {
				p := validPayload()
				p.Password = ""
				return p
			},
			wantMsg: MsgRequiredFields,
		},
		{
			name: "agreement not accepted",
			payload: func() Payload {
				p := validPayload()
				p.Agreement = false
				return p
			},
			wantMsg: MsgAgreement,
		},
		{
			name: "required fields win over agreement",
			payload: func() Payload {
				p := validPayload()
				p.FirstName = ""
				p.Agreement = false
				return p
			},
			wantMsg: MsgRequiredFields,
		},
		{
			name: "agreement wins over phone format",
			payload: func() Payload {
				p := validPayload()
				p.Agreement = false
				p.PhoneNumber = "12345"
				return p
			},
			wantMsg: MsgAgreement,
		},
		{
			name: "phone too short",
			payload: func() Payload {
				p := validPayload()
				p.PhoneNumber = "12345"
				return p
			},
			wantMsg: MsgPhoneFormat,
		},
		{
			name: "phone wrong prefix",
			payload: func() Payload {
				p := validPayload()
				p.PhoneNumber = "02500000000"
				return p
			},
			wantMsg: MsgPhoneFormat,
		},
		{
			name: "phone with letters",
			payload: func() Payload {
				p := validPayload()
				p.PhoneNumber = "01abcdefghi"
				return p
			},
			wantMsg: MsgPhoneFormat,
		},
		{
			name: "valid phone",
			payload: func() Payload {
				p := validPayload()
				p.PhoneNumber = "01500000000"
				return p
			},
		},
		{
			name: "absent phone is allowed",
			payload: func() Payload {
				p := validPayload()
				p.PhoneNumber = ""
				return p
			},
		},
		{
			name: "optional fields can all be empty",
			payload: func() Payload {
				p := validPayload()
				p.Gender = ""
				p.Birthdate = ""
				p.District = ""
				p.BloodGroup = ""
				p.Photo = ""
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := ValidateAndNormalize(tt.payload())
			if tt.wantMsg != "" {
				require.Error(t, err)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantMsg, validationErr.Message)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
		})
	}
}

func TestValidateAndNormalize_AgreementRuleHandlesBoolField(t *testing.T) {
	// Правило согласия работает с булевым полем напрямую и не должно
	// приводить к панике валидатора ни при каком значении.
	assert.NotPanics(t, func() {
		user, err := ValidateAndNormalize(validPayload())
		require.NoError(t, err)
		require.NotNil(t, user)
	})

	assert.NotPanics(t, func() {
		p := validPayload()
		p.Agreement = false
		_, err := ValidateAndNormalize(p)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, MsgAgreement, validationErr.Message)
	})
}

func TestValidateAndNormalize_Normalization(t *testing.T) {
	p := Payload{
		FirstName:   "  John ",
		LastName:    " Doe ",
		Email:       " JOHN@Example.com ",
		PhoneNumber: " 01500000000 ",
		Password:    "secret",
		Gender:      "Male",
		Agreement:   true,
		Birthdate:   "1990-01-01",
		District:    "Dhaka",
		BloodGroup:  "O+",
		Photo:       "data:image/png;base64,AAAA",
	}

	user, err := ValidateAndNormalize(p)
	require.NoError(t, err)

	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "john@example.com", user.Email)
	require.NotNil(t, user.PhoneNumber)
	assert.Equal(t, "01500000000", *user.PhoneNumber)
	assert.Equal(t, "Male", user.Gender)
	require.NotNil(t, user.Birthdate)
	assert.Equal(t, "1990-01-01", *user.Birthdate)
	require.NotNil(t, user.District)
	assert.Equal(t, "Dhaka", *user.District)
	require.NotNil(t, user.BloodGroup)
	assert.Equal(t, "O+", *user.BloodGroup)
	require.NotNil(t, user.Photo)

	// Запись не содержит производных полей до этапа сохранения.
	assert.Empty(t, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.True(t, user.CreatedAt.IsZero())
}

func TestValidateAndNormalize_Idempotent(t *testing.T) {
	p := validPayload()
	p.PhoneNumber = "01500000000"

	first, err := ValidateAndNormalize(p)
	require.NoError(t, err)
	second, err := ValidateAndNormalize(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidateAndNormalize_EmptyOptionalIsNil(t *testing.T) {
	user, err := ValidateAndNormalize(validPayload())
	require.NoError(t, err)

	assert.Nil(t, user.PhoneNumber)
	assert.Nil(t, user.Birthdate)
	assert.Nil(t, user.District)
	assert.Nil(t, user.BloodGroup)
	assert.Nil(t, user.Photo)
}
