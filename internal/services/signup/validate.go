// Package services содержит бизнес-логику регистрации пользователей:
// валидацию и нормализацию данных формы, проверку уникальности email,
// хеширование пароля и сохранение записи в хранилище.
package services

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/registration-service/internal/models"
)

// Payload — сырые данные формы регистрации, как их присылает клиент.
type Payload struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,bdphone"`
	Password    string `json:"password" validate:"required"`
	Gender      string `json:"gender"`
	Agreement   bool   `json:"agreement" validate:"agreement"`
	Birthdate   string `json:"birthdate"`
	District    string `json:"district"`
	Photo       string `json:"photo"`
	BloodGroup  string `json:"bloodGroup"`
}

// Тексты нарушений правил валидации, отдаваемые клиенту как есть.
const (
	MsgRequiredFields = "First name, last name, email, and password are required"
	MsgAgreement      = "You must accept the agreement"
	MsgPhoneFormat    = "Phone number must start with 01 and be 11 digits"
	MsgInvalidPayload = "Invalid signup payload"
)

// ValidationError описывает первое нарушенное правило валидации формы.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var phoneNumberRegexp = regexp.MustCompile(`^01\d{9}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Телефон: "01" и еще девять цифр, всего одиннадцать.
	_ = v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		return phoneNumberRegexp.MatchString(fl.Field().String())
	})
	// Согласие с условиями должно быть подтверждено.
	_ = v.RegisterValidation("agreement", func(fl validator.FieldLevel) bool {
		return fl.Field().Bool()
	})
	return v
}

// ValidateAndNormalize превращает сырые данные формы в нормализованную запись
// пользователя (без ID, хэша пароля и даты создания) либо возвращает
// *ValidationError с первым нарушенным правилом. Функция чистая: одинаковый
// вход всегда дает одинаковый результат.
//
// Порядок проверок: обязательные поля, согласие, формат телефона.
func ValidateAndNormalize(p Payload) (*models.User, error) {
	norm := p
	norm.FirstName = strings.TrimSpace(p.FirstName)
	norm.LastName = strings.TrimSpace(p.LastName)
	norm.Email = strings.ToLower(strings.TrimSpace(p.Email))
	norm.PhoneNumber = strings.TrimSpace(p.PhoneNumber)

	if err := validate.Struct(norm); err != nil {
		return nil, mapValidationError(err.(validator.ValidationErrors))
	}

	return &models.User{
		FirstName:   norm.FirstName,
		LastName:    norm.LastName,
		Email:       norm.Email,
		PhoneNumber: optString(norm.PhoneNumber),
		Gender:      norm.Gender,
		Birthdate:   optString(norm.Birthdate),
		District:    optString(norm.District),
		BloodGroup:  optString(norm.BloodGroup),
		Photo:       optString(norm.Photo),
	}, nil
}

// mapValidationError выбирает первое нарушение в порядке, заданном контрактом
// формы, независимо от порядка полей в структуре.
func mapValidationError(errs validator.ValidationErrors) *ValidationError {
	var agreementViolated, phoneViolated bool
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			return &ValidationError{Message: MsgRequiredFields}
		case "agreement":
			agreementViolated = true
		case "bdphone":
			phoneViolated = true
		}
	}
	if agreementViolated {
		return &ValidationError{Message: MsgAgreement}
	}
	if phoneViolated {
		return &ValidationError{Message: MsgPhoneFormat}
	}
	return &ValidationError{Message: MsgInvalidPayload}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
