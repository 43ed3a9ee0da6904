// Package intake validates untyped form payloads against the contact and
// waitlist schemas. It never touches storage.
package intake

import (
	"reflect"
	"strings"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	apperrors "github.com/Orbtrix-Space/Orbtrix-website/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const validationMessage = "Validation error"

type contactSchema struct {
	Name         string `json:"name" validate:"required,notblank,max=255"`
	Organization string `json:"organization" validate:"max=255"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Message      string `json:"message" validate:"required,notblank,max=5000"`
}

type waitlistSchema struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// Validator is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		// Only fails for an empty tag or nil func.
		panic(err)
	}

	return &Validator{validate: v}
}

// Contact returns the typed contact payload or a VALIDATION_ERROR listing every failing field.
func (v *Validator) Contact(raw map[string]any) (models.ContactInput, error) {
	var form contactSchema
	if err := v.check(raw, &form); err != nil {
		return models.ContactInput{}, err
	}

	return models.ContactInput{
		Name:         form.Name,
		Organization: form.Organization,
		Email:        form.Email,
		Message:      form.Message,
	}, nil
}

// Waitlist returns the typed waitlist payload or a VALIDATION_ERROR for the email field.
func (v *Validator) Waitlist(raw map[string]any) (models.WaitlistInput, error) {
	var form waitlistSchema
	if err := v.check(raw, &form); err != nil {
		return models.WaitlistInput{}, err
	}

	return models.WaitlistInput{Email: form.Email}, nil
}

func (v *Validator) check(raw map[string]any, schema any) error {
	reasons := assignStrings(raw, schema)

	for _, fieldErr := range apperrors.FormatValidationErrors(v.validate.Struct(schema)) {
		if _, typeMismatch := reasons[fieldErr.Field]; !typeMismatch {
			reasons[fieldErr.Field] = fieldErr.Message
		}
	}

	if len(reasons) == 0 {
		return nil
	}

	return apperrors.NewValidationError(validationMessage, orderedFields(schema, reasons))
}

// assignStrings copies string values from raw into the schema's fields and
// reports fields whose value has another JSON type. null counts as absent.
func assignStrings(raw map[string]any, schema any) map[string]string {
	reasons := make(map[string]string)

	target := reflect.ValueOf(schema).Elem()
	schemaType := target.Type()

	for i := 0; i < schemaType.NumField(); i++ {
		name := jsonFieldName(schemaType.Field(i))

		value, present := raw[name]
		if !present || value == nil {
			continue
		}

		s, ok := value.(string)
		if !ok {
			reasons[name] = name + " must be a string"
			continue
		}

		target.Field(i).SetString(s)
	}

	return reasons
}

func orderedFields(schema any, reasons map[string]string) []apperrors.ValidationErrorResponse {
	schemaType := reflect.TypeOf(schema).Elem()
	fields := make([]apperrors.ValidationErrorResponse, 0, len(reasons))

	for i := 0; i < schemaType.NumField(); i++ {
		name := jsonFieldName(schemaType.Field(i))
		if reason, ok := reasons[name]; ok {
			fields = append(fields, apperrors.ValidationErrorResponse{Field: name, Message: reason})
		}
	}

	return fields
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
