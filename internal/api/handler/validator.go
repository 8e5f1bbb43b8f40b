package handler

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// Messages shown by the login and reset forms.
const (
	msgIDFormat = "ID format should be YYxxNNN (e.g., 25hd001, 25wk002, 25mb003)"
)

// fieldLabels maps JSON field names to the labels used in messages.
var fieldLabels = map[string]string{
	"userId":   "User ID",
	"password": "Password",
	"labType":  "Lab type",
	"email":    "Email",
}

// formMessages overrides the generic message for one rule on one form,
// keyed by "<struct>.<field>.<tag>".
var formMessages = map[string]string{
	"sampleRequest.name.min":                "Sample name must be at least 2 characters.",
	"sampleRequest.type.required":           "Please select a sample type.",
	"sampleRequest.batchNumber.required":    "Batch number is required.",
	"sampleRequest.dateCollected.required":  "Collection date is required.",
	"labResultRequest.sampleId.min":         "Sample ID must be at least 3 characters",
	"labResultRequest.testType.required":    "Test type is required",
	"labResultRequest.value.required":       "Test value is required",
	"labResultRequest.units.required":       "Units are required",
	"labResultRequest.collectedBy.required": "Collector name is required",
	"profileRequest.name.min":               "Name must be at least 2 characters.",
	"profileRequest.email.required":         "Please enter a valid email address.",
	"profileRequest.email.email":            "Please enter a valid email address.",
	"profileRequest.role.required":          "Please select a role.",
}

// ValidationError carries one message per invalid field, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// It registers the "datalabid" tag for DataLab ID fields.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("datalabid", func(fl validator.FieldLevel) bool {
		return domain.IsValidID(fl.Field().String())
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := &ValidationError{Fields: make(map[string]string, len(ve))}
			for _, fe := range ve {
				if _, seen := out.Fields[fe.Field()]; !seen {
					out.Fields[fe.Field()] = fieldError(fe)
				}
			}
			return out
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	if msg, ok := formMessages[fe.Namespace()+"."+fe.Tag()]; ok {
		return msg
	}

	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "datalabid":
		return msgIDFormat
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "email":
		return label + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, fe.Tag())
	}
}
