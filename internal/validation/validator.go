package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Validator checks form structs declared with `validate` tags and reports
// failures under their `form` names with Spanish messages. A `label` tag
// overrides the name shown in messages.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New builds a Validator using the wall clock.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock builds a Validator whose notion of "today" comes from now.
func NewWithClock(now func() time.Time) *Validator {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// notpast: a YYYY-MM-DD date not before today.
	err := v.validate.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return d.Format(dateLayout) >= v.now().Format(dateLayout)
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register notpast: %v", err))
	}

	return v
}

// Struct validates s and returns every failure. The result is never nil.
func (v *Validator) Struct(s interface{}) Errors {
	errs := Errors{}
	err := v.validate.Struct(s)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("form", "Los datos enviados no son válidos.")
		return errs
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe, labelOf(t, fe)))
	}
	return errs
}

// Today returns the current date as YYYY-MM-DD.
func (v *Validator) Today() string {
	return v.now().Format(dateLayout)
}

func labelOf(t reflect.Type, fe validator.FieldError) string {
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
		}
	}
	return strings.ReplaceAll(fe.Field(), "_", " ")
}

func message(fe validator.FieldError, label string) string {
	numeric := fe.Kind() != reflect.String
	switch fe.Tag() {
	case "required":
		return Required(label)
	case "email":
		return fmt.Sprintf("El campo %s debe ser una dirección de correo válida.", label)
	case "max":
		if numeric {
			return fmt.Sprintf("El campo %s no debe ser mayor que %s.", label, fe.Param())
		}
		return fmt.Sprintf("El campo %s no debe superar %s caracteres.", label, fe.Param())
	case "min":
		if numeric {
			return fmt.Sprintf("El campo %s debe ser al menos %s.", label, fe.Param())
		}
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres.", label, fe.Param())
	case "numeric", "number":
		return fmt.Sprintf("El campo %s debe ser un número.", label)
	case "boolean":
		return fmt.Sprintf("El campo %s debe ser verdadero o falso.", label)
	case "datetime":
		return fmt.Sprintf("El campo %s debe ser una fecha válida (AAAA-MM-DD).", label)
	case "notpast":
		return fmt.Sprintf("El campo %s debe ser una fecha posterior o igual a hoy.", label)
	case "oneof", "uuid", "uuid4":
		return Invalid(label)
	default:
		return fmt.Sprintf("El campo %s no es válido.", label)
	}
}

// Field checks one value against tag and records failures under field.
func (v *Validator) Field(errs Errors, field, label string, value interface{}, tag string) {
	err := v.validate.Var(value, tag)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add(field, fmt.Sprintf("El campo %s no es válido.", label))
		return
	}
	for _, fe := range verrs {
		errs.Add(field, message(fe, label))
	}
}
