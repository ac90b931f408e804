package validator

import (
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate      *val.Validate
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// registerMimetypeValidation checks a content type string against a space separated allow list.
func registerMimetypeValidation(field val.FieldLevel) bool {
	contentType, ok := field.Field().Interface().(string)
	if !ok || contentType == "" {
		return false
	}

	contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

// registerFileSizeValidation checks a byte count against a limit given in megabytes.
func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	switch field.Field().Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		fileSize = field.Field().Int()
	default:
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		value, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, value)

		return err == nil
	}
}

func registerMobileValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)

	return ok && mobilePattern.MatchString(value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	customs := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"hhmm":        registerLayoutValidation(constant.TimeOnlyFormat),
		"isodate":     registerLayoutValidation(constant.DateOnlyFormat),
		"mobile":      registerMobileValidation,
	}

	for tag, fn := range customs {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
