package handlers

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"cvhub/internal/dto"
	"cvhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

var errMissingFile = errors.New("missing file")

// statuses maps service error kinds to HTTP status codes, checked in order.
var statuses = []struct {
	kind   error
	status int
}{
	{services.ErrValidation, fiber.StatusUnprocessableEntity},
	{services.ErrNotFound, fiber.StatusNotFound},
	{services.ErrAccessDenied, fiber.StatusNotFound},
	{services.ErrForbidden, fiber.StatusForbidden},
	{services.ErrConflict, fiber.StatusBadRequest},
	{services.ErrInvalidInput, fiber.StatusBadRequest},
	{services.ErrUnsupportedDirection, fiber.StatusBadRequest},
	{services.ErrUnauthenticated, fiber.StatusUnauthorized},
	{services.ErrInactiveUser, fiber.StatusBadRequest},
	{services.ErrUpstreamUnavailable, fiber.StatusServiceUnavailable},
	{services.ErrUpstreamBadResponse, fiber.StatusBadGateway},
	{services.ErrUpstreamFailure, fiber.StatusBadGateway},
	{services.ErrStorageMisconfigured, fiber.StatusInternalServerError},
}

// base carries what every handler needs to decode requests and report errors.
type base struct {
	validate *validator.Validate
	debug    bool
}

func newBase(debug bool) base {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(dto.ValidationValue, dto.OptionalTypes...)
	return base{validate: v, debug: debug}
}

type bodyError struct {
	err error
}

func (e *bodyError) Error() string { return e.err.Error() }

// bind parses the body into out and validates it.
func (b base) bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &bodyError{err: err}
	}
	return b.validate.Struct(out)
}

// fail writes the error reply for err.
func (b base) fail(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	var be *bodyError
	if errors.As(err, &be) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   be.Error(),
		})
	}

	if errors.Is(err, errMissingFile) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fiber.Map{"file": "Field 'file' failed on the 'required' tag"},
		})
	}

	status := fiber.StatusInternalServerError
	message := "Internal server error"
	var se *services.Error
	if errors.As(err, &se) {
		message = se.Message
		for _, s := range statuses {
			if errors.Is(err, s.kind) {
				status = s.status
				break
			}
		}
	}

	body := fiber.Map{"message": message}
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Int("status", status).Msg("request failed")
		if b.debug {
			body["error"] = err.Error()
		}
	}
	return c.Status(status).JSON(body)
}

// readFile loads the multipart field "file".
func readFile(c *fiber.Ctx) (services.File, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return services.File{}, errMissingFile
	}
	f, err := fh.Open()
	if err != nil {
		return services.File{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return services.File{}, fmt.Errorf("failed to read upload: %w", err)
	}
	return services.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
