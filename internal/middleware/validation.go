package middleware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field limits for user-supplied input.
const (
	MaxChannelInputLen = 256
	MaxNameLen         = 100
	MaxEmailLen        = 254
	MinMaxVideos       = 1
	MaxMaxVideos       = 50
)

// emailRe is a deliberately loose shape check; delivery is never attempted.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateChannelInput trims the outer whitespace of a channel reference and
// checks basic sanity. Classification of the trimmed value is the resolver's
// job, not validation's.
func ValidateChannelInput(input string) (string, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "channel is required"
	}
	if len(input) > MaxChannelInputLen {
		return "", "channel must be at most 256 characters"
	}
	if strings.ContainsAny(input, "\r\n") {
		return "", "channel contains invalid characters"
	}
	return input, ""
}

// ValidateMaxVideos parses the optional max-videos parameter, defaulting to 0
// (caller's default) when absent.
func ValidateMaxVideos(raw string) (int, string) {
	if raw == "" {
		return 0, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "max must be an integer"
	}
	if n < MinMaxVideos || n > MaxMaxVideos {
		return 0, "max must be between 1 and 50"
	}
	return n, ""
}

// ValidateLead checks the name/email pair a report is prepared for.
func ValidateLead(name, email string) (string, string, string) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return "", "", "name is required"
	}
	if len(name) > MaxNameLen {
		return "", "", "name must be at most 100 characters"
	}
	if email == "" {
		return "", "", "email is required"
	}
	if len(email) > MaxEmailLen || !emailRe.MatchString(email) {
		return "", "", "email is not valid"
	}
	return name, email, ""
}
