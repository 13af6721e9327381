package usecase

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/avc-dev/url-registry/internal/model"
)

const (
	maxUsernameLength = 64
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

func isUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// storable rejects text that no backend can hold: invalid UTF-8 and NUL
func storable(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// cleanURL trims whitespace and surrounding quotes; the result may be empty
func cleanURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// validateCode accepts 1..36 characters that can live in a single path segment
func validateCode(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	if !storable(code) {
		return fmt.Errorf("%w: short code is not valid UTF-8 text", ErrBadInput)
	}
	if utf8.RuneCountInString(code) > model.MaxCodeLength {
		return fmt.Errorf("%w: short code longer than %d characters", ErrBadInput, model.MaxCodeLength)
	}
	if strings.ContainsAny(code, "/?#%") || strings.IndexFunc(code, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: short code contains reserved characters", ErrBadInput)
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: empty username", ErrBadInput)
	}
	if !storable(username) {
		return fmt.Errorf("%w: username is not valid UTF-8 text", ErrBadInput)
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return fmt.Errorf("%w: username longer than %d characters", ErrBadInput, maxUsernameLength)
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 || strings.Contains(username, "/") {
		return fmt.Errorf("%w: username contains reserved characters", ErrBadInput)
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: empty password", ErrBadInput)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password longer than %d bytes", ErrBadInput, maxPasswordBytes)
	}
	return nil
}
