package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxKeyLength bounds sense keys, lemmas and search keywords.
const maxKeyLength = 256

// ValidateSenseKey validates a sense key taken from user input or a URL.
//
// The rules are intentionally conservative:
//   - No empty keys
//   - No control characters or null bytes
//   - No whitespace
//   - Maximum length of 256 characters
func ValidateSenseKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "sense key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidInput, "sense key too long (max %d characters)", maxKeyLength)
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "sense key contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "sense key cannot contain whitespace")
		}
	}
	return nil
}

// ValidateKeyword validates a lemma or search keyword. Spaces are allowed
// since multi-word lemmas exist.
func ValidateKeyword(keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return New(ErrCodeEmptySelection, "keyword cannot be empty")
	}
	if len(keyword) > maxKeyLength {
		return New(ErrCodeInvalidInput, "keyword too long (max %d characters)", maxKeyLength)
	}
	for _, r := range keyword {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "keyword contains invalid control characters")
		}
	}
	return nil
}

// languageRegex matches ISO 639 codes with an optional script or region
// subtag, e.g. "eng", "cmn", "en", "cmn-Hans".
var languageRegex = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z0-9]{2,8})?$`)

// ValidateLanguage validates a language code.
func ValidateLanguage(lang string) error {
	if !languageRegex.MatchString(lang) {
		return New(ErrCodeInvalidLanguage, "invalid language code %q", lang)
	}
	return nil
}

// ValidateLimit checks that a node limit is at least min.
func ValidateLimit(limit, min int) error {
	if limit < min {
		return New(ErrCodeInvalidInput, "node limit must be at least %d, got %d", min, limit)
	}
	return nil
}

// ValidatePath validates a local file path for safety.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "path cannot contain null bytes")
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
