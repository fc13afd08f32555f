package utils

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/kodraiti-design/eagles-transportes/types"

	"github.com/gofiber/fiber/v2"
)

var nonDigits = regexp.MustCompile(`\D`)

// DigitsOnly strips every non-digit character from a phone number.
func DigitsOnly(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidatePhoneNumber accepts Brazilian landline/mobile numbers with an
// optional +55 country code (10 or 11 significant digits).
func ValidatePhoneNumber(phone string) bool {
	digits := DigitsOnly(strings.TrimSpace(phone))
	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		digits = digits[2:]
	}
	return len(digits) == 10 || len(digits) == 11
}

// ValidateCPF checks length only (11 digits); check-digit verification is
// left to the registry operator.
func ValidateCPF(cpf string) bool {
	return len(DigitsOnly(cpf)) == 11
}

// sanitizeRequestBody sanitizes request body for file uploads and large content
func sanitizeRequestBody(c *fiber.Ctx) string {
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		formData := make(map[string]interface{})

		if form, err := c.MultipartForm(); err == nil {
			for key, values := range form.Value {
				if len(values) > 0 {
					formData[key] = values[0]
				}
			}
			for key, files := range form.File {
				fileInfo := make([]map[string]interface{}, len(files))
				for i, file := range files {
					fileInfo[i] = map[string]interface{}{
						"filename": file.Filename,
						"size":     file.Size,
						"content":  "[FILE_CONTENT_REMOVED]",
					}
				}
				formData[key] = fileInfo
			}
		}

		if jsonBytes, err := json.Marshal(formData); err == nil {
			return string(jsonBytes)
		}
		return "[MULTIPART_FORM_DATA]"
	}

	body := string(c.Body())
	if len(body) > 10000 {
		return "[LARGE_REQUEST_BODY]"
	}
	return body
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for
// the async request logger.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
