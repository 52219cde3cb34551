package models

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"coursecatalog/internal/qerrors"
)

var imageExtension = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|bmp|svg|avif)$`)

// Validate checks a CreateCourseRequest for errors. It runs before any repository call, so a
// request that fails here never reaches the backend.
func (c *CreateCourseRequest) Validate() error {
	if err := validateRequired("title", c.Title); err != nil {
		return err
	}

	if err := validateRequired("instructor", c.Instructor); err != nil {
		return err
	}

	if err := validateRequired("category", c.Category); err != nil {
		return err
	}

	if c.Image != "" && !IsValidImageURL(c.Image) {
		return &qerrors.ValidationError{
			Field:   "image",
			Message: "must be a valid image URL ending with .jpg, .jpeg, .png, .gif, .webp, .bmp, .svg, or .avif",
		}
	}

	if c.Level != "" && !c.Level.Valid() {
		return &qerrors.ValidationError{Field: "level", Message: "must be one of Beginner, Intermediate, Advanced"}
	}

	if c.Students < 0 {
		return &qerrors.ValidationError{Field: "students", Message: "must not be negative"}
	}

	if !isFinite(c.Price) {
		return &qerrors.ValidationError{Field: "price", Message: "must be a finite number"}
	}
	if c.Price < 0 {
		return &qerrors.ValidationError{Field: "price", Message: "must not be negative"}
	}

	if !isFinite(c.Rating) || c.Rating < 0 || c.Rating > 5 {
		return &qerrors.ValidationError{Field: "rating", Message: "must be between 0 and 5"}
	}

	return nil
}

// IsValidImageURL reports whether raw is an absolute URL whose path ends in a known image extension.
func IsValidImageURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}
	return imageExtension.MatchString(parsed.Path)
}

// Validators.

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateRequired(field, val string) error {
	if strings.TrimSpace(val) == "" {
		return &qerrors.ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
