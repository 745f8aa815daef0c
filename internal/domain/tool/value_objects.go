package tool

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName        = errors.New("tool name must be between 1 and 100 characters")
	ErrDescriptionTooLong = errors.New("tool description exceeds maximum length")
	ErrCategoryTooLong    = errors.New("tool category exceeds maximum length")
	ErrInvalidStatus      = errors.New("invalid tool status")
	ErrNonPositivePrice   = errors.New("daily price must be greater than zero")
	ErrImageURLTooLong    = errors.New("image url exceeds maximum length")
	ErrNotOwner           = errors.New("only the owner can modify this tool")
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 5000
	MaxCategoryLength    = 50
	MaxImageURLLength    = 255
)

type Details struct {
	Name        string
	Description string
	Category    string
	ImageURL    *string
}

func (d Details) normalize() (Details, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return Details{}, ErrInvalidName
	}
	desc := strings.TrimSpace(d.Description)
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return Details{}, ErrDescriptionTooLong
	}
	category := strings.TrimSpace(d.Category)
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return Details{}, ErrCategoryTooLong
	}
	var image *string
	if d.ImageURL != nil {
		u := strings.TrimSpace(*d.ImageURL)
		if len(u) > MaxImageURLLength {
			return Details{}, ErrImageURLTooLong
		}
		if u != "" {
			image = &u
		}
	}
	return Details{Name: name, Description: desc, Category: category, ImageURL: image}, nil
}
