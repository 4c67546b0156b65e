package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidLinkFormat   = errors.New("invalid link format")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrUnsupportedLinkType = errors.New("unsupported link type")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrConflictingPreview  = errors.New("music links and preview are mutually exclusive")
	ErrDuplicatePlatform   = errors.New("duplicate platform in music links")
)

// InvalidLinkFormatError is returned when a canonical URL could not be built
// for the selected platform and link type.
type InvalidLinkFormatError struct {
	Platform Platform
	Type     LinkType
	Input    string
}

func (e *InvalidLinkFormatError) Error() string {
	return fmt.Sprintf("invalid %s %s link: %q", e.Platform, e.Type, e.Input)
}

func (e *InvalidLinkFormatError) Is(target error) bool {
	return target == ErrInvalidLinkFormat
}
