package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidType    = errors.New("invalid record type")
	ErrInvalidTTL     = errors.New("invalid TTL")
	ErrInvalidContent = errors.New("invalid record content")
	ErrEmptyContent   = errors.New("empty record content")
	ErrTTLConflict    = errors.New("conflicting TTLs for record set")
	ErrRequired       = errors.New("required field missing")

	ErrZoneParseFailed = errors.New("zone file parse failed")
	ErrZoneNotLoaded   = errors.New("zone not loaded")

	ErrZoneNotFound   = errors.New("zone not found")
	ErrAPIUnavailable = errors.New("API unavailable")
	ErrPartialApply   = errors.New("changes partially applied")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func WrapEntity(entity, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%s]: %w", entity, name, err)
}
