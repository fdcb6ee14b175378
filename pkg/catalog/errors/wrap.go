package errors

import "fmt"

// WrapStorage wraps an error with storage context
func WrapStorage(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, context, err)
}

// WrapInvalid wraps an error with invalid input context
func WrapInvalid(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalid, context, err)
}

// WrapNotFound wraps an error with not found context
func WrapNotFound(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrNotFound, context, err)
}

// WrapCorrupt wraps a decode failure of persisted data
func WrapCorrupt(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrCorruptData, context, err)
}

// WrapImage wraps an image conversion failure
func WrapImage(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidImage, context, err)
}
