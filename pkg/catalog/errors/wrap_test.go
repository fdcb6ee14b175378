package errors

import (
	"errors"
	"testing"
)

func TestWrapStorage(t *testing.T) {
	originalErr := errors.New("write failed")
	wrapped := WrapStorage(originalErr, "failed to persist catalog")

	if wrapped == nil {
		t.Fatal("WrapStorage() should not return nil")
	}

	if !errors.Is(wrapped, ErrStorage) {
		t.Error("WrapStorage() should wrap with ErrStorage")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapStorage() should preserve original error")
	}

	// Test nil error
	if WrapStorage(nil, "context") != nil {
		t.Error("WrapStorage() should return nil for nil error")
	}
}

func TestWrapInvalid(t *testing.T) {
	originalErr := errors.New("invalid input")
	wrapped := WrapInvalid(originalErr, "invalid comic id")

	if !errors.Is(wrapped, ErrInvalid) {
		t.Error("WrapInvalid() should wrap with ErrInvalid")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapInvalid() should preserve original error")
	}

	if WrapInvalid(nil, "context") != nil {
		t.Error("WrapInvalid() should return nil for nil error")
	}
}

func TestWrapNotFound(t *testing.T) {
	originalErr := errors.New("missing")
	wrapped := WrapNotFound(originalErr, "comic not found")

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("WrapNotFound() should wrap with ErrNotFound")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapNotFound() should preserve original error")
	}

	if WrapNotFound(nil, "context") != nil {
		t.Error("WrapNotFound() should return nil for nil error")
	}
}

func TestWrapCorrupt(t *testing.T) {
	originalErr := errors.New("unexpected end of JSON input")
	wrapped := WrapCorrupt(originalErr, "decode catalog")

	if !errors.Is(wrapped, ErrCorruptData) {
		t.Error("WrapCorrupt() should wrap with ErrCorruptData")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapCorrupt() should preserve original error")
	}

	if WrapCorrupt(nil, "context") != nil {
		t.Error("WrapCorrupt() should return nil for nil error")
	}
}

func TestWrapImage(t *testing.T) {
	originalErr := errors.New("read failed")
	wrapped := WrapImage(originalErr, "read cover")

	if !errors.Is(wrapped, ErrInvalidImage) {
		t.Error("WrapImage() should wrap with ErrInvalidImage")
	}

	if !errors.Is(wrapped, originalErr) {
		t.Error("WrapImage() should preserve original error")
	}

	if WrapImage(nil, "context") != nil {
		t.Error("WrapImage() should return nil for nil error")
	}
}
