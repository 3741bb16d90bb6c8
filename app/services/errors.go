package services

import "fmt"

// ValidationError means the caller omitted or malformed a required input.
// Maps to HTTP 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NotFoundError means a referenced entity does not exist. Maps to HTTP 404.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError is a business-rule rejection: insufficient stock, empty
// cart, duplicate email. Maps to HTTP 400 with a machine-readable reason.
type ConflictError struct {
	Reason  string // e.g. "insufficient_stock", "empty_cart"
	Message string // human-readable, names the product and quantities
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InternalError wraps store or transaction failures. Maps to HTTP 500 with
// a generic body; the underlying cause is only ever logged.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return "internal error"
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// ErrEmptyCart rejects checkout of an empty cart.
func ErrEmptyCart() *ConflictError {
	return &ConflictError{Reason: "empty_cart", Message: "Cart is empty"}
}

// ErrInsufficientStock rejects an order line exceeding available stock.
func ErrInsufficientStock(productName string, available int64) *ConflictError {
	return &ConflictError{
		Reason:  "insufficient_stock",
		Message: fmt.Sprintf("Insufficient stock for %s. Only %d items available.", productName, available),
	}
}

// ErrEmailTaken rejects registration with an already-registered email.
func ErrEmailTaken() *ConflictError {
	return &ConflictError{Reason: "email_taken", Message: "Email already exists"}
}
