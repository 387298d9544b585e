package services

import "errors"

var (
	ErrValidation           = errors.New("order validation failed")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("order status transition not allowed")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
)
