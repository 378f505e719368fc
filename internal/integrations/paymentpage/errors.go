package paymentpage

import "errors"

var (
	// ErrInvalidBaseURL is returned when the configured page URL cannot be parsed
	ErrInvalidBaseURL = errors.New("paymentpage: invalid base url")

	// ErrInvalidParams is returned when booking parameters cannot form a page link
	ErrInvalidParams = errors.New("paymentpage: invalid payment parameters")
)
