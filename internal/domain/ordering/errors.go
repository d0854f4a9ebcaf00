package ordering

import (
	"errors"
	"fmt"
)

// Address check failure kinds reported by the CheckAddressExists capability.
// Any other error from the capability is treated as a remote failure.
var (
	ErrAddressNotFound      = errors.New("address not found")
	ErrAddressInvalidFormat = errors.New("address has bad format")
)

// PlaceOrderError is the closed union of errors the workflow can fail with:
// ValidationError, PricingError or RemoteServiceError. Consumers dispatch on
// the concrete type.
type PlaceOrderError interface {
	error

	// Code returns a stable machine-readable error code
	Code() string

	isPlaceOrderError()
}

// ValidationError reports input rejected by the validation stage, including
// address lookup failures translated into it
type ValidationError struct {
	Message string
}

func (ValidationError) isPlaceOrderError() {}

// Code returns the stable error code for validation failures
func (ValidationError) Code() string { return "VALIDATION_ERROR" }

func (e ValidationError) Error() string { return e.Message }

// PricingError reports a computed value outside its domain bounds
type PricingError struct {
	Message string
}

func (PricingError) isPlaceOrderError() {}

// Code returns the stable error code for pricing failures
func (PricingError) Code() string { return "PRICING_ERROR" }

func (e PricingError) Error() string { return e.Message }

// RemoteServiceError reports a capability call that itself failed, carrying
// the service identity and the underlying cause
type RemoteServiceError struct {
	Service  string
	Endpoint string
	Cause    error
}

func (RemoteServiceError) isPlaceOrderError() {}

// Code returns the stable error code for remote service failures
func (RemoteServiceError) Code() string { return "REMOTE_SERVICE_ERROR" }

func (e RemoteServiceError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("remote service %s (%s) failed: %v", e.Service, e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("remote service %s failed: %v", e.Service, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e RemoteServiceError) Unwrap() error { return e.Cause }

// remoteFailure wraps a capability error as a RemoteServiceError, keeping an
// existing RemoteServiceError intact so capability implementations can attach
// their own endpoint detail.
func remoteFailure(service string, err error) RemoteServiceError {
	var rse RemoteServiceError
	if errors.As(err, &rse) {
		return rse
	}
	return RemoteServiceError{Service: service, Cause: err}
}
