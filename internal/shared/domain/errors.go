package domain

import "net/http"

// Types d'erreur métier partagés par tous les services workflow
const (
	ErrValidation = "validation"
	ErrNotFound   = "not_found"
	ErrForbidden  = "forbidden"
	ErrConflict   = "conflict"
	ErrInternal   = "internal"
)

// ServiceError - Erreur métier commune pour tous les services
type ServiceError struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// HTTPStatus mappe le type d'erreur métier vers un code HTTP
func (e *ServiceError) HTTPStatus() int {
	switch e.Type {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: ErrValidation, Message: message, Details: details}
}

func NewNotFoundError(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: ErrNotFound, Message: message, Details: details}
}

func NewForbiddenError(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: ErrForbidden, Message: message, Details: details}
}

func NewConflictError(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: ErrConflict, Message: message, Details: details}
}

// NewInternalError enveloppe une erreur technique (stockage, blob) sans
// l'exposer au client. La cause reste disponible pour les logs via Unwrap.
func NewInternalError(message string, cause error) *ServiceError {
	return &ServiceError{Type: ErrInternal, Message: message, Cause: cause}
}

// AsServiceError extrait une ServiceError d'une erreur quelconque.
// Toute erreur non typée est traitée comme erreur interne.
func AsServiceError(err error) *ServiceError {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr
	}
	return NewInternalError("Une erreur interne est survenue", err)
}
