package domain

import (
	"errors"
	"net/http"
	"time"
)

// Kind discrimina la variante de un AppError. El conjunto es cerrado:
// ningún otro tipo de fallo cruza la frontera entre componentes.
type Kind string

const (
	KindBadRequest       Kind = "BAD_REQUEST"
	KindAuthentication   Kind = "AUTHENTICATION"
	KindAuthorization    Kind = "AUTHORIZATION"
	KindResourceNotFound Kind = "RESOURCE_NOT_FOUND"
	KindDataPersistance  Kind = "DATA_PERSISTANCE"
	KindInternalServer   Kind = "INTERNAL_SERVER"
)

// AppError es el error de aplicación que viaja entre capas. Cada Kind fija
// el status HTTP y el mensaje por defecto; Reason es diagnóstico opcional.
// El router serializa el error tal cual y responde con StatusCode.
type AppError struct {
	Kind       Kind      `json:"-"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	return e.Message + ": " + e.Reason
}

const unspecifiedReason = "Unspecified reason."

func newAppError(kind Kind, status int, message, reason string) *AppError {
	if reason == "" {
		reason = unspecifiedReason
	}
	return &AppError{
		Kind:       kind,
		StatusCode: status,
		Message:    message,
		Reason:     reason,
		Timestamp:  time.Now(),
	}
}

// NewBadRequest error 400: parámetros de entrada inválidos.
func NewBadRequest(reason string) *AppError {
	return newAppError(KindBadRequest, http.StatusBadRequest, "Invalid parameters provided", reason)
}

// NewAuthentication error 401: no hay sesión / principal.
func NewAuthentication(reason string) *AppError {
	return newAppError(KindAuthentication, http.StatusUnauthorized, "No session found, authentication failed.", reason)
}

// NewAuthorization error 403: el rol del principal no alcanza.
func NewAuthorization(reason string) *AppError {
	return newAppError(KindAuthorization, http.StatusForbidden, "Incorrect permission for resource access.", reason)
}

// NewResourceNotFound error 404: la consulta no produjo datos.
func NewResourceNotFound(reason string) *AppError {
	return newAppError(KindResourceNotFound, http.StatusNotFound, "No data found.", reason)
}

// NewDataPersistance error 409: el dato no se puede guardar (conflicto o id de referencia inválido).
func NewDataPersistance(reason string) *AppError {
	return newAppError(KindDataPersistance, http.StatusConflict, "Could not save Data", reason)
}

// NewInternalServer error 500: fallo de bajo nivel (driver, pool); el detalle queda en Reason.
func NewInternalServer(reason string) *AppError {
	return newAppError(KindInternalServer, http.StatusInternalServerError, "An unexpected error occurred", reason)
}

// IsKind informa si err es un AppError de la variante k.
func IsKind(err error, k Kind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == k
}

// From normaliza cualquier error al taxon: un error ajeno al conjunto
// cerrado degrada a InternalServer en vez de tumbar el handler.
func From(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return NewInternalServer(err.Error())
}
