// Package respond escribe respuestas HTTP a partir de valores y errores del dominio.
// Los errores salen como texto plano con el mensaje público del kind.
package respond

import (
	"encoding/json"
	"net/http"

	"people-directory/internal/platform/apperr"
)

const msgInvalidCredentials = "invalid email or password"

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Text(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// Error traduce el kind a status. Nunca expone la causa.
func Error(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	http.Error(w, publicMessage(kind, err), Status(kind))
}

// BadBody es el 422 para cuerpos que no se pueden decodificar.
func BadBody(w http.ResponseWriter, err error) {
	http.Error(w, "Request body deserialize error: "+err.Error(), http.StatusUnprocessableEntity)
}

func Status(kind apperr.Kind) int {
	switch kind {
	case apperr.KindMissingParameters, apperr.KindParse, apperr.KindInvalidParameters, apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindPersonNotFound, apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindDuplicateAccount, apperr.KindDuplicateKey:
		return http.StatusConflict
	case apperr.KindUpdatePerson:
		return http.StatusUnprocessableEntity
	case apperr.KindValidateBadWords, apperr.KindModeration:
		return http.StatusBadGateway
	case apperr.KindGetAccount, apperr.KindWrongPassword, apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(kind apperr.Kind, err error) string {
	switch kind {
	case apperr.KindGetAccount, apperr.KindWrongPassword:
		// mismo texto para cuenta inexistente y password incorrecto
		return msgInvalidCredentials
	case apperr.KindUnknown:
		return http.StatusText(http.StatusInternalServerError)
	}

	var e *apperr.Error
	if apperr.As(err, &e) {
		return e.Public()
	}
	return kind.String()
}
