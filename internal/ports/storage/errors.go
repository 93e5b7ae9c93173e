// Package storage reúne los errores que todo backend devuelve. Los services
// solo distinguen estos tres kinds; el detalle del motor queda en la causa.
package storage

import "people-directory/internal/platform/apperr"

func NotFound(op string) error {
	return apperr.Wrap(apperr.KindNotFound, op, nil)
}

func Duplicate(op string, cause error) error {
	return apperr.Wrap(apperr.KindDuplicateKey, op, cause)
}

func Failure(op string, cause error) error {
	return apperr.Wrap(apperr.KindStorage, op, cause)
}

func IsNotFound(err error) bool { return apperr.Is(err, apperr.KindNotFound) }

func IsDuplicate(err error) bool { return apperr.Is(err, apperr.KindDuplicateKey) }
