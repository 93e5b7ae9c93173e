package people

import (
	"strconv"

	"people-directory/internal/platform/apperr"
)

// Pagination es la ventana pedida al backend. Limit nil = el backend decide.
type Pagination struct {
	Limit  *int
	Offset int
}

// ExtractPagination valida los query params. Sin params devuelve la ventana por defecto;
// con cualquier param, limit y offset son obligatorios y enteros.
func ExtractPagination(params map[string]string) (Pagination, error) {
	if len(params) == 0 {
		return Pagination{}, nil
	}

	rawLimit, okLimit := params["limit"]
	rawOffset, okOffset := params["offset"]
	if !okLimit || !okOffset {
		return Pagination{}, apperr.New(apperr.KindMissingParameters, "limit and offset are required together")
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		return Pagination{}, apperr.Wrap(apperr.KindParse, "people.ExtractPagination", err)
	}
	offset, err := strconv.Atoi(rawOffset)
	if err != nil {
		return Pagination{}, apperr.Wrap(apperr.KindParse, "people.ExtractPagination", err)
	}

	if limit <= 0 || offset < 0 {
		return Pagination{}, apperr.New(apperr.KindInvalidParameters, "limit must be positive and offset non-negative")
	}

	return Pagination{Limit: &limit, Offset: offset}, nil
}

// limitField representa "sin tope" como -1 en logs.
func limitField(limit *int) int {
	if limit == nil {
		return -1
	}
	return *limit
}
