package http

import (
	"strconv"

	apperrors "aldosafaris/pkg/errors"

	"github.com/julienschmidt/httprouter"
)

// PathID parses the :id route parameter as an int64 database key.
func PathID(ps httprouter.Params) (int64, error) {
	raw := ps.ByName("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidInput("invalid id parameter: " + raw)
	}
	return id, nil
}
