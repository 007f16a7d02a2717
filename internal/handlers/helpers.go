package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/store"
	"github.com/Mondre/Gresilda/internal/store/sheets"
)

// paramID parses the :id route parameter. Writes the 400 itself so callers
// just bail on false.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "ID non valido")
		return 0, false
	}
	return uint(id), true
}

// queryID parses the ?id= query parameter, same contract as paramID.
func queryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "ID non valido")
		return 0, false
	}
	return uint(id), true
}

// writeStoreError maps store failures onto the error taxonomy: missing
// record → 404, classified spreadsheet failures keep their distinct
// message, anything else collapses to the generic message.
func writeStoreError(c *gin.Context, err error, notFoundMsg, genericMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httperr.NotFound(c, notFoundMsg)
	case errors.Is(err, sheets.ErrAuth),
		errors.Is(err, sheets.ErrPermission),
		errors.Is(err, sheets.ErrNotFound):
		httperr.Internal(c, err.Error(), nil)
	default:
		httperr.Internal(c, genericMsg, err)
	}
}
