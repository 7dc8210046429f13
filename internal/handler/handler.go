package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"comunidade/internal/pkg"
)

// respondError maps business errors onto their status and downgrades
// everything else to a generic message; storage detail is only logged.
func respondError(c *gin.Context, err error, fallback string) {
	var httpErr *pkg.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, gin.H{"message": httpErr.Message})
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido."})
		return 0, false
	}
	return id, true
}

type field struct {
	name  string
	value string
}

func missingFields(fields []field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
