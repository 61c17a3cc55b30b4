package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Mr2-hex/quivo-backend/errs"
	"github.com/Mr2-hex/quivo-backend/models"
)

// respondError maps a pipeline failure onto the wire: validation errors
// become 400, everything else 500 with the underlying message. Nothing
// is swallowed and nothing is retried.
func respondError(c *gin.Context, op string, err error) {
	status := errs.HTTPStatus(err)
	log.Printf("[%s] %s error (%d): %v", op, errs.KindOf(err), status, err)
	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}
