package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError — ошибка домена в HTTP-статус и тело {error}.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s %s failed status=%d err=%v", c.Request.Method, c.FullPath(), status, err)
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, gin.H) {
	var (
		verr *domain.ValidationError
		bre  *domain.BadRequestError
		ue   *domain.UpstreamError
	)

	switch {
	case errors.Is(err, domain.ErrConfig):
		return http.StatusInternalServerError, gin.H{"error": domain.ErrConfig.Error()}
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, gin.H{"error": "Unknown action"}
	case errors.As(err, &bre):
		return http.StatusBadRequest, gin.H{"error": bre.Error()}
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "userErrors": verr.UserErrors}
	case errors.As(err, &ue):
		return http.StatusInternalServerError, gin.H{"error": ue.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "internal server error"}
	}
}
