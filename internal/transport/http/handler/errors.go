package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/domain"
	"docqa/internal/transport/http/response"
)

// writeError maps pipeline errors onto HTTP statuses.
func writeError(c *gin.Context, op string, err error) {
	var embErr *domain.EmbeddingError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotIndexed):
		response.Error(c, http.StatusBadRequest, response.CodeNotIndexed, "no document uploaded")
	case errors.As(err, &embErr):
		log.Printf("%s: %v", op, err)
		response.Error(c, http.StatusBadGateway, response.CodeEmbedding, "embedding service failed")
	default:
		log.Printf("%s: %v", op, err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, op+" failed")
	}
}
