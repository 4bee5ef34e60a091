package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/handlers/dto"
	"github.com/rafabene/folio-backend/internal/handlers/middleware"
	"github.com/rafabene/folio-backend/internal/services"
)

// FeedHandler lida com requisições HTTP do feed
type FeedHandler struct {
	feedService *services.FeedService
	logger      ports.Logger
}

// NewFeedHandler cria um novo FeedHandler
func NewFeedHandler(feedService *services.FeedService, logger ports.Logger) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		logger:      logger,
	}
}

// GetFeed retorna o feed do viewer
// @Summary      Feed personalizado
// @Description  Viewer anônimo ou sem follows recebe o feed global de
// @Description  posts publicados; caso contrário, apenas posts dos
// @Description  autores seguidos
// @Tags         feed
// @Produce      json
// @Param        limit   query     int  false  "Tamanho da página (máx. 100)"
// @Param        offset  query     int  false  "Deslocamento"
// @Success      200     {array}   dto.PostResponse
// @Failure      400     {object}  dto.Problem
// @Router       /api/v1/feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	views, err := h.feedService.GetFeed(c.Request.Context(), middleware.CurrentUserID(c), query.Limit, query.Offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(views))
}
