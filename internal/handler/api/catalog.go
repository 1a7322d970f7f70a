package api

import (
	"net/http"
	"strconv"

	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/handler/httperr"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List items
// @Description Paginated catalog listing, ordered by item name
// @Tags catalog
// @Produce json
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Keyset cursor from the previous page"
// @Success 200 {object} resdto.ItemListResponse
// @Failure 400 {object} map[string]string
// @Router /items [get]
func (h *CatalogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, total, err := h.q.ListItems(c.Request.Context(), cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list items", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(items, next, total))
}

// @Summary Get item
// @Description Get one item's display metadata by id
// @Tags catalog
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	view, err := h.q.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errs.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load item", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Item price history
// @Description All snapshots captured for the item, newest first
// @Tags catalog
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.PriceHistoryResponse
// @Router /items/{id}/price-history [get]
func (h *CatalogHandler) PriceHistory(c *gin.Context) {
	history, err := h.q.GetPriceHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load price history", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotList(history))
}
