package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"freshcart/pkg/models"
)

type Handler struct {
	Catalog Querier
}

func NewHandler(q Querier) *Handler {
	return &Handler{Catalog: q}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)        // GET /products
	rg.GET("/:id", h.getByID) // GET /products/:id
}

func (h *Handler) list(c *gin.Context) {
	page := parseInt(c.Query("page"), 0)
	if page < 0 {
		page = 0
	}
	pageSize := parseInt(c.Query("pageSize"), 10)
	if pageSize <= 0 {
		pageSize = 10
	}

	result := h.Catalog.ListProducts(c.Request.Context(), page, pageSize)

	// optional client-side selections, applied as a linear scan over the
	// fetched page
	q := Query{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		PriceSort: models.SortDir(c.Query("sort")),
	}
	// brands arrive as repeated params or one comma-separated value
	for _, raw := range c.QueryArray("brands") {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				q.Brands = append(q.Brands, b)
			}
		}
	}

	if q.Search != "" || q.Category != "" || len(q.Brands) > 0 || q.PriceSort != models.SortNone {
		result.Items = ApplyQuery(result.Items, q)
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")
	p := h.Catalog.GetProductByID(c.Request.Context(), id)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
