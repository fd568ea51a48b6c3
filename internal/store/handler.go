package store

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshcart/pkg/models"
)

// Handler exposes the store over HTTP for presentation-layer consumers.
// Cart operations never fail visibly: bad quantities are clamped, and
// removing an absent entry succeeds.
type Handler struct {
	Store *Store
}

func NewHandler(s *Store) *Handler {
	return &Handler{Store: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/state", h.getState)
	r.PUT("/state/page", h.setPage)
	r.PUT("/state/page-size", h.setPageSize)
	r.PUT("/state/search", h.setSearch)
	r.PUT("/state/category", h.setCategory)
	r.PUT("/state/price-sort", h.setPriceSort)

	r.GET("/cart", h.getCart)
	r.POST("/cart", h.addToCart)
	r.DELETE("/cart/:id", h.removeFromCart)
	r.DELETE("/cart", h.clearCart)
	r.GET("/cart/total", h.cartTotal)
	r.POST("/cart/reset", h.resetStorage)
}

func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.State())
}

type pageReq struct {
	Page int `json:"page"`
}

func (h *Handler) setPage(c *gin.Context) {
	var req pageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.Store.SetPage(req.Page)
	c.JSON(http.StatusOK, h.Store.State())
}

type pageSizeReq struct {
	PageSize int `json:"pageSize"`
}

func (h *Handler) setPageSize(c *gin.Context) {
	var req pageSizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.Store.SetPageSize(req.PageSize)
	c.JSON(http.StatusOK, h.Store.State())
}

type searchReq struct {
	Search string `json:"search"`
}

func (h *Handler) setSearch(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.Store.SetSearch(req.Search)
	c.JSON(http.StatusOK, h.Store.State())
}

type categoryReq struct {
	Category string `json:"category"`
}

func (h *Handler) setCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.Store.SetCategory(req.Category)
	c.JSON(http.StatusOK, h.Store.State())
}

type priceSortReq struct {
	PriceSort models.SortDir `json:"priceSort"`
}

func (h *Handler) setPriceSort(c *gin.Context) {
	var req priceSortReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if !req.PriceSort.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "priceSort must be asc, desc or empty"})
		return
	}
	h.Store.SetPriceSort(req.PriceSort)
	c.JSON(http.StatusOK, h.Store.State())
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":       h.Store.Cart(),
		"total_items": h.Store.TotalItems(),
		"total_price": h.Store.TotalPrice(),
	})
}

type addToCartReq struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func (h *Handler) addToCart(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product.id required"})
		return
	}

	h.Store.AddToCart(req.Product, req.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"items":       h.Store.Cart(),
		"total_items": h.Store.TotalItems(),
	})
}

func (h *Handler) removeFromCart(c *gin.Context) {
	h.Store.RemoveFromCart(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"items":       h.Store.Cart(),
		"total_items": h.Store.TotalItems(),
	})
}

func (h *Handler) clearCart(c *gin.Context) {
	h.Store.ClearCart()
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Cart(), "total_items": 0})
}

func (h *Handler) cartTotal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_items": h.Store.TotalItems(),
		"total_price": h.Store.TotalPrice(),
	})
}

func (h *Handler) resetStorage(c *gin.Context) {
	h.Store.ResetStorage()
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Cart(), "total_items": 0})
}
