package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the server-side HTML pages. The pages talk to the
// JSON API with fetch() and re-fetch the full list after every mutation.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// TodoPage renders the todo board
func (h *PageHandler) TodoPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Todo App",
	})
}

// CurrencyPage renders the currency converter
func (h *PageHandler) CurrencyPage(c *gin.Context) {
	c.HTML(http.StatusOK, "currency.html", gin.H{
		"Title": "Currency Converter",
	})
}
