package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precoscan/backend/internal/domain"
	"github.com/precoscan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	registry domain.ProductRegistry
	prices   *usecase.PriceService
}

// NewHandler creates a new HTTP handler
func NewHandler(registry domain.ProductRegistry, prices *usecase.PriceService) *Handler {
	return &Handler{
		registry: registry,
		prices:   prices,
	}
}

// productRequest is the registration body: {"Nome": ..., "Categoria": ...}.
// Categoria may be null or absent.
type productRequest struct {
	Nome      string  `json:"Nome"`
	Categoria *string `json:"Categoria"`
}

// priceResponse is the wire shape of one resolved offer
type priceResponse struct {
	Produto string `json:"produto"`
	Preco   string `json:"preco"`
	Loja    string `json:"loja"`
	Link    string `json:"link"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "precoscan-backend",
		"version": "1.0.0",
	})
}

// RegisterProduct handles POST /produtos. An empty name is rejected with
// 400 and a duplicate name with 409 rather than being silently ignored.
func (h *Handler) RegisterProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "corpo da requisição inválido"})
		return
	}

	product := domain.Product{Name: req.Nome}
	if req.Categoria != nil {
		product.Category = *req.Categoria
	}

	if err := h.registry.Add(product); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProduct):
			log.Printf("[PRODUTOS] rejected registration with empty name")
			c.JSON(http.StatusBadRequest, gin.H{"erro": "nome do produto é obrigatório"})
		case errors.Is(err, domain.ErrProductExists):
			c.JSON(http.StatusConflict, gin.H{"erro": "produto já cadastrado"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "falha ao cadastrar produto"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Produto cadastrado"})
}

// ListProducts handles GET /produtos and returns the current registry
// snapshot in registration order.
func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.List())
}

// BestPrices handles GET /precos. Always 200 with a possibly empty array;
// products with no parseable offers are omitted.
func (h *Handler) BestPrices(c *gin.Context) {
	offers := h.prices.BestPrices(c.Request.Context())
	c.JSON(http.StatusOK, toPriceResponses(offers))
}

// AllPrices handles GET /precos/todos. Entries are labeled with each
// offer's own title.
func (h *Handler) AllPrices(c *gin.Context) {
	offers := h.prices.AllPrices(c.Request.Context())
	c.JSON(http.StatusOK, toPriceResponses(offers))
}

func toPriceResponses(offers []domain.NormalizedOffer) []priceResponse {
	responses := make([]priceResponse, 0, len(offers))

	for _, offer := range offers {
		responses = append(responses, priceResponse{
			Produto: offer.Product,
			Preco:   usecase.FormatBRL(offer.Price),
			Loja:    offer.Store,
			Link:    offer.Link,
		})
	}

	return responses
}
