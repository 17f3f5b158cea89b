package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bloomhaus/floristry-backend/internal/domain/catalog"
	"github.com/bloomhaus/floristry-backend/internal/http/response"
	"github.com/bloomhaus/floristry-backend/internal/platform/ctxutil"
	"github.com/bloomhaus/floristry-backend/internal/services"
)

type ProductHandler struct {
	productService     services.ProductService
	compositionService services.CompositionService
}

func NewProductHandler(productService services.ProductService, compositionService services.CompositionService) *ProductHandler {
	return &ProductHandler{
		productService:     productService,
		compositionService: compositionService,
	}
}

func actingAdmin(c *gin.Context) (uuid.UUID, bool) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.AdminID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return uuid.Nil, false
	}
	return rd.AdminID, true
}

func (ph *ProductHandler) Create(c *gin.Context) {
	adminID, ok := actingAdmin(c)
	if !ok {
		return
	}
	var in catalog.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	product, err := ph.productService.CreateProduct(c.Request.Context(), adminID, in)
	if err != nil {
		respondRuleError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"product": product})
}

func (ph *ProductHandler) Get(c *gin.Context) {
	adminID, ok := actingAdmin(c)
	if !ok {
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	product, err := ph.productService.GetProduct(c.Request.Context(), adminID, productID)
	if err != nil {
		respondRuleError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}

func (ph *ProductHandler) List(c *gin.Context) {
	adminID, ok := actingAdmin(c)
	if !ok {
		return
	}
	products, err := ph.productService.ListProducts(c.Request.Context(), adminID)
	if err != nil {
		respondRuleError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}

func (ph *ProductHandler) AddFlowers(c *gin.Context) {
	adminID, ok := actingAdmin(c)
	if !ok {
		return
	}
	parentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req struct {
		Flowers []services.EdgeInput `json:"flowers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if len(req.Flowers) == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", nil)
		return
	}
	parent, err := ph.compositionService.AddFlowers(c.Request.Context(), adminID, parentID, req.Flowers)
	if err != nil {
		respondRuleError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": parent})
}
