package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Product handler functions

const defaultProductUnit = "piece"
const defaultProductCategory = "Uncategorized"

// @Summary Get all products
// @Description Retrieve a shop's price list, optionally filtered by category or a name search
// @Tags products
// @Produce json
// @Param shop_id query string true "Shop ID"
// @Param category query string false "Exact category match"
// @Param search query string false "Substring match on product name"
// @Success 200 {array} Product "List of products"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/products [get]
func getProducts(c *gin.Context) {
	shopID, ok := parseShopID(c)
	if !ok {
		return
	}

	products, err := store.GetProducts(c.Request.Context(), shopID)
	if err != nil {
		log.Errorf("Error fetching products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}

	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))
	if category != "" || search != "" {
		filtered := make([]Product, 0, len(products))
		for _, product := range products {
			if category != "" && product.Category != category {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
				continue
			}
			filtered = append(filtered, product)
		}
		products = filtered
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Create product
// @Description Add a price-list item. Unit defaults to "piece", category to "Uncategorized".
// @Tags products
// @Accept json
// @Produce json
// @Param product body object{shop_id=string,name=string,unit=string,selling_price=number,category=string} true "Product data"
// @Success 201 {object} Product "Created product"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/products [post]
func createProduct(c *gin.Context) {
	var request struct {
		ShopID       string  `json:"shop_id"`
		Name         string  `json:"name"`
		Unit         string  `json:"unit"`
		SellingPrice float64 `json:"selling_price"`
		Category     string  `json:"category"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateAmount(request.SellingPrice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopID, err := toPgUUID(request.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop_id"})
		return
	}

	if request.Unit == "" {
		request.Unit = defaultProductUnit
	}
	if request.Category == "" {
		request.Category = defaultProductCategory
	}

	product, err := store.CreateProduct(c.Request.Context(), CreateProductParams{
		ShopID:       shopID,
		Name:         request.Name,
		Unit:         request.Unit,
		SellingPrice: request.SellingPrice,
		Category:     request.Category,
	})
	if err != nil {
		log.Errorf("Error creating product: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// @Summary Update product
// @Description Update a price-list item
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body object{name=string,unit=string,selling_price=number,category=string} true "Editable product fields"
// @Success 200 {object} Product "Updated product"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/products/{id} [put]
func updateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var request struct {
		Name         string  `json:"name"`
		Unit         string  `json:"unit"`
		SellingPrice float64 `json:"selling_price"`
		Category     string  `json:"category"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateAmount(request.SellingPrice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Unit == "" {
		request.Unit = defaultProductUnit
	}
	if request.Category == "" {
		request.Category = defaultProductCategory
	}

	product, err := store.UpdateProduct(c.Request.Context(), UpdateProductParams{
		ID:           id,
		Name:         request.Name,
		Unit:         request.Unit,
		SellingPrice: request.SellingPrice,
		Category:     request.Category,
	})
	if err != nil {
		log.Errorf("Error updating product: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Delete product
// @Description Delete a price-list item by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{} "Product deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/products/{id} [delete]
func deleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := store.DeleteProduct(c.Request.Context(), id); err != nil {
		log.Errorf("Error deleting product: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
