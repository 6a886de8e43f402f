package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	log "github.com/sirupsen/logrus"
)

// Customer handler functions

// @Summary Get all customers
// @Description Retrieve a shop's customers, highest due first, optionally filtered by a name/phone search
// @Tags customers
// @Produce json
// @Param shop_id query string true "Shop ID"
// @Param search query string false "Substring match on name or phone"
// @Success 200 {array} Customer "List of customers"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers [get]
func getCustomers(c *gin.Context) {
	shopID, ok := parseShopID(c)
	if !ok {
		return
	}

	customers, err := store.GetCustomers(c.Request.Context(), shopID)
	if err != nil {
		log.Errorf("Error fetching customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching customers"})
		return
	}

	if search := c.Query("search"); search != "" {
		filtered := make([]Customer, 0, len(customers))
		needle := strings.ToLower(search)
		for _, customer := range customers {
			if strings.Contains(strings.ToLower(customer.Name), needle) || strings.Contains(customer.Phone, search) {
				filtered = append(filtered, customer)
			}
		}
		customers = filtered
	}

	c.JSON(http.StatusOK, customers)
}

// @Summary Get customer
// @Description Retrieve a single customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} Customer "Customer"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers/{id} [get]
func getCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := store.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		log.Errorf("Error fetching customer: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// @Summary Create customer
// @Description Create a new customer with a zero opening due
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body object{shop_id=string,name=string,phone=string,address=string,image_url=string} true "Customer data (shop_id and name required)"
// @Success 201 {object} Customer "Created customer"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers [post]
func createCustomer(c *gin.Context) {
	var request struct {
		ShopID   string  `json:"shop_id"`
		Name     string  `json:"name"`
		Phone    string  `json:"phone"`
		Address  *string `json:"address"`
		ImageURL *string `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopID, err := toPgUUID(request.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop_id"})
		return
	}

	params := CreateCustomerParams{
		ShopID: shopID,
		Name:   request.Name,
		Phone:  request.Phone,
	}
	if request.Address != nil && *request.Address != "" {
		params.Address = pgtype.Text{String: *request.Address, Valid: true}
	}
	if request.ImageURL != nil && *request.ImageURL != "" {
		params.ImageURL = pgtype.Text{String: *request.ImageURL, Valid: true}
	}

	customer, err := store.CreateCustomer(c.Request.Context(), params)
	if err != nil {
		log.Errorf("Error creating customer: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// @Summary Update customer
// @Description Update a customer's name, phone, address or image
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body object{name=string,phone=string,address=string,image_url=string} true "Editable customer fields"
// @Success 200 {object} Customer "Updated customer"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers/{id} [put]
func updateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var request struct {
		Name     string  `json:"name"`
		Phone    string  `json:"phone"`
		Address  *string `json:"address"`
		ImageURL *string `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := UpdateCustomerParams{
		ID:    id,
		Name:  request.Name,
		Phone: request.Phone,
	}
	if request.Address != nil && *request.Address != "" {
		params.Address = pgtype.Text{String: *request.Address, Valid: true}
	}
	if request.ImageURL != nil && *request.ImageURL != "" {
		params.ImageURL = pgtype.Text{String: *request.ImageURL, Valid: true}
	}

	customer, err := store.UpdateCustomer(c.Request.Context(), params)
	if err != nil {
		log.Errorf("Error updating customer: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// @Summary Delete customer
// @Description Delete a customer together with their transaction ledger
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} map[string]interface{} "Customer deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers/{id} [delete]
func deleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := store.DeleteCustomer(c.Request.Context(), id); err != nil {
		log.Errorf("Error deleting customer: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
