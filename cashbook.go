package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Cash-book ("chillar khata") handler functions: quick one-line cash
// credits for walk-in customers who are not on the books.

// @Summary Get cash entries
// @Description Retrieve a shop's cash-book lines, newest first, optionally filtered by customer name
// @Tags cashbook
// @Produce json
// @Param shop_id query string true "Shop ID"
// @Param search query string false "Substring match on customer name"
// @Success 200 {array} CashEntry "List of cash entries"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/cashbook [get]
func getCashEntries(c *gin.Context) {
	shopID, ok := parseShopID(c)
	if !ok {
		return
	}

	entries, err := store.GetCashEntries(c.Request.Context(), shopID)
	if err != nil {
		log.Errorf("Error fetching cash entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cash entries"})
		return
	}

	if search := c.Query("search"); search != "" {
		filtered := make([]CashEntry, 0, len(entries))
		needle := strings.ToLower(search)
		for _, entry := range entries {
			if strings.Contains(strings.ToLower(entry.CustomerName), needle) {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary Create cash entry
// @Description Record a quick cash-book credit line
// @Tags cashbook
// @Accept json
// @Produce json
// @Param entry body object{shop_id=string,customer_name=string,amount=number} true "Cash entry data"
// @Success 201 {object} CashEntry "Created cash entry"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/cashbook [post]
func createCashEntry(c *gin.Context) {
	var request struct {
		ShopID       string  `json:"shop_id"`
		CustomerName string  `json:"customer_name"`
		Amount       float64 `json:"amount"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.CustomerName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateAmount(request.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopID, err := toPgUUID(request.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop_id"})
		return
	}

	entry, err := store.CreateCashEntry(c.Request.Context(), CreateCashEntryParams{
		ShopID:       shopID,
		CustomerName: request.CustomerName,
		Amount:       request.Amount,
	})
	if err != nil {
		log.Errorf("Error creating cash entry: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// @Summary Delete cash entry
// @Description Delete a cash-book line by ID
// @Tags cashbook
// @Produce json
// @Param id path string true "Cash entry ID"
// @Success 200 {object} map[string]interface{} "Cash entry deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Cash entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/cashbook/{id} [delete]
func deleteCashEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := store.DeleteCashEntry(c.Request.Context(), id); err != nil {
		log.Errorf("Error deleting cash entry: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cash entry deleted successfully"})
}
