package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Transaction handler functions

// @Summary Get customer transactions
// @Description Retrieve a customer's full ledger, oldest first
// @Tags transactions
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} Transaction "List of transactions"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers/{id}/transactions [get]
func getCustomerTransactions(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	transactions, err := store.GetTransactionsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Errorf("Error fetching transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary Create transaction
// @Description Record a sale or payment for a customer. The amount lands in the type-appropriate column and the customer's stored due moves accordingly.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body object{customer_id=string,shop_id=string,transaction_type=string,amount=number,notes=string} true "Transaction data"
// @Success 201 {object} map[string]interface{} "Created transaction, updated due and WhatsApp confirmation link"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [post]
func createTransaction(c *gin.Context) {
	var request struct {
		CustomerID      string  `json:"customer_id"`
		ShopID          string  `json:"shop_id"`
		TransactionType string  `json:"transaction_type"`
		Amount          float64 `json:"amount"`
		Notes           string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateTransactionType(request.TransactionType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateAmount(request.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, err := toPgUUID(request.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id"})
		return
	}
	shopID, err := toPgUUID(request.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop_id"})
		return
	}

	customer, err := store.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	params := CreateTransactionParams{
		CustomerID:      customerID,
		ShopID:          shopID,
		TransactionType: request.TransactionType,
		Notes:           request.Notes,
	}
	if request.TransactionType == TransactionTypeSale {
		params.TotalAmount = request.Amount
	} else {
		params.AmountPaid = request.Amount
	}

	transaction, dueAfter, err := store.CreateTransaction(c.Request.Context(), params)
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	message := transactionMessage(transaction, dueAfter)
	c.JSON(http.StatusCreated, gin.H{
		"transaction":  transaction,
		"due_amount":   dueAfter,
		"message":      message,
		"whatsapp_url": waLink(customer.Phone, message),
	})
}

// @Summary Delete transaction
// @Description Delete a transaction and give its due movement back to the customer
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{} "Transaction deleted, updated due"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	dueAfter, err := store.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		log.Errorf("Error deleting transaction: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Transaction deleted successfully",
		"due_amount": dueAfter,
	})
}
