package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validateAmount validates that a money amount is positive
func validateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// validateTransactionType validates the sale/payment enum
func validateTransactionType(transactionType string) error {
	if transactionType != TransactionTypeSale && transactionType != TransactionTypePayment {
		return fmt.Errorf("transaction_type must be %q or %q", TransactionTypeSale, TransactionTypePayment)
	}
	return nil
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	errorStr := err.Error()

	// Check for unique constraint violations
	if strings.Contains(errorStr, "duplicate key value violates unique constraint") {
		return http.StatusConflict, "Resource already exists"
	}

	// Check for foreign key violations (e.g. transaction for a missing customer)
	if strings.Contains(errorStr, "violates foreign key constraint") {
		return http.StatusNotFound, "Customer not found"
	}

	// Check for not found errors
	if strings.Contains(errorStr, "no rows in result set") {
		return http.StatusNotFound, "Resource not found"
	}

	// Default to internal server error
	return http.StatusInternalServerError, "Internal server error"
}

// UUID helpers

// toPgUUID converts a string UUID to pgtype.UUID
func toPgUUID(value string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid UUID format: %s", value)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

// parseIDParam reads the :id path parameter and writes the 400 response
// itself when the value is not a UUID.
func parseIDParam(c *gin.Context) (pgtype.UUID, bool) {
	id, err := toPgUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return pgtype.UUID{}, false
	}
	return id, true
}

// parseShopID reads the required shop_id query parameter and writes the
// 400 response itself when it is missing or malformed.
func parseShopID(c *gin.Context) (pgtype.UUID, bool) {
	value := c.Query("shop_id")
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shop_id is required"})
		return pgtype.UUID{}, false
	}

	shopID, err := toPgUUID(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop_id"})
		return pgtype.UUID{}, false
	}
	return shopID, true
}

// Formatting helpers for the WhatsApp messages

// padEnd pads s with spaces to width; longer strings pass through.
func padEnd(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// digitsOnly strips everything but digits from a phone number
func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatShortDate renders dd/mm/yy, the date style used on statements
func formatShortDate(t time.Time) string {
	return t.Format("02/01/06")
}

// formatShortTime renders a lowercase 12-hour time ("3:04 pm")
func formatShortTime(t time.Time) string {
	return strings.ToLower(t.Format("3:04 PM"))
}
