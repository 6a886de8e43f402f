package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

// TestGetCustomerTransactions tests the GET /api/customers/:id/transactions endpoint
func TestGetCustomerTransactions(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should return empty list for customer with no transactions", func(t *testing.T) {
		customer, err := createTestCustomer("Ravi Kumar", "9876543210")
		assertNoError(t, err)

		resp := makeRequest("GET", fmt.Sprintf("/api/customers/%s/transactions", customer.ID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var transactions []Transaction
		assertNoError(t, parseJSONResponse(resp, &transactions))

		if len(transactions) != 0 {
			t.Errorf("Expected empty list, got %d transactions", len(transactions))
		}
	})

	t.Run("should return transactions oldest first", func(t *testing.T) {
		customer, err := createTestCustomer("Sita Devi", "9876500000")
		assertNoError(t, err)

		_, err = insertTestTransaction(customer.ID, TransactionTypeSale, 100, timeNowMinusDays(3))
		assertNoError(t, err)
		_, err = insertTestTransaction(customer.ID, TransactionTypePayment, 40, timeNowMinusDays(1))
		assertNoError(t, err)

		resp := makeRequest("GET", fmt.Sprintf("/api/customers/%s/transactions", customer.ID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var transactions []Transaction
		assertNoError(t, parseJSONResponse(resp, &transactions))

		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}

		if transactions[0].TransactionType != TransactionTypeSale {
			t.Errorf("Expected oldest transaction first, got %s", transactions[0].TransactionType)
		}

		if !transactions[0].CreatedAt.Before(transactions[1].CreatedAt) {
			t.Error("Expected transactions ordered oldest first")
		}
	})

	t.Run("should fail with invalid UUID format", func(t *testing.T) {
		resp := makeRequest("GET", "/api/customers/invalid-uuid/transactions", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestCreateTransaction tests the POST /api/transactions endpoint
func TestCreateTransaction(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should record a sale and raise the customer's due", func(t *testing.T) {
		customer, err := createTestCustomer("Ravi Kumar", "9876543210")
		assertNoError(t, err)

		requestBody := map[string]interface{}{
			"customer_id":      customer.ID,
			"shop_id":          testShopID,
			"transaction_type": "sale",
			"amount":           250.0,
			"notes":            "Rice bag",
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var result struct {
			Transaction Transaction `json:"transaction"`
			DueAmount   float64     `json:"due_amount"`
			Message     string      `json:"message"`
			WhatsAppURL string      `json:"whatsapp_url"`
		}
		assertNoError(t, parseJSONResponse(resp, &result))

		if result.Transaction.TotalAmount != 250 {
			t.Errorf("Expected total_amount 250, got %f", result.Transaction.TotalAmount)
		}

		if result.Transaction.AmountPaid != 0 {
			t.Errorf("Expected amount_paid 0, got %f", result.Transaction.AmountPaid)
		}

		if result.DueAmount != 250 {
			t.Errorf("Expected due 250, got %f", result.DueAmount)
		}

		if !strings.Contains(result.Message, "*Purchased : 250₹*") {
			t.Errorf("Expected purchase confirmation, got %q", result.Message)
		}

		if !strings.HasPrefix(result.WhatsAppURL, "https://wa.me/919876543210?text=") {
			t.Errorf("Expected wa.me link for customer phone, got %q", result.WhatsAppURL)
		}
	})

	t.Run("should record a payment and lower the customer's due", func(t *testing.T) {
		customer, err := createTestCustomer("Sita Devi", "9876500000")
		assertNoError(t, err)

		_, err = insertTestTransaction(customer.ID, TransactionTypeSale, 300, timeNowMinusDays(2))
		assertNoError(t, err)

		requestBody := map[string]interface{}{
			"customer_id":      customer.ID,
			"shop_id":          testShopID,
			"transaction_type": "payment",
			"amount":           100.0,
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var result struct {
			Transaction Transaction `json:"transaction"`
			DueAmount   float64     `json:"due_amount"`
			Message     string      `json:"message"`
		}
		assertNoError(t, parseJSONResponse(resp, &result))

		if result.Transaction.AmountPaid != 100 {
			t.Errorf("Expected amount_paid 100, got %f", result.Transaction.AmountPaid)
		}

		if result.DueAmount != 200 {
			t.Errorf("Expected due 200, got %f", result.DueAmount)
		}

		if !strings.Contains(result.Message, "Total Due *₹200.00*") {
			t.Errorf("Expected remaining due in confirmation, got %q", result.Message)
		}
	})

	t.Run("should fail with unknown transaction type", func(t *testing.T) {
		customer, err := createTestCustomer("Type Check", "9876511111")
		assertNoError(t, err)

		requestBody := map[string]interface{}{
			"customer_id":      customer.ID,
			"shop_id":          testShopID,
			"transaction_type": "refund",
			"amount":           50.0,
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should fail with non-positive amount", func(t *testing.T) {
		customer, err := createTestCustomer("Amount Check", "9876522222")
		assertNoError(t, err)

		requestBody := map[string]interface{}{
			"customer_id":      customer.ID,
			"shop_id":          testShopID,
			"transaction_type": "sale",
			"amount":           0.0,
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should fail with non-existent customer", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"customer_id":      "550e8400-e29b-41d4-a716-446655440000",
			"shop_id":          testShopID,
			"transaction_type": "sale",
			"amount":           50.0,
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/transactions", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should fail with invalid JSON", func(t *testing.T) {
		resp := makeRequest("POST", "/api/transactions", bytes.NewBufferString("invalid json"))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestDeleteTransaction tests the DELETE /api/transactions/:id endpoint
func TestDeleteTransaction(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should delete transaction and reverse the due movement", func(t *testing.T) {
		customer, err := createTestCustomer("Ravi Kumar", "9876543210")
		assertNoError(t, err)

		transactionID, err := insertTestTransaction(customer.ID, TransactionTypeSale, 300, timeNowMinusDays(1))
		assertNoError(t, err)

		resp := makeRequest("DELETE", fmt.Sprintf("/api/transactions/%s", transactionID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var result struct {
			Message   string  `json:"message"`
			DueAmount float64 `json:"due_amount"`
		}
		assertNoError(t, parseJSONResponse(resp, &result))

		if result.DueAmount != 0 {
			t.Errorf("Expected due back to 0, got %f", result.DueAmount)
		}

		// Ledger is empty again
		resp = makeRequest("GET", fmt.Sprintf("/api/customers/%s/transactions", customer.ID), nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var transactions []Transaction
		assertNoError(t, parseJSONResponse(resp, &transactions))

		if len(transactions) != 0 {
			t.Errorf("Expected 0 transactions after deletion, got %d", len(transactions))
		}
	})

	t.Run("should reverse a payment deletion as well", func(t *testing.T) {
		customer, err := createTestCustomer("Sita Devi", "9876500000")
		assertNoError(t, err)

		_, err = insertTestTransaction(customer.ID, TransactionTypeSale, 300, timeNowMinusDays(2))
		assertNoError(t, err)
		paymentID, err := insertTestTransaction(customer.ID, TransactionTypePayment, 100, timeNowMinusDays(1))
		assertNoError(t, err)

		resp := makeRequest("DELETE", fmt.Sprintf("/api/transactions/%s", paymentID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var result struct {
			DueAmount float64 `json:"due_amount"`
		}
		assertNoError(t, parseJSONResponse(resp, &result))

		if result.DueAmount != 300 {
			t.Errorf("Expected due restored to 300, got %f", result.DueAmount)
		}
	})

	t.Run("should fail with non-existent transaction ID", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/transactions/550e8400-e29b-41d4-a716-446655440000", nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should fail with invalid UUID format", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/transactions/invalid-uuid", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}
