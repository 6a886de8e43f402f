package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

// createTestCashEntry creates a cash-book line and returns it
func createTestCashEntry(customerName string, amount float64) (CashEntry, error) {
	shopID, err := toPgUUID(testShopID)
	if err != nil {
		return CashEntry{}, err
	}

	return testStore.CreateCashEntry(context.Background(), CreateCashEntryParams{
		ShopID:       shopID,
		CustomerName: customerName,
		Amount:       amount,
	})
}

// TestGetCashEntries tests the GET /api/cashbook endpoint
func TestGetCashEntries(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should fail without shop_id", func(t *testing.T) {
		resp := makeRequest("GET", "/api/cashbook", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should return empty list when no entries exist", func(t *testing.T) {
		resp := makeRequest("GET", fmt.Sprintf("/api/cashbook?shop_id=%s", testShopID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var entries []CashEntry
		assertNoError(t, parseJSONResponse(resp, &entries))

		if len(entries) != 0 {
			t.Errorf("Expected empty list, got %d entries", len(entries))
		}
	})

	t.Run("should return entries and filter by customer name", func(t *testing.T) {
		_, err := createTestCashEntry("Walk-in Ravi", 50)
		assertNoError(t, err)

		_, err = createTestCashEntry("Walk-in Sita", 75)
		assertNoError(t, err)

		resp := makeRequest("GET", fmt.Sprintf("/api/cashbook?shop_id=%s", testShopID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var entries []CashEntry
		assertNoError(t, parseJSONResponse(resp, &entries))

		if len(entries) != 2 {
			t.Errorf("Expected 2 entries, got %d", len(entries))
		}

		resp = makeRequest("GET", fmt.Sprintf("/api/cashbook?shop_id=%s&search=sita", testShopID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assertNoError(t, parseJSONResponse(resp, &entries))

		if len(entries) != 1 || entries[0].CustomerName != "Walk-in Sita" {
			t.Errorf("Expected only Walk-in Sita, got %v", entries)
		}
	})
}

// TestCreateCashEntry tests the POST /api/cashbook endpoint
func TestCreateCashEntry(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should create cash entry with valid data", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"shop_id":       testShopID,
			"customer_name": "Walk-in Ravi",
			"amount":        120.5,
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/cashbook", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var entry CashEntry
		assertNoError(t, parseJSONResponse(resp, &entry))

		if entry.CustomerName != "Walk-in Ravi" {
			t.Errorf("Expected name 'Walk-in Ravi', got '%s'", entry.CustomerName)
		}

		if entry.Amount != 120.5 {
			t.Errorf("Expected amount 120.5, got %f", entry.Amount)
		}

		if entry.ID == "" {
			t.Error("Expected non-empty ID")
		}
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"shop_id":       testShopID,
			"customer_name": "",
			"amount":        50.0,
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/cashbook", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should fail with non-positive amount", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"shop_id":       testShopID,
			"customer_name": "Walk-in Ravi",
			"amount":        -10.0,
		}

		body, err := json.Marshal(requestBody)
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/cashbook", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should fail with invalid JSON", func(t *testing.T) {
		resp := makeRequest("POST", "/api/cashbook", bytes.NewBufferString("invalid json"))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestDeleteCashEntry tests the DELETE /api/cashbook/:id endpoint
func TestDeleteCashEntry(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should delete existing entry", func(t *testing.T) {
		entry, err := createTestCashEntry("Walk-in Ravi", 50)
		assertNoError(t, err)

		resp := makeRequest("DELETE", fmt.Sprintf("/api/cashbook/%s", entry.ID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		// Entry is gone
		resp = makeRequest("GET", fmt.Sprintf("/api/cashbook?shop_id=%s", testShopID), nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var entries []CashEntry
		assertNoError(t, parseJSONResponse(resp, &entries))

		if len(entries) != 0 {
			t.Errorf("Expected 0 entries after deletion, got %d", len(entries))
		}
	})

	t.Run("should fail with non-existent entry ID", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/cashbook/550e8400-e29b-41d4-a716-446655440000", nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should fail with invalid UUID format", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/cashbook/invalid-uuid", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}
