package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Statement pagination. A customer's ledger is rendered as a sequence of
// pages, each closing on a payment, so a single page can be printed or
// sent as a bounded statement instead of the whole history.

const (
	statementItemWidth  = 12
	statementPriceWidth = 10
	statementItemMax    = 14
)

// splitStatementPages partitions transactions (ascending by created_at)
// into pages. Every payment closes the current page; a trailing run of
// unpaid sales becomes a final open page. Input order is trusted and
// preserved.
func splitStatementPages(transactions []Transaction) [][]Transaction {
	pages := make([][]Transaction, 0)
	var current []Transaction

	for _, tx := range transactions {
		current = append(current, tx)
		if tx.TransactionType == TransactionTypePayment {
			pages = append(pages, current)
			current = nil
		}
	}

	if len(current) > 0 {
		pages = append(pages, current)
	}

	return pages
}

// pageNet is the net due movement of one page: sales minus payments.
func pageNet(page []Transaction) decimal.Decimal {
	net := decimal.Zero
	for _, tx := range page {
		net = net.Add(decimal.NewFromFloat(tx.TotalAmount))
		net = net.Sub(decimal.NewFromFloat(tx.AmountPaid))
	}
	return net
}

// buildStatementPages runs the balance pass over split pages: each page
// carries the cumulative due of all earlier pages as PreviousDue and its
// own net as PageTotal.
func buildStatementPages(transactions []Transaction) []StatementPage {
	split := splitStatementPages(transactions)
	pages := make([]StatementPage, 0, len(split))

	previousDue := decimal.Zero
	for _, page := range split {
		net := pageNet(page)
		currentDue := previousDue.Add(net)

		last := page[len(page)-1]
		pages = append(pages, StatementPage{
			Transactions: page,
			PageTotal:    net.InexactFloat64(),
			PreviousDue:  previousDue.InexactFloat64(),
			CurrentDue:   currentDue.InexactFloat64(),
			Closed:       last.TransactionType == TransactionTypePayment,
		})

		previousDue = currentDue
	}

	return pages
}

// statementItemLabel picks the printable item text for a statement line.
func statementItemLabel(tx Transaction) string {
	item := tx.Notes
	if item == "" {
		if tx.TransactionType == TransactionTypeSale {
			item = "Purchase"
		} else {
			item = "Payment"
		}
	}

	runes := []rune(item)
	if len(runes) > statementItemMax {
		item = string(runes[:statementItemMax-1]) + "…"
	}
	return item
}

// statementMessage renders the latest page of a customer's ledger as a
// WhatsApp message: previous due when carried over, a fixed-width line per
// transaction, and the customer's total due.
func statementMessage(customer Customer, pages []StatementPage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi *%s* గారు,\n\nమీ ఖాతా బిల్లు:\n", customer.Name)

	latest := pages[len(pages)-1]
	if latest.PreviousDue > 0 {
		fmt.Fprintf(&b, "\n*Previous Due:* ₹%.2f\n\n", latest.PreviousDue)
	}

	b.WriteString("```")
	b.WriteString(padEnd("Item", statementItemWidth) + padEnd("Price", statementPriceWidth) + "Date\n\n")
	for _, tx := range latest.Transactions {
		var price string
		if tx.TransactionType == TransactionTypeSale {
			price = fmt.Sprintf("+%v", tx.TotalAmount)
		} else {
			price = fmt.Sprintf("-%v", tx.AmountPaid)
		}
		b.WriteString(padEnd(statementItemLabel(tx), statementItemWidth))
		b.WriteString(padEnd(price, statementPriceWidth))
		b.WriteString(formatShortDate(tx.CreatedAt) + "\n")
	}
	b.WriteString("```")

	fmt.Fprintf(&b, "\n*Total Due:* *₹%.2f*\n\nThank you!", latest.CurrentDue)

	return b.String()
}

// transactionMessage is the one-line confirmation sent right after a
// transaction is recorded. dueAfter is the customer's due as updated by
// the store.
func transactionMessage(tx Transaction, dueAfter float64) string {
	label := "Purchased"
	amount := tx.TotalAmount
	if tx.TransactionType == TransactionTypePayment {
		label = "Paid"
		amount = tx.AmountPaid
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s : %v₹*", label, amount)
	if tx.Notes != "" {
		fmt.Fprintf(&b, " , %s", tx.Notes)
	}
	fmt.Fprintf(&b, " , %s, %s", formatShortTime(tx.CreatedAt), formatShortDate(tx.CreatedAt))
	if tx.TransactionType == TransactionTypePayment {
		fmt.Fprintf(&b, "\n\nTotal Due *₹%.2f*.", dueAfter)
	}
	return b.String()
}

// waLink builds a click-to-chat URL for an Indian phone number.
func waLink(phone, message string) string {
	return "https://wa.me/91" + digitsOnly(phone) + "?text=" + url.QueryEscape(message)
}

// @Summary Get customer statement
// @Description Get a customer's transaction history split into statement pages, each closing on a payment and carrying the running due balance
// @Tags statements
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} StatementPage "Statement pages in chronological order"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers/{id}/statement [get]
func getStatement(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := store.GetCustomerByID(c.Request.Context(), customerID); err != nil {
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	transactions, err := store.GetTransactionsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Errorf("Error fetching transactions for statement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	c.JSON(http.StatusOK, buildStatementPages(transactions))
}

// @Summary Get statement message
// @Description Render the latest statement page as a WhatsApp message with a click-to-chat link
// @Tags statements
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} StatementMessage "Message text and wa.me URL"
// @Failure 400 {object} map[string]interface{} "Bad request (no transactions to send)"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/customers/{id}/statement/message [get]
func getStatementMessage(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := store.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	transactions, err := store.GetTransactionsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Errorf("Error fetching transactions for statement message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	pages := buildStatementPages(transactions)
	if len(pages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No transaction data to send"})
		return
	}

	message := statementMessage(customer, pages)
	c.JSON(http.StatusOK, StatementMessage{
		Message:     message,
		WhatsAppURL: waLink(customer.Phone, message),
	})
}
