package main

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// RangeSelector is the analytics window chosen by the shopkeeper.
type RangeSelector string

const (
	RangeLast7Days  RangeSelector = "last-7-days"
	RangeLast30Days RangeSelector = "last-30-days"
	RangeThisMonth  RangeSelector = "this-month"
	RangeThisYear   RangeSelector = "this-year"
)

const topListSize = 5

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// parseRangeSelector validates a range query value. An empty value falls
// back to the 30-day window.
func parseRangeSelector(value string) (RangeSelector, error) {
	switch RangeSelector(value) {
	case RangeLast7Days, RangeLast30Days, RangeThisMonth, RangeThisYear:
		return RangeSelector(value), nil
	case "":
		return RangeLast30Days, nil
	}
	return "", fmt.Errorf("unknown range %q", value)
}

// startDate resolves the filter boundary for the range, in now's location.
func (r RangeSelector) startDate(now time.Time) time.Time {
	switch r {
	case RangeLast7Days:
		return now.AddDate(0, 0, -7)
	case RangeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case RangeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return now.AddDate(0, 0, -30)
	}
}

// seriesDays is the number of calendar-day buckets the range's time series
// carries, ending on now's day.
func (r RangeSelector) seriesDays(now time.Time) int {
	switch r {
	case RangeLast7Days:
		return 7
	case RangeThisMonth:
		return now.Day()
	case RangeThisYear:
		return now.YearDay()
	default:
		return 30
	}
}

// aggregateAnalytics computes the full dashboard bundle from one snapshot
// of a shop's customers and transactions. now is injected so the result is
// deterministic; everything is recomputed from scratch on every call.
func aggregateAnalytics(customers []Customer, transactions []Transaction, rng RangeSelector, now time.Time) AnalyticsResult {
	startDate := rng.startDate(now)

	filtered := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !tx.CreatedAt.Before(startDate) {
			filtered = append(filtered, tx)
		}
	}

	// Due is a point-in-time snapshot over all customers, never
	// range-filtered.
	totalDue := decimal.Zero
	for _, cust := range customers {
		totalDue = totalDue.Add(decimal.NewFromFloat(cust.DueAmount))
	}

	totalCollected := decimal.Zero
	totalCredit := decimal.Zero
	for _, tx := range filtered {
		totalCollected = totalCollected.Add(decimal.NewFromFloat(tx.AmountPaid))
		totalCredit = totalCredit.Add(decimal.NewFromFloat(tx.TotalAmount))
	}

	customerCount := int64(len(customers))
	if customerCount == 0 {
		customerCount = 1
	}
	averageOrderValue := totalCollected.Div(decimal.NewFromInt(customerCount))

	debtDenominator := totalCollected.Add(totalDue)
	if debtDenominator.LessThan(decimal.NewFromInt(1)) {
		debtDenominator = decimal.NewFromInt(1)
	}
	debtRatio := totalDue.Div(debtDenominator).Mul(decimal.NewFromInt(100))

	return AnalyticsResult{
		Range:             string(rng),
		TotalDue:          totalDue.InexactFloat64(),
		TotalCustomers:    len(customers),
		TotalCollected:    totalCollected.InexactFloat64(),
		TotalCredit:       totalCredit.InexactFloat64(),
		AverageOrderValue: averageOrderValue.InexactFloat64(),
		DebtRatio:         debtRatio.InexactFloat64(),
		HighestDebtors:    highestDebtors(customers),
		SlowestPayers:     slowestPayers(customers, transactions, now),
		DailySeries:       dailySeries(filtered, rng, now),
		BusyDays:          busyDays(filtered),
		DuesDistribution:  duesDistribution(customers),
	}
}

// highestDebtors ranks customers with outstanding due, largest first.
func highestDebtors(customers []Customer) []Debtor {
	debtors := make([]Debtor, 0)
	for _, cust := range customers {
		if cust.DueAmount > 0 {
			debtors = append(debtors, Debtor{ID: cust.ID, Name: cust.Name, DueAmount: cust.DueAmount})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].DueAmount > debtors[j].DueAmount
	})

	if len(debtors) > topListSize {
		debtors = debtors[:topListSize]
	}
	return debtors
}

// slowestPayers ranks customers with outstanding due by the age of their
// oldest sale. Customers without any sale on the books are dropped.
func slowestPayers(customers []Customer, transactions []Transaction, now time.Time) []SlowPayer {
	oldestSale := make(map[string]time.Time)
	for _, tx := range transactions {
		if tx.TransactionType != TransactionTypeSale {
			continue
		}
		if current, ok := oldestSale[tx.CustomerID]; !ok || tx.CreatedAt.Before(current) {
			oldestSale[tx.CustomerID] = tx.CreatedAt
		}
	}

	payers := make([]SlowPayer, 0)
	for _, cust := range customers {
		if cust.DueAmount <= 0 {
			continue
		}
		oldest, ok := oldestSale[cust.ID]
		if !ok {
			continue
		}
		payers = append(payers, SlowPayer{
			ID:          cust.ID,
			Name:        cust.Name,
			DueAmount:   cust.DueAmount,
			DaysOverdue: int(now.Sub(oldest).Hours() / 24),
		})
	}

	sort.SliceStable(payers, func(i, j int) bool {
		if payers[i].DaysOverdue != payers[j].DaysOverdue {
			return payers[i].DaysOverdue > payers[j].DaysOverdue
		}
		return payers[i].DueAmount > payers[j].DueAmount
	})

	if len(payers) > topListSize {
		payers = payers[:topListSize]
	}
	return payers
}

// dailySeries buckets filtered transactions into one point per calendar
// day, ending on now's day. Transactions outside the bucket window are
// silently dropped; the ISO date is the lookup key, the label is display
// only.
func dailySeries(filtered []Transaction, rng RangeSelector, now time.Time) []SeriesPoint {
	days := rng.seriesDays(now)
	points := make([]SeriesPoint, 0, days)
	index := make(map[string]int, days)

	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		index[key] = len(points)
		points = append(points, SeriesPoint{
			Date:  key,
			Label: day.Format("02 Jan"),
		})
	}

	for _, tx := range filtered {
		key := tx.CreatedAt.In(now.Location()).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		points[i].Credit = decimal.NewFromFloat(points[i].Credit).
			Add(decimal.NewFromFloat(tx.TotalAmount)).InexactFloat64()
		points[i].Collected = decimal.NewFromFloat(points[i].Collected).
			Add(decimal.NewFromFloat(tx.AmountPaid)).InexactFloat64()
		points[i].Count++
	}

	return points
}

// busyDays counts filtered transactions per weekday, always emitting the
// seven buckets in Sun→Sat order.
func busyDays(filtered []Transaction) []WeekdayCount {
	counts := make([]WeekdayCount, 7)
	for i, name := range weekdayNames {
		counts[i].Name = name
	}
	for _, tx := range filtered {
		counts[int(tx.CreatedAt.Weekday())].Count++
	}
	return counts
}

// duesDistribution keeps the five largest dues individually and folds the
// rest into an "Others" slice when they amount to anything.
func duesDistribution(customers []Customer) []DueSlice {
	sorted := make([]Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueAmount > sorted[j].DueAmount
	})

	slices := make([]DueSlice, 0, topListSize+1)
	others := decimal.Zero
	for i, cust := range sorted {
		if i < topListSize {
			slices = append(slices, DueSlice{Name: cust.Name, Value: cust.DueAmount})
			continue
		}
		others = others.Add(decimal.NewFromFloat(cust.DueAmount))
	}

	if others.IsPositive() {
		slices = append(slices, DueSlice{Name: "Others", Value: others.InexactFloat64()})
	}
	return slices
}

// @Summary Get shop analytics
// @Description Compute summary metrics, daily series, weekday histogram, debtor rankings and dues distribution for a shop and date range
// @Tags analytics
// @Produce json
// @Param shop_id query string true "Shop ID"
// @Param range query string false "Range selector: last-7-days, last-30-days, this-month, this-year (default last-30-days)"
// @Success 200 {object} AnalyticsResult "Analytics bundle"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/analytics [get]
func getAnalytics(c *gin.Context) {
	shopID, ok := parseShopID(c)
	if !ok {
		return
	}

	rng, err := parseRangeSelector(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customers, err := store.GetCustomers(c.Request.Context(), shopID)
	if err != nil {
		log.Errorf("Error fetching customers for analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching customers"})
		return
	}

	transactions, err := store.GetTransactions(c.Request.Context(), shopID, nil)
	if err != nil {
		log.Errorf("Error fetching transactions for analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	c.JSON(http.StatusOK, aggregateAnalytics(customers, transactions, rng, time.Now()))
}

// @Summary Get dashboard summary
// @Description Get the landing-page snapshot: customer count, total due and today's collection
// @Tags analytics
// @Produce json
// @Param shop_id query string true "Shop ID"
// @Success 200 {object} DashboardSummary "Dashboard summary"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/dashboard [get]
func getDashboard(c *gin.Context) {
	shopID, ok := parseShopID(c)
	if !ok {
		return
	}

	customers, err := store.GetCustomers(c.Request.Context(), shopID)
	if err != nil {
		log.Errorf("Error fetching customers for dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching customers"})
		return
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todays, err := store.GetTransactions(c.Request.Context(), shopID, &midnight)
	if err != nil {
		log.Errorf("Error fetching today's transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	totalDue := decimal.Zero
	for _, cust := range customers {
		totalDue = totalDue.Add(decimal.NewFromFloat(cust.DueAmount))
	}
	collection := decimal.Zero
	for _, tx := range todays {
		collection = collection.Add(decimal.NewFromFloat(tx.AmountPaid))
	}

	c.JSON(http.StatusOK, DashboardSummary{
		TotalCustomers:   len(customers),
		TotalDue:         totalDue.InexactFloat64(),
		TodaysCollection: collection.InexactFloat64(),
	})
}
