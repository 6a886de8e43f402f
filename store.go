package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the ledger store: all reads and writes go through here, and it
// owns the customers' due_amount — every transaction insert/delete adjusts
// the stored due in the same database transaction.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CreateCustomerParams carries the insertable customer fields.
type CreateCustomerParams struct {
	ShopID   pgtype.UUID
	Name     string
	Phone    string
	Address  pgtype.Text
	ImageURL pgtype.Text
}

// UpdateCustomerParams carries the editable customer fields.
type UpdateCustomerParams struct {
	ID       pgtype.UUID
	Name     string
	Phone    string
	Address  pgtype.Text
	ImageURL pgtype.Text
}

// CreateTransactionParams carries the insertable transaction fields. The
// caller guarantees that only the type-appropriate amount is non-zero.
type CreateTransactionParams struct {
	CustomerID      pgtype.UUID
	ShopID          pgtype.UUID
	TransactionType string
	TotalAmount     float64
	AmountPaid      float64
	Notes           string
}

// CreateCashEntryParams carries the insertable cash-book fields.
type CreateCashEntryParams struct {
	ShopID       pgtype.UUID
	CustomerName string
	Amount       float64
}

// CreateProductParams carries the insertable product fields.
type CreateProductParams struct {
	ShopID       pgtype.UUID
	Name         string
	Unit         string
	SellingPrice float64
	Category     string
}

// UpdateProductParams carries the editable product fields.
type UpdateProductParams struct {
	ID           pgtype.UUID
	Name         string
	Unit         string
	SellingPrice float64
	Category     string
}

const customerColumns = "id, shop_id, name, phone, address, image_url, due_amount, created_at, updated_at"

func scanCustomer(row pgx.Row) (Customer, error) {
	var c Customer
	var id, shopID pgtype.UUID
	var address, imageURL pgtype.Text

	err := row.Scan(&id, &shopID, &c.Name, &c.Phone, &address, &imageURL, &c.DueAmount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return Customer{}, err
	}

	c.ID = uuid.UUID(id.Bytes).String()
	c.ShopID = uuid.UUID(shopID.Bytes).String()
	if address.Valid {
		c.Address = &address.String
	}
	if imageURL.Valid {
		c.ImageURL = &imageURL.String
	}
	return c, nil
}

// GetCustomers returns a shop's customers, highest due first.
func (s *Store) GetCustomers(ctx context.Context, shopID pgtype.UUID) ([]Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE shop_id = $1
		ORDER BY due_amount DESC, created_at DESC
	`, shopID)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	customers := make([]Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (s *Store) GetCustomerByID(ctx context.Context, id pgtype.UUID) (Customer, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1
	`, id)
	return scanCustomer(row)
}

func (s *Store) CreateCustomer(ctx context.Context, params CreateCustomerParams) (Customer, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO customers (shop_id, name, phone, address, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+customerColumns+`
	`, params.ShopID, params.Name, params.Phone, params.Address, params.ImageURL)
	return scanCustomer(row)
}

func (s *Store) UpdateCustomer(ctx context.Context, params UpdateCustomerParams) (Customer, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, image_url = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+customerColumns+`
	`, params.ID, params.Name, params.Phone, params.Address, params.ImageURL)
	return scanCustomer(row)
}

// DeleteCustomer removes a customer together with their ledger.
func (s *Store) DeleteCustomer(ctx context.Context, id pgtype.UUID) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning delete customer: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM transactions WHERE customer_id = $1", id); err != nil {
		return fmt.Errorf("deleting customer transactions: %w", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

const transactionColumns = "id, customer_id, shop_id, transaction_type, total_amount, amount_paid, notes, created_at"

func scanTransaction(row pgx.Row) (Transaction, error) {
	var t Transaction
	var id, customerID, shopID pgtype.UUID

	err := row.Scan(&id, &customerID, &shopID, &t.TransactionType, &t.TotalAmount, &t.AmountPaid, &t.Notes, &t.CreatedAt)
	if err != nil {
		return Transaction{}, err
	}

	t.ID = uuid.UUID(id.Bytes).String()
	t.CustomerID = uuid.UUID(customerID.Bytes).String()
	t.ShopID = uuid.UUID(shopID.Bytes).String()
	return t, nil
}

func collectTransactions(rows pgx.Rows) ([]Transaction, error) {
	defer rows.Close()

	transactions := make([]Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

// GetTransactionsByCustomer returns one customer's ledger oldest-first —
// the ordering the statement paginator trusts.
func (s *Store) GetTransactionsByCustomer(ctx context.Context, customerID pgtype.UUID) ([]Transaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE customer_id = $1
		ORDER BY created_at ASC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying customer transactions: %w", err)
	}
	return collectTransactions(rows)
}

// GetTransactions returns a shop's transactions, optionally limited to
// those created at or after since.
func (s *Store) GetTransactions(ctx context.Context, shopID pgtype.UUID, since *time.Time) ([]Transaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE shop_id = $1 AND ($2::timestamptz IS NULL OR created_at >= $2)
		ORDER BY created_at ASC
	`, shopID, since)
	if err != nil {
		return nil, fmt.Errorf("querying shop transactions: %w", err)
	}
	return collectTransactions(rows)
}

// CreateTransaction inserts a ledger entry and moves the owning customer's
// due_amount by sales minus payments, atomically. It returns the new row
// and the customer's due after the move.
func (s *Store) CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, float64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Transaction{}, 0, fmt.Errorf("beginning create transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO transactions (customer_id, shop_id, transaction_type, total_amount, amount_paid, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+transactionColumns+`
	`, params.CustomerID, params.ShopID, params.TransactionType, params.TotalAmount, params.AmountPaid, params.Notes)

	created, err := scanTransaction(row)
	if err != nil {
		return Transaction{}, 0, fmt.Errorf("inserting transaction: %w", err)
	}

	var dueAfter float64
	err = tx.QueryRow(ctx, `
		UPDATE customers
		SET due_amount = due_amount + $2 - $3, updated_at = now()
		WHERE id = $1
		RETURNING due_amount
	`, params.CustomerID, params.TotalAmount, params.AmountPaid).Scan(&dueAfter)
	if err != nil {
		return Transaction{}, 0, fmt.Errorf("updating customer due: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Transaction{}, 0, fmt.Errorf("committing create transaction: %w", err)
	}
	return created, dueAfter, nil
}

// DeleteTransaction removes a ledger entry and gives its due movement back
// to the customer, atomically. It returns the customer's due after the
// reversal.
func (s *Store) DeleteTransaction(ctx context.Context, id pgtype.UUID) (float64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		DELETE FROM transactions
		WHERE id = $1
		RETURNING `+transactionColumns+`
	`, id)

	deleted, err := scanTransaction(row)
	if err != nil {
		return 0, fmt.Errorf("deleting transaction: %w", err)
	}

	customerID, err := uuid.Parse(deleted.CustomerID)
	if err != nil {
		return 0, fmt.Errorf("parsing customer id: %w", err)
	}

	var dueAfter float64
	err = tx.QueryRow(ctx, `
		UPDATE customers
		SET due_amount = due_amount - $2 + $3, updated_at = now()
		WHERE id = $1
		RETURNING due_amount
	`, pgtype.UUID{Bytes: customerID, Valid: true}, deleted.TotalAmount, deleted.AmountPaid).Scan(&dueAfter)
	if err != nil {
		return 0, fmt.Errorf("reversing customer due: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing delete transaction: %w", err)
	}
	return dueAfter, nil
}

func scanCashEntry(row pgx.Row) (CashEntry, error) {
	var e CashEntry
	var id, shopID pgtype.UUID

	err := row.Scan(&id, &shopID, &e.CustomerName, &e.Amount, &e.CreatedAt)
	if err != nil {
		return CashEntry{}, err
	}

	e.ID = uuid.UUID(id.Bytes).String()
	e.ShopID = uuid.UUID(shopID.Bytes).String()
	return e, nil
}

// GetCashEntries returns a shop's cash-book lines, newest first.
func (s *Store) GetCashEntries(ctx context.Context, shopID pgtype.UUID) ([]CashEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, shop_id, customer_name, amount, created_at
		FROM cash_entries
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`, shopID)
	if err != nil {
		return nil, fmt.Errorf("querying cash entries: %w", err)
	}
	defer rows.Close()

	entries := make([]CashEntry, 0)
	for rows.Next() {
		entry, err := scanCashEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cash entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) CreateCashEntry(ctx context.Context, params CreateCashEntryParams) (CashEntry, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO cash_entries (shop_id, customer_name, amount)
		VALUES ($1, $2, $3)
		RETURNING id, shop_id, customer_name, amount, created_at
	`, params.ShopID, params.CustomerName, params.Amount)
	return scanCashEntry(row)
}

func (s *Store) DeleteCashEntry(ctx context.Context, id pgtype.UUID) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM cash_entries WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const productColumns = "id, shop_id, name, unit, selling_price, category, created_at, updated_at"

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	var id, shopID pgtype.UUID

	err := row.Scan(&id, &shopID, &p.Name, &p.Unit, &p.SellingPrice, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}

	p.ID = uuid.UUID(id.Bytes).String()
	p.ShopID = uuid.UUID(shopID.Bytes).String()
	return p, nil
}

func (s *Store) GetProducts(ctx context.Context, shopID pgtype.UUID) ([]Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE shop_id = $1
		ORDER BY name ASC
	`, shopID)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (s *Store) CreateProduct(ctx context.Context, params CreateProductParams) (Product, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO products (shop_id, name, unit, selling_price, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns+`
	`, params.ShopID, params.Name, params.Unit, params.SellingPrice, params.Category)
	return scanProduct(row)
}

func (s *Store) UpdateProduct(ctx context.Context, params UpdateProductParams) (Product, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $2, unit = $3, selling_price = $4, category = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns+`
	`, params.ID, params.Name, params.Unit, params.SellingPrice, params.Category)
	return scanProduct(row)
}

func (s *Store) DeleteProduct(ctx context.Context, id pgtype.UUID) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
