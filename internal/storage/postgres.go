package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quickmenu/internal/domain"
	"quickmenu/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cafes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			owner_email TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			cafe_id TEXT NOT NULL REFERENCES cafes(id),
			name TEXT NOT NULL,
			price BIGINT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'Food',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			cafe_id TEXT NOT NULL,
			total_amount BIGINT NOT NULL,
			customer_name TEXT NOT NULL,
			table_number TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			status TEXT NOT NULL,
			payment_status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id),
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price BIGINT NOT NULL,
			quantity INT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateCafe(ctx context.Context, cafe *domain.Cafe) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO cafes (id, name, owner_email, address, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		cafe.ID, cafe.Name, cafe.OwnerEmail, cafe.Address, cafe.Phone,
	).Scan(&cafe.CreatedAt, &cafe.UpdatedAt)
}

func (r *PostgresRepository) GetCafe(ctx context.Context, id string) (*domain.Cafe, error) {
	var cafe domain.Cafe
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, owner_email, address, phone, is_active, created_at, updated_at
		 FROM cafes WHERE id = $1`, id).
		Scan(&cafe.ID, &cafe.Name, &cafe.OwnerEmail, &cafe.Address, &cafe.Phone,
			&cafe.IsActive, &cafe.CreatedAt, &cafe.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrCafeNotFound
	}
	if err != nil {
		return nil, err
	}

	menu, err := r.ListMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	cafe.Menu = menu
	return &cafe, nil
}

func (r *PostgresRepository) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, owner_email, address, phone, is_active, created_at, updated_at
		 FROM cafes
		 WHERE is_active = TRUE
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cafes := []domain.Cafe{}
	for rows.Next() {
		var cafe domain.Cafe
		if err := rows.Scan(&cafe.ID, &cafe.Name, &cafe.OwnerEmail, &cafe.Address,
			&cafe.Phone, &cafe.IsActive, &cafe.CreatedAt, &cafe.UpdatedAt); err != nil {
			continue
		}
		cafes = append(cafes, cafe)
	}
	return cafes, rows.Err()
}

func (r *PostgresRepository) UpdateCafe(ctx context.Context, cafe *domain.Cafe) error {
	err := r.DB.QueryRowContext(ctx,
		`UPDATE cafes SET name=$1, owner_email=$2, address=$3, phone=$4, updated_at=now()
		 WHERE id=$5
		 RETURNING created_at, updated_at`,
		cafe.Name, cafe.OwnerEmail, cafe.Address, cafe.Phone, cafe.ID).
		Scan(&cafe.CreatedAt, &cafe.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return service.ErrCafeNotFound
	}
	return err
}

func (r *PostgresRepository) SetCafeActive(ctx context.Context, id string, active bool) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE cafes SET is_active=$1, updated_at=now() WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return service.ErrCafeNotFound
	}
	return nil
}

func (r *PostgresRepository) ListMenu(ctx context.Context, cafeID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, cafe_id, name, price, description, category, available, created_at, updated_at
		 FROM menu_items
		 WHERE cafe_id = $1
		 ORDER BY created_at ASC`, cafeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.CafeID, &item.Name, &item.Price, &item.Description,
			&item.Category, &item.Available, &item.CreatedAt, &item.UpdatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO menu_items (id, cafe_id, name, price, description, category, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		item.ID, item.CafeID, item.Name, item.Price, item.Description, item.Category, item.Available).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, cafeID, itemID string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, cafe_id, name, price, description, category, available, created_at, updated_at
		 FROM menu_items WHERE id = $1 AND cafe_id = $2`, itemID, cafeID).
		Scan(&item.ID, &item.CafeID, &item.Name, &item.Price, &item.Description,
			&item.Category, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx,
		`UPDATE menu_items SET name=$1, price=$2, description=$3, category=$4, available=$5, updated_at=now()
		 WHERE id=$6 AND cafe_id=$7
		 RETURNING created_at, updated_at`,
		item.Name, item.Price, item.Description, item.Category, item.Available, item.ID, item.CafeID).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return service.ErrMenuItemNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, cafeID, itemID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM menu_items WHERE id=$1 AND cafe_id=$2`, itemID, cafeID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return service.ErrMenuItemNotFound
	}
	return nil
}

// CreateOrder writes the order and its line snapshots in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx,
		`INSERT INTO orders (id, cafe_id, total_amount, customer_name, table_number, payment_method, status, payment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		order.ID, order.CafeID, order.TotalAmount, order.CustomerName, order.TableNumber,
		order.PaymentMethod, order.Status, order.PaymentStatus).
		Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5)`,
			order.ID, item.MenuItemID, item.Name, item.Price, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := r.scanOrder(r.DB.QueryRowContext(ctx,
		`SELECT id, cafe_id, total_amount, customer_name, table_number, payment_method, status, payment_status, created_at, updated_at
		 FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.loadOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *PostgresRepository) ListOrdersByCafe(ctx context.Context, cafeID string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, cafe_id, total_amount, customer_name, table_number, payment_method, status, payment_status, created_at, updated_at
		 FROM orders
		 WHERE cafe_id = $1
		 ORDER BY created_at DESC`, cafeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CafeID, &order.TotalAmount, &order.CustomerName,
			&order.TableNumber, &order.PaymentMethod, &order.Status, &order.PaymentStatus,
			&order.CreatedAt, &order.UpdatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.loadOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return r.updateOrderColumn(ctx,
		`UPDATE orders SET status=$1, updated_at=now() WHERE id=$2
		 RETURNING id, cafe_id, total_amount, customer_name, table_number, payment_method, status, payment_status, created_at, updated_at`,
		string(status), id)
}

func (r *PostgresRepository) UpdateOrderPayment(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Order, error) {
	return r.updateOrderColumn(ctx,
		`UPDATE orders SET payment_status=$1, updated_at=now() WHERE id=$2
		 RETURNING id, cafe_id, total_amount, customer_name, table_number, payment_method, status, payment_status, created_at, updated_at`,
		string(status), id)
}

func (r *PostgresRepository) updateOrderColumn(ctx context.Context, query, value, id string) (*domain.Order, error) {
	order, err := r.scanOrder(r.DB.QueryRowContext(ctx, query, value, id))
	if err != nil {
		return nil, err
	}
	items, err := r.loadOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *PostgresRepository) scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.CafeID, &order.TotalAmount, &order.CustomerName,
		&order.TableNumber, &order.PaymentMethod, &order.Status, &order.PaymentStatus,
		&order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) loadOrderItems(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT menu_item_id, name, price, quantity FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderLine{}
	for rows.Next() {
		var item domain.OrderLine
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var (
	_ service.CafeRepository  = (*PostgresRepository)(nil)
	_ service.OrderRepository = (*PostgresRepository)(nil)
)
