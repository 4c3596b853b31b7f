package orders

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	profiles := `
CREATE TABLE profiles (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  full_name TEXT,
  phone TEXT,
  role TEXT NOT NULL DEFAULT 'customer',
  created_at DATETIME,
  updated_at DATETIME
);`
	orders := `
CREATE TABLE orders (
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL,
  user_id TEXT,
  status TEXT NOT NULL,
  payment_method TEXT NOT NULL,
  payment_status TEXT NOT NULL,
  subtotal NUMERIC NOT NULL,
  tax NUMERIC NOT NULL,
  shipping_fee NUMERIC NOT NULL,
  total_amount NUMERIC NOT NULL,
  tracking_number TEXT,
  shipping_full_name TEXT NOT NULL,
  shipping_phone TEXT NOT NULL,
  shipping_address_line1 TEXT NOT NULL,
  shipping_address_line2 TEXT,
  shipping_city TEXT NOT NULL,
  shipping_state TEXT,
  shipping_postal_code TEXT,
  shipping_country TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT,
  product_name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  total_price NUMERIC NOT NULL,
  created_at DATETIME
);`
	for _, stmt := range []string{profiles, orders, orderItems} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB) (orderID, userID uuid.UUID) {
	t.Helper()
	orderID = uuid.New()
	userID = uuid.New()
	now := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)

	require.NoError(t, db.Exec(
		`INSERT INTO profiles (id, email, full_name, role, created_at, updated_at) VALUES (?, ?, ?, 'customer', ?, ?)`,
		userID.String(), "jane@example.com", "Jane Doe", now, now,
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO orders (id, order_number, user_id, status, payment_method, payment_status, subtotal, tax, shipping_fee, total_amount,
		  shipping_full_name, shipping_phone, shipping_address_line1, shipping_city, shipping_state, shipping_postal_code, shipping_country, created_at, updated_at)
		 VALUES (?, 'ORD-1001', ?, 'pending', 'card', 'paid', 100.00, 5.00, 10.00, 115.00,
		  'Jane Doe', '555-0100', '1 Bean Street', 'Portland', 'OR', '97201', 'US', ?, ?)`,
		orderID.String(), userID.String(), now, now,
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO order_items (id, order_id, product_name, quantity, unit_price, total_price, created_at) VALUES (?, ?, 'House Blend', 2, 10.00, 20.00, ?)`,
		uuid.NewString(), orderID.String(), now.Add(time.Minute),
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO order_items (id, order_id, product_name, quantity, unit_price, total_price, created_at) VALUES (?, ?, 'Espresso Grinder', 1, 80.00, 80.00, ?)`,
		uuid.NewString(), orderID.String(), now,
	).Error)
	return orderID, userID
}

func TestRepositoryFindWithDetails(t *testing.T) {
	db := setupOrdersTestDB(t)
	orderID, userID := seedOrder(t, db)

	order, err := NewRepository(db).FindWithDetails(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "ORD-1001", order.OrderNumber)
	require.NotNil(t, order.UserID)
	assert.Equal(t, userID, *order.UserID)
	assert.Equal(t, "115.00", order.TotalAmount.StringFixed(2))
	require.NotNil(t, order.ShippingState)
	assert.Equal(t, "OR", *order.ShippingState)
	assert.Nil(t, order.ShippingAddressLine2)

	require.NotNil(t, order.Profile)
	assert.Equal(t, "jane@example.com", order.Profile.Email)
	assert.Equal(t, "Jane Doe", order.Profile.DisplayName())

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Espresso Grinder", order.Items[0].ProductName)
	assert.Equal(t, "House Blend", order.Items[1].ProductName)
	assert.Equal(t, 2, order.Items[1].Quantity)
	assert.Equal(t, "20.00", order.Items[1].TotalPrice.StringFixed(2))
}

func TestRepositoryFindWithDetailsNotFound(t *testing.T) {
	db := setupOrdersTestDB(t)

	_, err := NewRepository(db).FindWithDetails(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "order not found", typed.Message())
}

func TestRepositoryFindWithDetailsDatabaseError(t *testing.T) {
	db := setupOrdersTestDB(t)
	require.NoError(t, db.Exec(`DROP TABLE orders`).Error)

	_, err := NewRepository(db).FindWithDetails(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
}
