package service

import (
	"testing"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	infraRepo "github.com/ayumu-dev/regi-api/internal/infrastructure/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	DB          *gorm.DB
	ProductRepo repository.ProductRepository
	TxnRepo     repository.TransactionRepository
	OrderRepo   repository.OrderRepository
	Analytics   repository.AnalyticsRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.Order{},
		&entity.IdempotencyKey{},
	))

	return &testEnv{
		DB:          db,
		ProductRepo: infraRepo.NewProductRepository(db),
		TxnRepo:     infraRepo.NewTransactionRepository(db),
		OrderRepo:   infraRepo.NewOrderRepository(db),
		Analytics:   infraRepo.NewAnalyticsRepository(db),
	}
}

func (env *testEnv) seedProduct(t *testing.T, name string, price int64, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:     name,
		Code:     "PRD-" + name,
		Category: "Test",
		Price:    price,
		Stock:    stock,
	}
	require.NoError(t, env.DB.Create(product).Error)
	return product
}
