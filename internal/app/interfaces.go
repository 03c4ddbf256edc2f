package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"github.com/talkbazaar/storefront/config"
	"github.com/talkbazaar/storefront/internal/catalog"
	"github.com/talkbazaar/storefront/internal/catalog/source"
	"github.com/talkbazaar/storefront/internal/currency"
	"github.com/talkbazaar/storefront/internal/store"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the three state containers
type StoreProvider interface {
	Cart() *store.CartStore
	Wishlist() *store.WishlistStore
	Orders() *store.OrderStore
}

// CatalogProvider provides the product snapshot and the filter pipeline
type CatalogProvider interface {
	Catalog() *source.Cache
	Pipeline() *catalog.Pipeline
}

// CurrencyProvider provides display-currency conversion
type CurrencyProvider interface {
	Converter() *currency.Converter
}

// BusProvider provides the state-change notification bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context
// Handlers should depend on specific providers or this combined interface
type AppContext interface {
	DBProvider
	ConfigProvider
	StoreProvider
	CatalogProvider
	CurrencyProvider
	BusProvider
	SchedulerProvider

	// Application lifecycle methods
	MigrateDB() error
	InitDb()
	DropAll()
	// RefreshCatalogNow reloads the product snapshot from the configured source
	RefreshCatalogNow() error
}
