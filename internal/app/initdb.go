package app

import (
	"fmt"
	"time"

	"github.com/talkbazaar/storefront/config"
	"github.com/talkbazaar/storefront/internal/catalog/source"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getDatabase(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	if cfg.MaxConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
	}
	if cfg.IdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.IdleConn)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db
}

// MigrateDB migrates the catalog tables.
func (a *Application) MigrateDB() error {
	if a.gormDB == nil {
		return nil
	}
	if err := a.gormDB.Migrator().AutoMigrate(source.Tables...); err != nil {
		zap.S().Error(err)
		return err
	}
	return nil
}

// DropAll drops the catalog tables.
func (a *Application) DropAll() {
	if a.gormDB == nil {
		return
	}
	_ = a.gormDB.Migrator().DropTable(source.Tables...)
}

// InitDb recreates the catalog tables and seeds demo products.
func (a *Application) InitDb() {
	if a.gormDB == nil {
		return
	}
	_ = a.gormDB.Migrator().DropTable(source.Tables...)
	if err := a.gormDB.Migrator().AutoMigrate(source.Tables...); err != nil {
		zap.S().Error(err)
		return
	}
	a.checkProducts()
}

// checkProducts seeds a handful of demo catalog products on an empty table.
func (a *Application) checkProducts() {
	var count int64
	a.gormDB.Model(&source.ProductRecord{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now()
	demo := []source.ProductRecord{
		{Title: "Classic Oxford Shirt", Brand: "Himal", Category: "mens-shirts", Description: "Cotton oxford shirt with button-down collar", Price: 45, Rating: 4.2, Stock: 120, Gender: "men", Sizes: "S,M,L,XL"},
		{Title: "Slim Fit Jeans", Brand: "Everest Denim", Category: "mens-pants", Description: "Stretch denim, slim through the leg", Price: 60, DiscountPercentage: 20, OnSale: true, Rating: 4.5, Stock: 80, Gender: "men", Sizes: "M,L,XL"},
		{Title: "Printed Kurti", Brand: "Sajha", Category: "womens-dresses", Description: "Lightweight printed kurti", Price: 35, Rating: 4.7, Stock: 60, Gender: "women", Sizes: "S,M,L"},
		{Title: "Aviator Sunglasses", Brand: "Raya", Category: "sunglasses", Description: "Polarized aviator sunglasses", Price: 25, DiscountPercentage: 10, OnSale: true, Rating: 4.0, Stock: 200, Sizes: ""},
	}
	for _, p := range demo {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to seed demo product", zap.String("title", p.Title), zap.Error(err))
		} else {
			zap.L().Info("seeded demo product", zap.String("title", p.Title))
		}
	}
}

// ImportCatalogCSV loads a product seed file into the catalog table and
// refreshes the snapshot.
func (a *Application) ImportCatalogCSV(path string) (int, error) {
	if a.gormDB == nil {
		return 0, fmt.Errorf("catalog database is not configured")
	}
	n, err := source.ImportCSV(a.gormDB, path)
	if err != nil {
		return 0, err
	}
	zap.S().Infof("imported %d catalog products from %s", n, path)
	return n, a.RefreshCatalogNow()
}
