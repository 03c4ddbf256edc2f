package source

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/talkbazaar/storefront/internal/domain"
	"gorm.io/gorm"
)

// ProductRecord is the database row shape of a catalog product. It stays at
// this boundary; the core only ever sees domain.Product.
type ProductRecord struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string  `gorm:"size:255;index" json:"title"`
	Brand              string  `gorm:"size:128;index" json:"brand"`
	Category           string  `gorm:"size:128;index" json:"category"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Gender             string  `gorm:"size:16" json:"gender"`
	Sizes              string  `gorm:"size:64" json:"sizes"` // comma-joined size tags
	OnSale             bool    `json:"on_sale"`
	Thumbnail          string  `gorm:"size:1024" json:"thumbnail"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ProductRecord) TableName() string {
	return "catalog_products"
}

// Tables lists the models migrated into the catalog database.
var Tables = []interface{}{
	&ProductRecord{},
}

// ToDomain converts the row into the immutable catalog type.
func (r ProductRecord) ToDomain() domain.Product {
	return domain.Product{
		ID:                 r.ID,
		Title:              r.Title,
		Brand:              r.Brand,
		Category:           r.Category,
		Description:        r.Description,
		Price:              r.Price,
		DiscountPercentage: r.DiscountPercentage,
		Rating:             r.Rating,
		Stock:              r.Stock,
		Gender:             r.Gender,
		Sizes:              parseSizes(r.Sizes),
		OnSale:             r.OnSale,
		Thumbnail:          r.Thumbnail,
	}
}

func parseSizes(csv string) []domain.ProductSize {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	sizes := make([]domain.ProductSize, 0, len(parts))
	for _, p := range parts {
		s := domain.ProductSize(strings.ToUpper(strings.TrimSpace(p)))
		if domain.ValidSize(s) {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

func joinSizes(sizes []domain.ProductSize) string {
	parts := make([]string, len(sizes))
	for n, s := range sizes {
		parts[n] = string(s)
	}
	return strings.Join(parts, ",")
}

// DBSource loads the catalog from the products table.
type DBSource struct {
	db *gorm.DB
}

func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

func (s *DBSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	var rows []ProductRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "query catalog products")
	}
	products := make([]domain.Product, len(rows))
	for n, r := range rows {
		products[n] = r.ToDomain()
	}
	return products, nil
}
