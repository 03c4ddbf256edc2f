package source

import (
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// csvProduct is the import row layout for catalog seed files.
type csvProduct struct {
	ID                 int64   `csv:"id"`
	Title              string  `csv:"title"`
	Brand              string  `csv:"brand"`
	Category           string  `csv:"category"`
	Description        string  `csv:"description"`
	Price              float64 `csv:"price"`
	DiscountPercentage float64 `csv:"discount_percentage"`
	Rating             float64 `csv:"rating"`
	Stock              int     `csv:"stock"`
	Gender             string  `csv:"gender"`
	Sizes              string  `csv:"sizes"` // e.g. "S,M,L"
	OnSale             bool    `csv:"on_sale"`
	Thumbnail          string  `csv:"thumbnail"`
}

// ImportCSV loads a product seed file into the catalog table, upserting on
// id. Returns the number of imported rows.
func ImportCSV(db *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open catalog csv")
	}
	defer f.Close()

	var rows []*csvProduct
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, errors.Wrap(err, "parse catalog csv")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	now := time.Now()
	records := make([]ProductRecord, len(rows))
	for n, r := range rows {
		records[n] = ProductRecord{
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
			Sizes:              joinSizes(parseSizes(r.Sizes)),
			OnSale:             r.OnSale,
			Thumbnail:          r.Thumbnail,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&records).Error
	if err != nil {
		return 0, errors.Wrap(err, "import catalog csv")
	}
	return len(records), nil
}
