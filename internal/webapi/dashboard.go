package webapi

import (
	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"
)

// dashboard aggregates catalog and order figures for the profile dashboard
// page.
func (s *Server) dashboard(c echo.Context) error {
	products := s.app.Catalog().Products()

	prices := make([]float64, 0, len(products))
	ratings := make([]float64, 0, len(products))
	onSale := 0
	for _, p := range products {
		prices = append(prices, p.EffectivePrice())
		ratings = append(ratings, p.Rating)
		if p.OnSale {
			onSale++
		}
	}

	catalogStats := map[string]interface{}{
		"count":  len(products),
		"onSale": onSale,
	}
	if len(prices) > 0 {
		meanPrice, _ := stats.Mean(prices)
		medianPrice, _ := stats.Median(prices)
		meanRating, _ := stats.Mean(ratings)
		catalogStats["meanPrice"] = meanPrice
		catalogStats["medianPrice"] = medianPrice
		catalogStats["meanRating"] = meanRating
	}

	orderCounts := s.app.Orders().CountByStatus()
	orderTotal := 0
	for _, n := range orderCounts {
		orderTotal += n
	}

	return ok(c, map[string]interface{}{
		"catalog": catalogStats,
		"orders": map[string]interface{}{
			"total":    orderTotal,
			"byStatus": orderCounts,
		},
		"cartItemCount":     s.app.Cart().ItemCount(),
		"wishlistItemCount": s.app.Wishlist().ItemCount(),
	})
}
