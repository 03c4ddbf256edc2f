package webapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/talkbazaar/storefront/internal/catalog"
	"github.com/talkbazaar/storefront/internal/domain"
)

// productView decorates a product with its effective price and the formatted
// display-currency string; the core itself stays in base currency.
type productView struct {
	domain.Product
	FinalPrice   float64 `json:"finalPrice"`
	DisplayPrice string  `json:"displayPrice"`
}

func (s *Server) viewOf(p domain.Product) productView {
	return productView{
		Product:      p,
		FinalPrice:   p.EffectivePrice(),
		DisplayPrice: s.app.Converter().Format(p.EffectivePrice()),
	}
}

func (s *Server) viewsOf(products []domain.Product) []productView {
	out := make([]productView, len(products))
	for n, p := range products {
		out[n] = s.viewOf(p)
	}
	return out
}

func parseCatalogRequest(c echo.Context) (catalog.Request, error) {
	req := catalog.Request{
		Query:   strings.TrimSpace(c.QueryParam("q")),
		Segment: catalog.Segment(strings.ToLower(strings.TrimSpace(c.QueryParam("segment")))),
		Filters: domain.NewFilterState(),
		Sort:    domain.SortNewest,
	}

	if v := c.QueryParam("min_price"); v != "" {
		req.Filters.PriceRange.Min = cast.ToFloat64(v)
	}
	if v := c.QueryParam("max_price"); v != "" {
		req.Filters.PriceRange.Max = cast.ToFloat64(v)
	}
	if req.Filters.PriceRange.Max > 0 && req.Filters.PriceRange.Min > req.Filters.PriceRange.Max {
		return req, echo.NewHTTPError(http.StatusBadRequest, "min_price exceeds max_price")
	}

	if v := strings.TrimSpace(c.QueryParam("brands")); v != "" {
		req.Filters.Brands = strings.Split(v, ",")
	}
	if v := strings.TrimSpace(c.QueryParam("sizes")); v != "" {
		for _, raw := range strings.Split(v, ",") {
			size := domain.ProductSize(strings.ToUpper(strings.TrimSpace(raw)))
			if !domain.ValidSize(size) {
				return req, echo.NewHTTPError(http.StatusBadRequest, "invalid size "+raw)
			}
			req.Filters.Sizes = append(req.Filters.Sizes, size)
		}
	}
	req.Filters.OnSale = cast.ToBool(c.QueryParam("on_sale"))

	if v := c.QueryParam("sort"); v != "" {
		sortBy := domain.SortOption(v)
		if !domain.ValidSortOption(sortBy) {
			return req, echo.NewHTTPError(http.StatusBadRequest, "invalid sort "+v)
		}
		req.Sort = sortBy
	}
	return req, nil
}

// listCatalog runs the filter pipeline over the current snapshot and returns
// one page of the ordered result.
func (s *Server) listCatalog(c echo.Context) error {
	req, err := parseCatalogRequest(c)
	if err != nil {
		he := err.(*echo.HTTPError)
		return fail(c, he.Code, "INVALID_REQUEST", cast.ToString(he.Message), nil)
	}

	results := s.app.Pipeline().Run(s.app.Catalog().Products(), req)
	total := int64(len(results))

	page, pageSize := parsePagination(c)
	start := (page - 1) * pageSize
	if start > len(results) {
		start = len(results)
	}
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}

	return paged(c, s.viewsOf(results[start:end]), total, page, pageSize)
}

// quickSearch returns the top-N relevance-ordered matches for the header
// search drawer.
func (s *Server) quickSearch(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return ok(c, []productView{})
	}
	limit := 5
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 50 {
		limit = v
	}
	results := s.app.Pipeline().QuickSearch(s.app.Catalog().Products(), q, limit)
	return ok(c, s.viewsOf(results))
}

// listBrands returns the sorted distinct brands of a segment, for the filter
// sidebar.
func (s *Server) listBrands(c echo.Context) error {
	seg := catalog.Segment(strings.ToLower(strings.TrimSpace(c.QueryParam("segment"))))
	products := s.app.Catalog().Products()
	sliced := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if catalog.InSegment(p, seg) {
			sliced = append(sliced, p)
		}
	}
	return ok(c, catalog.AvailableBrands(sliced))
}

func (s *Server) getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, found := s.app.Catalog().ProductByID(id)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, s.viewOf(p))
}

// refreshCatalog reloads the snapshot from the configured source.
func (s *Server) refreshCatalog(c echo.Context) error {
	if err := s.app.RefreshCatalogNow(); err != nil {
		return fail(c, http.StatusBadGateway, "CATALOG_ERROR", "Catalog refresh failed", err.Error())
	}
	return ok(c, map[string]interface{}{"count": s.app.Catalog().Count()})
}
