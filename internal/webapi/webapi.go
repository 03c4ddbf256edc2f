// Package webapi exposes the storefront core to the UI layer as a REST
// surface. Handlers stay thin: parse, call into the stores or the pipeline,
// render.
package webapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/talkbazaar/storefront/internal/app"
)

type Server struct {
	app  app.AppContext
	echo *echo.Echo
}

func NewServer(appCtx app.AppContext) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{app: appCtx, echo: e}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	api.GET("/catalog", s.listCatalog)
	api.GET("/catalog/quick", s.quickSearch)
	api.GET("/catalog/brands", s.listBrands)
	api.GET("/catalog/:id", s.getProduct)
	api.POST("/catalog/refresh", s.refreshCatalog)

	api.GET("/cart", s.getCart)
	api.POST("/cart/items", s.addCartItem)
	api.PUT("/cart/items", s.updateCartItem)
	api.DELETE("/cart/items", s.removeCartItem)
	api.POST("/cart/clear", s.clearCart)
	api.POST("/cart/open", s.openCart)
	api.POST("/cart/close", s.closeCart)
	api.POST("/checkout", s.checkout)

	api.GET("/wishlist", s.getWishlist)
	api.GET("/wishlist/:productId", s.checkWishlist)
	api.POST("/wishlist/:productId", s.addWishlistItem)
	api.DELETE("/wishlist/:productId", s.removeWishlistItem)

	api.GET("/orders", s.listOrders)
	api.GET("/orders/:id", s.getOrder)
	api.PUT("/orders/:id/status", s.updateOrderStatus)
	api.DELETE("/orders/:id/items", s.removeOrderItem)
	api.DELETE("/orders/:id", s.removeOrder)

	api.GET("/dashboard", s.dashboard)
}

// Echo exposes the underlying router (used in tests).
func (s *Server) Echo() *echo.Echo { return s.echo }

func (s *Server) Start() error {
	web := s.app.Config().Web
	return s.echo.Start(fmt.Sprintf("%s:%d", web.Host, web.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func fail(c echo.Context, status int, code, msg string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": msg,
		"detail":  detail,
	})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":     0,
		"data":     rows,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page, pageSize = 1, 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}
