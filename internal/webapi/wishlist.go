package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func wishlistProductID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("productId"), 10, 64)
}

func (s *Server) getWishlist(c echo.Context) error {
	wl := s.app.Wishlist()
	return ok(c, map[string]interface{}{
		"items":     wl.Items(),
		"itemCount": wl.ItemCount(),
	})
}

func (s *Server) checkWishlist(c echo.Context) error {
	id, err := wishlistProductID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	return ok(c, map[string]interface{}{
		"productId": id,
		"saved":     s.app.Wishlist().IsInWishlist(id),
	})
}

func (s *Server) addWishlistItem(c echo.Context) error {
	id, err := wishlistProductID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := s.app.Wishlist().AddItem(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist wishlist", err.Error())
	}
	return ok(c, map[string]interface{}{"itemCount": s.app.Wishlist().ItemCount()})
}

func (s *Server) removeWishlistItem(c echo.Context) error {
	id, err := wishlistProductID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := s.app.Wishlist().RemoveItem(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist wishlist", err.Error())
	}
	return ok(c, map[string]interface{}{"itemCount": s.app.Wishlist().ItemCount()})
}
