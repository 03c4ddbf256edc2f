package webapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkbazaar/storefront/internal/domain"
	"go.uber.org/zap"
)

type cartItemPayload struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type cartItemView struct {
	Product  productView        `json:"product"`
	Size     domain.ProductSize `json:"size"`
	Quantity int                `json:"quantity"`
	Total    float64            `json:"total"`
}

func (s *Server) cartView() map[string]interface{} {
	cart := s.app.Cart()
	items := cart.Items()
	views := make([]cartItemView, len(items))
	for n, it := range items {
		views[n] = cartItemView{
			Product:  s.viewOf(it.Product),
			Size:     it.Size,
			Quantity: it.Quantity,
			Total:    it.LineTotal(),
		}
	}
	subtotal := cart.Subtotal()
	return map[string]interface{}{
		"items":           views,
		"itemCount":       cart.ItemCount(),
		"subtotal":        subtotal,
		"displaySubtotal": s.app.Converter().Format(subtotal),
		"isOpen":          cart.IsOpen(),
	}
}

func (s *Server) getCart(c echo.Context) error {
	return ok(c, s.cartView())
}

func (s *Server) addCartItem(c echo.Context) error {
	var payload cartItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", err.Error())
	}

	// Size selection is the caller's responsibility; an absent or unknown
	// size is rejected here, never inside the store.
	size := domain.ProductSize(strings.ToUpper(strings.TrimSpace(payload.Size)))
	if size == "" {
		return fail(c, http.StatusBadRequest, "SIZE_REQUIRED", "Select a size before adding to cart", nil)
	}
	if !domain.ValidSize(size) {
		return fail(c, http.StatusBadRequest, "INVALID_SIZE", "Unknown size "+payload.Size, nil)
	}

	product, found := s.app.Catalog().ProductByID(payload.ProductID)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	if err := s.app.Cart().AddItem(product, size, payload.Quantity); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist cart", err.Error())
	}
	return ok(c, s.cartView())
}

func (s *Server) updateCartItem(c echo.Context) error {
	var payload cartItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", err.Error())
	}
	size := domain.ProductSize(strings.ToUpper(strings.TrimSpace(payload.Size)))

	// quantity <= 0 means removal, handled by the store
	if err := s.app.Cart().UpdateQuantity(payload.ProductID, size, payload.Quantity); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist cart", err.Error())
	}
	return ok(c, s.cartView())
}

func (s *Server) removeCartItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.QueryParam("product_id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	size := domain.ProductSize(strings.ToUpper(strings.TrimSpace(c.QueryParam("size"))))

	if err := s.app.Cart().RemoveItem(productID, size); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist cart", err.Error())
	}
	return ok(c, s.cartView())
}

func (s *Server) clearCart(c echo.Context) error {
	if err := s.app.Cart().ClearCart(); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist cart", err.Error())
	}
	return ok(c, s.cartView())
}

func (s *Server) openCart(c echo.Context) error {
	if err := s.app.Cart().OpenCart(); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist cart", err.Error())
	}
	return ok(c, s.cartView())
}

func (s *Server) closeCart(c echo.Context) error {
	if err := s.app.Cart().CloseCart(); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist cart", err.Error())
	}
	return ok(c, s.cartView())
}

// checkout snapshots the cart into a new pending order, with the total
// precomputed in the display currency, then clears the cart.
func (s *Server) checkout(c echo.Context) error {
	cart := s.app.Cart()
	items := cart.Items()
	if len(items) == 0 {
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "Cart is empty", nil)
	}

	subtotal := cart.Subtotal()
	total := float64(s.app.Converter().Convert(subtotal))

	order, err := s.app.Orders().CreateOrder(items, total)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist order", err.Error())
	}
	if err := cart.ClearCart(); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to clear cart", err.Error())
	}

	zap.L().Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Items)),
		zap.Float64("total", order.Total),
	)
	return ok(c, order)
}
