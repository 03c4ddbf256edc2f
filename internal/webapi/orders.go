package webapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkbazaar/storefront/internal/domain"
)

type orderStatusPayload struct {
	Status string `json:"status"`
}

func (s *Server) listOrders(c echo.Context) error {
	orders := s.app.Orders().Orders()
	total := int64(len(orders))

	page, pageSize := parsePagination(c)
	start := (page - 1) * pageSize
	if start > len(orders) {
		start = len(orders)
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}
	return paged(c, orders[start:end], total, page, pageSize)
}

func (s *Server) getOrder(c echo.Context) error {
	order, found := s.app.Orders().GetOrderByID(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	}
	return ok(c, order)
}

func (s *Server) updateOrderStatus(c echo.Context) error {
	var payload orderStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", err.Error())
	}
	status := domain.OrderStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	if !domain.ValidOrderStatus(status) {
		return fail(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status "+payload.Status, nil)
	}

	// any status may replace any other; only the label set is checked
	found, err := s.app.Orders().UpdateOrderStatus(c.Param("id"), status)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist order", err.Error())
	}
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	}
	order, _ := s.app.Orders().GetOrderByID(c.Param("id"))
	return ok(c, order)
}

func (s *Server) removeOrderItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.QueryParam("product_id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	size := domain.ProductSize(strings.ToUpper(strings.TrimSpace(c.QueryParam("size"))))

	// the stored total stays as created; it is a frozen snapshot value
	found, err := s.app.Orders().RemoveItemFromOrder(c.Param("id"), productID, size)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist order", err.Error())
	}
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order line not found", nil)
	}
	order, _ := s.app.Orders().GetOrderByID(c.Param("id"))
	return ok(c, order)
}

func (s *Server) removeOrder(c echo.Context) error {
	found, err := s.app.Orders().RemoveOrder(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to persist orders", err.Error())
	}
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	}
	return ok(c, map[string]interface{}{"id": c.Param("id")})
}
