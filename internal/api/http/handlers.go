package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"quickmenu/internal/domain"
	"quickmenu/internal/logger"
	"quickmenu/internal/service"
)

type Handler struct {
	Cafes  service.CafeServiceInterface
	Orders service.OrderServiceInterface
	Carts  service.CartServiceInterface
	QR     service.QRGenerator
}

func NewHandler(cafeSvc service.CafeServiceInterface, orderSvc service.OrderServiceInterface, cartSvc service.CartServiceInterface, qr service.QRGenerator) *Handler {
	return &Handler{
		Cafes:  cafeSvc,
		Orders: orderSvc,
		Carts:  cartSvc,
		QR:     qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cafes", h.createCafe).Methods("POST")
	r.HandleFunc("/api/cafes", h.listCafes).Methods("GET")
	r.HandleFunc("/api/cafes/{cafeId}", h.getCafe).Methods("GET")
	r.HandleFunc("/api/cafes/{cafeId}", h.updateCafe).Methods("PUT")
	r.HandleFunc("/api/cafes/{cafeId}", h.deleteCafe).Methods("DELETE")

	r.HandleFunc("/api/menu/{cafeId}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{cafeId}", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{cafeId}/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{cafeId}/{itemId}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/cafe/{cafeId}", h.listCafeOrders).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{orderId}/payment", h.updateOrderPayment).Methods("PUT")

	r.HandleFunc("/api/cart/{cafeId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{cafeId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{cafeId}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{cafeId}/items/{itemId}", h.changeCartQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/{cafeId}/checkout", h.checkoutCart).Methods("POST")

	r.HandleFunc("/api/qr/generate", h.generateQR).Methods("POST")
	r.HandleFunc("/api/analytics/popular/{cafeId}", h.popularItems).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "quickmenu",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createCafe(w http.ResponseWriter, r *http.Request) {
	var cafe domain.Cafe
	if err := json.NewDecoder(r.Body).Decode(&cafe); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.Cafes.Create(r.Context(), &cafe); err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cafe)
}

func (h *Handler) listCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.Cafes.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafes)
}

func (h *Handler) getCafe(w http.ResponseWriter, r *http.Request) {
	cafe, err := h.Cafes.Get(r.Context(), mux.Vars(r)["cafeId"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafe)
}

// updateCafe applies a partial update: fields absent from the body keep their
// stored values.
func (h *Handler) updateCafe(w http.ResponseWriter, r *http.Request) {
	cafeID := mux.Vars(r)["cafeId"]
	cafe, err := h.Cafes.Get(r.Context(), cafeID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	stored := *cafe
	if err := json.NewDecoder(r.Body).Decode(cafe); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	// Only contact fields are updatable here; activation is owned by DELETE
	// and the menu by the menu endpoints.
	cafe.ID = cafeID
	cafe.IsActive = stored.IsActive
	cafe.Menu = stored.Menu
	cafe.CreatedAt = stored.CreatedAt
	cafe.UpdatedAt = stored.UpdatedAt
	if err := h.Cafes.Update(r.Context(), cafe); err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafe)
}

func (h *Handler) deleteCafe(w http.ResponseWriter, r *http.Request) {
	if err := h.Cafes.Deactivate(r.Context(), mux.Vars(r)["cafeId"]); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Cafes.Menu(r.Context(), mux.Vars(r)["cafeId"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	item.CafeID = mux.Vars(r)["cafeId"]
	if err := h.Cafes.AddMenuItem(r.Context(), &item); err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	item, err := h.Cafes.GetMenuItem(r.Context(), vars["cafeId"], vars["itemId"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	item.ID = vars["itemId"]
	item.CafeID = vars["cafeId"]
	if err := h.Cafes.UpdateMenuItem(r.Context(), item); err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Cafes.RemoveMenuItem(r.Context(), vars["cafeId"], vars["itemId"]); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createOrderRequest struct {
	CafeID        string             `json:"cafeId"`
	Items         []domain.OrderLine `json:"items"`
	CustomerName  string             `json:"customerName"`
	TableNumber   string             `json:"tableNumber"`
	PaymentMethod string             `json:"paymentMethod"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	order, err := h.Orders.Create(r.Context(), service.CreateOrderParams{
		CafeID:        req.CafeID,
		Items:         req.Items,
		CustomerName:  req.CustomerName,
		TableNumber:   req.TableNumber,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listCafeOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForCafe(r.Context(), mux.Vars(r)["cafeId"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	order, err := h.Orders.AdvanceStatus(r.Context(), mux.Vars(r)["orderId"], domain.OrderStatus(req.Status))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	order, err := h.Orders.SetPaymentStatus(r.Context(), mux.Vars(r)["orderId"], domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// cartSession extracts the customer session; carts are scoped per cafe and
// session. Returns false after writing the error response.
func (h *Handler) cartSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h.Carts == nil {
		writeError(w, http.StatusServiceUnavailable, "cart storage is not configured")
		return "", false
	}
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing X-Session-ID header")
		return "", false
	}
	return sessionID, true
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.cartSession(w, r)
	if !ok {
		return
	}
	cart, err := h.Carts.Get(r.Context(), mux.Vars(r)["cafeId"], sessionID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.cartSession(w, r)
	if !ok {
		return
	}
	if err := h.Carts.Clear(r.Context(), mux.Vars(r)["cafeId"], sessionID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.cartSession(w, r)
	if !ok {
		return
	}
	var req struct {
		MenuItemID string `json:"menuItemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.MenuItemID == "" {
		writeError(w, http.StatusBadRequest, "menuItemId is required")
		return
	}
	cart, err := h.Carts.Add(r.Context(), mux.Vars(r)["cafeId"], sessionID, req.MenuItemID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) changeCartQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.cartSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	vars := mux.Vars(r)
	cart, err := h.Carts.ChangeQuantity(r.Context(), vars["cafeId"], sessionID, vars["itemId"], req.Delta)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) checkoutCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.cartSession(w, r)
	if !ok {
		return
	}
	var req struct {
		CustomerName  string `json:"customerName"`
		TableNumber   string `json:"tableNumber"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	order, err := h.Carts.Checkout(r.Context(), service.CheckoutParams{
		CafeID:        mux.Vars(r)["cafeId"],
		SessionID:     sessionID,
		CustomerName:  req.CustomerName,
		TableNumber:   req.TableNumber,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) generateQR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CafeID  string `json:"cafeId"`
		BaseURL string `json:"baseUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	qr, err := h.QR.Generate(req.CafeID, req.BaseURL)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, qr)
}

func (h *Handler) popularItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Orders.PopularItems(r.Context(), mux.Vars(r)["cafeId"], 5)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPaymentStatus),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrCartEmpty):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCafeNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAnalyticsDisabled):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.L().Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
