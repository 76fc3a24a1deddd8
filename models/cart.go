package models

// ═══════════════════════════════════════════════════════════
// Cart models (proxied to Dispense checkout)
// ═══════════════════════════════════════════════════════════

type CartItem struct {
	ProductID string `json:"productId" binding:"required" example:"prod_01h2xcejq"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity" binding:"required,min=1" example:"2"`
}

type CartRequest struct {
	StoreID string     `json:"storeId" binding:"required" example:"store_uptown"`
	Items   []CartItem `json:"items" binding:"required,min=1,dive"`
}

// CartResponse carries the upstream cart id and the hosted checkout URL
// the shopper is redirected to. Payment never touches this service.
type CartResponse struct {
	ID          string  `json:"id"`
	CheckoutURL string  `json:"checkoutUrl"`
	Subtotal    float64 `json:"subtotal,omitempty"`
	ItemCount   int     `json:"itemCount,omitempty"`
}
