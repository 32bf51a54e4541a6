package models

// CollectionOrder is the collection an Order document lives in.
const CollectionOrder = "order"

// StatusPending is the default order status; the other conventional values
// (paid, shipped, delivered, cancelled) are accepted but not enforced.
const StatusPending = "pending"

// OrderItem is a single line of an order, embedded in the Order document.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id" validate:"required"`
	Title     string  `json:"title" bson:"title" validate:"required"`
	Price     float64 `json:"price" bson:"price"`
	Size      int     `json:"size" bson:"size"`
	Color     string  `json:"color" bson:"color" validate:"required"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"required,gte=1"`
}

// Address is the shipping address embedded in the Order document.
type Address struct {
	FullName   string `json:"full_name" bson:"full_name" validate:"required"`
	Email      string `json:"email" bson:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Line1      string `json:"line1" bson:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty" bson:"line2,omitempty"`
	City       string `json:"city" bson:"city" validate:"required"`
	State      string `json:"state" bson:"state" validate:"required"`
	Country    string `json:"country" bson:"country" validate:"required"`
	PostalCode string `json:"postal_code" bson:"postal_code" validate:"required"`
}

// Order defines a placed order. The monetary fields are checked against the
// items at creation time with a two-decimal-currency tolerance.
type Order struct {
	Items        []OrderItem `json:"items" bson:"items" validate:"required,dive"`
	Shipping     Address     `json:"shipping" bson:"shipping"`
	Subtotal     float64     `json:"subtotal" bson:"subtotal"`
	ShippingCost float64     `json:"shipping_cost" bson:"shipping_cost"`
	Total        float64     `json:"total" bson:"total"`
	Status       string      `json:"status" bson:"status"`
}

// Normalize applies the default status when the client omits it.
func (o *Order) Normalize() {
	if o.Status == "" {
		o.Status = StatusPending
	}
}

// ItemsSubtotal is the order subtotal recomputed from the item lines.
func (o *Order) ItemsSubtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
