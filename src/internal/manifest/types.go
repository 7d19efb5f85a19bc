package manifest

import "slices"

// Order is a single line item of a manifest.
type Order struct {
	Item     string
	Quantity uint32
}

// Manifest is the ordered list of orders decoded from a document.
type Manifest struct {
	orders []Order
}

// New builds a manifest from orders, keeping their order.
func New(orders ...Order) *Manifest {
	return &Manifest{orders: slices.Clone(orders)}
}

// Orders returns a copy of the manifest orders in document order.
func (m *Manifest) Orders() []Order {
	return slices.Clone(m.orders)
}

// Len returns the number of orders.
func (m *Manifest) Len() int {
	return len(m.orders)
}

// IsEmpty reports whether the manifest has no orders.
func (m *Manifest) IsEmpty() bool {
	return len(m.orders) == 0
}

// TOML document shape: [package.metadata] with an orders array.
// Pointers distinguish a missing key from a zero value.
type tomlDocument struct {
	Package *tomlPackage `toml:"package" validate:"required"`
}

type tomlPackage struct {
	Metadata *tomlMetadata `toml:"metadata" validate:"required"`
}

type tomlMetadata struct {
	Orders *[]tomlOrder `toml:"orders" validate:"required,dive"`
}

type tomlOrder struct {
	Item     *string `toml:"item" validate:"required"`
	Quantity *uint32 `toml:"quantity" validate:"required"`
}

func (d *tomlDocument) manifest() *Manifest {
	src := *d.Package.Metadata.Orders
	orders := make([]Order, 0, len(src))
	for _, o := range src {
		orders = append(orders, Order{Item: *o.Item, Quantity: *o.Quantity})
	}
	return New(orders...)
}
