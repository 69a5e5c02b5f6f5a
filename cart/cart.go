package cart

import (
	"github.com/arjune867/kriukesnack/models"
)

// Catalog resolves products (with variants) by id. Read-only.
type Catalog interface {
	ProductByID(id uint) (*models.Product, bool)
}

// DiscountSource resolves discount definitions. Read-only.
type DiscountSource interface {
	ValidateCode(code string) (*models.DiscountCode, bool)
	ResolveByID(id uint) (*models.DiscountCode, bool)
}

// Store persists cart snapshots. The cart saves the whole snapshot after
// every mutation; the last write wins.
type Store interface {
	Load(sessionID string) (*Snapshot, error)
	Save(sessionID string, snap *Snapshot) error
}

// SnapshotEntry is one persisted cart line.
type SnapshotEntry struct {
	ProductID uint `json:"product_id"`
	VariantID uint `json:"variant_id"`
	Quantity  int  `json:"quantity"`
}

// Snapshot is the persisted form of a cart: ordered entries plus the applied
// discount definition, if any.
type Snapshot struct {
	Entries  []SnapshotEntry      `json:"entries"`
	Discount *models.DiscountCode `json:"discount,omitempty"`
}

// LineItem is a hydrated cart line: persisted identifiers resolved against
// the live catalog.
type LineItem struct {
	Product  *models.Product `json:"product"`
	Variant  *models.Variant `json:"variant"`
	Quantity int             `json:"quantity"`
}

// ApplyResult reports the outcome of a discount-code application. Invalid
// codes are an expected user mistake, not an error.
type ApplyResult struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message"`
	Discount *models.DiscountCode `json:"discount,omitempty"`
}

// Cart is a shopper session's cart aggregate. All mutations go through its
// methods; each one persists the resulting snapshot through the injected
// store. Not safe for concurrent use; callers own one per request.
type Cart struct {
	sessionID string
	items     []LineItem
	applied   *models.DiscountCode

	catalog   Catalog
	discounts DiscountSource
	store     Store
}

// Open loads the session's persisted cart and hydrates it against the
// catalog. Entries whose product or variant no longer exists, and malformed
// entries, are silently dropped; surviving entries keep their order. The only
// possible error is a store failure.
func Open(sessionID string, catalog Catalog, discounts DiscountSource, store Store) (*Cart, error) {
	c := &Cart{
		sessionID: sessionID,
		catalog:   catalog,
		discounts: discounts,
		store:     store,
	}
	snap, err := store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		c.items = hydrate(snap.Entries, catalog)
		c.applied = snap.Discount
	}
	return c, nil
}

func hydrate(entries []SnapshotEntry, catalog Catalog) []LineItem {
	var items []LineItem
	for _, e := range entries {
		if e.ProductID == 0 || e.VariantID == 0 || e.Quantity <= 0 {
			continue // malformed record, skip rather than fail the whole load
		}
		product, ok := catalog.ProductByID(e.ProductID)
		if !ok {
			continue
		}
		variant := findVariant(product, e.VariantID)
		if variant == nil {
			continue
		}
		items = append(items, LineItem{Product: product, Variant: variant, Quantity: e.Quantity})
	}
	return items
}

func findVariant(p *models.Product, variantID uint) *models.Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// Items returns the hydrated cart lines in order.
func (c *Cart) Items() []LineItem { return c.items }

// ItemCount sums quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// AppliedDiscount returns the active cart-level discount, if any.
func (c *Cart) AppliedDiscount() *models.DiscountCode { return c.applied }

// EffectiveUnitPrice resolves the line's product-level discount and applies
// it to the variant's unit price. A discount id that no longer resolves
// prices the line at its undiscounted unit price.
func (c *Cart) EffectiveUnitPrice(it LineItem) int64 {
	var d *models.DiscountCode
	if it.Product.DiscountID != nil {
		if resolved, ok := c.discounts.ResolveByID(*it.Product.DiscountID); ok {
			d = resolved
		}
	}
	return PriceAfterDiscount(it.Variant.Price, d)
}

// Subtotal sums effective unit price times quantity across all lines.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, it := range c.items {
		subtotal += c.EffectiveUnitPrice(it) * int64(it.Quantity)
	}
	return subtotal
}

// Totals returns subtotal, cart-level discount amount, and the amount due.
func (c *Cart) Totals() (subtotal, discountAmount, total int64) {
	subtotal = c.Subtotal()
	discountAmount = DiscountAmount(subtotal, c.applied)
	total = Total(subtotal, discountAmount)
	return
}

// AddItem puts quantity of a variant in the cart. An out-of-stock variant is
// a silent no-op. An existing (product, variant) line merges quantities
// rather than duplicating; the merged quantity is capped at the variant's
// stock, silently dropping the excess.
func (c *Cart) AddItem(product *models.Product, variant *models.Variant, quantity int) error {
	if variant.Stock <= 0 || quantity <= 0 {
		return nil
	}
	for i := range c.items {
		it := &c.items[i]
		if it.Product.ID == product.ID && it.Variant.ID == variant.ID {
			it.Quantity = capAtStock(it.Quantity+quantity, variant.Stock)
			return c.persist()
		}
	}
	c.items = append(c.items, LineItem{
		Product:  product,
		Variant:  variant,
		Quantity: capAtStock(quantity, variant.Stock),
	})
	return c.persist()
}

// UpdateQuantity sets a line's quantity, capped at the variant's stock. A
// quantity of zero or less removes the line. No matching line is a no-op.
func (c *Cart) UpdateQuantity(productID, variantID uint, quantity int) error {
	for i := range c.items {
		it := &c.items[i]
		if it.Product.ID != productID || it.Variant.ID != variantID {
			continue
		}
		effective := capAtStock(quantity, it.Variant.Stock)
		if effective <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			it.Quantity = effective
		}
		return c.persist()
	}
	return nil
}

// RemoveItem deletes the matching line. Idempotent.
func (c *Cart) RemoveItem(productID, variantID uint) error {
	for i := range c.items {
		if c.items[i].Product.ID == productID && c.items[i].Variant.ID == variantID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// Clear removes every line and the applied discount.
func (c *Cart) Clear() error {
	c.items = nil
	c.applied = nil
	return c.persist()
}

// ApplyDiscountCode validates a code and, on success, replaces any previously
// applied discount. On failure the prior discount stays applied.
func (c *Cart) ApplyDiscountCode(code string) (ApplyResult, error) {
	d, ok := c.discounts.ValidateCode(code)
	if !ok {
		return ApplyResult{Success: false, Message: "Kode diskon tidak ditemukan."}, nil
	}
	c.applied = d
	if err := c.persist(); err != nil {
		return ApplyResult{}, err
	}
	return ApplyResult{Success: true, Message: "Kode diskon diterapkan!", Discount: d}, nil
}

// RemoveDiscountCode clears the applied discount. Idempotent.
func (c *Cart) RemoveDiscountCode() error {
	if c.applied == nil {
		return nil
	}
	c.applied = nil
	return c.persist()
}

func (c *Cart) persist() error {
	return c.store.Save(c.sessionID, c.snapshot())
}

func (c *Cart) snapshot() *Snapshot {
	snap := &Snapshot{Discount: c.applied}
	for _, it := range c.items {
		snap.Entries = append(snap.Entries, SnapshotEntry{
			ProductID: it.Product.ID,
			VariantID: it.Variant.ID,
			Quantity:  it.Quantity,
		})
	}
	return snap
}

func capAtStock(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
