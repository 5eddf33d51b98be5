package tracker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"shoptrack/model"
)

// Collection names in the persistence adapter. Together with the json
// field names in model, these are the stored contract.
const (
	CollStores   = "stores"
	CollProducts = "products"
	CollSales    = "sales"
)

// Persistence is the write-through channel to durable storage. It is an
// interface so tests can substitute a fake store.
type Persistence interface {
	Load(name string, out any) error
	Save(name string, v any) error
}

// Tracker owns the three collections for the process lifetime. Every
// mutation validates first, then mutates, then persists the touched
// collections. Saves are best-effort: a failed save is logged and the
// operation still succeeds.
//
// The workload is a single user in a single tab, but Go serves HTTP
// requests concurrently, so mutations and snapshots are serialized
// behind a mutex.
type Tracker struct {
	mu       sync.Mutex
	stores   []model.Store
	products []model.Product
	sales    []model.Sale

	persistence Persistence
	now         func() time.Time
}

func New(p Persistence) *Tracker {
	return &Tracker{persistence: p, now: time.Now}
}

// Load replaces the in-memory collections with whatever the adapter
// holds. Called once at startup; absent or malformed data loads empty.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stores, t.products, t.sales = nil, nil, nil
	if err := t.persistence.Load(CollStores, &t.stores); err != nil {
		return fmt.Errorf("load stores: %w", err)
	}
	if err := t.persistence.Load(CollProducts, &t.products); err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	if err := t.persistence.Load(CollSales, &t.sales); err != nil {
		return fmt.Errorf("load sales: %w", err)
	}
	return nil
}

// AddStore registers a store. Ids are the 1-based position in the
// collection at insertion time, matching the stored data of earlier
// versions; with no deletion in scope this cannot collide.
func (t *Tracker) AddStore(name string) (model.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Store{}, validationErr("name", "must not be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	store := model.Store{ID: len(t.stores) + 1, Name: name}
	t.stores = append(t.stores, store)
	t.persist(CollStores, t.stores)
	return store, nil
}

// AddProduct registers a product. Price and stock arrive as the raw
// field values the UI submitted and are parsed here.
func (t *Tracker) AddProduct(name, price, stock string) (model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Product{}, validationErr("name", "must not be empty")
	}
	priceVal, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(priceVal) || math.IsInf(priceVal, 0) || priceVal < 0 {
		return model.Product{}, validationErr("price", "must be a non-negative number")
	}
	stockVal, err := strconv.Atoi(strings.TrimSpace(stock))
	if err != nil || stockVal < 0 {
		return model.Product{}, validationErr("stock", "must be a non-negative integer")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	product := model.Product{
		ID:    len(t.products) + 1,
		Name:  name,
		Price: priceVal,
		Stock: stockVal,
	}
	t.products = append(t.products, product)
	t.persist(CollProducts, t.products)
	return product, nil
}

// RecordSale decrements the product's stock and appends a sale record
// with the store and product fields denormalized at sale time. All
// validation happens before any mutation; on failure nothing is
// applied or persisted.
func (t *Tracker) RecordSale(storeID, productID, quantity string) (model.Sale, error) {
	sid, err := strconv.Atoi(strings.TrimSpace(storeID))
	if err != nil {
		return model.Sale{}, validationErr("storeId", "must be an integer")
	}
	pid, err := strconv.Atoi(strings.TrimSpace(productID))
	if err != nil {
		return model.Sale{}, validationErr("productId", "must be an integer")
	}
	qty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil || qty <= 0 {
		return model.Sale{}, validationErr("quantity", "must be a positive integer")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	store := t.findStore(sid)
	if store == nil {
		return model.Sale{}, validationErr("storeId", fmt.Sprintf("store %d does not exist", sid))
	}
	product := t.findProduct(pid)
	if product == nil {
		return model.Sale{}, validationErr("productId", fmt.Sprintf("product %d does not exist", pid))
	}
	if product.Stock < qty {
		return model.Sale{}, ErrInsufficientStock
	}

	product.Stock -= qty
	sale := model.Sale{
		StoreID:     store.ID,
		StoreName:   store.Name,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    qty,
		Total:       product.Price * float64(qty),
		Date:        t.now().UTC().Format(time.RFC3339),
	}
	t.sales = append(t.sales, sale)

	t.persist(CollProducts, t.products)
	t.persist(CollSales, t.sales)
	return sale, nil
}

// ReplaceAll swaps in a full snapshot of all three collections and
// persists them. Used by the backup import.
func (t *Tracker) ReplaceAll(stores []model.Store, products []model.Product, sales []model.Sale) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stores = stores
	t.products = products
	t.sales = sales
	t.persist(CollStores, t.stores)
	t.persist(CollProducts, t.products)
	t.persist(CollSales, t.sales)
}

// Stores returns a snapshot of the stores collection in insertion order.
func (t *Tracker) Stores() []model.Store {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.Store(nil), t.stores...)
}

// Products returns a snapshot of the products collection.
func (t *Tracker) Products() []model.Product {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.Product(nil), t.products...)
}

// Sales returns a snapshot of the sales collection.
func (t *Tracker) Sales() []model.Sale {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.Sale(nil), t.sales...)
}

func (t *Tracker) findStore(id int) *model.Store {
	for i := range t.stores {
		if t.stores[i].ID == id {
			return &t.stores[i]
		}
	}
	return nil
}

func (t *Tracker) findProduct(id int) *model.Product {
	for i := range t.products {
		if t.products[i].ID == id {
			return &t.products[i]
		}
	}
	return nil
}

func (t *Tracker) persist(name string, v any) {
	if err := t.persistence.Save(name, v); err != nil {
		log.WithField("collection", name).Errorf("write-through save failed: %v", err)
	}
}
