package model

// Store is a point of sale. Immutable after creation; there is no
// deletion in the current scope.
type Store struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product carries the current unit price and remaining stock. Stock is
// only ever decremented by recorded sales and never goes negative.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Sale is an append-only record. The store and product fields are
// snapshots taken at sale time: renaming a store or re-pricing a
// product must not rewrite past sales.
//
// The json tags are the persisted field names; external tools read the
// stored payloads directly, so they must not change.
type Sale struct {
	StoreID     int     `json:"storeId"`
	StoreName   string  `json:"storeName"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
	Date        string  `json:"date"`
}
