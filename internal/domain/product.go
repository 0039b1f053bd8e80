package domain

type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name" validate:"required,max=120"`
	Price       float64  `json:"price" yaml:"price" validate:"gt=0"`
	Description string   `json:"description" yaml:"description" validate:"max=1000"`
	Category    string   `json:"category" yaml:"category" validate:"required"`
	Image       string   `json:"image" yaml:"image"`
	Video       *string  `json:"video,omitempty" yaml:"video,omitempty"`
	Sizes       []Size   `json:"sizes" yaml:"sizes" validate:"dive,oneof=XS S M L XL XXL"`
	Stock       int      `json:"stock" yaml:"stock" validate:"gte=0"`
	Tags        []string `json:"tags" yaml:"tags"`
	Ratings     []Rating `json:"ratings" yaml:"ratings" validate:"dive"`
	Wishlisted  int      `json:"wishlisted" yaml:"wishlisted" validate:"gte=0"`
	Slug        string   `json:"slug" yaml:"slug"`
}

type Rating struct {
	ID      string `json:"id" yaml:"id"`
	User    string `json:"user" yaml:"user" validate:"required"`
	Rating  int    `json:"rating" yaml:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" yaml:"comment"`
	Date    string `json:"date" yaml:"date" validate:"omitempty,datetime=2006-01-02"`
	Pinned  bool   `json:"pinned" yaml:"pinned"`
}

type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

type StockUpdateRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

type StockStatus string

const (
	StockOut StockStatus = "out_of_stock"
	StockLow StockStatus = "low"
	StockIn  StockStatus = "in_stock"
)

// LowStockThreshold is the count below which a product is flagged as low.
const LowStockThreshold = 5

func StockStatusOf(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockOut
	case stock < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

type InventoryItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Stock    int         `json:"stock"`
	Status   StockStatus `json:"status"`
}

type WishlistItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Wishlisted int    `json:"wishlisted"`
}

type Stats struct {
	TotalProducts  int `json:"totalProducts"`
	TotalStock     int `json:"totalStock"`
	TotalWishlists int `json:"totalWishlists"`
	Visitors       int `json:"visitors"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Products int    `json:"products"`
}

type RatingBucket struct {
	Stars      int     `json:"stars"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ProductReviews struct {
	ProductID    string         `json:"productId"`
	ProductName  string         `json:"productName"`
	Average      float64        `json:"average"`
	Distribution []RatingBucket `json:"distribution"`
	Ratings      []Rating       `json:"ratings"`
}
