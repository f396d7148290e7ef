package domain

// Product is a read-only catalog item. JSON names follow the catalog API.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      *Rating `json:"rating,omitempty"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Rate returns the rating score, or 0 for an unrated product.
func (p Product) Rate() float64 {
	if p.Rating == nil {
		return 0
	}
	return p.Rating.Rate
}

// CategoryAll selects the unfiltered catalog.
const CategoryAll = "all"

type Category struct {
	ID   string
	Name string
}

var Categories = []Category{
	{ID: CategoryAll, Name: "All"},
	{ID: "electronics", Name: "Electronics"},
	{ID: "jewelery", Name: "Jewelery"},
	{ID: "men's clothing", Name: "Men's Clothing"},
	{ID: "women's clothing", Name: "Women's Clothing"},
}
