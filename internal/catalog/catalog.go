package catalog

// Product is a purchasable music creation. Prices are in euro cents.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// Catalog is the fixed set of products known to the server. Adding a product
// is a deployment change, not a runtime operation.
type Catalog struct {
	products map[string]Product
	order    []string
}

func New() *Catalog {
	products := []Product{
		{
			ID:          "birthday",
			Name:        "Musique d'Anniversaire Personnalisée",
			Description: "Une mélodie unique pour célébrer ce jour spécial",
			Price:       1990,
		},
		{
			ID:          "romantic",
			Name:        "Musique Romantique Personnalisée",
			Description: "Exprimez vos sentiments en musique",
			Price:       1990,
		},
		{
			ID:          "party",
			Name:        "Musique de Fête Personnalisée",
			Description: "Créez l'ambiance parfaite pour votre événement",
			Price:       1990,
		},
	}

	c := &Catalog{
		products: make(map[string]Product, len(products)),
		order:    make([]string, 0, len(products)),
	}
	for _, p := range products {
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

func (c *Catalog) Lookup(id string) (Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Products returns all products in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

// MusicStyles matches the style selector offered by the storefront modal.
var MusicStyles = []string{
	"pop",
	"rock",
	"classical",
	"hiphop",
	"reggae",
	"country",
	"rnb",
	"funk",
}

var musicStyleSet = func() map[string]bool {
	set := make(map[string]bool, len(MusicStyles))
	for _, s := range MusicStyles {
		set[s] = true
	}
	return set
}()

func IsMusicStyle(id string) bool {
	return musicStyleSet[id]
}
