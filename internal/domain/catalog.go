package domain

type CustomizationType string

const (
	CustomizationTopping CustomizationType = "topping"
	CustomizationSide    CustomizationType = "side"
)

// Customization is an optional add-on (topping or side) with its own price,
// selectable per cart line. Immutable once loaded from the catalog.
type Customization struct {
	ID    string
	Name  string
	Price Money
	Type  CustomizationType
}

type Category struct {
	ID          string
	Name        string
	Description string
}

type MenuItem struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       Money
	Rating      float64
	Calories    int
	Protein     int
	CategoryID  string

	// Customizations lists the add-ons offered for this item.
	Customizations []Customization
}
