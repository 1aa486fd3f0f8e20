package catalog

import (
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Dataset is the built-in reference data: categories, the customization list
// and the menu. The seeder loads it into Postgres; Default() serves the
// customizations straight from memory.
type Dataset struct {
	Categories     []domain.Category
	Customizations []domain.Customization
	Menu           []MenuEntry
}

// MenuEntry is a menu item before it gets database ids assigned: the category
// and customizations are referenced by name.
type MenuEntry struct {
	Name               string
	Description        string
	ImageURL           string
	Price              domain.Money
	Rating             float64
	Calories           int
	Protein            int
	CategoryName       string
	CustomizationNames []string
}

func DefaultDataset() Dataset {
	return Dataset{
		Categories: []domain.Category{
			{ID: "cat-burgers", Name: "Burgers", Description: "Juicy grilled burgers"},
			{ID: "cat-pizzas", Name: "Pizzas", Description: "Oven-baked cheesy pizzas"},
			{ID: "cat-burritos", Name: "Burritos", Description: "Rolled Mexican delights"},
			{ID: "cat-sandwiches", Name: "Sandwiches", Description: "Stacked and stuffed sandwiches"},
			{ID: "cat-wraps", Name: "Wraps", Description: "Rolled up wraps packed with flavor"},
			{ID: "cat-bowls", Name: "Bowls", Description: "Balanced rice and protein bowls"},
		},
		Customizations: []domain.Customization{
			topping("cust-extra-cheese", "Extra Cheese", "0.25"),
			topping("cust-jalapenos", "Jalapeños", "0.20"),
			topping("cust-onions", "Onions", "0.10"),
			topping("cust-olives", "Olives", "0.15"),
			topping("cust-mushrooms", "Mushrooms", "0.18"),
			topping("cust-tomatoes", "Tomatoes", "0.10"),
			topping("cust-bacon", "Bacon", "0.30"),
			topping("cust-avocado", "Avocado", "0.35"),
			side("cust-coke", "Coke", "0.30"),
			side("cust-fries", "Fries", "0.35"),
			side("cust-garlic-bread", "Garlic Bread", "0.40"),
			side("cust-chicken-nuggets", "Chicken Nuggets", "0.50"),
			side("cust-iced-tea", "Iced Tea", "0.28"),
			side("cust-salad", "Salad", "0.33"),
			side("cust-potato-wedges", "Potato Wedges", "0.38"),
			side("cust-mozzarella-sticks", "Mozzarella Sticks", "0.45"),
		},
		Menu: []MenuEntry{
			{
				Name:               "Classic Cheeseburger",
				Description:        "Beef patty, cheese, lettuce, tomato",
				Price:              eur("25.99"),
				Rating:             4.5,
				Calories:           550,
				Protein:            25,
				CategoryName:       "Burgers",
				CustomizationNames: []string{"Extra Cheese", "Coke", "Fries", "Onions", "Bacon"},
			},
			{
				Name:               "Pepperoni Pizza",
				Description:        "Loaded with cheese and pepperoni slices",
				Price:              eur("30.99"),
				Rating:             4.7,
				Calories:           700,
				Protein:            30,
				CategoryName:       "Pizzas",
				CustomizationNames: []string{"Extra Cheese", "Jalapeños", "Garlic Bread", "Coke", "Olives"},
			},
			{
				Name:               "Bean Burrito",
				Description:        "Stuffed with beans, rice, salsa",
				Price:              eur("20.99"),
				Rating:             4.2,
				Calories:           480,
				Protein:            18,
				CategoryName:       "Burritos",
				CustomizationNames: []string{"Jalapeños", "Iced Tea", "Fries", "Salad"},
			},
			{
				Name:               "BBQ Bacon Burger",
				Description:        "Smoky BBQ sauce, crispy bacon, cheddar",
				Price:              eur("27.50"),
				Rating:             4.8,
				Calories:           650,
				Protein:            29,
				CategoryName:       "Burgers",
				CustomizationNames: []string{"Onions", "Fries", "Coke", "Bacon", "Avocado"},
			},
			{
				Name:               "Chicken Caesar Wrap",
				Description:        "Grilled chicken, lettuce, Caesar dressing",
				Price:              eur("21.50"),
				Rating:             4.4,
				Calories:           490,
				Protein:            28,
				CategoryName:       "Wraps",
				CustomizationNames: []string{"Extra Cheese", "Coke", "Potato Wedges", "Tomatoes"},
			},
			{
				Name:               "Grilled Veggie Sandwich",
				Description:        "Roasted veggies, pesto, cheese",
				Price:              eur("19.99"),
				Rating:             4.1,
				Calories:           420,
				Protein:            19,
				CategoryName:       "Sandwiches",
				CustomizationNames: []string{"Mushrooms", "Olives", "Mozzarella Sticks", "Iced Tea"},
			},
		},
	}
}

func topping(id, name, price string) domain.Customization {
	return domain.Customization{
		ID:    id,
		Name:  name,
		Price: eur(price),
		Type:  domain.CustomizationTopping,
	}
}

func side(id, name, price string) domain.Customization {
	return domain.Customization{
		ID:    id,
		Name:  name,
		Price: eur(price),
		Type:  domain.CustomizationSide,
	}
}

func eur(amount string) domain.Money {
	return domain.Money{
		Amount:   decimal.RequireFromString(amount),
		Currency: currency.EUR,
	}
}
