package httpapi

import (
	"github.com/nikolayk812/foodorder-demo/internal/checkout"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
)

// Prices travel as decimal strings to keep the wire format exact.

type CustomizationDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Type  string `json:"type"`
}

type CategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type MenuItemDTO struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	ImageURL       string             `json:"imageUrl,omitempty"`
	Price          string             `json:"price"`
	Rating         float64            `json:"rating"`
	Calories       int                `json:"calories"`
	Protein        int                `json:"protein"`
	CategoryID     string             `json:"categoryId"`
	Customizations []CustomizationDTO `json:"customizations"`
}

type CartLineDTO struct {
	ItemID         string             `json:"itemId"`
	Name           string             `json:"name"`
	UnitPrice      string             `json:"unitPrice"`
	ImageURL       string             `json:"imageUrl,omitempty"`
	Quantity       int                `json:"quantity"`
	Customizations []CustomizationDTO `json:"customizations"`
	Subtotal       string             `json:"subtotal"`
}

type CartDTO struct {
	Lines      []CartLineDTO `json:"lines"`
	TotalItems int           `json:"totalItems"`
	TotalPrice string        `json:"totalPrice"`
	Currency   string        `json:"currency"`
}

type CheckoutResponse struct {
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	OrderID  string `json:"orderId,omitempty"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func toCustomizationDTO(c domain.Customization) CustomizationDTO {
	return CustomizationDTO{
		ID:    c.ID,
		Name:  c.Name,
		Price: c.Price.Amount.String(),
		Type:  string(c.Type),
	}
}

func toCustomizationDTOs(customizations []domain.Customization) []CustomizationDTO {
	out := make([]CustomizationDTO, 0, len(customizations))
	for _, c := range customizations {
		out = append(out, toCustomizationDTO(c))
	}
	return out
}

func toCategoryDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toMenuItemDTO(item domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		ImageURL:       item.ImageURL,
		Price:          item.Price.Amount.String(),
		Rating:         item.Rating,
		Calories:       item.Calories,
		Protein:        item.Protein,
		CategoryID:     item.CategoryID,
		Customizations: toCustomizationDTOs(item.Customizations),
	}
}

func toCartLineDTO(line domain.CartLine) CartLineDTO {
	return CartLineDTO{
		ItemID:         line.ItemID,
		Name:           line.Name,
		UnitPrice:      line.UnitPrice.Amount.String(),
		ImageURL:       line.ImageURL,
		Quantity:       line.Quantity,
		Customizations: toCustomizationDTOs(line.Customizations),
		Subtotal:       line.Subtotal().String(),
	}
}

func toCartDTO(lines []domain.CartLine, totalItems int, total domain.Money) CartDTO {
	out := CartDTO{
		Lines:      make([]CartLineDTO, 0, len(lines)),
		TotalItems: totalItems,
		TotalPrice: total.Amount.String(),
		Currency:   total.Currency.String(),
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, toCartLineDTO(line))
	}
	return out
}

func toCheckoutResponse(result checkout.Result) CheckoutResponse {
	return CheckoutResponse{
		Status:   result.Outcome.String(),
		Reason:   result.Reason,
		OrderID:  result.OrderID,
		Amount:   result.Amount,
		Currency: result.Currency,
	}
}
