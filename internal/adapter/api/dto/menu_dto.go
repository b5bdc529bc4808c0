package dto

import (
	"sort"

	"github.com/gordosalgados/gordo-salgados/internal/config"
	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
	"github.com/gordosalgados/gordo-salgados/internal/domain/testimonial"
)

// MenuItem representa um produto no cardápio público
type MenuItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MenuCategory agrupa os produtos de uma categoria
type MenuCategory struct {
	Name     string     `json:"name"`
	Products []MenuItem `json:"products"`
}

// BusinessAddress representa o endereço da loja
type BusinessAddress struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	CityState    string `json:"city_state"`
}

// BusinessHours representa o horário de funcionamento
type BusinessHours struct {
	Weekdays string `json:"weekdays"`
	Weekend  string `json:"weekend"`
}

// BusinessInfo representa os dados de contato da loja
type BusinessInfo struct {
	Name         string          `json:"name"`
	WhatsApp     string          `json:"whatsapp"`
	WhatsAppLink string          `json:"whatsapp_link"`
	Phone        string          `json:"phone"`
	Address      BusinessAddress `json:"address"`
	Hours        BusinessHours   `json:"hours"`
}

// TestimonialItem representa um depoimento de cliente
type TestimonialItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
	AvatarHint string `json:"avatar_hint"`
	Rating     int    `json:"rating"`
	Quote      string `json:"quote"`
}

// MenuResponse representa o cardápio público
type MenuResponse struct {
	Business      BusinessInfo      `json:"business"`
	Categories    []MenuCategory    `json:"categories"`
	Testimonials  []TestimonialItem `json:"testimonials"`
	AverageRating float64           `json:"average_rating"`
}

// ToBusinessInfo converte a configuração de contato para DTO
func ToBusinessInfo(b config.BusinessConfig) BusinessInfo {
	return BusinessInfo{
		Name:         b.Name,
		WhatsApp:     b.WhatsAppNumber,
		WhatsAppLink: b.WhatsAppLink(),
		Phone:        b.DisplayPhoneNumber,
		Address: BusinessAddress{
			Street:       b.Street,
			Neighborhood: b.Neighborhood,
			CityState:    b.CityState,
		},
		Hours: BusinessHours{
			Weekdays: b.WeekdayHours,
			Weekend:  b.WeekendHours,
		},
	}
}

// NewMenuResponse agrupa os produtos ativos por categoria, em ordem alfabética.
// Dentro de cada categoria a ordem recebida é mantida.
func NewMenuResponse(business config.BusinessConfig, products []*product.Product, testimonials []testimonial.Testimonial) MenuResponse {
	groups := make(map[string][]MenuItem)
	for _, p := range products {
		if !p.IsActive() {
			continue
		}
		groups[p.Category] = append(groups[p.Category], MenuItem{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		})
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]MenuCategory, 0, len(names))
	for _, name := range names {
		categories = append(categories, MenuCategory{Name: name, Products: groups[name]})
	}

	items := make([]TestimonialItem, 0, len(testimonials))
	for _, t := range testimonials {
		items = append(items, TestimonialItem{
			ID:         t.ID,
			Name:       t.Name,
			AvatarURL:  t.AvatarURL,
			AvatarHint: t.AvatarHint,
			Rating:     t.Rating,
			Quote:      t.Quote,
		})
	}

	return MenuResponse{
		Business:      ToBusinessInfo(business),
		Categories:    categories,
		Testimonials:  items,
		AverageRating: testimonial.AverageRating(testimonials),
	}
}
