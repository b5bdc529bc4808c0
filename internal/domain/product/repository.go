package product

import (
	"context"
)

// Filter restringe a listagem de produtos; campos vazios não filtram
type Filter struct {
	Status   Status
	Category string
	Limit    int
}

// Stats agrega números do cardápio para o dashboard
type Stats struct {
	Total      int            `json:"total_products"`
	Active     int            `json:"active_products"`
	TotalValue float64        `json:"total_value"`
	ByCategory map[string]int `json:"products_by_category"`
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto e preenche o ID gerado
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// List lista os produtos, mais recentes primeiro
	List(ctx context.Context, filter Filter) ([]*Product, error)

	// Update atualiza um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id int64) error

	// Stats calcula os totais do cardápio
	Stats(ctx context.Context) (*Stats, error)
}
