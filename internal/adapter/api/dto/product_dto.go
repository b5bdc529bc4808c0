package dto

import (
	"time"

	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
)

// ProductRequest representa os dados de um produto para criação ou atualização
type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Status   string  `json:"status" binding:"omitempty,product_status"`
}

// ProductListQuery representa os filtros da listagem de produtos
type ProductListQuery struct {
	Status   string `form:"status" binding:"omitempty,product_status"`
	Category string `form:"category"`
}

// ProductResponse representa a resposta com dados de um produto
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse representa a lista de produtos
type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}

// ToProductResponse converte um produto do domínio para DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductResponses converte uma lista de produtos do domínio
func ToProductResponses(products []*product.Product) []ProductResponse {
	data := make([]ProductResponse, len(products))
	for i, p := range products {
		data[i] = ToProductResponse(p)
	}
	return data
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO de resposta
func ToProductListResponse(products []*product.Product) ProductListResponse {
	data := ToProductResponses(products)
	return ProductListResponse{
		Data:  data,
		Total: len(data),
	}
}
