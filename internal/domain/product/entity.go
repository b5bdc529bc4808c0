package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyCategory = errors.New("categoria não pode ser vazia")
	ErrInvalidPrice  = errors.New("preço deve ser maior que zero")
	ErrInvalidStatus = errors.New("status inválido")
)

// Status representa a disponibilidade do produto no cardápio
type Status string

const (
	StatusActive   Status = "active"   // Exibido no cardápio
	StatusInactive Status = "inactive" // Oculto do cardápio
)

// Valid verifica se o status é conhecido
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Product representa um salgado do cardápio
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto; o ID é atribuído pelo banco
func NewProduct(name, category string, price float64, status Status) (*Product, error) {
	p := &Product{}
	if err := p.apply(name, category, price, status); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Update altera os dados do produto
func (p *Product) Update(name, category string, price float64, status Status) error {
	if err := p.apply(name, category, price, status); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// IsActive verifica se o produto aparece no cardápio
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

func (p *Product) apply(name, category string, price float64, status Status) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return ErrEmptyName
	}
	if category == "" {
		return ErrEmptyCategory
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	p.Name = name
	p.Category = category
	p.Price = price
	p.Status = status
	return nil
}
