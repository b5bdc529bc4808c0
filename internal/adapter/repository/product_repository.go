package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
	"github.com/jackc/pgx/v5"
)

// ErrProductNotFound é retornado quando o produto não existe
var ErrProductNotFound = errors.New("produto não encontrado")

const productColumns = `id, name, category, price::float8, status, created_at, updated_at`

// ProductRepository implementa a interface product.Repository usando PostgreSQL
type ProductRepository struct {
	db DBTX
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db DBTX) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (name, category, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		p.Name,
		p.Category,
		p.Price,
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("falha ao inserir produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("falha ao buscar produto: %w", err)
	}
	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao iterar produtos: %w", err)
	}

	return products, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Category,
		p.Price,
		string(p.Status),
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao excluir produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Stats implementa product.Repository.Stats
func (r *ProductRepository) Stats(ctx context.Context) (*product.Stats, error) {
	stats := &product.Stats{ByCategory: make(map[string]int)}

	totals := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COALESCE(SUM(price), 0)::float8
		FROM products
	`
	if err := r.db.QueryRow(ctx, totals).Scan(&stats.Total, &stats.Active, &stats.TotalValue); err != nil {
		return nil, fmt.Errorf("falha ao calcular totais de produtos: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT category, COUNT(*) FROM products GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("falha ao agrupar produtos por categoria: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("falha ao ler categoria: %w", err)
		}
		stats.ByCategory[category] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao iterar categorias: %w", err)
	}

	return stats, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	var status string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Price,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = product.Status(status)
	return p, nil
}
