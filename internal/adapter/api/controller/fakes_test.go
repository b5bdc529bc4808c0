package controller

import (
	"context"
	"sync"
	"time"

	"github.com/gordosalgados/gordo-salgados/internal/adapter/repository"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
)

type fakeAdminRepository struct {
	mu sync.Mutex

	admins          map[string]*admin.Admin
	lastLoginCalls  []string
	findByEmailErr  error
	findByIDErr     error
	updateErr       error
	deleteErr       error
	updateLoginErr  error
	listErr         error
	updateLastLogin func(ctx context.Context, id string) error
}

func newFakeAdminRepository(admins ...*admin.Admin) *fakeAdminRepository {
	r := &fakeAdminRepository{admins: map[string]*admin.Admin{}}
	for _, a := range admins {
		r.admins[a.ID] = a
	}
	return r
}

func (r *fakeAdminRepository) Create(_ context.Context, a *admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Email == a.Email {
			return repository.ErrAdminDuplicateEmail
		}
	}
	r.admins[a.ID] = a
	return nil
}

func (r *fakeAdminRepository) FindByID(_ context.Context, id string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	a, ok := r.admins[id]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepository) FindByEmail(_ context.Context, email string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByEmailErr != nil {
		return nil, r.findByEmailErr
	}
	email = admin.NormalizeEmail(email)
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrAdminNotFound
}

func (r *fakeAdminRepository) List(context.Context) ([]*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*admin.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAdminRepository) Update(_ context.Context, a *admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.admins[a.ID]; !ok {
		return repository.ErrAdminNotFound
	}
	for id, existing := range r.admins {
		if id != a.ID && existing.Email == a.Email {
			return repository.ErrAdminDuplicateEmail
		}
	}
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *fakeAdminRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return repository.ErrAdminNotFound
	}
	a.PasswordHash = passwordHash
	return nil
}

func (r *fakeAdminRepository) UpdateLastLogin(ctx context.Context, id string) error {
	if r.updateLastLogin != nil {
		return r.updateLastLogin(ctx, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLoginCalls = append(r.lastLoginCalls, id)
	if r.updateLoginErr != nil {
		return r.updateLoginErr
	}
	if a, ok := r.admins[id]; ok {
		now := time.Now().UTC()
		a.LastLoginAt = &now
	}
	return nil
}

func (r *fakeAdminRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.admins[id]; !ok {
		return repository.ErrAdminNotFound
	}
	delete(r.admins, id)
	return nil
}

func (r *fakeAdminRepository) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.admins), nil
}

func (r *fakeAdminRepository) CountActive(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.admins {
		if a.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeAdminRepository) loginCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lastLoginCalls...)
}

type fakeProductRepository struct {
	createFn   func(ctx context.Context, p *product.Product) error
	findByIDFn func(ctx context.Context, id int64) (*product.Product, error)
	listFn     func(ctx context.Context, filter product.Filter) ([]*product.Product, error)
	updateFn   func(ctx context.Context, p *product.Product) error
	deleteFn   func(ctx context.Context, id int64) error
	statsFn    func(ctx context.Context) (*product.Stats, error)
}

func (r *fakeProductRepository) Create(ctx context.Context, p *product.Product) error {
	return r.createFn(ctx, p)
}

func (r *fakeProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	return r.findByIDFn(ctx, id)
}

func (r *fakeProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	return r.listFn(ctx, filter)
}

func (r *fakeProductRepository) Update(ctx context.Context, p *product.Product) error {
	return r.updateFn(ctx, p)
}

func (r *fakeProductRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteFn(ctx, id)
}

func (r *fakeProductRepository) Stats(ctx context.Context) (*product.Stats, error) {
	return r.statsFn(ctx)
}
