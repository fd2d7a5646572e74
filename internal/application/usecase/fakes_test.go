package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test en memoria para los puertos de persistencia. Configurables
// por campo: los tests fijan el estado inicial y capturan lo que se escribe.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	nextID     int64
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[int64]*entity.Category), nextID: 1}
	for _, c := range categories {
		r.categories[c.ID] = c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *fakeCategoryRepo) FindAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(id int64) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	c.ID = r.nextID
	r.nextID++
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id int64) (bool, error) {
	_, ok := r.categories[id]
	delete(r.categories, id)
	return ok, nil
}

type fakePartRepo struct {
	parts  map[int64]*entity.Part
	nextID int64

	// capturados por Search para verificar la traducción página → offset
	lastFilter  repository.PartSearchFilter
	searchList  []*entity.Part
	searchTotal int
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	r := &fakePartRepo{parts: make(map[int64]*entity.Part), nextID: 1}
	for _, p := range parts {
		r.parts[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakePartRepo) FindAll() ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartRepo) FindByID(id int64) (*entity.Part, error)          { return r.parts[id], nil }
func (r *fakePartRepo) FindByIDForUpdate(id int64) (*entity.Part, error) { return r.parts[id], nil }

func (r *fakePartRepo) Search(filter repository.PartSearchFilter) ([]*entity.Part, int, error) {
	r.lastFilter = filter
	return r.searchList, r.searchTotal, nil
}

func (r *fakePartRepo) FindLowStock() ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) Create(p *entity.Part) error {
	p.ID = r.nextID
	r.nextID++
	r.parts[p.ID] = p
	return nil
}

func (r *fakePartRepo) Update(p *entity.Part) error {
	r.parts[p.ID] = p
	return nil
}

func (r *fakePartRepo) UpdateStock(partID int64, newStock int) error {
	if p, ok := r.parts[partID]; ok {
		p.CurrentStock = newStock
	}
	return nil
}

func (r *fakePartRepo) Delete(id int64) (bool, error) {
	_, ok := r.parts[id]
	delete(r.parts, id)
	return ok, nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	fastMoving   []repository.FastMovingPart
	nextID       int64
}

func newFakeTransactionRepo(txs ...*entity.Transaction) *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: txs, nextID: int64(len(txs)) + 1}
}

func (r *fakeTransactionRepo) FindAll() ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *fakeTransactionRepo) FindByID(id int64) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) FindByPartID(partID int64) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.PartID == partID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Create(t *entity.Transaction) error {
	t.ID = r.nextID
	r.nextID++
	r.transactions = append(r.transactions, t)
	return nil
}

func (r *fakeTransactionRepo) UpdatePayment(id int64, amountPaid decimal.Decimal, isPaid bool) (*entity.Transaction, error) {
	t, _ := r.FindByID(id)
	if t == nil {
		return nil, nil
	}
	t.AmountPaid = amountPaid
	t.IsPaid = isPaid
	return t, nil
}

func (r *fakeTransactionRepo) Delete(id int64) (bool, error) {
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTransactionRepo) FastMovingParts(limit int) ([]repository.FastMovingPart, error) {
	if limit < len(r.fastMoving) {
		return r.fastMoving[:limit], nil
	}
	return r.fastMoving, nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	partRepo *fakePartRepo
	txRepo   *fakeTransactionRepo
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(repository.PartRepository, repository.TransactionRepository) error) error {
	return fn(tr.partRepo, tr.txRepo)
}
