package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/application/inventory"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
	apphttp "github.com/jhoicas/repuestos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: aplicación Fiber completa sobre repositorios en memoria, con una
// categoría "Frenos" (id 1) y un repuesto "Pastillas de freno" (id 1, stock 8).
// ──────────────────────────────────────────────────────────────────────────────

type stubCategoryRepo struct{ categories map[int64]*entity.Category }

func (r *stubCategoryRepo) FindAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r *stubCategoryRepo) FindByID(id int64) (*entity.Category, error) {
	return r.categories[id], nil
}
func (r *stubCategoryRepo) Create(c *entity.Category) error {
	c.ID = int64(len(r.categories) + 1)
	r.categories[c.ID] = c
	return nil
}
func (r *stubCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}
func (r *stubCategoryRepo) Delete(id int64) (bool, error) {
	_, ok := r.categories[id]
	delete(r.categories, id)
	return ok, nil
}

type stubPartRepo struct{ parts map[int64]*entity.Part }

func (r *stubPartRepo) FindAll() ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}
func (r *stubPartRepo) FindByID(id int64) (*entity.Part, error)          { return r.parts[id], nil }
func (r *stubPartRepo) FindByIDForUpdate(id int64) (*entity.Part, error) { return r.parts[id], nil }
func (r *stubPartRepo) Search(repository.PartSearchFilter) ([]*entity.Part, int, error) {
	return nil, 0, nil
}
func (r *stubPartRepo) FindLowStock() ([]*entity.Part, error) { return nil, nil }
func (r *stubPartRepo) Create(p *entity.Part) error {
	p.ID = int64(len(r.parts) + 1)
	r.parts[p.ID] = p
	return nil
}
func (r *stubPartRepo) Update(p *entity.Part) error {
	r.parts[p.ID] = p
	return nil
}
func (r *stubPartRepo) UpdateStock(partID int64, newStock int) error {
	if p, ok := r.parts[partID]; ok {
		p.CurrentStock = newStock
	}
	return nil
}
func (r *stubPartRepo) Delete(id int64) (bool, error) {
	_, ok := r.parts[id]
	delete(r.parts, id)
	return ok, nil
}

type stubTransactionRepo struct{ transactions []*entity.Transaction }

func (r *stubTransactionRepo) FindAll() ([]*entity.Transaction, error) { return r.transactions, nil }
func (r *stubTransactionRepo) FindByID(id int64) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *stubTransactionRepo) FindByPartID(partID int64) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.PartID == partID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *stubTransactionRepo) Create(t *entity.Transaction) error {
	t.ID = int64(len(r.transactions) + 1)
	r.transactions = append(r.transactions, t)
	return nil
}
func (r *stubTransactionRepo) UpdatePayment(id int64, amountPaid decimal.Decimal, isPaid bool) (*entity.Transaction, error) {
	t, _ := r.FindByID(id)
	if t == nil {
		return nil, nil
	}
	t.AmountPaid = amountPaid
	t.IsPaid = isPaid
	return t, nil
}
func (r *stubTransactionRepo) Delete(id int64) (bool, error) {
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
func (r *stubTransactionRepo) FastMovingParts(int) ([]repository.FastMovingPart, error) {
	return nil, nil
}

type stubStatsRepo struct{}

func (stubStatsRepo) InventoryStats(context.Context) (*repository.InventoryStatsResult, error) {
	return &repository.InventoryStatsResult{TotalCategories: 1, TotalParts: 1}, nil
}
func (stubStatsRepo) CategoryStats(context.Context) ([]repository.CategoryStatsResult, error) {
	return []repository.CategoryStatsResult{
		{CategoryID: 1, CategoryName: "Frenos", PartCount: 1},
	}, nil
}

type stubTxRunner struct {
	partRepo *stubPartRepo
	txRepo   *stubTransactionRepo
}

func (tr *stubTxRunner) Run(_ context.Context, fn func(repository.PartRepository, repository.TransactionRepository) error) error {
	return fn(tr.partRepo, tr.txRepo)
}

func buildTestApp() (*fiber.App, *stubPartRepo) {
	now := time.Now().UTC()
	categoryRepo := &stubCategoryRepo{categories: map[int64]*entity.Category{
		1: {ID: 1, Name: "Frenos", CreatedAt: now},
	}}
	partRepo := &stubPartRepo{parts: map[int64]*entity.Part{
		1: {
			ID:           1,
			Name:         "Pastillas de freno",
			PartNumber:   "PF-8821",
			CategoryID:   1,
			CategoryName: "Frenos",
			UnitPrice:    decimal.RequireFromString("45.00"),
			CurrentStock: 8,
			MinimumStock: 2,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}}
	txRepo := &stubTransactionRepo{}
	txRunner := &stubTxRunner{partRepo: partRepo, txRepo: txRepo}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:        usecase.NewCategoryUseCase(categoryRepo),
		PartUC:            usecase.NewPartUseCase(partRepo, categoryRepo, txRunner),
		TransactionUC:     usecase.NewTransactionUseCase(txRepo),
		CreateTransaction: inventory.NewCreateTransactionUseCase(txRunner),
		StatsUC:           usecase.NewStatsUseCase(stubStatsRepo{}),
	})
	return app, partRepo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope), "toda respuesta debe ser una envoltura JSON")
	return resp, envelope
}

// ──────────────────────────────────────────────────────────────────────────────
// Envoltura y códigos de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ListaCategoriasEnEnvoltura(t *testing.T) {
	app, _ := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope["success"])
	assert.NotNil(t, envelope["data"])
}

func TestRouter_CrearCategoriaDevuelve201(t *testing.T) {
	app, _ := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/categories",
		map[string]any{"name": "Suspensión"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, envelope["success"])
}

func TestRouter_RepuestoInexistenteDevuelve404(t *testing.T) {
	app, _ := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/parts/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, envelope["success"])
	assert.NotEmpty(t, envelope["error"])
}

func TestRouter_IDNoNumericoDevuelve400(t *testing.T) {
	app, _ := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/parts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, envelope["success"])
}

func TestRouter_CuerpoInvalidoDevuelve400(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos de stock vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_TransaccionOUTMutaElStock(t *testing.T) {
	app, partRepo := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/transactions",
		map[string]any{"partId": 1, "type": "OUT", "quantity": 3})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, 5, partRepo.parts[1].CurrentStock)
}

func TestRouter_StockInsuficienteDevuelve400(t *testing.T) {
	app, partRepo := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/transactions",
		map[string]any{"partId": 1, "type": "OUT", "quantity": 50})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, envelope["success"])
	assert.Contains(t, envelope["error"], "stock insuficiente")
	assert.Equal(t, 8, partRepo.parts[1].CurrentStock, "el stock no cambia")
}

func TestRouter_TransaccionSobreRepuestoInexistenteDevuelve400(t *testing.T) {
	app, _ := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/transactions",
		map[string]any{"partId": 999, "type": "IN", "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, envelope["success"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas fijas frente a rutas con parámetro
// ──────────────────────────────────────────────────────────────────────────────

// /api/parts/low-stock y /api/transactions/fast-moving deben resolverse como
// rutas fijas y no capturarse como /:id.
func TestRouter_RutasFijasNoColisionanConParametros(t *testing.T) {
	app, _ := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/parts/low-stock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope["success"])

	resp, envelope = doJSON(t, app, http.MethodGet, "/api/transactions/fast-moving", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope["success"])
}

func TestRouter_EstadisticasDeInventario(t *testing.T) {
	app, _ := buildTestApp()

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/stats/inventory", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope["success"])

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, data["totalParts"])
}
