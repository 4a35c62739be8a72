package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// stubTxRunner ejecuta la unidad de trabajo contra un único repuesto en memoria
// o falla con el error inyectado (simula caída del storage).
type stubTxRunner struct {
	part    *entity.Part
	entries []entity.LedgerEntry
	failErr error
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(repository.PartRepository, repository.LedgerRepository) error) error {
	if s.failErr != nil {
		return s.failErr
	}
	return fn(&stubPartRepo{s: s}, &stubLedgerRepo{s: s})
}

type stubPartRepo struct{ s *stubTxRunner }

func (r *stubPartRepo) GetForUpdate(id string) (*entity.Part, error) {
	if r.s.part == nil || r.s.part.ID != id {
		return nil, nil
	}
	cp := *r.s.part
	return &cp, nil
}

func (r *stubPartRepo) UpdateStock(id string, stock int) error {
	r.s.part.Stock = stock
	return nil
}

func (r *stubPartRepo) Create(*entity.Part) error               { panic("no usado") }
func (r *stubPartRepo) GetByID(id string) (*entity.Part, error) { return r.GetForUpdate(id) }
func (r *stubPartRepo) Update(*entity.Part) error               { panic("no usado") }
func (r *stubPartRepo) Delete(string) error                     { panic("no usado") }
func (r *stubPartRepo) List(string, int, int) ([]repository.PartWithSupplier, int, error) {
	panic("no usado")
}
func (r *stubPartRepo) ListAllWithSupplier() ([]repository.PartWithSupplier, error) {
	panic("no usado")
}

type stubLedgerRepo struct{ s *stubTxRunner }

func (r *stubLedgerRepo) Create(entry *entity.LedgerEntry) error {
	r.s.entries = append(r.s.entries, *entry)
	return nil
}
func (r *stubLedgerRepo) List(repository.LedgerFilter) ([]repository.LedgerEntryRow, int, error) {
	panic("no usado")
}
func (r *stubLedgerRepo) ExistsByUser(string) (bool, error) { panic("no usado") }

func buildTransactionApp(runner ledger.TxRunner) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewTransactionHandler(ledger.NewCoordinator(runner), nil)
	app.Post("/api/transactions", apphttp.AuthMiddleware(testJWTSecret), handler.Submit)
	return app
}

func postTransaction(t *testing.T, app *fiber.App, body dto.SubmitTransactionRequest) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "operator"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSubmitTransaction_Confirmado_Retorna201(t *testing.T) {
	runner := &stubTxRunner{part: &entity.Part{ID: "p1", Stock: 100}}
	app := buildTransactionApp(runner)

	resp := postTransaction(t, app, dto.SubmitTransactionRequest{
		PartID: "p1", Type: entity.TransTypeOUT, Quantity: 40, Remark: "orden de trabajo 77",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry dto.LedgerEntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "p1", entry.PartID)
	assert.Equal(t, testUserID, entry.UserID, "el asiento debe atribuirse al usuario del token")
	assert.Equal(t, 40, entry.Quantity)
	assert.Equal(t, 60, runner.part.Stock)
}

func TestSubmitTransaction_RechazoDeNegocio_Retorna400(t *testing.T) {
	cases := []struct {
		name string
		body dto.SubmitTransactionRequest
	}{
		{"stock insuficiente", dto.SubmitTransactionRequest{PartID: "p1", Type: entity.TransTypeOUT, Quantity: 500}},
		{"cantidad inválida", dto.SubmitTransactionRequest{PartID: "p1", Type: entity.TransTypeIN, Quantity: 0}},
		{"tipo desconocido", dto.SubmitTransactionRequest{PartID: "p1", Type: "TRANSFER", Quantity: 1}},
		{"repuesto inexistente", dto.SubmitTransactionRequest{PartID: "otro", Type: entity.TransTypeIN, Quantity: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &stubTxRunner{part: &entity.Part{ID: "p1", Stock: 100}}
			app := buildTransactionApp(runner)

			resp := postTransaction(t, app, tc.body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, 100, runner.part.Stock, "un rechazo nunca cambia el stock")
			assert.Empty(t, runner.entries, "un rechazo nunca escribe en el libro")
		})
	}
}

func TestSubmitTransaction_FalloDeInfraestructura_Retorna500(t *testing.T) {
	runner := &stubTxRunner{
		part:    &entity.Part{ID: "p1", Stock: 100},
		failErr: errors.New("connection refused"),
	}
	app := buildTransactionApp(runner)

	resp := postTransaction(t, app, dto.SubmitTransactionRequest{
		PartID: "p1", Type: entity.TransTypeIN, Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSubmitTransaction_SinToken_Retorna401(t *testing.T) {
	app := buildTransactionApp(&stubTxRunner{})
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Asegura que el stub satisface el puerto del coordinador.
var _ ledger.TxRunner = (*stubTxRunner)(nil)
