package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	billinghandler "caseflow/internal/billing/handler"
	"caseflow/internal/billing/models"
	"caseflow/internal/billing/service"
	"caseflow/internal/billing/store/ledger"
	"caseflow/internal/jwttoken"
	id "caseflow/pkg/domain"
)

type RouterSuite struct {
	suite.Suite
	store  *ledger.InMemory
	tokens *jwttoken.Service
	router http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.store = ledger.NewInMemory()
	s.tokens = jwttoken.NewService("test-signing-key", "caseflow")

	log := slog.New(slog.DiscardHandler)
	billing, err := service.New(s.store, service.WithLogger(log))
	s.Require().NoError(err)

	s.router = NewRouter(RouterConfig{
		Billing:   billinghandler.New(billing, log),
		Validator: s.tokens,
		Logger:    log,
	})
}

func (s *RouterSuite) request(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(context.Background())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestOpenEndpoints() {
	s.Run("healthz needs no token", func() {
		rec := s.request("/healthz", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("ok", rec.Body.String())
	})

	s.Run("metrics needs no token", func() {
		rec := s.request("/metrics", "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *RouterSuite) TestBillingRoutesRequireAuth() {
	clientID := id.ClientID(uuid.New())
	path := "/clients/" + clientID.String() + "/payment-eligibility"

	s.Run("missing token", func() {
		rec := s.request(path, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid token", func() {
		rec := s.request(path, "garbage")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("valid token reaches the handler", func() {
		s.store.AddInvoice(models.Invoice{
			ID:            id.InvoiceID(uuid.New()),
			ClientID:      clientID,
			InvoiceNumber: "INV-1",
			Status:        models.InvoiceStatusPaid,
			TotalAmount:   5_000,
			PaidAmount:    5_000,
		})

		token, err := s.tokens.GenerateAccessToken("staff-1", time.Hour)
		s.Require().NoError(err)

		rec := s.request(path, token)
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(true, body["is_valid"])
	})
}

func (s *RouterSuite) TestSummaryEndToEnd() {
	clientID := id.ClientID(uuid.New())
	s.store.AddInvoice(models.Invoice{
		ID:            id.InvoiceID(uuid.New()),
		ClientID:      clientID,
		InvoiceNumber: "INV-1",
		Status:        models.InvoiceStatusUnpaid,
		TotalAmount:   5_000,
	})

	token, err := s.tokens.GenerateAccessToken("staff-1", time.Hour)
	s.Require().NoError(err)

	rec := s.request("/clients/"+clientID.String()+"/payment-summary", token)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(float64(1), body["total_invoices"])
	s.Equal(false, body["can_create_case"])
	s.Equal(models.MsgNoQualifyingInvoice, body["reason"])
}
