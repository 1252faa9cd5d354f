package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/handlers"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "handler-test-secret"
	testIssuer    = "bookkeeping-test"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func testConfig(requireAuth bool) *config.Config {
	return &config.Config{
		JWTSecret:          testJWTSecret,
		JWTIssuer:          testIssuer,
		JWTExpiryDuration:  time.Hour,
		RequireAuth:        requireAuth,
		CORSAllowedOrigins: []string{"*"},
		LoginRateLimit:     "1000-M",
	}
}

func newRouter(cfg *config.Config, container *portssvc.ServiceContainer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	saleSvc      *MockSaleService
	purchaseSvc  *MockPurchaseService
	authSvc      *MockAuthService
	tokenSvc     *MockTokenService
	reportingSvc *MockReportingService
}

func (s *HandlerTestSuite) SetupTest() {
	s.saleSvc = new(MockSaleService)
	s.purchaseSvc = new(MockPurchaseService)
	s.authSvc = new(MockAuthService)
	s.tokenSvc = new(MockTokenService)
	s.reportingSvc = new(MockReportingService)
	s.router = newRouter(testConfig(false), &portssvc.ServiceContainer{
		Sale:      s.saleSvc,
		Purchase:  s.purchaseSvc,
		Auth:      s.authSvc,
		Token:     s.tokenSvc,
		Reporting: s.reportingSvc,
	})
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			s.Require().NoError(err)
			reader = bytes.NewBuffer(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func (s *HandlerTestSuite) TestCreateSale_Success() {
	s.saleSvc.On("CreateSale", mock.Anything, mock.MatchedBy(func(req dto.CreateSaleRequest) bool {
		return req.Customer == "Ravi" && req.Total.Equal(decimal.NewFromInt(1500)) && req.SaleDate == "2024-07-15"
	})).Return(&domain.Sale{ID: 7}, nil).Once()

	w := s.do(http.MethodPost, "/api/sales", `{"customer":"Ravi","total":1500,"payment_method":"cash","sale_date":"2024-07-15"}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.CreatedResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal(int64(7), resp.ID)
	s.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
	s.saleSvc.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateSale_BindingRejectsBadInput() {
	cases := map[string]string{
		"zero total":     `{"customer":"Ravi","total":0,"sale_date":"2024-07-15"}`,
		"negative total": `{"customer":"Ravi","total":-3,"sale_date":"2024-07-15"}`,
		"missing date":   `{"customer":"Ravi","total":10}`,
		"bad date":       `{"customer":"Ravi","total":10,"sale_date":"tomorrow"}`,
		"no customer":    `{"total":10,"sale_date":"2024-07-15"}`,
		"not json":       `{"customer":`,
	}
	for name, body := range cases {
		s.Run(name, func() {
			w := s.do(http.MethodPost, "/api/sales", body)
			s.Equal(http.StatusBadRequest, w.Code)
			s.NotEmpty(s.errorBody(w))
		})
	}
	s.saleSvc.AssertNotCalled(s.T(), "CreateSale", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateSale_FieldNamesInMessage() {
	w := s.do(http.MethodPost, "/api/sales", `{"customer":"Ravi","total":10,"sale_date":"whenever"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.errorBody(w), "sale_date")
}

func (s *HandlerTestSuite) TestCreateSale_ServiceValidationIs400() {
	s.saleSvc.On("CreateSale", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := s.do(http.MethodPost, "/api/sales", `{"customer":"Ravi","total":10,"sale_date":"2024-07-15"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListSales() {
	s.saleSvc.On("ListSales", mock.Anything).Return([]domain.Sale{{ID: 1, Customer: "A", Total: decimal.NewFromInt(10)}}, nil).Once()

	w := s.do(http.MethodGet, "/api/sales", nil)

	s.Equal(http.StatusOK, w.Code)
	var sales []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &sales))
	s.Require().Len(sales, 1)
	s.Equal(float64(10), sales[0]["total"], "totals render as JSON numbers")
}

func (s *HandlerTestSuite) TestUpdateSale() {
	s.saleSvc.On("UpdateSale", mock.Anything, int64(9), mock.MatchedBy(func(req dto.UpdateSaleRequest) bool {
		return req.Notes != nil && *req.Notes == "paid" && req.Total == nil
	})).Return(&domain.Sale{ID: 9}, nil).Once()
	s.saleSvc.On("UpdateSale", mock.Anything, int64(10), mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	w := s.do(http.MethodPut, "/api/sales/9", `{"notes":"paid"}`)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())

	w = s.do(http.MethodPut, "/api/sales/10", `{"notes":"paid"}`)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Sale not found", s.errorBody(w))

	w = s.do(http.MethodPut, "/api/sales/abc", `{"notes":"paid"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/sales/9", `{"total":0}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.saleSvc.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestDeletePurchase() {
	s.purchaseSvc.On("DeletePurchase", mock.Anything, int64(4)).Return(nil).Once()
	s.purchaseSvc.On("DeletePurchase", mock.Anything, int64(4)).Return(apperrors.ErrNotFound).Once()

	w := s.do(http.MethodDelete, "/api/purchases/4", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodDelete, "/api/purchases/4", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Purchase not found", s.errorBody(w))
}

func (s *HandlerTestSuite) TestCreatePurchase() {
	s.purchaseSvc.On("CreatePurchase", mock.Anything, mock.MatchedBy(func(req dto.CreatePurchaseRequest) bool {
		return req.Supplier == "Wholesale Co" && req.InvoiceNumber == "INV-1"
	})).Return(&domain.Purchase{ID: 11}, nil).Once()

	w := s.do(http.MethodPost, "/api/purchases", `{"supplier":"Wholesale Co","total":"300.50","invoice_number":"INV-1","purchase_date":"2024-07-14"}`)

	s.Equal(http.StatusCreated, w.Code)
	s.JSONEq(`{"success":true,"id":11}`, w.Body.String())
}

func (s *HandlerTestSuite) TestDashboard() {
	s.reportingSvc.On("Dashboard", mock.Anything).Return(&domain.DashboardSnapshot{
		TotalSales:     decimal.NewFromInt(1500),
		TotalPurchases: decimal.NewFromInt(300),
		TodaySales:     decimal.NewFromInt(1000),
		TodayPurchases: decimal.NewFromInt(300),
		SalesCount:     2,
		PurchasesCount: 1,
		NetProfit:      decimal.NewFromInt(1200),
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/dashboard", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"totalSales":1500,"totalPurchases":300,"todaySales":1000,"todayPurchases":300,"salesCount":2,"purchasesCount":1,"netProfit":1200}`, w.Body.String())
}

func (s *HandlerTestSuite) TestMonthlyRollup_NullAverage() {
	s.reportingSvc.On("MonthlyRollup", mock.Anything, 6).Return([]domain.PeriodTotals{
		{Period: "2024-07", Sales: decimal.NewFromInt(400), Purchases: decimal.Zero, SaleCount: 2},
		{Period: "2024-08", Sales: decimal.Zero, Purchases: decimal.NewFromInt(50)},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/reports/monthly?months=6", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[
		{"month":"2024-07","sales":400,"purchases":0,"saleCount":2,"averageSale":200,"profit":400},
		{"month":"2024-08","sales":0,"purchases":50,"saleCount":0,"averageSale":null,"profit":-50}
	]`, w.Body.String())
}

func (s *HandlerTestSuite) TestMonthlyRollup_DefaultsAndValidation() {
	s.reportingSvc.On("MonthlyRollup", mock.Anything, 12).Return([]domain.PeriodTotals{}, nil).Once()

	w := s.do(http.MethodGet, "/api/reports/monthly", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())

	w = s.do(http.MethodGet, "/api/reports/monthly?months=-1", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestYearlyRollup() {
	s.reportingSvc.On("YearlyRollup", mock.Anything).Return([]domain.PeriodTotals{
		{Period: "2024", Sales: decimal.NewFromInt(90), Purchases: decimal.NewFromInt(30), SaleCount: 3, PurchaseCount: 1},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/reports/yearly", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"year":"2024","sales":90,"purchases":30,"saleCount":3,"purchaseCount":1,"averageSale":30,"profit":60}]`, w.Body.String())
}

func (s *HandlerTestSuite) TestReport_ParsesFilter() {
	s.reportingSvc.On("Report", mock.Anything, domain.ReportFilter{Month: 7, Year: 2024, Type: domain.ReportSales}).
		Return(&domain.Report{
			Filter:         domain.ReportFilter{Month: 7, Year: 2024, Type: domain.ReportSales},
			Sales:          []domain.Sale{{ID: 1, Total: decimal.NewFromInt(100), SaleDate: "2024-07-03"}},
			TotalSales:     decimal.NewFromInt(100),
			TotalPurchases: decimal.Zero,
			NetProfit:      decimal.NewFromInt(100),
		}, nil).Once()

	w := s.do(http.MethodGet, "/api/reports?month=07&year=2024&type=sales", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal([]any{}, resp["purchases"])
	s.Len(resp["sales"], 1)
	summary := resp["summary"].(map[string]any)
	s.Equal(float64(100), summary["netProfit"])
	s.reportingSvc.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestReport_RejectsBadQuery() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/reports?type=refunds", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/reports?month=13", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/reports?year=abc", nil).Code)
	s.reportingSvc.AssertNotCalled(s.T(), "Report", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestTransactions() {
	s.reportingSvc.On("RecentTransactions", mock.Anything, 5).Return([]domain.TransactionEntry{
		{Kind: domain.KindPurchase, ID: 3, Total: decimal.NewFromInt(5)},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/transactions?limit=5", nil)

	s.Equal(http.StatusOK, w.Code)
	var entries []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entries))
	s.Require().Len(entries, 1)
	s.Equal("purchase", entries[0]["type"])
}

func (s *HandlerTestSuite) TestLogin() {
	admin := &domain.User{ID: 1, Username: "admin", PasswordHash: "hash", Role: domain.RoleAdmin}
	expires := time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)
	s.authSvc.On("Login", mock.Anything, "admin", "correct").Return(admin, nil).Once()
	s.authSvc.On("Login", mock.Anything, "admin", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()
	s.tokenSvc.On("GenerateAccessToken", mock.Anything, admin).Return("signed", expires, nil).Once()

	w := s.do(http.MethodPost, "/api/login", dto.LoginRequest{Username: "admin", Password: "correct"})
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"user":{"id":1,"username":"admin","role":"admin"},"token":"signed","expiresAt":"2024-07-16T00:00:00Z"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/login", dto.LoginRequest{Username: "admin", Password: "wrong"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.NotEmpty(s.errorBody(w))

	w = s.do(http.MethodPost, "/api/login", `{"username":"admin"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/health", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.HealthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("ok", resp.Status)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestRequireAuth(t *testing.T) {
	saleSvc := new(MockSaleService)
	saleSvc.On("ListSales", mock.Anything).Return([]domain.Sale{}, nil)
	r := newRouter(testConfig(true), &portssvc.ServiceContainer{
		Sale:      saleSvc,
		Purchase:  new(MockPurchaseService),
		Auth:      new(MockAuthService),
		Token:     new(MockTokenService),
		Reporting: new(MockReportingService),
	})

	get := func(path, token string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := get("/api/sales", ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
	if code := get("/api/sales", "garbage"); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", code)
	}

	token, err := utils.GenerateJWT("1", "admin", domain.RoleAdmin, testJWTSecret, time.Now(), time.Hour, testIssuer)
	if err != nil {
		t.Fatal(err)
	}
	if code := get("/api/sales", token); code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", code)
	}
	if code := get("/api/health", ""); code != http.StatusOK {
		t.Fatalf("health must stay public, got %d", code)
	}
}
