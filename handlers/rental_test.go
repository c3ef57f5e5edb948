package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidly/middleware"
	"vidly/models"
	"vidly/services/rental"
	"vidly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type rentalServiceMock struct {
	checkoutFn func(ctx context.Context, customerID, movieID string) (*models.Rental, error)
	returnFn   func(ctx context.Context, customerID, movieID string) (*models.Rental, error)
}

func (m *rentalServiceMock) Checkout(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	return m.checkoutFn(ctx, customerID, movieID)
}
func (m *rentalServiceMock) Return(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	return m.returnFn(ctx, customerID, movieID)
}
func (m *rentalServiceMock) GetByID(context.Context, string) (*models.Rental, error) {
	return nil, nil
}
func (m *rentalServiceMock) GetAll(context.Context) ([]models.Rental, error) { return nil, nil }

func newReturnsRouter(svc rental.RentalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRentalHandler(svc)
	r.POST("/api/rentals", middleware.AuthRequired(), h.CreateRental)
	r.POST("/api/returns", middleware.AuthRequired(), h.ReturnRental)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("u1", false, time.Hour)
	require.NoError(t, err)
	return token
}

type svcError struct {
	msg  string
	code rental.ErrCode
}

func (e svcError) Error() string        { return e.msg }
func (e svcError) Code() rental.ErrCode { return e.code }

func rentalErr(msg string, code rental.ErrCode) error { return svcError{msg: msg, code: code} }

func TestReturns_RequiresAuth(t *testing.T) {
	r := newReturnsRouter(&rentalServiceMock{})

	w := doPost(t, r, "/api/returns", "", `{"customerId":"c1","movieId":"m1"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReturns_ValidationFailure(t *testing.T) {
	r := newReturnsRouter(&rentalServiceMock{
		returnFn: func(_ context.Context, _, _ string) (*models.Rental, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	})

	w := doPost(t, r, "/api/returns", testToken(t), `{"movieId":"m1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReturns_NotFound(t *testing.T) {
	r := newReturnsRouter(&rentalServiceMock{
		returnFn: func(_ context.Context, _, _ string) (*models.Rental, error) {
			return nil, rentalErr("rental with the given customer ID and movie ID was not found", rental.ErrNotFound)
		},
	})

	w := doPost(t, r, "/api/returns", testToken(t), `{"customerId":"c1","movieId":"m1"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReturns_AlreadyProcessed(t *testing.T) {
	r := newReturnsRouter(&rentalServiceMock{
		returnFn: func(_ context.Context, _, _ string) (*models.Rental, error) {
			return nil, rentalErr("rental already processed", rental.ErrAlreadyProcessed)
		},
	})

	w := doPost(t, r, "/api/returns", testToken(t), `{"customerId":"c1","movieId":"m1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReturns_Success(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	done := t0.AddDate(0, 0, 5)
	fee := 10.0

	r := newReturnsRouter(&rentalServiceMock{
		returnFn: func(_ context.Context, customerID, movieID string) (*models.Rental, error) {
			require.Equal(t, "c1", customerID)
			require.Equal(t, "m1", movieID)
			return &models.Rental{
				ID:         "r1",
				Customer:   models.RentalCustomer{ID: "c1"},
				Movie:      models.RentalMovie{ID: "m1", DailyRentalRate: 2},
				DateRental: t0,
				DateReturn: &done,
				RentalFee:  &fee,
			}, nil
		},
	})

	w := doPost(t, r, "/api/returns", testToken(t), `{"customerId":"c1","movieId":"m1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body models.Rental
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.RentalFee)
	require.Equal(t, 10.0, *body.RentalFee)
	require.NotNil(t, body.DateReturn)
}

func TestRentals_CheckoutCreated(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r := newReturnsRouter(&rentalServiceMock{
		checkoutFn: func(_ context.Context, _, _ string) (*models.Rental, error) {
			return &models.Rental{ID: "r1", DateRental: t0}, nil
		},
	})

	w := doPost(t, r, "/api/rentals", testToken(t), `{"customerId":"c1","movieId":"m1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestRentals_OutOfStock(t *testing.T) {
	r := newReturnsRouter(&rentalServiceMock{
		checkoutFn: func(_ context.Context, _, _ string) (*models.Rental, error) {
			return nil, rentalErr("movie not in stock", rental.ErrOutOfStock)
		},
	})

	w := doPost(t, r, "/api/rentals", testToken(t), `{"customerId":"c1","movieId":"m1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
