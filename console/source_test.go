package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"astromarket/models"
	"astromarket/services/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource(t *testing.T) {
	avg := 100
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
		case "/api/admin/customers":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.Equal(t, "priya", r.URL.Query().Get("q"))
			_ = json.NewEncoder(w).Encode(customer.SearchResult{
				Customers: []models.CustomerData{{ID: "cust-001", Name: "Priya Patel"}},
				Stats:     models.CustomerStats{TotalCustomers: 1, AverageSpend: &avg},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Customer not found", "details": "x"})
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	ctx := context.Background()
	require.NoError(t, src.Login(ctx, "admin", "pw"))

	res, err := src.Search(ctx, models.CustomerFilter{Term: "priya"})
	require.NoError(t, err)
	require.Len(t, res.Customers, 1)
	require.NotNil(t, res.Stats.AverageSpend)

	_, err = src.GetCustomer(ctx, "x")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestHTTPSourceSearch404IsNotMissingCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Route not found"})
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	_, err := src.Search(context.Background(), models.CustomerFilter{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, customer.ErrCustomerNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Route not found", apiErr.Message)

	_, err = src.GetCustomer(context.Background(), "cust-404")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}
