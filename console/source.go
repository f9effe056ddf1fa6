package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"astromarket/models"
	"astromarket/services/customer"
	"astromarket/utils"
)

// Source is the read side the console needs from the customers admin.
type Source interface {
	Search(ctx context.Context, filter models.CustomerFilter) (*customer.SearchResult, error)
	GetCustomer(ctx context.Context, id string) (*models.CustomerDetail, error)
}

// HTTPSource talks to the admin API.
type HTTPSource struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{BaseURL: baseURL, Client: &http.Client{Timeout: 10 * time.Second}}
}

// Login exchanges admin credentials for a token and keeps it for later calls.
func (s *HTTPSource) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/admin/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Token string `json:"token"`
	}
	if err := s.do(req, &out); err != nil {
		return fmt.Errorf("admin login failed: %w", err)
	}
	s.Token = out.Token
	return nil
}

func (s *HTTPSource) Search(ctx context.Context, filter models.CustomerFilter) (*customer.SearchResult, error) {
	q := url.Values{}
	if filter.Term != "" {
		q.Set("q", filter.Term)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	req, err := s.get(ctx, "/api/admin/customers?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var out customer.SearchResult
	if err := s.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HTTPSource) GetCustomer(ctx context.Context, id string) (*models.CustomerDetail, error) {
	req, err := s.get(ctx, "/api/admin/customers/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	var out models.CustomerDetail
	if err := s.do(req, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", customer.ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return &out, nil
}

// APIError is a non-2xx response from the admin API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (s *HTTPSource) get(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	return req, nil
}

func (s *HTTPSource) do(req *http.Request, out any) error {
	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var body utils.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
			apiErr.Message = fmt.Sprintf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
		} else {
			apiErr.Message = body.Message
		}
		return apiErr
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
