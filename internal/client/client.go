// Package client is a typed HTTP client for the booking API, plus the
// local state container a frontend keeps between calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/response_models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// APIError is a non-success envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Status  string          `json:"status"`
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	var out response_models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Login authenticates and installs the returned token.
func (c *Client) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	var out response_models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) CurrentAccount(ctx context.Context) (*db_models.Account, error) {
	var out db_models.Account
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListServices(ctx context.Context) ([]db_models.CatalogService, error) {
	var out []db_models.CatalogService
	if err := c.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListWorkers(ctx context.Context) ([]db_models.Worker, error) {
	var out []db_models.Worker
	if err := c.do(ctx, http.MethodGet, "/workers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) NearbyWorkers(ctx context.Context, lat, lng, radiusKm float64) ([]response_models.NearbyWorkerResponse, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lng", fmt.Sprintf("%f", lng))
	query.Set("radius_km", fmt.Sprintf("%f", radiusKm))

	var out []response_models.NearbyWorkerResponse
	if err := c.do(ctx, http.MethodGet, "/workers/nearby?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (*db_models.Booking, error) {
	var out db_models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]db_models.Booking, error) {
	var out []db_models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*db_models.Booking, error) {
	var out db_models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status db_models.BookingStatus) (*db_models.Booking, error) {
	req := request_models.UpdateBookingStatusRequest{Status: status}
	var out db_models.Booking
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+id+"/status", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, id, reason string) (*db_models.Booking, error) {
	req := request_models.CancelBookingRequest{Reason: reason}
	var out db_models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/"+id+"/cancel", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, bookingID string) (*response_models.PaymentIntentResponse, error) {
	req := request_models.CreatePaymentIntentRequest{BookingID: bookingID}
	var out response_models.PaymentIntentResponse
	if err := c.do(ctx, http.MethodPost, "/payments/intent", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListNotifications(ctx context.Context) ([]db_models.Notification, error) {
	var out []db_models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
