// Package bookitclient клиент HTTP API сервиса бронирований.
package bookitclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент для работы с BookIt API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP создает клиента с готовым http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListExperiences получает все впечатления
func (c *Client) ListExperiences(ctx context.Context) ([]Experience, error) {
	var experiences []Experience
	if _, err := c.do(ctx, http.MethodGet, "/api/experiences", nil, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

// GetExperience получает впечатление по ID
func (c *Client) GetExperience(ctx context.Context, id int64) (*Experience, error) {
	var experience Experience
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/experiences/%d", id), nil, &experience); err != nil {
		return nil, err
	}
	return &experience, nil
}

// ListSlots получает слоты впечатления
func (c *Client) ListSlots(ctx context.Context, experienceID int64) ([]Slot, error) {
	var slots []Slot
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/experiences/%d/slots", experienceID), nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ValidatePromo проверяет промокод для суммы
func (c *Client) ValidatePromo(ctx context.Context, req PromoRequest) (*PromoResult, error) {
	var result PromoResult
	if _, err := c.do(ctx, http.MethodPost, "/api/promo/validate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateBooking создает бронирование, возвращает его и сообщение сервиса
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*Booking, string, error) {
	var booking Booking
	message, err := c.do(ctx, http.MethodPost, "/api/bookings", req, &booking)
	if err != nil {
		return nil, "", err
	}
	return &booking, message, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, id int64) (*Booking, error) {
	var booking Booking
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Health проверяет живость сервиса. Ответ не обернут в конверт.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	resp, err := c.send(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &health, nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

// do выполняет запрос и разбирает конверт. Решение принимается по полю success.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (string, error) {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("%w: status %d, failed to decode response: %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	if !env.Success {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Field:      env.Field,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
		}
	}

	return env.Message, nil
}
