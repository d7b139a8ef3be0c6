package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const bookPath = "/book"

// Client клиент для работы с BookingService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BookingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Book отправляет запрос на бронирование
// Статус ответа не анализируется: сервис отвечает 201 с message или 409 с error,
// поэтому результат определяется только телом ответа
func (c *Client) Book(ctx context.Context, bookReq *BookRequest) (*BookResponse, error) {
	body, err := json.Marshal(bookReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bookPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	var bookResp BookResponse
	if err := json.Unmarshal(raw, &bookResp); err != nil {
		return nil, fmt.Errorf("%w: status %d, failed to decode response: %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	if bookResp.Message != "" {
		c.log.Info("BookingService: booking confirmed court=%s date=%s start=%s status=%d",
			bookReq.CourtType, bookReq.Date, bookReq.StartTime, resp.StatusCode)
	} else {
		c.log.Warn("BookingService: booking not confirmed court=%s date=%s start=%s status=%d error=%q",
			bookReq.CourtType, bookReq.Date, bookReq.StartTime, resp.StatusCode, bookResp.Error)
	}

	return &bookResp, nil
}
