package notificationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const staffAssignedPath = "/internal/notifications/staff-assigned"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с NotificationService
// Сервис уведомлений сам ставит сообщения в очередь, доставка и повторы на его стороне
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotificationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyStaffAssigned ставит в очередь одно уведомление "вы назначены" для всех получателей
func (c *Client) NotifyStaffAssigned(ctx context.Context, notification *StaffAssignedNotification) error {
	if notification == nil || len(notification.Recipients) == 0 {
		return ErrNoRecipients
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := c.baseURL + staffAssignedPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("Queueing staff-assigned notification for %s id=%d, recipients=%d",
		notification.BookingType, notification.ReservationID, len(notification.Recipients))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusBadRequest:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: notification rejected: %s", ErrInvalidResponse, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("NotificationService returned status %d for %s id=%d", resp.StatusCode, notification.BookingType, notification.ReservationID)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
