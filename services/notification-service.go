package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"project-manager-service/models"

	"github.com/sony/gobreaker"
)

type Notifier interface {
	NotifyAssignment(ctx context.Context, assignee models.User, taskCount int) error
}

// NotificationService šalje obaveštenja eksternom notifications servisu.
// Poziv ide kroz circuit breaker da ispadi tog servisa ne ruše dodelu.
type NotificationService struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewNotificationService(baseURL string, httpClient *http.Client, breaker *gobreaker.CircuitBreaker) *NotificationService {
	return &NotificationService{
		baseURL:    baseURL,
		httpClient: httpClient,
		breaker:    breaker,
	}
}

func (s *NotificationService) NotifyAssignment(ctx context.Context, assignee models.User, taskCount int) error {
	payload := map[string]interface{}{
		"username": assignee.Username,
		"message":  fmt.Sprintf("You have been assigned %d task(s)", taskCount),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %v", err)
	}

	_, err = s.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/notifications", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("notifications service returned status %d", resp.StatusCode)
		}
		return nil, nil
	})

	return err
}
