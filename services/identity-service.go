package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/animekoon434-afk/SyncTask/logging"
	"github.com/animekoon434-afk/SyncTask/models"
)

// IdentityService is the adapter for the external identity provider. All
// outbound calls go through a circuit breaker; the provider is the only
// remote dependency besides the database.
type IdentityService struct {
	client      *http.Client
	breaker     *gobreaker.CircuitBreaker
	apiURL      string
	secretKey   string
	frontendURL string
}

func NewIdentityService(apiURL, secretKey, frontendURL string) *IdentityService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "IdentityProviderCB",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	return &IdentityService{
		client:      &http.Client{Timeout: 10 * time.Second},
		breaker:     breaker,
		apiURL:      strings.TrimRight(apiURL, "/"),
		secretKey:   secretKey,
		frontendURL: frontendURL,
	}
}

// providerUser mirrors the provider's wire format for a user record.
type providerUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// SearchUsers finds provider accounts whose email contains the query,
// excluding the caller. The provider has no substring search, so the list
// is fetched and filtered here, as the provider SDKs do.
func (s *IdentityService) SearchUsers(ctx context.Context, callerID, email string) ([]models.ProviderUser, error) {
	if len(strings.TrimSpace(email)) < 3 {
		return nil, ErrSearchTooShort
	}

	body, err := s.do(ctx, http.MethodGet, "/users?limit=100", nil)
	if err != nil {
		return nil, err
	}

	var users []providerUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(email))
	matched := []models.ProviderUser{}
	for _, u := range users {
		if u.ID == callerID {
			continue
		}
		var primary string
		var hit bool
		for _, e := range u.EmailAddresses {
			if primary == "" {
				primary = e.EmailAddress
			}
			if strings.Contains(strings.ToLower(e.EmailAddress), query) {
				hit = true
			}
		}
		if !hit {
			continue
		}
		matched = append(matched, models.ProviderUser{
			ID:        u.ID,
			Email:     primary,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			ImageURL:  u.ImageURL,
		})
	}
	return matched, nil
}

// SendInvitation asks the provider to email a signup invitation to an
// address that has no account yet.
func (s *IdentityService) SendInvitation(ctx context.Context, callerID, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}

	payload := map[string]interface{}{
		"email_address": email,
		"redirect_url":  s.frontendURL,
		"public_metadata": map[string]string{
			"invitedBy": callerID,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := s.do(ctx, http.MethodPost, "/invitations", body); err != nil {
		return err
	}

	logging.Logger.Infof("Event ID: PROVIDER_INVITATION_SENT, Description: Signup invitation sent to %s by user %s", email, callerID)
	return nil
}

// do executes one provider API call through the circuit breaker.
func (s *IdentityService) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if s.secretKey == "" {
		return nil, fmt.Errorf("identity provider is not configured")
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, s.apiURL+path, reqBody)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+s.secretKey)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return body, nil
	})
	if err != nil {
		return nil, fmt.Errorf("identity provider call failed: %w", err)
	}
	return result.([]byte), nil
}
