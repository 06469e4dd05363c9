package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// client wraps http.Client with the service's URL scheme.
type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// listActivities fetches the full activity mapping.
func (c *client) listActivities(ctx context.Context) (map[string]activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from GET /activities", resp.StatusCode)
	}

	var listing map[string]activity
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return listing, nil
}

// signup registers email for an activity and returns the HTTP status plus
// the message or detail text.
func (c *client) signup(ctx context.Context, activityName, email string) (int, string, error) {
	return c.mutate(ctx, http.MethodPost, activityName, "signup", email)
}

// remove unregisters email from an activity.
func (c *client) remove(ctx context.Context, activityName, email string) (int, string, error) {
	return c.mutate(ctx, http.MethodDelete, activityName, "remove", email)
}

func (c *client) mutate(ctx context.Context, method, activityName, op, email string) (int, string, error) {
	u := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		c.baseURL, url.PathEscape(activityName), op, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, method, u, http.NoBody)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		var msg messageResponse
		if err := json.Unmarshal(body, &msg); err != nil {
			return resp.StatusCode, "", fmt.Errorf("failed to decode message: %w", err)
		}
		return resp.StatusCode, msg.Message, nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to decode error detail: %w", err)
	}
	return resp.StatusCode, errResp.Detail, nil
}
