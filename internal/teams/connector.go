package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	loginURL   = "https://login.microsoftonline.com/botframework.com/oauth2/v2.0/token"
	tokenScope = "https://api.botframework.com/.default"
)

// Sender delivers outbound activities. The dialog engine depends on this
// interface so tests and the playground can capture replies instead of
// calling the connector service.
type Sender interface {
	// ReplyTo posts a reply into the conversation and returns the ID of the
	// created activity.
	ReplyTo(ctx context.Context, to *Activity, reply *Activity) (string, error)
	// UpdateActivity replaces a previously sent activity in place.
	UpdateActivity(ctx context.Context, serviceURL, conversationID, activityID string, reply *Activity) error
}

// ConnectorClient sends activities through the Bot Connector REST API using
// app credentials. Transport failures are returned to the caller; the bot
// logs them and continues, it never blocks further turns on a failed send.
type ConnectorClient struct {
	appID      string
	appSecret  string
	logger     *zap.Logger
	HTTPClient *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewConnectorClient creates a connector client for the given bot app
// credentials.
func NewConnectorClient(logger *zap.Logger, appID, appSecret string) *ConnectorClient {
	return &ConnectorClient{
		appID:     appID,
		appSecret: appSecret,
		logger:    logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *ConnectorClient) ReplyTo(ctx context.Context, to *Activity, reply *Activity) (string, error) {
	endpoint := fmt.Sprintf("%s/v3/conversations/%s/activities/%s",
		strings.TrimSuffix(to.ServiceURL, "/"), url.PathEscape(to.Conversation.ID), url.PathEscape(to.ID))

	resp, err := c.send(ctx, http.MethodPost, endpoint, reply)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *ConnectorClient) UpdateActivity(ctx context.Context, serviceURL, conversationID, activityID string, reply *Activity) error {
	endpoint := fmt.Sprintf("%s/v3/conversations/%s/activities/%s",
		strings.TrimSuffix(serviceURL, "/"), url.PathEscape(conversationID), url.PathEscape(activityID))

	_, err := c.send(ctx, http.MethodPut, endpoint, reply)
	return err
}

// resourceResponse is the connector's reply to a create/update call.
type resourceResponse struct {
	ID string `json:"id"`
}

func (c *ConnectorClient) send(ctx context.Context, method, endpoint string, reply *Activity) (*resourceResponse, error) {
	body, err := json.Marshal(reply)
	if err != nil {
		return nil, fmt.Errorf("marshalling activity: %w", err)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connector token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building connector request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("sending activity", zap.String("method", method), zap.String("endpoint", endpoint))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending activity: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading connector response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("connector returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var rr resourceResponse
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rr); err != nil {
			return nil, fmt.Errorf("decoding connector response: %w", err)
		}
	}
	return &rr, nil
}

// accessToken returns a cached client-credentials token, refreshing it when
// it is within a minute of expiry. Empty credentials (local emulator) skip
// auth entirely.
func (c *ConnectorClient) accessToken(ctx context.Context) (string, error) {
	if c.appID == "" {
		return "", nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.appID},
		"client_secret": {c.appSecret},
		"scope":         {tokenScope},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}

	c.token = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.token, nil
}
