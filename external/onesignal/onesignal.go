package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

const onesignalAPIEndpoint = "https://onesignal.com/api/v1/notifications"

// NotificationRequest - payload for the onesignal notification API
type NotificationRequest struct {
	AppID            string                 `json:"app_id"`
	TemplateID       string                 `json:"template_id,omitempty"`
	Headings         map[string]string      `json:"headings,omitempty"`
	Contents         map[string]string      `json:"contents,omitempty"`
	Filters          []map[string]string    `json:"filters,omitempty"`
	IncludedSegments []string               `json:"included_segments,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	LocalChannelID   string                 `json:"android_channel_id,omitempty"`
}

// OneSignalClient - client for sending push notifications
type OneSignalClient struct {
	client *http.Client
	apiKey string
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		client: client,
		apiKey: viper.GetString("onesignal.apikey"),
	}
}

// SendNotification submits one notification request and fails on any
// non-2xx response
func (c *OneSignalClient) SendNotification(ctx context.Context, request *NotificationRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, onesignalAPIEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("onesignal responds with status: %d", resp.StatusCode)
	}

	return nil
}
