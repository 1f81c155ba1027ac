// Package api implements the HTTP client for the Linkmark backend. It
// satisfies store.Remote, so the bookmark store never sees HTTP details.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/denizaydn/linkmark-cli/internal/auth"
	"github.com/denizaydn/linkmark-cli/internal/config"
	"github.com/denizaydn/linkmark-cli/internal/models"
	"github.com/denizaydn/linkmark-cli/internal/store"
)

const defaultBaseURL = "https://api.linkmark.app/v1"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
}

// NewClient creates a client using LINKMARK_API_URL or the configured
// base URL, with the API key pulled from the keyring.
func NewClient() *Client {
	baseURL := os.Getenv("LINKMARK_API_URL")
	if baseURL == "" {
		if cfg, err := config.LoadConfig(); err == nil && cfg.APIBaseURL != "" {
			baseURL = cfg.APIBaseURL
		}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		APIKey:  auth.RetrieveAPIKey(),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// authBaseURL strips the /v1 suffix; auth endpoints live at the root.
func (c *Client) authBaseURL() string {
	return strings.TrimSuffix(c.BaseURL, "/v1")
}

// makeRequest sends a JSON request and returns the response body.
func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	return c.send(method, c.BaseURL+endpoint, body, true)
}

// makeAuthRequest targets the unauthenticated auth endpoints.
func (c *Client) makeAuthRequest(method, endpoint string, body interface{}) ([]byte, error) {
	return c.send(method, c.authBaseURL()+endpoint, body, false)
}

func (c *Client) send(method, url string, body interface{}, authed bool) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// Bookmark collection

// SelectBookmarks fetches the user's bookmarks with their joined tag rows,
// newest first.
func (c *Client) SelectBookmarks(userID uuid.UUID) ([]models.BookmarkRow, error) {
	respBody, err := c.makeRequest("GET", "/bookmarks?user_id="+userID.String(), nil)
	if err != nil {
		return nil, err
	}

	var rows []models.BookmarkRow
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmarks: %w", err)
	}
	return rows, nil
}

func (c *Client) InsertBookmark(in store.InsertBookmark) (*models.BookmarkRow, error) {
	respBody, err := c.makeRequest("POST", "/bookmarks", in)
	if err != nil {
		return nil, err
	}

	var row models.BookmarkRow
	if err := json.Unmarshal(respBody, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}
	return &row, nil
}

func (c *Client) UpdateBookmark(id uuid.UUID, fields map[string]interface{}) error {
	_, err := c.makeRequest("PUT", "/bookmarks/"+id.String(), fields)
	return err
}

func (c *Client) DeleteBookmark(id uuid.UUID) error {
	_, err := c.makeRequest("DELETE", "/bookmarks/"+id.String(), nil)
	return err
}

// Tag collection

// SelectTagByName looks a tag up by exact name; (nil, nil) when absent.
func (c *Client) SelectTagByName(name string) (*models.Tag, error) {
	params := url.Values{}
	params.Add("name", name)

	respBody, err := c.makeRequest("GET", "/tags?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := json.Unmarshal(respBody, &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return &tags[0], nil
}

func (c *Client) ListTags() ([]models.Tag, error) {
	respBody, err := c.makeRequest("GET", "/tags", nil)
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := json.Unmarshal(respBody, &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	return tags, nil
}

func (c *Client) InsertTag(name string) (*models.Tag, error) {
	respBody, err := c.makeRequest("POST", "/tags", map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	var tag models.Tag
	if err := json.Unmarshal(respBody, &tag); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tag: %w", err)
	}
	return &tag, nil
}

// Join collection

func (c *Client) InsertBookmarkTag(bookmarkID, tagID uuid.UUID) error {
	_, err := c.makeRequest("POST", "/bookmarks/"+bookmarkID.String()+"/tags",
		map[string]string{"tag_id": tagID.String()})
	return err
}

func (c *Client) DeleteBookmarkTags(bookmarkID uuid.UUID) error {
	_, err := c.makeRequest("DELETE", "/bookmarks/"+bookmarkID.String()+"/tags", nil)
	return err
}

// Auth

type authData struct {
	APIKey string    `json:"api_key"`
	UserID uuid.UUID `json:"user_id"`
}

type authResponse struct {
	Success bool     `json:"success"`
	Data    authData `json:"data"`
	Error   string   `json:"error"`
}

// RegisterUser creates an account and returns the issued API key and user
// id.
func (c *Client) RegisterUser(email, password string) (string, uuid.UUID, error) {
	reqBody := map[string]string{
		"email":    email,
		"password": password,
	}

	respBody, err := c.makeAuthRequest("POST", "/auth/register", reqBody)
	if err != nil {
		return "", uuid.Nil, err
	}

	var response authResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if !response.Success {
		return "", uuid.Nil, fmt.Errorf("registration failed: %s", response.Error)
	}

	return response.Data.APIKey, response.Data.UserID, nil
}

// LoginUser exchanges credentials for the account's API key and user id.
func (c *Client) LoginUser(email, password string) (string, uuid.UUID, error) {
	reqBody := map[string]string{
		"email":    email,
		"password": password,
	}

	respBody, err := c.makeAuthRequest("POST", "/auth/login", reqBody)
	if err != nil {
		return "", uuid.Nil, err
	}

	var response authResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if !response.Success {
		return "", uuid.Nil, fmt.Errorf("login failed: %s", response.Error)
	}

	return response.Data.APIKey, response.Data.UserID, nil
}
