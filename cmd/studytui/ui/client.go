package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a thin JSON client for the flashcard API. It keeps the bearer
// token from the last successful login and attaches it to every request.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 15 * time.Second}}
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool { return u.Role == "admin" }

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type Card struct {
	ID           string   `json:"id"`
	Chinese      string   `json:"chinese"`
	Pinyin       string   `json:"pinyin"`
	Vietnamese   string   `json:"vietnamese"`
	Categories   []string `json:"categories"`
	AuthorID     *string  `json:"authorId"`
	IsSystemCard bool     `json:"isSystemCard"`
}

type CardInput struct {
	Chinese    string   `json:"chinese"`
	Pinyin     string   `json:"pinyin"`
	Vietnamese string   `json:"vietnamese"`
	Categories []string `json:"categories"`
}

type SeedResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var ae apiError
		if json.Unmarshal(data, &ae) == nil && ae.Error != "" {
			return fmt.Errorf("%s", ae.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) Register(username, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(http.MethodPost, "/auth/register", map[string]string{"username": username, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.Token = out.AccessToken
	return &out, nil
}

func (c *Client) Login(username, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(http.MethodPost, "/auth/login", map[string]string{"username": username, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.Token = out.AccessToken
	return &out, nil
}

func (c *Client) ListCards(category string) ([]Card, error) {
	path := "/cards"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out []Card
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCard(in CardInput) (*Card, error) {
	var out Card
	if err := c.do(http.MethodPost, "/cards", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCard(id string, in CardInput) (*Card, error) {
	var out Card
	if err := c.do(http.MethodPut, "/cards/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCard(id string) error {
	return c.do(http.MethodDelete, "/cards/"+id, nil, nil)
}

func (c *Client) Seed() (*SeedResult, error) {
	var out SeedResult
	if err := c.do(http.MethodPost, "/admin/seed", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
