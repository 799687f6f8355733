package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 5 * time.Second

	maxBody = 1 << 20
)

// Client habla con una instancia corriendo de la API (healthcheck del CLI).
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New valida baseURL y arma un Client con timeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("httpclient: empty base url")
	}
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("httpclient: invalid base url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// APIError es una respuesta no-2xx. Msg viene del cuerpo {"msg": ...} si existe.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status=%d msg=%s", e.StatusCode, e.Msg)
}

// Health pega a /health y espera 200 "ok".
func (c *Client) Health(ctx context.Context) error {
	raw, err := c.get(ctx, "/health")
	if err != nil {
		return err
	}
	if body := strings.TrimSpace(string(raw)); body != "ok" {
		return fmt.Errorf("httpclient: unexpected health body %q", body)
	}
	return nil
}

type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type Pet struct {
	PetID   string  `json:"petId"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed,omitempty"`
	Image   string  `json:"image"`
	Lat     float64 `json:"lat"`
	Long    float64 `json:"long"`
	Desc    string  `json:"desc"`
	FunFact string  `json:"funFact,omitempty"`
	Age     float64 `json:"age"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.getJSON(ctx, "/api/users", &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// ListPets lista mascotas; species vacío no filtra.
func (c *Client) ListPets(ctx context.Context, species string) ([]Pet, error) {
	path := "/api/pets"
	if species != "" {
		path += "?species=" + url.QueryEscape(species)
	}

	var out struct {
		Pets []Pet `json:"pets"`
	}
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Pets, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("httpclient: nil client")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Msg string `json:"msg"`
		}
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Msg = body.Msg
		}
		return nil, apiErr
	}

	return raw, nil
}
