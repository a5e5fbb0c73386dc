package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rss_publisher/internal/logger"
	"rss_publisher/internal/models"
)

// Client — клиент REST API WordPress.
// Токен базовой аутентификации строится один раз при создании и
// прикладывается к каждому исходящему запросу.
type Client struct {
	apiBase    string
	authHeader string
	httpClient *http.Client
	dryRun     bool
}

// NewClient создаёт клиент для baseURL с учётными данными username/appPassword.
// В режиме dryRun запросы на создание записей не отправляются.
func NewClient(baseURL, username, appPassword string, dryRun bool) *Client {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + appPassword))
	return &Client{
		apiBase:    strings.TrimRight(baseURL, "/") + "/wp-json/wp/v2",
		authHeader: "Basic " + token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		dryRun:     dryRun,
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")
}

// VerifyAuth проверяет учётные данные запросом "who am I".
// Ошибка означает, что продолжать работу нельзя.
func (c *Client) VerifyAuth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/users/me", nil)
	if err != nil {
		return fmt.Errorf("build auth request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("verify auth: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		logger.Log.Errorf("Authentication failed, response: %s", body)
		return fmt.Errorf("authentication failed: check credentials")
	}
	if resp.StatusCode >= 300 {
		logger.Log.Errorf("Auth check returned %d, response: %s", resp.StatusCode, body)
		return fmt.Errorf("auth check: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// CreatePost создаёт новую запись и возвращает её идентификатор в WordPress.
// Любая ошибка не фатальна для всего прогона: вызывающий пропускает элемент.
// В режиме dryRun собранный контент логируется, запрос не отправляется.
func (c *Client) CreatePost(ctx context.Context, post models.RenderedPost) (int, error) {
	if c.dryRun {
		logger.Log.WithField("title", post.Title).Info("Dry run, post not sent")
		logger.Log.Info(post.Content)
		return 0, nil
	}

	payload, err := json.Marshal(post)
	if err != nil {
		return 0, fmt.Errorf("marshal post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/posts", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		logger.Log.Errorf("Authentication failed when creating post, response: %s", body)
		return 0, fmt.Errorf("create post: authentication failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorf("Create post returned %d, response: %s", resp.StatusCode, body)
		return 0, fmt.Errorf("create post: unexpected status %d", resp.StatusCode)
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return 0, fmt.Errorf("decode create response: %w", err)
	}
	return created.ID, nil
}
