/*
Package gravatar is a thin client for the Gravatar REST API and for the image
URLs it hands out.
*/
package gravatar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	fiberClient "github.com/gofiber/fiber/v3/client"
	"github.com/theapemachine/mcp-server-gravatar/pkg/avatar"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
	"github.com/theapemachine/mcp-server-gravatar/pkg/profile"
)

const (
	DefaultBaseURL   = "https://api.gravatar.com/v3"
	DefaultUserAgent = "gravatar-mcp/1.0"
	DefaultTimeout   = 10 * time.Second

	maxErrorBody = 512
)

/*
Client talks to the Gravatar API with a static bearer token. It keeps no state
between calls and is safe for concurrent use.
*/
type Client struct {
	baseURL   string
	token     string
	userAgent string
	timeout   time.Duration
	api       *fiberClient.Client
	images    *fiberClient.Client
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(client *Client) {
		if baseURL != "" {
			client.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(client *Client) {
		if timeout > 0 {
			client.timeout = timeout
		}
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(client *Client) {
		if userAgent != "" {
			client.userAgent = userAgent
		}
	}
}

/*
NewClient creates a client for the given access token.
*/
func NewClient(token string, opts ...ClientOption) *Client {
	client := &Client{
		baseURL:   DefaultBaseURL,
		token:     token,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.api = fiberClient.New().
		SetBaseURL(client.baseURL).
		SetTimeout(client.timeout)

	client.images = fiberClient.New().
		SetTimeout(client.timeout)

	return client
}

func (client *Client) BaseURL() string {
	return client.baseURL
}

func (client *Client) headers() map[string]string {
	return map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer " + client.token,
	}
}

/*
GetProfile fetches the profile for a SHA-256 identity key or profile slug.
*/
func (client *Client) GetProfile(ctx context.Context, key string) (profile.Document, error) {
	path := "/profiles/" + url.PathEscape(key)

	log.Debug("fetching profile", "path", path)

	resp, err := client.api.Get(path, fiberClient.Config{
		Ctx:       ctx,
		UserAgent: client.userAgent,
		Header:    client.headers(),
	})
	if err != nil {
		return nil, errors.Transport("fetch profile", err)
	}
	defer resp.Close()

	if err := checkStatus(client.baseURL+path, resp); err != nil {
		return nil, err
	}

	var doc profile.Document
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, errors.Transport("decode profile", err)
	}

	return doc, nil
}

/*
ListAvatars lists the avatars of the authenticated account. When selectedKey is
not empty Gravatar marks the avatar used for that identity as selected.
*/
func (client *Client) ListAvatars(ctx context.Context, selectedKey string) ([]avatar.Record, error) {
	cfg := fiberClient.Config{
		Ctx:       ctx,
		UserAgent: client.userAgent,
		Header:    client.headers(),
	}

	if selectedKey != "" {
		cfg.Param = map[string]string{"selected_email_hash": selectedKey}
	}

	log.Debug("listing avatars", "selected", selectedKey != "")

	resp, err := client.api.Get("/me/avatars", cfg)
	if err != nil {
		return nil, errors.Transport("list avatars", err)
	}
	defer resp.Close()

	if err := checkStatus(client.baseURL+"/me/avatars", resp); err != nil {
		return nil, err
	}

	records := []avatar.Record{}
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, errors.Transport("decode avatars", err)
	}

	return records, nil
}

/*
FetchImage downloads the bytes behind an avatar image URL. No credentials are
sent to the image host.
*/
func (client *Client) FetchImage(ctx context.Context, imageURL string) (avatar.Image, error) {
	if imageURL == "" {
		return avatar.Image{}, errors.InvalidInput("image url must not be empty")
	}

	resp, err := client.images.Get(imageURL, fiberClient.Config{
		Ctx:       ctx,
		UserAgent: client.userAgent,
	})
	if err != nil {
		return avatar.Image{}, errors.Transport("fetch image", err)
	}
	defer resp.Close()

	if err := checkStatus(imageURL, resp); err != nil {
		return avatar.Image{}, err
	}

	// The body buffer is released with the response.
	data := append([]byte(nil), resp.Body()...)

	mimeType := resp.Header("Content-Type")
	if mimeType == "" || strings.HasPrefix(mimeType, "application/octet-stream") {
		mimeType = http.DetectContentType(data)
	}

	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	return avatar.Image{URL: imageURL, MIMEType: mimeType, Data: data}, nil
}

func checkStatus(target string, resp *fiberClient.Response) error {
	status := resp.StatusCode()

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := string(resp.Body())
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	statusErr := &StatusError{URL: target, StatusCode: status, Body: body}

	if status == http.StatusNotFound {
		return errors.NotFound(statusErr)
	}

	return errors.Transport(fmt.Sprintf("unexpected status %d", status), statusErr)
}
