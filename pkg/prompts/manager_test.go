package prompts

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
	"github.com/tj/assert"
)

type stubReader struct {
	text string
	err  error
	uris []string
}

func (reader *stubReader) Read(_ context.Context, uri string) ([]mcp.ResourceContents, error) {
	reader.uris = append(reader.uris, uri)
	if reader.err != nil {
		return nil, reader.err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: "application/json", Text: reader.text},
	}, nil
}

func render(t *testing.T, m *Manager, name, email string) string {
	t.Helper()

	prompt, err := m.Get(name)
	assert.NoError(t, err)

	res, err := prompt.Render(context.Background(), map[string]string{"email": email})
	assert.NoError(t, err)
	assert.Len(t, res.Messages, 1)
	assert.Equal(t, mcp.RoleUser, res.Messages[0].Role)

	text, ok := res.Messages[0].Content.(mcp.TextContent)
	assert.True(t, ok)
	return text.Text
}

func TestSummarizeProfile(t *testing.T) {
	reader := &stubReader{text: `{"display_name":"Ada"}`}
	text := render(t, NewManager(reader), SummarizeProfile, "foo@bar.com")

	assert.Equal(t, []string{"profiles://email/foo@bar.com"}, reader.uris)
	assert.Contains(t, text, `"display_name": "Ada"`)
	assert.Contains(t, text, "verified_accounts")
}

func TestSummarizeMissingProfile(t *testing.T) {
	for _, reader := range []*stubReader{
		{text: "null"},
		{err: errors.NotFound("resource not found")},
	} {
		text := render(t, NewManager(reader), SummarizeProfile, "foo@bar.com")
		assert.Contains(t, text, "Here is the profile JSON data:\n{}\n")
	}
}

func TestSummarizeTransportError(t *testing.T) {
	m := NewManager(&stubReader{err: errors.Transport("upstream unavailable")})

	prompt, err := m.Get(SummarizeProfile)
	assert.NoError(t, err)

	_, err = prompt.Render(context.Background(), map[string]string{"email": "foo@bar.com"})
	assert.Error(t, err)
}

func TestSummarizeViaTool(t *testing.T) {
	reader := &stubReader{}
	text := render(t, NewManager(reader), SummarizeProfileViaTool, "foo@bar.com")

	assert.Empty(t, reader.uris)
	assert.Contains(t, text, "call the get_profile_by_email tool with argument email='foo@bar.com'")
}

func TestMissingArgument(t *testing.T) {
	prompt, err := NewManager(&stubReader{}).Get(SummarizeProfile)
	assert.NoError(t, err)

	_, err = prompt.Render(context.Background(), map[string]string{})
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	m := NewManager(&stubReader{})

	prompts := m.List()
	assert.Len(t, prompts, 2)
	assert.Equal(t, SummarizeProfile, prompts[0].Name)
	assert.Equal(t, SummarizeProfileViaTool, prompts[1].Name)

	prompts[0].Name = "changed"
	assert.Equal(t, SummarizeProfile, m.List()[0].Name)
}

func TestGetUnknownPrompt(t *testing.T) {
	_, err := NewManager(&stubReader{}).Get("summarize")
	assert.Equal(t, ErrorPromptNotFound{Name: "summarize"}, err)
}

func TestRegister(t *testing.T) {
	srv := server.NewMCPServer("test", "1.0", server.WithPromptCapabilities(false))
	NewManager(&stubReader{}).Register(srv)

	msg := srv.HandleMessage(context.Background(), json.RawMessage(
		`{"jsonrpc":"2.0","id":1,"method":"prompts/list"}`,
	))

	buf, err := json.Marshal(msg)
	assert.NoError(t, err)

	var out struct {
		Result struct {
			Prompts []struct {
				Name      string `json:"name"`
				Arguments []struct {
					Name     string `json:"name"`
					Required bool   `json:"required"`
				} `json:"arguments"`
			} `json:"prompts"`
		} `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(buf, &out))
	assert.Len(t, out.Result.Prompts, 2)

	for _, prompt := range out.Result.Prompts {
		assert.Len(t, prompt.Arguments, 1)
		assert.Equal(t, "email", prompt.Arguments[0].Name)
		assert.True(t, prompt.Arguments[0].Required)
	}
}
