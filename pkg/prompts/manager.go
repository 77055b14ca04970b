package prompts

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
	"github.com/theapemachine/mcp-server-gravatar/pkg/resources"
)

// ResourceReader reads a concrete resource URI.
type ResourceReader interface {
	Read(ctx context.Context, uri string) ([]mcp.ResourceContents, error)
}

type ErrorPromptNotFound struct{ Name string }

func (e ErrorPromptNotFound) Error() string { return fmt.Sprintf("prompt not found: %s", e.Name) }

/*
Manager owns the Gravatar prompts. Profiles are read through the resource
layer so a prompt sees exactly what a client reading the resource would.
*/
type Manager struct {
	reader  ResourceReader
	prompts []Prompt
}

func NewManager(reader ResourceReader) *Manager {
	m := &Manager{reader: reader}

	m.prompts = []Prompt{
		{
			Name:        SummarizeProfile,
			Description: "Read a Gravatar profile via MCP resource and summarize it",
			Arguments:   []string{"email"},
			render:      m.summarizeProfile,
		},
		{
			Name:        SummarizeProfileViaTool,
			Description: "Read a Gravatar profile using the get_profile_by_email tool and summarize it",
			Arguments:   []string{"email"},
			render:      summarizeProfileViaTool,
		},
	}

	return m
}

func (m *Manager) List() []Prompt {
	return append([]Prompt(nil), m.prompts...)
}

func (m *Manager) Get(name string) (Prompt, error) {
	for _, prompt := range m.prompts {
		if prompt.Name == name {
			return prompt, nil
		}
	}

	return Prompt{}, ErrorPromptNotFound{Name: name}
}

func (m *Manager) Register(srv *server.MCPServer) {
	for _, prompt := range m.prompts {
		srv.AddPrompt(prompt.Definition(), handler(prompt))
	}
}

func handler(prompt Prompt) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		log.Debug("rendering prompt", "prompt", prompt.Name)

		res, err := prompt.Render(ctx, req.Params.Arguments)
		if err != nil {
			log.Error("prompt failed", "prompt", prompt.Name, "error", err)
		}

		return res, err
	}
}

func (m *Manager) summarizeProfile(ctx context.Context, args map[string]string) ([]mcp.PromptMessage, error) {
	profileJSON, err := m.readProfile(ctx, args["email"])
	if err != nil {
		return nil, err
	}

	return []mcp.PromptMessage{
		userMessage(fmt.Sprintf(
			"%s\n\nHere is the profile JSON data:\n%s\n\n%s\n%s",
			summaryPersona, profileJSON, summaryFields, summaryInstruction,
		)),
	}, nil
}

func summarizeProfileViaTool(_ context.Context, args map[string]string) ([]mcp.PromptMessage, error) {
	return []mcp.PromptMessage{
		userMessage(fmt.Sprintf(
			"%s\n\nFirst, call the get_profile_by_email tool with argument email='%s' to fetch the raw profile JSON.\n%s\n%s",
			summaryPersona, args["email"], summaryFields, summaryInstruction,
		)),
	}, nil
}

// readProfile returns the indented profile JSON, or {} when there is none.
func (m *Manager) readProfile(ctx context.Context, email string) (string, error) {
	uri, err := resources.ExpandTemplate(resources.ProfileByEmailURI, map[string]string{"email": email})
	if err != nil {
		return "", err
	}

	contents, err := m.reader.Read(ctx, uri)
	if stderrors.Is(err, errors.ErrNotFound) {
		contents, err = nil, nil
	}
	if err != nil {
		return "", err
	}

	var text string
	if len(contents) > 0 {
		if tc, ok := contents[0].(mcp.TextResourceContents); ok {
			text = tc.Text
		}
	}

	if text == "" || text == "null" {
		log.Warn("no profile found", "email", email)
		return "{}", nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(text), "", "  "); err != nil {
		return text, nil
	}

	return out.String(), nil
}
