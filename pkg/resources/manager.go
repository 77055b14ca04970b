package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
)

/*
Manager resolves concrete resource URIs against its templates and renders the
matched value as JSON.
*/
type Manager struct {
	templates []ResourceTemplate
}

func NewManager(templates ...ResourceTemplate) *Manager {
	return &Manager{templates: templates}
}

// NewGravatarManager returns a Manager serving the profile templates.
func NewGravatarManager(svc *service.Service) *Manager {
	return NewManager(GravatarTemplates(svc)...)
}

func (m *Manager) Templates() []ResourceTemplate {
	return append([]ResourceTemplate(nil), m.templates...)
}

/*
Read renders the resource at uri. The first template that matches wins; a URI
no template matches is a NotFound error.
*/
func (m *Manager) Read(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	tmpl, vars := m.match(uri)
	if tmpl == nil {
		return nil, errors.NotFound(fmt.Sprintf("resource not found: %s", uri))
	}

	log.Debug("reading resource", "uri", uri, "template", tmpl.URITemplate)

	value, err := tmpl.read(ctx, vars)
	if err != nil {
		return nil, err
	}

	buf, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Transport("failed to marshal resource", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: tmpl.MimeType, Text: string(buf)},
	}, nil
}

/*
Register adds every template to srv. Reads go back through the Manager so
variables are extracted the same way regardless of how the server routed the
request.
*/
func (m *Manager) Register(srv *server.MCPServer) {
	for _, tmpl := range m.templates {
		srv.AddResourceTemplate(
			mcp.NewResourceTemplate(
				tmpl.URITemplate,
				tmpl.Name,
				mcp.WithTemplateDescription(tmpl.Description),
				mcp.WithTemplateMIMEType(tmpl.MimeType),
			),
			m.handle,
		)
	}
}

func (m *Manager) handle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	contents, err := m.Read(ctx, req.Params.URI)
	if err != nil {
		log.Error("resource read failed", "uri", req.Params.URI, "error", err)
		return nil, err
	}

	return contents, nil
}

func (m *Manager) match(uri string) (*ResourceTemplate, map[string]string) {
	for i := range m.templates {
		vars, err := matchTemplate(m.templates[i].URITemplate, uri)
		if err == nil {
			return &m.templates[i], vars
		}
	}

	return nil, nil
}
