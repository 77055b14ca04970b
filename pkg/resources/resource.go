/*
Package resources exposes Gravatar profiles as MCP resource templates. Every
resource renders as JSON; a profile that does not exist renders as null.
*/
package resources

import (
	"context"

	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
)

const MimeType = "application/json"

const (
	ProfileByIdentifierURI = "profiles://profileIdentifier/{profileIdentifier}"
	ProfileByEmailURI      = "profiles://email/{email}"
	FieldByIdentifierURI   = "profiles://profileIdentifier/{profileIdentifier}/field/{field}"
	FieldByEmailURI        = "profiles://email/{email}/field/{field}"
)

// ReadFunc produces the value rendered for one matched URI.
type ReadFunc func(ctx context.Context, vars map[string]string) (any, error)

// ResourceTemplate is one URI template together with the reader behind it.
type ResourceTemplate struct {
	URITemplate string             `json:"uriTemplate"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	MimeType    string             `json:"mimeType,omitempty"`
	Variables   []TemplateVariable `json:"variables,omitempty"`

	read ReadFunc
}

func NewResourceTemplate(uriTemplate, name, description string, read ReadFunc) ResourceTemplate {
	return ResourceTemplate{
		URITemplate: uriTemplate,
		Name:        name,
		Description: description,
		MimeType:    MimeType,
		Variables:   ParseTemplateVariables(uriTemplate),
		read:        read,
	}
}

// GravatarTemplates returns the profile templates bound to svc.
func GravatarTemplates(svc *service.Service) []ResourceTemplate {
	return []ResourceTemplate{
		NewResourceTemplate(
			ProfileByIdentifierURI,
			"Get Profile by ID",
			"Returns a Gravatar profile, addressed by hash or profile slug, as JSON. Values must be percent-encoded",
			func(ctx context.Context, vars map[string]string) (any, error) {
				return svc.ProfileByHash(ctx, vars["profileIdentifier"])
			},
		),
		NewResourceTemplate(
			ProfileByEmailURI,
			"Get Profile by email",
			"Returns the Gravatar profile of an email address as JSON. The email must be percent-encoded, e.g. foo%40bar.com",
			func(ctx context.Context, vars map[string]string) (any, error) {
				return svc.ProfileByEmail(ctx, vars["email"])
			},
		),
		NewResourceTemplate(
			FieldByIdentifierURI,
			"Get Profile field by ID",
			"Returns a single field of a Gravatar profile, addressed by hash or profile slug, as JSON. Values must be percent-encoded",
			func(ctx context.Context, vars map[string]string) (any, error) {
				return svc.FieldByHash(ctx, vars["profileIdentifier"], vars["field"])
			},
		),
		NewResourceTemplate(
			FieldByEmailURI,
			"Get Profile field by email",
			"Returns a single field of the Gravatar profile of an email address as JSON. The email must be percent-encoded, e.g. foo%40bar.com",
			func(ctx context.Context, vars map[string]string) (any, error) {
				return svc.FieldByEmail(ctx, vars["email"], vars["field"])
			},
		),
	}
}
