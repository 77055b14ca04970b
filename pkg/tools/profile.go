package tools

import (
	"context"

	"github.com/cohesivestack/valgo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-gravatar/pkg/profile"
	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
)

func readOnly() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func fieldArgument() mcp.ToolOption {
	return mcp.WithString("field",
		mcp.Description("Name of the profile field to return"),
		mcp.Enum(profile.Names()...),
		mcp.Required(),
	)
}

// ProfileByEmailTool implements get_profile_by_email.
type ProfileByEmailTool struct {
	svc *service.Service
}

func NewProfileByEmailTool() *mcp.Tool {
	tool := mcp.NewTool(
		"get_profile_by_email",
		append([]mcp.ToolOption{
			mcp.WithDescription("Fetch the Gravatar profile for a given email address."),
			mcp.WithString("email",
				mcp.Description("User's email address"),
				mcp.Required(),
			),
		}, readOnly()...)...,
	)

	return &tool
}

func (t *ProfileByEmailTool) Definition() mcp.Tool {
	return *NewProfileByEmailTool()
}

func (t *ProfileByEmailTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	email := stringArg(req, "email")

	if err := validate(valgo.Is(requireEmail(email))); err != nil {
		return errorResult("get profile", err)
	}

	doc, err := t.svc.ProfileByEmail(ctx, email)
	if err != nil {
		return errorResult("get profile", err)
	}

	return jsonResult(doc)
}

// ProfileByHashTool implements get_profile_by_hash.
type ProfileByHashTool struct {
	svc *service.Service
}

func NewProfileByHashTool() *mcp.Tool {
	tool := mcp.NewTool(
		"get_profile_by_hash",
		append([]mcp.ToolOption{
			mcp.WithDescription("Fetch the Gravatar profile for a SHA256 hash of a lowercased email address."),
			mcp.WithString("hash",
				mcp.Description("SHA256 hash of the trimmed, lowercased email address"),
				mcp.Required(),
			),
		}, readOnly()...)...,
	)

	return &tool
}

func (t *ProfileByHashTool) Definition() mcp.Tool {
	return *NewProfileByHashTool()
}

func (t *ProfileByHashTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	hash := stringArg(req, "hash")

	if err := validate(valgo.Is(requireIdentifier(hash, "hash"))); err != nil {
		return errorResult("get profile", err)
	}

	doc, err := t.svc.ProfileByHash(ctx, hash)
	if err != nil {
		return errorResult("get profile", err)
	}

	return jsonResult(doc)
}

// ProfileFieldWithHashTool implements get_profile_field_with_hash.
type ProfileFieldWithHashTool struct {
	svc *service.Service
}

func NewProfileFieldWithHashTool() *mcp.Tool {
	tool := mcp.NewTool(
		"get_profile_field_with_hash",
		append([]mcp.ToolOption{
			mcp.WithDescription("Fetch a single field of a Gravatar profile by its SHA256 profile identifier. Fields the profile does not have return null."),
			mcp.WithString("profileIdentifier",
				mcp.Description("SHA256 hash of the email address, or the profile slug"),
				mcp.Required(),
			),
			fieldArgument(),
		}, readOnly()...)...,
	)

	return &tool
}

func (t *ProfileFieldWithHashTool) Definition() mcp.Tool {
	return *NewProfileFieldWithHashTool()
}

func (t *ProfileFieldWithHashTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	id := stringArg(req, "profileIdentifier")
	field := stringArg(req, "field")

	if err := validate(valgo.Is(requireIdentifier(id, "profileIdentifier")).Is(requireField(field))); err != nil {
		return errorResult("get profile field", err)
	}

	value, err := t.svc.FieldByHash(ctx, id, field)
	if err != nil {
		return errorResult("get profile field", err)
	}

	return jsonResult(value)
}

// ProfileFieldWithEmailTool implements get_profile_field_with_email.
type ProfileFieldWithEmailTool struct {
	svc *service.Service
}

func NewProfileFieldWithEmailTool() *mcp.Tool {
	tool := mcp.NewTool(
		"get_profile_field_with_email",
		append([]mcp.ToolOption{
			mcp.WithDescription("Fetch a single field of a Gravatar profile by email address. Fields the profile does not have return null."),
			mcp.WithString("email",
				mcp.Description("User's email address"),
				mcp.Required(),
			),
			fieldArgument(),
		}, readOnly()...)...,
	)

	return &tool
}

func (t *ProfileFieldWithEmailTool) Definition() mcp.Tool {
	return *NewProfileFieldWithEmailTool()
}

func (t *ProfileFieldWithEmailTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	email := stringArg(req, "email")
	field := stringArg(req, "field")

	if err := validate(valgo.Is(requireEmail(email)).Is(requireField(field))); err != nil {
		return errorResult("get profile field", err)
	}

	value, err := t.svc.FieldByEmail(ctx, email, field)
	if err != nil {
		return errorResult("get profile field", err)
	}

	return jsonResult(value)
}
