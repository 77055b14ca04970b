package tools

import (
	"context"
	"encoding/base64"

	"github.com/cohesivestack/valgo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-gravatar/pkg/avatar"
	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
)

func selectedHashArgument() mcp.ToolOption {
	return mcp.WithString("selected_email_hash",
		mcp.Description("Optional SHA256 hash of an email address; the avatar used for it is marked as selected"),
	)
}

func imageResult(images []avatar.Image, empty string) *mcp.CallToolResult {
	if len(images) == 0 {
		return mcp.NewToolResultText(empty)
	}

	content := make([]mcp.Content, 0, len(images))
	for _, image := range images {
		content = append(content, mcp.NewImageContent(
			base64.StdEncoding.EncodeToString(image.Data),
			image.MIMEType,
		))
	}

	return &mcp.CallToolResult{Content: content}
}

// AvatarsTool implements get_avatars.
type AvatarsTool struct {
	svc *service.Service
}

func NewAvatarsTool() *mcp.Tool {
	tool := mcp.NewTool(
		"get_avatars",
		append([]mcp.ToolOption{
			mcp.WithDescription("List all avatars of the authenticated Gravatar account as JSON."),
			selectedHashArgument(),
		}, readOnly()...)...,
	)

	return &tool
}

func (t *AvatarsTool) Definition() mcp.Tool {
	return *NewAvatarsTool()
}

func (t *AvatarsTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	selected := stringArg(req, "selected_email_hash")

	if err := validate(valgo.Is(optionalKey(selected, "selected_email_hash"))); err != nil {
		return errorResult("get avatars", err)
	}

	records, err := t.svc.Avatars(ctx, selected)
	if err != nil {
		return errorResult("get avatars", err)
	}

	return jsonResult(records)
}

// AvatarsAsImagesTool implements get_avatars_as_images.
type AvatarsAsImagesTool struct {
	svc *service.Service
}

func NewAvatarsAsImagesTool() *mcp.Tool {
	tool := mcp.NewTool(
		"get_avatars_as_images",
		append([]mcp.ToolOption{
			mcp.WithDescription("Fetch every avatar of the authenticated Gravatar account as an image."),
			selectedHashArgument(),
		}, readOnly()...)...,
	)

	return &tool
}

func (t *AvatarsAsImagesTool) Definition() mcp.Tool {
	return *NewAvatarsAsImagesTool()
}

func (t *AvatarsAsImagesTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	selected := stringArg(req, "selected_email_hash")

	if err := validate(valgo.Is(optionalKey(selected, "selected_email_hash"))); err != nil {
		return errorResult("get avatar images", err)
	}

	images, err := t.svc.AvatarsAsImages(ctx, selected)
	if err != nil {
		return errorResult("get avatar images", err)
	}

	return imageResult(images, "The account has no avatars."), nil
}

// SelectedAvatarImageTool implements get_selected_avatar_as_image.
type SelectedAvatarImageTool struct {
	svc *service.Service
}

func NewSelectedAvatarImageTool() *mcp.Tool {
	tool := mcp.NewTool(
		"get_selected_avatar_as_image",
		append([]mcp.ToolOption{
			mcp.WithDescription("Fetch the avatar selected for an email address as an image."),
			mcp.WithString("email",
				mcp.Description("User's email address used to determine which avatar is selected"),
				mcp.Required(),
			),
		}, readOnly()...)...,
	)

	return &tool
}

func (t *SelectedAvatarImageTool) Definition() mcp.Tool {
	return *NewSelectedAvatarImageTool()
}

func (t *SelectedAvatarImageTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	email := stringArg(req, "email")

	if err := validate(valgo.Is(requireEmail(email))); err != nil {
		return errorResult("get selected avatar", err)
	}

	image, ok, err := t.svc.SelectedAvatarImage(ctx, email)
	if err != nil {
		return errorResult("get selected avatar", err)
	}

	if !ok {
		return imageResult(nil, "No avatar is selected for this email address."), nil
	}

	return imageResult([]avatar.Image{image}, ""), nil
}
