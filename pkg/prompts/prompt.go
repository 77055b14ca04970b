/*
Package prompts holds the MCP prompts that turn a Gravatar profile into a short
professional summary.
*/
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	SummarizeProfile         = "summarize_gravatar_profile"
	SummarizeProfileViaTool  = "summarize_gravatar_profile_via_tool"
	summaryPersona           = "You are a professional assistant skilled at writing concise, engaging summaries of user profiles."
	summaryFields            = "Next, extract the fields display_name, location, description, job_title, company, timezone, languages, interests, and verified_accounts."
	summaryInstruction       = "Finally, produce a one- to two-paragraph professional summary, using natural, flowing sentences without bullet points."
	emailArgumentDescription = "Email address of the Gravatar profile to summarize"
)

// RenderFunc builds the messages of a prompt from its arguments.
type RenderFunc func(ctx context.Context, args map[string]string) ([]mcp.PromptMessage, error)

// Prompt is a named, argument-driven message template.
type Prompt struct {
	Name        string
	Description string
	Arguments   []string

	render RenderFunc
}

func (prompt Prompt) Definition() mcp.Prompt {
	opts := []mcp.PromptOption{mcp.WithPromptDescription(prompt.Description)}

	for _, arg := range prompt.Arguments {
		opts = append(opts, mcp.WithArgument(arg,
			mcp.RequiredArgument(),
			mcp.ArgumentDescription(emailArgumentDescription),
		))
	}

	return mcp.NewPrompt(prompt.Name, opts...)
}

/*
Render checks that every declared argument is present before building the
messages.
*/
func (prompt Prompt) Render(ctx context.Context, args map[string]string) (*mcp.GetPromptResult, error) {
	for _, arg := range prompt.Arguments {
		if args[arg] == "" {
			return nil, fmt.Errorf("prompt %s: missing required argument %s", prompt.Name, arg)
		}
	}

	messages, err := prompt.render(ctx, args)
	if err != nil {
		return nil, err
	}

	return mcp.NewGetPromptResult(prompt.Description, messages), nil
}

func userMessage(text string) mcp.PromptMessage {
	return mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text))
}
