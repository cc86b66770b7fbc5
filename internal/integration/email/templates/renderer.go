// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders both HTML and text versions of a template.
func (r *Renderer) Render(templateName string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		// Fall back to empty text if no text template exists
		return htmlBuf.String(), "", nil
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// StatusChangeData contains data for the goal status change email.
type StatusChangeData struct {
	UserName  string
	GoalTitle string
	OldStatus string
	NewStatus string
	GoalURL   string
}

// ProgressUpdateData contains data for the goal progress update email.
type ProgressUpdateData struct {
	UserName    string
	GoalTitle   string
	OldProgress string
	NewProgress string
	GoalURL     string
}

// DeadlineReminderData contains data for the deadline reminder email.
type DeadlineReminderData struct {
	UserName  string
	GoalTitle string
	EndDate   string
	DaysLeft  string
	GoalURL   string
}

// WorkspaceInviteData contains data for the workspace invitation email.
type WorkspaceInviteData struct {
	InviterName   string
	WorkspaceName string
	Role          string
	InviteURL     string
	ExpiresIn     string
}
