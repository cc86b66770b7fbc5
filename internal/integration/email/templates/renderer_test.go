// Package templates provides email template rendering functionality.
package templates

import (
	"strings"
	"testing"
)

func TestRendererRendersAllTemplates(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	tests := []struct {
		name     string
		template string
		data     interface{}
		contains []string
	}{
		{
			name:     "status change",
			template: "status_change",
			data: StatusChangeData{
				UserName:  "Ana",
				GoalTitle: "Ship onboarding flow",
				OldStatus: "ACTIVE",
				NewStatus: "COMPLETED",
				GoalURL:   "https://app.example.com/goals/abc",
			},
			contains: []string{"Ship onboarding flow", "ACTIVE", "COMPLETED"},
		},
		{
			name:     "progress update",
			template: "progress_update",
			data: ProgressUpdateData{
				UserName:    "Ana",
				GoalTitle:   "Ship onboarding flow",
				OldProgress: "40",
				NewProgress: "65",
				GoalURL:     "https://app.example.com/goals/abc",
			},
			contains: []string{"Ship onboarding flow", "40", "65"},
		},
		{
			name:     "deadline reminder",
			template: "deadline_reminder",
			data: DeadlineReminderData{
				UserName:  "Ana",
				GoalTitle: "Ship onboarding flow",
				EndDate:   "2026-03-31",
				DaysLeft:  "3",
				GoalURL:   "https://app.example.com/goals/abc",
			},
			contains: []string{"Ship onboarding flow", "2026-03-31"},
		},
		{
			name:     "workspace invite",
			template: "workspace_invite",
			data: WorkspaceInviteData{
				InviterName:   "Ana",
				WorkspaceName: "Product",
				Role:          "MEMBER",
				InviteURL:     "https://app.example.com/invites/accept?token=tok",
				ExpiresIn:     "7 days",
			},
			contains: []string{"Product", "Ana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, text, err := renderer.Render(tt.template, tt.data)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if html == "" {
				t.Fatal("expected non-empty html body")
			}
			if text == "" {
				t.Fatal("expected non-empty text body")
			}
			for _, want := range tt.contains {
				if !strings.Contains(html, want) {
					t.Errorf("html body missing %q", want)
				}
				if !strings.Contains(text, want) {
					t.Errorf("text body missing %q", want)
				}
			}
		})
	}
}

func TestRendererUnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if _, _, err := renderer.Render("no_such_template", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
