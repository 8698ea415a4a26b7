package dto

import (
	"time"

	"techhelp-dashboard/pkg/types"
)

type DashboardQueryDTO struct {
	Theme string `query:"theme" validate:"omitempty,theme"`
}

type ExportQueryDTO struct {
	Format string `query:"format" validate:"omitempty,export_format"`
}

// DashboardViewDTO is everything the page needs to render one load.
// Tiles, Leaderboard and Charts are only set when State is "ready".
type DashboardViewDTO struct {
	Title       string                      `json:"title"`
	Subtitle    string                      `json:"subtitle"`
	State       string                      `json:"state"`
	ErrorTitle  string                      `json:"error_title,omitempty"`
	Message     string                      `json:"message,omitempty"`
	LoadID      string                      `json:"load_id,omitempty"`
	LoadedAt    *time.Time                  `json:"loaded_at,omitempty"`
	Theme       ThemeDTO                    `json:"theme"`
	Tiles       []types.DashboardKPITile    `json:"tiles"`
	Leaderboard *types.DashboardLeaderboard `json:"leaderboard,omitempty"`
	Charts      []types.DashboardChart      `json:"charts"`
	Resources   []ResourceStatusDTO         `json:"resources"`
}

type ThemeDTO struct {
	Name        string            `json:"name"`
	Dark        bool              `json:"dark"`
	ToggleName  string            `json:"toggle_name"`
	ToggleGlyph string            `json:"toggle_glyph"`
	ToggleLabel string            `json:"toggle_label"`
	Tokens      types.ThemeTokens `json:"tokens"`
}

type ResourceStatusDTO struct {
	Resource string `json:"resource"`
	Outcome  string `json:"outcome"`
	Warnings int    `json:"warnings"`
}
