package services

import (
	"fmt"
	"strconv"

	"techhelp-dashboard/internal/dto"
	"techhelp-dashboard/pkg/types"
)

const (
	DashboardTitle    = "TechHelp Dashboard"
	DashboardSubtitle = "Indicadores de Desempenho da Equipe de Suporte Técnico"

	ErrorTitle      = "Erro ao carregar dados"
	FailedMessage   = "Não foi possível carregar os dados do dashboard. Tente recarregar a página."
	TimedOutMessage = "O servidor de dados demorou demais para responder. Tente recarregar a página em instantes."
	LoadingMessage  = "Carregando dados..."
)

// BuildDashboardView turns a view state into the page model. Only Ready
// produces tiles and charts; the other states carry a message.
func BuildDashboardView(state ViewState, theme Theme) dto.DashboardViewDTO {
	tokens := theme.Tokens()
	view := dto.DashboardViewDTO{
		Title:     DashboardTitle,
		Subtitle:  DashboardSubtitle,
		State:     string(state.Phase()),
		Theme:     themeDTO(theme),
		Tiles:     []types.DashboardKPITile{},
		Charts:    []types.DashboardChart{},
		Resources: []dto.ResourceStatusDTO{},
	}

	switch st := state.(type) {
	case Ready:
		snap := st.Snapshot
		summary := snap.Summary
		loadedAt := snap.LoadedAt

		view.LoadID = snap.LoadID
		view.LoadedAt = &loadedAt
		view.Tiles = []types.DashboardKPITile{
			{Key: "open", Title: "Chamados Abertos", Value: strconv.FormatInt(summary.OpenCount, 10), Caption: "Em processamento", Accent: "#fb7185"},
			{Key: "closed", Title: "Chamados Encerrados", Value: strconv.FormatInt(summary.ClosedCount, 10), Caption: FormatResolutionRate(summary.OpenCount, summary.ClosedCount), Accent: "#fb923c"},
			{Key: "avg_time", Title: "Tempo Médio", Value: FormatHours(summary.AvgResolutionHours), Caption: "Até resolução", Accent: "#fbbf24"},
			{Key: "satisfaction", Title: "Satisfação", Value: FormatSatisfaction(summary.AvgSatisfaction), Caption: "Avaliação média", Accent: "#f472b6"},
		}
		view.Leaderboard = &types.DashboardLeaderboard{
			Title:       "Técnico Mais Produtivo",
			Name:        summary.TopTechnician.Name,
			ClosedCount: summary.TopTechnician.ClosedCount,
			Caption:     fmt.Sprintf("%d chamados encerrados", summary.TopTechnician.ClosedCount),
		}
		view.Charts = []types.DashboardChart{
			CategoryBarChart(summary.RecurringCategories, tokens),
			SatisfactionPieChart(summary.SatisfactionDistribution, tokens),
			ResolutionAreaChart(snap.ResolutionRates, tokens),
			CategoryTimeChart(snap.CategoryTimes, tokens),
		}
		for _, r := range snap.Resources {
			view.Resources = append(view.Resources, dto.ResourceStatusDTO{
				Resource: string(r.Resource),
				Outcome:  string(r.Outcome),
				Warnings: r.Warnings,
			})
		}
	case Failed:
		view.ErrorTitle = ErrorTitle
		view.Message = FailedMessage
	case TimedOut:
		view.ErrorTitle = ErrorTitle
		view.Message = TimedOutMessage
	case Loading:
		view.Message = LoadingMessage
	}

	return view
}

func themeDTO(theme Theme) dto.ThemeDTO {
	return dto.ThemeDTO{
		Name:        theme.Name(),
		Dark:        theme.Dark,
		ToggleName:  theme.Toggled().Name(),
		ToggleGlyph: theme.ToggleGlyph(),
		ToggleLabel: theme.ToggleLabel(),
		Tokens:      theme.Tokens(),
	}
}
