package services

import (
	"strings"

	"techhelp-dashboard/internal/entities"
	"techhelp-dashboard/pkg/types"
)

// Satisfaction colors, one per level, plus the color for unknown labels.
const (
	ColorPoor                 = "#ef4444"
	ColorRegular              = "#f59e0b"
	ColorMedium               = "#eab308"
	ColorGood                 = "#10b981"
	ColorExcellent            = "#06b6d4"
	ColorSatisfactionFallback = "#8b5cf6"
)

const (
	categoryBarColor    = "#ef4444"
	resolutionAreaColor = "#f97316"
	categoryTimeColor   = "#f59e0b"

	// NoDataNotice replaces a chart whose series is empty.
	NoDataNotice = "Sem dados disponíveis"
)

const (
	ChartIDCategories     = "categorias-recorrentes"
	ChartIDSatisfaction   = "distribuicao-satisfacao"
	ChartIDResolutionRate = "taxa-resolucao"
	ChartIDCategoryTime   = "tempo-por-categoria"
)

type SatisfactionLevel int

const (
	SatisfactionUnknown SatisfactionLevel = iota
	SatisfactionPoor
	SatisfactionRegular
	SatisfactionMedium
	SatisfactionGood
	SatisfactionExcellent
)

// SatisfactionLevels lists the known levels from worst to best.
var SatisfactionLevels = []SatisfactionLevel{
	SatisfactionPoor,
	SatisfactionRegular,
	SatisfactionMedium,
	SatisfactionGood,
	SatisfactionExcellent,
}

// ParseSatisfactionLevel accepts the pt-BR labels written by the reporting
// job and their English names.
func ParseSatisfactionLevel(label string) SatisfactionLevel {
	switch strings.TrimSpace(label) {
	case "Ruim", "Poor":
		return SatisfactionPoor
	case "Regular":
		return SatisfactionRegular
	case "Médio", "Medium":
		return SatisfactionMedium
	case "Bom", "Good":
		return SatisfactionGood
	case "Excelente", "Excellent":
		return SatisfactionExcellent
	default:
		return SatisfactionUnknown
	}
}

func (l SatisfactionLevel) Color() string {
	switch l {
	case SatisfactionPoor:
		return ColorPoor
	case SatisfactionRegular:
		return ColorRegular
	case SatisfactionMedium:
		return ColorMedium
	case SatisfactionGood:
		return ColorGood
	case SatisfactionExcellent:
		return ColorExcellent
	default:
		return ColorSatisfactionFallback
	}
}

// SatisfactionColor is defined for every string.
func SatisfactionColor(label string) string {
	return ParseSatisfactionLevel(label).Color()
}

func baseOption(tokens types.ThemeTokens, trigger string) types.ChartOption {
	return types.ChartOption{
		BackgroundColor: "transparent",
		Tooltip: types.ChartTooltip{
			Trigger:         trigger,
			BackgroundColor: tokens.TooltipBackground,
			BorderColor:     tokens.TooltipBorder,
			TextStyle:       types.ChartTextStyle{Color: tokens.TooltipText},
		},
		Series: []types.ChartSeries{},
	}
}

func categoryAxis(labels []string, tokens types.ThemeTokens, fontSize, rotate int) *types.ChartAxis {
	return &types.ChartAxis{
		Type: "category",
		Data: labels,
		AxisLabel: &types.ChartAxisLabel{
			Color:    tokens.AxisLabel,
			FontSize: fontSize,
			Rotate:   rotate,
		},
	}
}

func valueAxis(tokens types.ThemeTokens) *types.ChartAxis {
	return &types.ChartAxis{
		Type:      "value",
		AxisLabel: &types.ChartAxisLabel{Color: tokens.AxisLabel},
		SplitLine: &types.ChartSplitLine{
			Show:      true,
			LineStyle: types.ChartLineStyle{Color: tokens.GridLine, Type: "dashed"},
		},
	}
}

func markEmpty(chart types.DashboardChart, points int) types.DashboardChart {
	if points == 0 {
		chart.Empty = true
		chart.Notice = NoDataNotice
	}
	return chart
}

// CategoryBarChart maps the ranked recurring categories to a vertical bar chart, rank order kept.
func CategoryBarChart(categories []entities.CategoryCount, tokens types.ThemeTokens) types.DashboardChart {
	labels := make([]string, 0, len(categories))
	data := make([]types.ChartDataPoint, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Category)
		data = append(data, types.ChartDataPoint{Name: c.Category, Value: float64(c.Count)})
	}

	option := baseOption(tokens, "axis")
	option.Grid = &types.ChartGrid{Left: "3%", Right: "4%", Top: "8%", Bottom: "3%", ContainLabel: true}
	option.XAxis = categoryAxis(labels, tokens, 12, -45)
	option.YAxis = valueAxis(tokens)
	option.Series = []types.ChartSeries{{
		Name:      "Contagem",
		Type:      "bar",
		Data:      data,
		ItemStyle: &types.ChartItemStyle{Color: categoryBarColor, BorderRadius: []int{8, 8, 0, 0}},
	}}

	return markEmpty(types.DashboardChart{
		ID:       ChartIDCategories,
		Kind:     types.ChartBar,
		Title:    "Categorias Mais Recorrentes",
		Subtitle: "Top 5 motivos de chamados",
		Accent:   "#fb7185",
		Height:   300,
		Option:   option,
	}, len(data))
}

// SatisfactionPieChart maps the satisfaction distribution to a pie, one slice color per level.
func SatisfactionPieChart(distribution []entities.SatisfactionCount, tokens types.ThemeTokens) types.DashboardChart {
	data := make([]types.ChartDataPoint, 0, len(distribution))
	for _, d := range distribution {
		data = append(data, types.ChartDataPoint{
			Name:      d.Label,
			Value:     float64(d.Count),
			ItemStyle: &types.ChartItemStyle{Color: SatisfactionColor(d.Label)},
		})
	}

	option := baseOption(tokens, "item")
	option.Series = []types.ChartSeries{{
		Name:   "Satisfação",
		Type:   "pie",
		Data:   data,
		Radius: "65%",
		Center: []string{"50%", "50%"},
		Label:  &types.ChartSeriesLabel{Show: true, Formatter: "{b}: {c}", Color: tokens.SubtleText},
	}}

	return markEmpty(types.DashboardChart{
		ID:       ChartIDSatisfaction,
		Kind:     types.ChartPie,
		Title:    "Distribuição de Satisfação",
		Subtitle: "Avaliação dos clientes",
		Accent:   "#f472b6",
		Height:   300,
		Option:   option,
	}, len(data))
}

// ResolutionAreaChart maps the windowed resolution-rate series to an area chart.
func ResolutionAreaChart(points []entities.ResolutionRatePoint, tokens types.ThemeTokens) types.DashboardChart {
	labels := make([]string, 0, len(points))
	data := make([]types.ChartDataPoint, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.PeriodLabel)
		data = append(data, types.ChartDataPoint{Value: p.Rate})
	}

	option := baseOption(tokens, "axis")
	option.Grid = &types.ChartGrid{Left: "3%", Right: "4%", Top: "8%", Bottom: "3%", ContainLabel: true}
	option.XAxis = categoryAxis(labels, tokens, 11, 0)
	option.YAxis = valueAxis(tokens)
	option.Series = []types.ChartSeries{{
		Name:      "Taxa",
		Type:      "line",
		Data:      data,
		Smooth:    true,
		ItemStyle: &types.ChartItemStyle{Color: resolutionAreaColor},
		LineStyle: &types.ChartLineStyle{Color: resolutionAreaColor, Width: 2},
		AreaStyle: &types.ChartAreaStyle{Color: types.ChartLinearGradient{
			Type: "linear", X: 0, Y: 0, X2: 0, Y2: 1,
			ColorStops: []types.ChartColorStop{
				{Offset: 0.05, Color: "rgba(249, 115, 22, 0.8)"},
				{Offset: 0.95, Color: "rgba(249, 115, 22, 0)"},
			},
		}},
	}}

	return markEmpty(types.DashboardChart{
		ID:       ChartIDResolutionRate,
		Kind:     types.ChartArea,
		Title:    "Taxa de Resolução por Período",
		Subtitle: "Últimas 12 semanas - Percentual de chamados resolvidos",
		Accent:   "#fb923c",
		Height:   350,
		Wide:     true,
		Option:   option,
	}, len(data))
}

// CategoryTimeChart maps average resolution time per category to a horizontal
// bar chart. The category axis is inverted so the first entry is drawn on top.
func CategoryTimeChart(times []entities.CategoryResolutionTime, tokens types.ThemeTokens) types.DashboardChart {
	labels := make([]string, 0, len(times))
	data := make([]types.ChartDataPoint, 0, len(times))
	for _, t := range times {
		labels = append(labels, t.Category)
		data = append(data, types.ChartDataPoint{Name: t.Category, Value: t.AvgHours})
	}

	option := baseOption(tokens, "axis")
	option.Tooltip.ValueSuffix = "h"
	option.Grid = &types.ChartGrid{Left: "3%", Right: "4%", Top: "3%", Bottom: "3%", ContainLabel: true}
	option.XAxis = valueAxis(tokens)
	option.YAxis = categoryAxis(labels, tokens, 12, 0)
	option.YAxis.Inverse = true
	option.Series = []types.ChartSeries{{
		Name:      "Tempo_Medio",
		Type:      "bar",
		Data:      data,
		ItemStyle: &types.ChartItemStyle{Color: categoryTimeColor, BorderRadius: []int{0, 8, 8, 0}},
	}}

	return markEmpty(types.DashboardChart{
		ID:       ChartIDCategoryTime,
		Kind:     types.ChartHorizontalBar,
		Title:    "Tempo Médio de Resolução por Categoria",
		Subtitle: "Análise de eficiência por tipo de problema",
		Accent:   "#fbbf24",
		Height:   400,
		Wide:     true,
		Option:   option,
	}, len(data))
}
