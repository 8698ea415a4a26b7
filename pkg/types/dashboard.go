package types

// KPI tile
type DashboardKPITile struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Value   string `json:"value"`
	Caption string `json:"caption"`
	Accent  string `json:"accent"`
}

// Leaderboard tile
type DashboardLeaderboard struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	ClosedCount int64  `json:"closed_count"`
	Caption     string `json:"caption"`
}

type ChartKind string

const (
	ChartBar           ChartKind = "bar"
	ChartHorizontalBar ChartKind = "horizontal_bar"
	ChartPie           ChartKind = "pie"
	ChartArea          ChartKind = "area"
)

// DashboardChart is one chart card. Option is handed to ECharts as-is.
type DashboardChart struct {
	ID       string      `json:"id"`
	Kind     ChartKind   `json:"kind"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Accent   string      `json:"accent"`
	Height   int         `json:"height"`
	Wide     bool        `json:"wide"`
	Empty    bool        `json:"empty"`
	Notice   string      `json:"notice,omitempty"`
	Option   ChartOption `json:"option"`
}

// ChartOption mirrors the subset of the ECharts option object the dashboard uses.
type ChartOption struct {
	BackgroundColor string        `json:"backgroundColor"`
	Tooltip         ChartTooltip  `json:"tooltip"`
	Grid            *ChartGrid    `json:"grid,omitempty"`
	XAxis           *ChartAxis    `json:"xAxis,omitempty"`
	YAxis           *ChartAxis    `json:"yAxis,omitempty"`
	Series          []ChartSeries `json:"series"`
}

type ChartTooltip struct {
	Trigger         string         `json:"trigger"`
	BackgroundColor string         `json:"backgroundColor"`
	BorderColor     string         `json:"borderColor"`
	TextStyle       ChartTextStyle `json:"textStyle"`
	// ValueSuffix is read by the page script, ECharts ignores it.
	ValueSuffix     string         `json:"valueSuffix,omitempty"`
}

type ChartTextStyle struct {
	Color    string `json:"color,omitempty"`
	FontSize int    `json:"fontSize,omitempty"`
}

type ChartGrid struct {
	Left         string `json:"left"`
	Right        string `json:"right"`
	Top          string `json:"top"`
	Bottom       string `json:"bottom"`
	ContainLabel bool   `json:"containLabel"`
}

type ChartAxis struct {
	Type      string          `json:"type"`
	Data      []string        `json:"data,omitempty"`
	Inverse   bool            `json:"inverse,omitempty"`
	AxisLabel *ChartAxisLabel `json:"axisLabel,omitempty"`
	SplitLine *ChartSplitLine `json:"splitLine,omitempty"`
}

type ChartAxisLabel struct {
	Color    string `json:"color"`
	FontSize int    `json:"fontSize,omitempty"`
	Rotate   int    `json:"rotate,omitempty"`
}

type ChartSplitLine struct {
	Show      bool           `json:"show"`
	LineStyle ChartLineStyle `json:"lineStyle"`
}

type ChartLineStyle struct {
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
	Width int    `json:"width,omitempty"`
}

type ChartSeries struct {
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Data      []ChartDataPoint  `json:"data"`
	ItemStyle *ChartItemStyle   `json:"itemStyle,omitempty"`
	LineStyle *ChartLineStyle   `json:"lineStyle,omitempty"`
	AreaStyle *ChartAreaStyle   `json:"areaStyle,omitempty"`
	Label     *ChartSeriesLabel `json:"label,omitempty"`
	Smooth    bool              `json:"smooth,omitempty"`
	Radius    string            `json:"radius,omitempty"`
	Center    []string          `json:"center,omitempty"`
	BarWidth  string            `json:"barMaxWidth,omitempty"`
}

type ChartDataPoint struct {
	Name      string          `json:"name,omitempty"`
	Value     float64         `json:"value"`
	ItemStyle *ChartItemStyle `json:"itemStyle,omitempty"`
}

type ChartItemStyle struct {
	Color        string `json:"color,omitempty"`
	BorderRadius []int  `json:"borderRadius,omitempty"`
}

type ChartAreaStyle struct {
	Color ChartLinearGradient `json:"color"`
}

type ChartLinearGradient struct {
	Type       string           `json:"type"`
	X          float64          `json:"x"`
	Y          float64          `json:"y"`
	X2         float64          `json:"x2"`
	Y2         float64          `json:"y2"`
	ColorStops []ChartColorStop `json:"colorStops"`
}

type ChartColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

type ChartSeriesLabel struct {
	Show      bool   `json:"show"`
	Formatter string `json:"formatter,omitempty"`
	Color     string `json:"color,omitempty"`
}

// ThemeTokens are the colors the page and the chart options are painted with.
type ThemeTokens struct {
	Background        string `json:"background"`
	BackgroundAccent  string `json:"background_accent"`
	Card              string `json:"card"`
	CardBorder        string `json:"card_border"`
	Text              string `json:"text"`
	SubtleText        string `json:"subtle_text"`
	MutedText         string `json:"muted_text"`
	Watermark         string `json:"watermark"`
	GridLine          string `json:"grid_line"`
	AxisLabel         string `json:"axis_label"`
	TooltipBackground string `json:"tooltip_background"`
	TooltipBorder     string `json:"tooltip_border"`
	TooltipText       string `json:"tooltip_text"`
	Danger            string `json:"danger"`
}
