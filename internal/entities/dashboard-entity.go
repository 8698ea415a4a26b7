package entities

import "time"

// Field names follow the documents produced by the reporting job.

type TopTechnician struct {
	Name        string `json:"Tecnico"`
	ClosedCount int64  `json:"Chamados_Encerrados" validate:"gte=0"`
}

type CategoryCount struct {
	Category string `json:"Categoria"`
	Count    int64  `json:"Contagem" validate:"gte=0"`
}

type SatisfactionCount struct {
	Label string `json:"Satisfacao"`
	Count int64  `json:"Contagem" validate:"gte=0"`
}

// DashboardSummary is the payload of the dashboard-data.json envelope.
type DashboardSummary struct {
	OpenCount                int64               `json:"total_abertos" validate:"gte=0"`
	ClosedCount              int64               `json:"total_encerrados" validate:"gte=0"`
	AvgResolutionHours       float64             `json:"tempo_medio_resolucao_horas" validate:"gte=0"`
	TopTechnician            TopTechnician       `json:"tecnico_mais_produtivo"`
	RecurringCategories      []CategoryCount     `json:"categorias_recorrentes" validate:"max=5,dive"`
	AvgSatisfaction          float64             `json:"satisfacao_media" validate:"gte=0,lte=5"`
	SatisfactionDistribution []SatisfactionCount `json:"satisfacao_distribuicao" validate:"dive"`
}

type ResolutionRatePoint struct {
	PeriodLabel string  `json:"Semana"`
	Rate        float64 `json:"Taxa" validate:"gte=0,lte=100"`
}

type CategoryResolutionTime struct {
	Category      string  `json:"Categoria"`
	AvgHours      float64 `json:"Tempo_Medio" validate:"gte=0"`
	ResolvedCount int64   `json:"Total_Resolvidos" validate:"gte=0"`
}

// Snapshot is everything one page load accepted. It is never mutated after
// the load completes.
type Snapshot struct {
	LoadID          string
	LoadedAt        time.Time
	Summary         DashboardSummary
	ResolutionRates []ResolutionRatePoint
	CategoryTimes   []CategoryResolutionTime
	Resources       []ResourceReport
}
