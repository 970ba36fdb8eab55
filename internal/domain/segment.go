package domain

type SegmentID string

const (
	SegmentRecoverable7d      SegmentID = "recoverable_7d"
	SegmentNeedDiscount       SegmentID = "need_discount"
	SegmentUrgentReactivation SegmentID = "urgent_reactivation"
	SegmentVIPNoTouch         SegmentID = "vip_no_touch"
	SegmentNewNeedsAttention  SegmentID = "new_needs_attention"
	SegmentPotentialVIP       SegmentID = "potential_vip"
)

type SegmentPriority string

const (
	SegmentPriorityHigh   SegmentPriority = "HIGH"
	SegmentPriorityMedium SegmentPriority = "MEDIUM"
	SegmentPriorityLow    SegmentPriority = "LOW"
)

// SegmentClientMetrics são as métricas enriquecidas consumidas pelas regras de segmentação
type SegmentClientMetrics struct {
	ClientID            ClientID `json:"client_id"`
	Name                string   `json:"name"`
	Phone               string   `json:"phone"`
	DaysSinceVisit      *int     `json:"days_since_visit"`
	DaysSinceFirstVisit *int     `json:"days_since_first_visit"`
	VisitCount          int      `json:"visit_count"`
	AvgSum              float64  `json:"avg_sum"`
}

type Segment struct {
	ID               SegmentID              `json:"id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	MessageTemplate  string                 `json:"message_template"`
	Priority         SegmentPriority        `json:"priority"`
	Count            int                    `json:"count"`
	PotentialRevenue float64                `json:"potential_revenue"`
	Clients          []SegmentClientMetrics `json:"clients,omitempty"`
}

type SegmentFilters struct {
	Limit          int
	IncludeClients bool
}

type SegmentsReport struct {
	TotalClients int       `json:"total_clients"`
	AvgCheck     float64   `json:"avg_check"`
	Segments     []Segment `json:"segments"`
}
