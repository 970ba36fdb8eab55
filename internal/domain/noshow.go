package domain

import "time"

type NoShowPrediction struct {
	RecordID         RecordID      `json:"record_id"`
	ClientID         ClientID      `json:"client_id"`
	ClientName       string        `json:"client_name"`
	ClientPhone      string        `json:"client_phone"`
	StaffName        string        `json:"staff_name"`
	Datetime         time.Time     `json:"datetime"`
	DayOfWeek        string        `json:"day_of_week"`
	TimeSlot         string        `json:"time_slot"`
	Services         []ServiceLine `json:"services"`
	TotalCost        float64       `json:"total_cost"`
	Confirmed        bool          `json:"confirmed"`
	ClientVisits     int           `json:"client_visits"`
	ClientNoShows    int           `json:"client_no_shows"`
	ClientNoShowRate float64       `json:"client_no_show_rate"`
	RiskScore        int           `json:"risk_score"`
	RiskLevel        RiskLevel     `json:"risk_level"`
	RiskFactors      []string      `json:"risk_factors"`
	Recommendations  []string      `json:"recommendations"`
}

type NoShowFilters struct {
	DaysAhead int
	Limit     int
	RiskLevel *RiskLevel
}

type NoShowSummary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Add contabiliza uma previsão no total e no seu nível
func (s *NoShowSummary) Add(level RiskLevel) {
	s.Total++
	switch level {
	case RiskLevelCritical:
		s.Critical++
	case RiskLevelHigh:
		s.High++
	case RiskLevelMedium:
		s.Medium++
	case RiskLevelLow:
		s.Low++
	}
}

type NoShowReport struct {
	GeneratedAt       time.Time          `json:"generated_at"`
	DaysAhead         int                `json:"days_ahead"`
	AverageNoShowRate float64            `json:"average_no_show_rate"`
	Summary           NoShowSummary      `json:"summary"`
	Predictions       []NoShowPrediction `json:"predictions"`
}
