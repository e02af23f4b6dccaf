package models

// ChatStats summarises support-chat volume.
type ChatStats struct {
	TotalConversations      int     `json:"totalConversations"`
	OpenConversations       int     `json:"openConversations"`
	ResolvedToday           int     `json:"resolvedToday"`
	AvgFirstResponseMinutes float64 `json:"avgFirstResponseMinutes"`
	AvgResolutionHours      float64 `json:"avgResolutionHours"`
	SatisfactionScore       float64 `json:"satisfactionScore"`
}

// EmployeesStats summarises back-office staffing.
type EmployeesStats struct {
	TotalEmployees     int     `json:"totalEmployees"`
	OnlineNow          int     `json:"onlineNow"`
	OnLeave            int     `json:"onLeave"`
	TicketsPerEmployee float64 `json:"ticketsPerEmployee"`
	TopPerformer       string  `json:"topPerformer"`
}

// ImagesStats summarises the media library.
type ImagesStats struct {
	TotalImages       int `json:"totalImages"`
	UploadedThisWeek  int `json:"uploadedThisWeek"`
	PendingModeration int `json:"pendingModeration"`
	RejectedThisWeek  int `json:"rejectedThisWeek"`
	StorageUsedMB     int `json:"storageUsedMb"`
}

// KpiMetrics is the headline revenue/bookings card.
type KpiMetrics struct {
	RevenueCents      int64   `json:"revenueCents"`
	RevenueGrowthPct  float64 `json:"revenueGrowthPct"`
	BookingsCount     int     `json:"bookingsCount"`
	BookingsGrowthPct float64 `json:"bookingsGrowthPct"`
	ActiveUsers       int     `json:"activeUsers"`
	ChurnRatePct      float64 `json:"churnRatePct"`
	ConversionRatePct float64 `json:"conversionRatePct"`
}

// ReportsStats summarises scheduled report generation.
type ReportsStats struct {
	GeneratedThisMonth   int     `json:"generatedThisMonth"`
	Scheduled            int     `json:"scheduled"`
	FailedThisMonth      int     `json:"failedThisMonth"`
	AvgGenerationSeconds float64 `json:"avgGenerationSeconds"`
}

// ReviewsStats summarises customer reviews.
type ReviewsStats struct {
	TotalReviews    int     `json:"totalReviews"`
	AverageRating   float64 `json:"averageRating"`
	FlaggedCount    int     `json:"flaggedCount"`
	ResponseRatePct float64 `json:"responseRatePct"`
	FiveStarShare   float64 `json:"fiveStarShare"`
}

// StatisticsReport bundles every statistics card for export.
type StatisticsReport struct {
	Chats     ChatStats      `json:"chats"`
	Employees EmployeesStats `json:"employees"`
	Images    ImagesStats    `json:"images"`
	Kpi       KpiMetrics     `json:"kpi"`
	Reports   ReportsStats   `json:"reports"`
	Reviews   ReviewsStats   `json:"reviews"`
}
