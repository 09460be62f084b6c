package service

import (
	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/logger"
)

// AnalyticsService computes the read-only rollups behind the admin dashboard.
type AnalyticsService struct{}

// MoodCount is one entry of the top-moods ranking.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int64  `json:"count"`
}

// DashboardStats carries every number shown on the dashboard.
type DashboardStats struct {
	TopMoods      []MoodCount `json:"topMoods"`
	TotalChats    int64       `json:"totalChats"`
	StressChats   int64       `json:"stressChats"`
	DepressChats  int64       `json:"depressChats"`
	TotalBookings int64       `json:"totalBookings"`
	TopCounselor  string      `json:"topCounselor"`
}

func emptyStats() DashboardStats {
	return DashboardStats{
		TopMoods:     []MoodCount{},
		TopCounselor: "N/A",
	}
}

// GetDashboardStats builds the full rollup. Any query failure is logged and
// yields zeroed defaults for the whole dashboard, never an error.
func (s *AnalyticsService) GetDashboardStats() DashboardStats {
	db := database.GetDB()
	stats := emptyStats()

	var topMoods []MoodCount
	err := db.Raw(`
		SELECT mood, COUNT(*) AS count
		FROM moods
		GROUP BY mood
		ORDER BY count DESC
		LIMIT 5
	`).Scan(&topMoods).Error
	if err != nil {
		logger.Warning("dashboard stats err:", err)
		return emptyStats()
	}
	if topMoods != nil {
		stats.TopMoods = topMoods
	}

	if err := db.Table("chats").Count(&stats.TotalChats).Error; err != nil {
		logger.Warning("dashboard stats err:", err)
		return emptyStats()
	}

	// sqlite LIKE is case-insensitive for ASCII, matching the keyword rules
	err = db.Table("chats").
		Where("user_message LIKE ?", "%stress%").
		Count(&stats.StressChats).
		Error
	if err != nil {
		logger.Warning("dashboard stats err:", err)
		return emptyStats()
	}

	err = db.Table("chats").
		Where("user_message LIKE ?", "%depress%").
		Count(&stats.DepressChats).
		Error
	if err != nil {
		logger.Warning("dashboard stats err:", err)
		return emptyStats()
	}

	if err := db.Table("bookings").Count(&stats.TotalBookings).Error; err != nil {
		logger.Warning("dashboard stats err:", err)
		return emptyStats()
	}

	type counselorRow struct {
		Counselor string
		Count     int64
	}
	var counselors []counselorRow
	err = db.Raw(`
		SELECT counselor, COUNT(*) AS count
		FROM bookings
		GROUP BY counselor
		ORDER BY count DESC
		LIMIT 1
	`).Scan(&counselors).Error
	if err != nil {
		logger.Warning("dashboard stats err:", err)
		return emptyStats()
	}
	if len(counselors) > 0 {
		stats.TopCounselor = counselors[0].Counselor
	}

	return stats
}
