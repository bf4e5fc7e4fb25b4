package models

import "time"

// Publicity values for dashboard records.
const (
	PublicityPrivate   = "Private"
	PublicityPublic    = "Public"
	PublicityCommunity = "Community"
)

// Record is the dashboard-variant session row. The records schema
// evolved separately from surf_sessions: string ids, an owning user,
// a publicity tag, unit-suffixed column names and extra suitability /
// final-score fields. The two schemas must not be unified.
type Record struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	Publicity string    `gorm:"type:varchar(20);default:Private" json:"publicity"`
	CreatedAt time.Time `json:"created_at"`

	Date  string `gorm:"type:varchar(10);index" json:"date"`
	Time  string `gorm:"type:varchar(8)" json:"time"`
	Break string `gorm:"column:break;type:varchar(200)" json:"break"`
	Zone  string `gorm:"type:varchar(100)" json:"zone"`

	TotalScore float64 `json:"total_score"`

	SurflinePrimarySwellSizeM float64  `gorm:"column:surfline_primary_swell_size_m" json:"surfline_primary_swell_size_m"`
	SeabreezeSwellM           float64  `gorm:"column:seabreeze_swell_m" json:"seabreeze_swell_m"`
	SwellPeriodS              int      `gorm:"column:swell_period_s" json:"swell_period_s"`
	SwellDirection            *float64 `json:"swell_direction"`
	SuitableSwell             string   `gorm:"type:varchar(10)" json:"suitable_swell"`
	SwellScore                int      `json:"swell_score"`
	FinalSwellScore           int      `json:"final_swell_score"`
	SwellComments             string   `gorm:"type:text" json:"swell_comments"`

	WindBearing    string `gorm:"type:varchar(20)" json:"wind_bearing"`
	WindSpeedKn    int    `gorm:"column:wind_speed_kn" json:"wind_speed_kn"`
	SuitableWind   string `gorm:"type:varchar(10)" json:"suitable_wind"`
	WindScore      int    `json:"wind_score"`
	WindFinalScore int    `json:"wind_final_score"`
	WindComments   string `gorm:"type:text" json:"wind_comments"`

	TideReadingM   float64 `gorm:"column:tide_reading_m" json:"tide_reading_m"`
	TideDirection  string  `gorm:"type:varchar(20)" json:"tide_direction"`
	TideSuitable   string  `gorm:"type:varchar(10)" json:"tide_suitable"`
	TideScore      int     `json:"tide_score"`
	TideFinalScore float64 `json:"tide_final_score"`
	TideComments   string  `gorm:"type:text" json:"tide_comments"`

	FullCommentary string `gorm:"type:text" json:"full_commentary"`
}

func (Record) TableName() string {
	return "records"
}
