package models

import "time"

// SurfSession is the API-variant session row. Column names follow the
// original surf_sessions schema: unsuffixed, with the break name stored
// in a column literally called "break".
//
// Optional numeric readings default to zero when absent; swell direction
// is the one exception and stays NULL so that "no reading" and "0°" are
// distinguishable.
type SurfSession struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Date  string  `gorm:"type:varchar(10)" json:"date"`
	Time  string  `gorm:"type:varchar(8)" json:"time"`
	Break string  `gorm:"column:break;type:varchar(200)" json:"break"`
	Zone  *string `gorm:"type:varchar(100)" json:"zone"`

	TotalScore float64 `json:"total_score"`

	SurflinePrimarySwellSize float64  `json:"surfline_primary_swell_size"`
	SeabreezeSwellSize       float64  `json:"seabreeze_swell_size"`
	SwellPeriod              float64  `json:"swell_period"`
	SwellDirection           *float64 `json:"swell_direction"`
	SwellScore               float64  `json:"swell_score"`
	SwellComments            string   `gorm:"type:text" json:"swell_comments"`

	WindBearing  string  `gorm:"type:varchar(20)" json:"wind_bearing"`
	WindSpeed    float64 `json:"wind_speed"`
	WindScore    float64 `json:"wind_score"`
	WindComments string  `gorm:"type:text" json:"wind_comments"`

	TideReading   float64 `json:"tide_reading"`
	TideDirection string  `gorm:"type:varchar(20)" json:"tide_direction"`
	TideScore     float64 `json:"tide_score"`
	TideComments  string  `gorm:"type:text" json:"tide_comments"`

	FullCommentary  string  `gorm:"type:text" json:"full_commentary"`
	Cost            float64 `json:"cost"`
	EstimatedReturn float64 `json:"estimated_return"`
}

func (SurfSession) TableName() string {
	return "surf_sessions"
}
