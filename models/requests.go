package models

import "time"

// SurfSessionCreate is the API-variant create payload. Cost and
// estimated return are pointers so that a legitimate value of 0 still
// satisfies the required binding.
type SurfSessionCreate struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Description     string   `json:"description" binding:"required"`
	Cost            *float64 `json:"cost" binding:"required,gte=0,lte=100"`
	EstimatedReturn *float64 `json:"estimated_return" binding:"required,gte=0,lte=100"`

	Date string  `json:"date"`
	Time string  `json:"time"`
	Zone *string `json:"zone"`

	SwellSizeSurfline  *float64 `json:"swell_size_surfline"`
	SwellSizeSeabreeze *float64 `json:"swell_size_seabreeze"`
	SwellPeriod        *float64 `json:"swell_period"`
	SwellDirection     *float64 `json:"swell_direction"`
	SwellScore         *float64 `json:"swell_score"`
	SwellComments      string   `json:"swell_comments"`

	WindBearing  string   `json:"wind_bearing"`
	WindSpeed    *float64 `json:"wind_speed"`
	WindScore    *float64 `json:"wind_score"`
	WindComments string   `json:"wind_comments"`

	TideReading   *float64 `json:"tide_reading"`
	TideDirection string   `json:"tide_direction"`
	TideScore     *float64 `json:"tide_score"`
	TideComments  string   `json:"tide_comments"`
}

// ToSession maps the payload onto the surf_sessions schema. Missing
// date and time default to now; absent numeric readings become 0,
// except swell direction which stays NULL.
func (r *SurfSessionCreate) ToSession(totalScore float64) SurfSession {
	date := r.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	t := r.Time
	if t == "" {
		t = time.Now().Format("15:04")
	}

	return SurfSession{
		Date:                     date,
		Time:                     t,
		Break:                    r.Title,
		Zone:                     r.Zone,
		TotalScore:               totalScore,
		SurflinePrimarySwellSize: floatOrZero(r.SwellSizeSurfline),
		SeabreezeSwellSize:       floatOrZero(r.SwellSizeSeabreeze),
		SwellPeriod:              floatOrZero(r.SwellPeriod),
		SwellDirection:           r.SwellDirection,
		SwellScore:               floatOrZero(r.SwellScore),
		SwellComments:            r.SwellComments,
		WindBearing:              r.WindBearing,
		WindSpeed:                floatOrZero(r.WindSpeed),
		WindScore:                floatOrZero(r.WindScore),
		WindComments:             r.WindComments,
		TideReading:              floatOrZero(r.TideReading),
		TideDirection:            r.TideDirection,
		TideScore:                floatOrZero(r.TideScore),
		TideComments:             r.TideComments,
		FullCommentary:           r.Description,
		Cost:                     *r.Cost,
		EstimatedReturn:          *r.EstimatedReturn,
	}
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// RecordRequest is the dashboard-variant create/update payload. The
// owning user is never taken from the payload; it is attached from the
// authenticated identity at save time.
type RecordRequest struct {
	Publicity string `json:"publicity"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Break     string `json:"break" binding:"required"`
	Zone      string `json:"zone"`

	TotalScore float64 `json:"total_score"`

	SurflinePrimarySwellSizeM *float64 `json:"surfline_primary_swell_size_m"`
	SeabreezeSwellM           *float64 `json:"seabreeze_swell_m"`
	SwellPeriodS              *int     `json:"swell_period_s"`
	SwellDirection            *float64 `json:"swell_direction"`
	SuitableSwell             string   `json:"suitable_swell"`
	SwellScore                *int     `json:"swell_score"`
	FinalSwellScore           *int     `json:"final_swell_score"`
	SwellComments             string   `json:"swell_comments"`

	WindBearing    string `json:"wind_bearing"`
	WindSpeedKn    *int   `json:"wind_speed_kn"`
	SuitableWind   string `json:"suitable_wind"`
	WindScore      *int   `json:"wind_score"`
	WindFinalScore *int   `json:"wind_final_score"`
	WindComments   string `json:"wind_comments"`

	TideReadingM   *float64 `json:"tide_reading_m"`
	TideDirection  string   `json:"tide_direction"`
	TideSuitable   string   `json:"tide_suitable"`
	TideScore      *int     `json:"tide_score"`
	TideFinalScore *float64 `json:"tide_final_score"`
	TideComments   string   `json:"tide_comments"`

	FullCommentary string `json:"full_commentary"`
}

// ToRecord maps the payload onto the records schema for the given
// owner. Same coercion policy as the API variant: absent numerics
// become 0, swell direction stays NULL. Publicity defaults to Private.
func (r *RecordRequest) ToRecord(userID string) Record {
	publicity := r.Publicity
	if publicity == "" {
		publicity = PublicityPrivate
	}

	return Record{
		UserID:                    userID,
		Publicity:                 publicity,
		Date:                      r.Date,
		Time:                      r.Time,
		Break:                     r.Break,
		Zone:                      r.Zone,
		TotalScore:                r.TotalScore,
		SurflinePrimarySwellSizeM: floatOrZero(r.SurflinePrimarySwellSizeM),
		SeabreezeSwellM:           floatOrZero(r.SeabreezeSwellM),
		SwellPeriodS:              intOrZero(r.SwellPeriodS),
		SwellDirection:            r.SwellDirection,
		SuitableSwell:             r.SuitableSwell,
		SwellScore:                intOrZero(r.SwellScore),
		FinalSwellScore:           intOrZero(r.FinalSwellScore),
		SwellComments:             r.SwellComments,
		WindBearing:               r.WindBearing,
		WindSpeedKn:               intOrZero(r.WindSpeedKn),
		SuitableWind:              r.SuitableWind,
		WindScore:                 intOrZero(r.WindScore),
		WindFinalScore:            intOrZero(r.WindFinalScore),
		WindComments:              r.WindComments,
		TideReadingM:              floatOrZero(r.TideReadingM),
		TideDirection:             r.TideDirection,
		TideSuitable:              r.TideSuitable,
		TideScore:                 intOrZero(r.TideScore),
		TideFinalScore:            floatOrZero(r.TideFinalScore),
		TideComments:              r.TideComments,
		FullCommentary:            r.FullCommentary,
	}
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// SignUpRequest creates a dashboard account.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
}

// SignInRequest authenticates a dashboard account.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
