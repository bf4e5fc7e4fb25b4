package models

// RecordColumnLabels maps records storage columns to the labels the
// dashboard shows. This is a fixed table, not a string transform: the
// labels carry units and punctuation the column names do not.
var RecordColumnLabels = map[string]string{
	"surfline_primary_swell_size_m": "Surfline Primary Swell Size (m)",
	"seabreeze_swell_m":             "Seabreeze Swell (m)",
	"swell_period_s":                "Swell Period (s)",
	"swell_direction":               "Swell Direction",
	"suitable_swell":                "Suitable Swell?",
	"swell_score":                   "Swell Score",
	"final_swell_score":             "Final Swell Score",
	"swell_comments":                "Swell Comments",
	"wind_bearing":                  "Wind Bearing",
	"wind_speed_kn":                 "Wind Speed (kn)",
	"suitable_wind":                 "Suitable Wind?",
	"wind_score":                    "Wind Score",
	"wind_final_score":              "Wind Final Score",
	"wind_comments":                 "Wind Comments",
	"tide_reading_m":                "Tide Reading (m)",
	"tide_direction":                "Tide Direction",
	"tide_suitable":                 "Tide Suitable?",
	"tide_score":                    "Tide Score",
	"tide_final_score":              "Tide Final Score",
	"tide_comments":                 "Tide Comments",
	"full_commentary":               "Full Commentary",
	"total_score":                   "TOTAL SCORE",
	"date":                          "Date",
	"time":                          "Time",
	"break":                         "Break",
	"zone":                          "Zone",
}

// recordLabelColumns is the reverse of RecordColumnLabels, built once
// at init so the two directions cannot drift.
var recordLabelColumns = func() map[string]string {
	m := make(map[string]string, len(RecordColumnLabels))
	for col, label := range RecordColumnLabels {
		m[label] = col
	}
	return m
}()

// LabelForColumn returns the display label for a records column, or the
// column name itself when the table has no entry.
func LabelForColumn(column string) string {
	if label, ok := RecordColumnLabels[column]; ok {
		return label
	}
	return column
}

// ColumnForLabel returns the records column for a display label.
func ColumnForLabel(label string) (string, bool) {
	col, ok := recordLabelColumns[label]
	return col, ok
}

// SessionFieldColumns maps inbound API field names to surf_sessions
// storage columns. The API schema predates the records schema and its
// columns are unsuffixed; the two tables are intentionally separate.
var SessionFieldColumns = map[string]string{
	"title":                "break",
	"description":          "full_commentary",
	"date":                 "date",
	"time":                 "time",
	"zone":                 "zone",
	"cost":                 "cost",
	"estimated_return":     "estimated_return",
	"swell_size_surfline":  "surfline_primary_swell_size",
	"swell_size_seabreeze": "seabreeze_swell_size",
	"swell_period":         "swell_period",
	"swell_direction":      "swell_direction",
	"swell_score":          "swell_score",
	"swell_comments":       "swell_comments",
	"wind_bearing":         "wind_bearing",
	"wind_speed":           "wind_speed",
	"wind_score":           "wind_score",
	"wind_comments":        "wind_comments",
	"tide_reading":         "tide_reading",
	"tide_direction":       "tide_direction",
	"tide_score":           "tide_score",
	"tide_comments":        "tide_comments",
}
