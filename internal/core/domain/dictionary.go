package domain

// Variable documents one column of the dataset or a computed value.
type Variable struct {
	Name        string `json:"variable"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Source      string `json:"source"`
}

// VariableGroup is a titled section of the data dictionary.
type VariableGroup struct {
	Title     string     `json:"title"`
	Variables []Variable `json:"variables"`
}

const (
	sourceOriginal = "Original Data"
	sourceComputed = "Computed in-app"
)

// DataDictionary describes every variable the service reads or derives.
func DataDictionary() []VariableGroup {
	return []VariableGroup{
		{Title: "Core Metadata", Variables: []Variable{
			{"school", "University or college name", "string", sourceOriginal},
			{"conference", "Conference affiliation (e.g., Big Ten)", "string", sourceOriginal},
			{"song_name", "Fight song title", "string", sourceOriginal},
			{"writers", "Composer / lyricist names", "string", sourceOriginal},
			{"year", "Year the fight song was written", "integer", sourceOriginal},
			{"student_writer", "1 if writer was a student; 0 otherwise", "binary", sourceOriginal},
			{"official_song", "1 if officially designated as the school song; 0 otherwise", "binary", sourceOriginal},
			{"contest", "1 if selected via contest; 0 otherwise", "binary", sourceOriginal},
		}},
		{Title: "Audio Metrics", Variables: []Variable{
			{"bpm", "Tempo of the song in beats per minute", "float", sourceOriginal},
			{"sec_duration", "Song length in seconds", "float", sourceOriginal},
		}},
		{Title: "Lyrical Tropes", Variables: []Variable{
			{"fight", "Song contains the word 'fight'", "binary", sourceOriginal},
			{"number_fights", "Count of 'fight' occurrences", "integer", sourceOriginal},
			{"victory", "Mentions of victory language", "binary", sourceOriginal},
			{"win_won", "Mentions of win/won phrasing", "binary", sourceOriginal},
			{"rah", "Includes 'rah' chant", "binary", sourceOriginal},
			{"nonsense", "Contains non-lexical/cheer syllables", "binary", sourceOriginal},
			{"colors", "Calls out school colors", "binary", sourceOriginal},
			{"men", "References to 'men'", "binary", sourceOriginal},
			{"opponents", "Mentions opponents/foes", "binary", sourceOriginal},
			{"spelling", "Spells school name/initials", "binary", sourceOriginal},
			{"trope_count", "Sum of all trope flags present in lyrics", "integer", sourceOriginal},
		}},
		{Title: "Miscellaneous Variables", Variables: []Variable{
			{"spotify_id", "Spotify track identifier for the song", "string", sourceOriginal},
		}},
		{Title: "Computed Metrics", Variables: []Variable{
			{"Tempo Rank", "Rank of a song's BPM relative to Big Ten peers", "integer", sourceComputed},
			{"Duration Rank", "Rank of song length relative to Big Ten peers", "integer", sourceComputed},
			{"Year Written Rank", "Rank of composition year (older vs newer)", "integer", sourceComputed},
			{"Trope Density Rank", "Rank of trope_count relative to conference", "integer", sourceComputed},
			{"Traditionalism distance", "Euclidean distance between a song's trope flags and the conference mean", "float", sourceComputed},
			{"Battle deltas", "Head-to-head differences in tempo, duration, year, tropes", "float", sourceComputed},
		}},
	}
}
