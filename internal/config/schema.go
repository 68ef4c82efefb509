package config

// Config describes which puzzles to run and where their inputs live.
type Config struct {
	Year     int            `yaml:"year"`
	InputDir string         `yaml:"input_dir"`
	Puzzles  []PuzzleConfig `yaml:"puzzles"`
	Almanac  AlmanacConfig  `yaml:"almanac"`
}

// PuzzleConfig selects one day. Input defaults to <input_dir>/day_<day>.
type PuzzleConfig struct {
	Day     int    `yaml:"day"`
	Enabled bool   `yaml:"enabled"`
	Input   string `yaml:"input"`
	Parts   []int  `yaml:"parts"`
}

// AlmanacConfig tunes the day 5 range resolution.
type AlmanacConfig struct {
	Workers int `yaml:"workers"`
}
