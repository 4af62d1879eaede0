// Package model defines shared data structures.
package model

import "time"

// Config defines game settings resolved from flags and the config file.
type Config struct {
	Sound       bool
	NoAudio     bool
	Seed        int64
	EasyWords   string
	MediumWords string
	HardWords   string
	LogPath     string
}

// Category names a word bank difficulty bucket.
type Category string

const (
	Easy   Category = "easy"
	Medium Category = "medium"
	Hard   Category = "hard"
)

// Categories lists every category in difficulty order.
var Categories = []Category{Easy, Medium, Hard}

// LevelEntry is one row of the level table.
type LevelEntry struct {
	TimeBudget int
	Category   Category
}

// Session holds the state of a single game.
type Session struct {
	Playing           bool
	Score             int
	Level             int
	WPM               int
	CorrectKeystrokes int
	StartTime         time.Time
	TimeRemaining     int
}

// DialogKind selects which modal dialog is shown.
type DialogKind int

const (
	DialogStart DialogKind = iota
	DialogGameOver
)

// FinalStats are the figures shown when a game ends.
type FinalStats struct {
	Score int
	WPM   int
	Level int
}

// Dialog describes the modal dialog contents.
type Dialog struct {
	Kind        DialogKind
	Title       string
	Description string
	Action      string
	Final       *FinalStats
}
