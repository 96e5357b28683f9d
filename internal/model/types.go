// Package model defines shared data structures.
package model

import "time"

// Config defines runtime UI settings.
type Config struct {
	TypingSpeed     time.Duration
	ScrollThreshold int
	RevealThreshold float64
	Mouse           bool
	AvatarPath      string
	ContentPath     string
}

// Profile describes the portfolio owner.
type Profile struct {
	Name      string `toml:"name"`
	Initials  string `toml:"initials"`
	Label     string `toml:"label"`
	Badge     string `toml:"badge"`
	Summary   string `toml:"summary"`
	Email     string `toml:"email"`
	Footer    string `toml:"footer"`
	Available string `toml:"available"`
}

// Skill is one entry of the skills showcase.
type Skill struct {
	Name  string `toml:"name"`
	Icon  string `toml:"icon"`
	Color string `toml:"color"`
	Level int    `toml:"level"`
}

// Project is one card of the project gallery.
type Project struct {
	Title string   `toml:"title"`
	Desc  string   `toml:"desc"`
	Tech  []string `toml:"tech"`
	Color string   `toml:"color"`
	Icon  string   `toml:"icon"`
	Link  string   `toml:"link"`
}

// HasLink reports whether the project points anywhere.
func (p Project) HasLink() bool {
	return p.Link != "" && p.Link != "#"
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
	Icon  string `toml:"icon"`
}

// Content is the static data rendered by the page.
type Content struct {
	Profile  Profile      `toml:"profile"`
	Phrases  []string     `toml:"phrases"`
	Nav      []string     `toml:"nav"`
	Skills   []Skill      `toml:"skills"`
	Projects []Project    `toml:"projects"`
	Socials  []SocialLink `toml:"socials"`
}
