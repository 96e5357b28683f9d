package content

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/ajeetyadav1111/termfolio/internal/model"
)

// Load reads a content TOML file and overlays it on the defaults. Sections
// missing from the file keep their default values. An empty path returns the
// defaults.
func Load(path string) (model.Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return model.Content{}, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only content file.
			_ = cerr
		}
	}()
	parsed := model.Content{Profile: c.Profile}
	meta, err := toml.NewDecoder(file).Decode(&parsed)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to decode content: %w", err)
	}
	c.Profile = parsed.Profile
	if meta.IsDefined("phrases") {
		c.Phrases = parsed.Phrases
	}
	if meta.IsDefined("nav") {
		c.Nav = parsed.Nav
	}
	if meta.IsDefined("skills") {
		c.Skills = parsed.Skills
	}
	if meta.IsDefined("projects") {
		c.Projects = parsed.Projects
	}
	if meta.IsDefined("socials") {
		c.Socials = parsed.Socials
	}
	c = Normalize(c)
	if err := Validate(c); err != nil {
		return model.Content{}, err
	}
	return c, nil
}

// Write encodes content as TOML.
func Write(w io.Writer, c model.Content) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}
	return nil
}

// Normalize trims whitespace and drops blank entries.
func Normalize(c model.Content) model.Content {
	c.Phrases = lo.Filter(lo.Map(c.Phrases, trim), notBlank)
	c.Nav = lo.Filter(lo.Map(c.Nav, trim), notBlank)
	c.Skills = lo.Filter(c.Skills, func(s model.Skill, _ int) bool {
		return strings.TrimSpace(s.Name) != ""
	})
	c.Projects = lo.Map(c.Projects, func(p model.Project, _ int) model.Project {
		p.Tech = lo.Uniq(lo.Filter(lo.Map(p.Tech, trim), notBlank))
		p.Link = strings.TrimSpace(p.Link)
		if p.Link == "" {
			p.Link = "#"
		}
		return p
	})
	c.Profile.Email = strings.TrimSpace(c.Profile.Email)
	return c
}

// Validate rejects content that cannot be rendered meaningfully. Empty lists
// are allowed; the affected section renders without entries.
func Validate(c model.Content) error {
	for _, s := range c.Skills {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("skill %q: level must be between 0 and 100", s.Name)
		}
	}
	for _, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project title must not be empty")
		}
	}
	return nil
}

func trim(s string, _ int) string {
	return strings.TrimSpace(s)
}

func notBlank(s string, _ int) bool {
	return s != ""
}
