package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/R1S-dev/LifeQuest/internal/engine"
)

// LifeQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest   = "🗺️"
	IconSide    = "🧭"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconStreak  = "🔥"
	IconJournal = "📓"
	IconBell    = "🔔"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLoop    = "🔁"
	IconTrash   = "🗑️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPBar renders a progress bar for the current level band.
func XPBar(progress float64, width int) string {
	if width < 4 {
		width = 4
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return Gold.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

func TypeIcon(t engine.TaskType) string {
	if t == engine.TaskTypeSide {
		return IconSide
	}
	return IconQuest
}

func RepeatLabel(r engine.Repeat) string {
	switch r {
	case engine.RepeatDaily:
		return IconLoop + " daily"
	case engine.RepeatWeekly:
		return IconLoop + " weekly"
	default:
		return ""
	}
}

func DifficultyText(d engine.Difficulty) string {
	switch d {
	case engine.DifficultyHard:
		return Bad.Render("hard")
	case engine.DifficultyMedium:
		return Warn.Render("medium")
	default:
		return Good.Render("easy")
	}
}

func MoodIcon(m engine.Mood) string {
	switch m {
	case engine.MoodHappy:
		return "😊"
	case engine.MoodCalm:
		return "🍃"
	case engine.MoodExcited:
		return "✨"
	case engine.MoodStressed:
		return "⚠️"
	case engine.MoodSad:
		return "😞"
	default:
		return "•"
	}
}

func CompletionMark(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// ShortID trims a quest/journal id for display and prefix matching.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
