package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/R1S-dev/LifeQuest/internal/engine"
	"github.com/R1S-dev/LifeQuest/internal/ui"
)

// The board polls on a coarse interval so recurring quests reset even
// while the TUI stays open overnight.
const tickInterval = 30 * time.Second

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	selected int
	lastLog  string
}

type tickMsg time.Time

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{
		svc:     svc,
		lastLog: "Loaded.",
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Init() tea.Cmd {
	return tickCmd()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.svc.DailyTick(time.Time(msg)) {
			m.lastLog = "Recurring quests reset."
		}
		m.clampSelection()
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.svc.State().Tasks)-1 {
				m.selected++
			}
		case "enter", " ":
			m = m.toggleSelected()
		case "d":
			m = m.deleteSelected()
		}
		return m, nil
	}

	return m, nil
}

func (m boardModel) toggleSelected() boardModel {
	tasks := m.svc.State().Tasks
	if m.selected < 0 || m.selected >= len(tasks) {
		return m
	}
	res := m.svc.ToggleTask(tasks[m.selected].ID)
	if res == nil {
		return m
	}

	if res.Completed {
		m.lastLog = fmt.Sprintf("%s %s (+%d XP)", ui.IconDone, res.Task.Title, res.XPDelta)
		if res.BonusXP > 0 {
			m.lastLog += fmt.Sprintf(" · %s streak %d, +%d bonus", ui.IconStreak, res.StreakAfter, res.BonusXP)
		}
	} else {
		m.lastLog = fmt.Sprintf("↩ %s (%d XP)", res.Task.Title, res.XPDelta)
	}
	if res.LevelUp {
		m.lastLog += " · " + ui.BadgeLevelUp
		m.svc.MarkLevelSeen(res.LevelAfter)
	}
	for _, a := range res.Unlocked {
		m.lastLog += fmt.Sprintf(" · %s %s %s", ui.IconTrophy, a.Icon, a.Name)
	}
	return m
}

func (m boardModel) deleteSelected() boardModel {
	tasks := m.svc.State().Tasks
	if m.selected < 0 || m.selected >= len(tasks) {
		return m
	}
	title := tasks[m.selected].Title
	if m.svc.RemoveTask(tasks[m.selected].ID) {
		m.lastLog = ui.IconTrash + " " + title
	}
	m.clampSelection()
	return m
}

func (m *boardModel) clampSelection() {
	last := len(m.svc.State().Tasks) - 1
	if m.selected > last {
		m.selected = last
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	st := m.svc.State()
	b := engine.BreakdownXP(st.TotalXP)

	var sb strings.Builder
	sb.WriteString(ui.Heading(ui.IconSparkle, st.Profile.Name))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %d  %s %s  %s %s %d\n",
		ui.Key.Render("Lvl"), b.Level,
		ui.XPBar(b.Progress, 20),
		ui.Muted.Render(fmt.Sprintf("%d/%d", b.XPIntoLevel, b.XPForThisLevel)),
		ui.Key.Render("Streak"), ui.IconStreak, st.DailyStreak))
	sb.WriteString("\n")

	if len(st.Tasks) == 0 {
		sb.WriteString(ui.Muted.Render("No quests. Add one with 'lq add'.") + "\n")
	}
	for i, t := range st.Tasks {
		line := fmt.Sprintf("%s %s %s %s",
			ui.CompletionMark(t.IsCompleted),
			ui.TypeIcon(t.Type),
			t.Title,
			ui.Muted.Render(fmt.Sprintf("+%d XP", t.XP)))
		if r := ui.RepeatLabel(t.Repeat); r != "" {
			line += " " + ui.Muted.Render(r)
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("› " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(ui.Muted.Render(m.lastLog) + "\n")
	sb.WriteString(ui.Muted.Render("enter/space toggle · d delete · j/k move · q quit") + "\n")
	return sb.String()
}
