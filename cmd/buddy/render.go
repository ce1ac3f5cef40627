package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rezaimia/buddypocket/internal/catalog"
	"github.com/rezaimia/buddypocket/internal/engine"
	"github.com/rezaimia/buddypocket/internal/pet"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(11)

	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	barLowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func moodWord(mood int) string {
	switch mood {
	case 5:
		return "ecstatic"
	case 4:
		return "happy"
	case 3:
		return "okay"
	case 2:
		return "glum"
	default:
		return "miserable"
	}
}

// needBar renders a ten-cell gauge for one need.
func needBar(v float64) string {
	const cells = 10
	filled := int(v*cells + 0.5)
	if filled > cells {
		filled = cells
	}
	fill := barFullStyle
	if v < pet.CriticalThreshold {
		fill = barLowStyle
	}
	return fill.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", cells-filled))
}

func renderStatus(st *engine.State, reg *catalog.Registry) string {
	b := st.Buddy

	body := b.BodyType
	if bd, ok := reg.Body(b.BodyType); ok {
		body = bd.Emoji + " " + bd.Name
	}

	var lines []string
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s %s", b.MoodEmoji(), b.Name))+
		dimStyle.Render(fmt.Sprintf("  lv%d · %s", b.Level, body)))
	lines = append(lines, "")
	for _, n := range pet.NeedOrder {
		lines = append(lines, labelStyle.Render(string(n))+needBar(b.NeedValue(n)))
	}
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("xp")+
		fmt.Sprintf("%d / %d", b.XP, b.XPForNextLevel()))
	lines = append(lines, labelStyle.Render("wallet")+
		fmt.Sprintf("%d🪙  %d💎", b.Coins, b.Gems))
	lines = append(lines, labelStyle.Render("streak")+
		fmt.Sprintf("🔥 %d day(s)", b.StreakDays))
	if n, critical := b.CriticalStat(); critical {
		lines = append(lines, "")
		lines = append(lines, barLowStyle.Render(fmt.Sprintf("⚠️  %s needs attention!", n)))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderShop(st *engine.State, reg *catalog.Registry) string {
	w := st.Shop
	b := st.Buddy

	var lines []string
	lines = append(lines, titleStyle.Render(fmt.Sprintf("🛍️  Weekly shop · %s", w.WeekID)))
	lines = append(lines, dimStyle.Render(fmt.Sprintf("resets %s", w.ResetAt.Format("Mon Jan 2"))))
	lines = append(lines, "")
	for i, s := range w.Slots {
		it, ok := reg.Item(s.ItemID)
		if !ok {
			continue
		}
		price := fmt.Sprintf("%d💎", s.FinalPrice(it.Price))
		switch {
		case s.Purchased:
			price = dimStyle.Render("sold")
		case w.FreeFor(s, b.StreakDays):
			price = barFullStyle.Render("FREE")
		case s.Discount > 0:
			price = fmt.Sprintf("%s %s", dimStyle.Render(fmt.Sprintf("-%d%%", s.Discount)), price)
		}
		lines = append(lines, fmt.Sprintf("%d. %s %-22s %s", i+1, it.Emoji, it.Name, price))
	}
	if b.StreakDays < 5 {
		lines = append(lines, "")
		lines = append(lines, dimStyle.Render("reach a 5-day streak to claim slot 1 free"))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderPass(st *engine.State) string {
	p := st.Pass

	track := "free track"
	if p.Premium {
		track = "premium track"
	}
	var lines []string
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s %s season", p.Emoji, p.Name))+
		dimStyle.Render("  "+track))
	lines = append(lines, fmt.Sprintf("tier %d · %d / %d xp · ends %s",
		p.Level, p.XP, p.XPForNextLevel(), p.EndAt.Format("Jan 2")))
	lines = append(lines, "")
	for _, r := range p.Rewards {
		marker := " "
		switch {
		case r.Claimed:
			marker = "x"
		case p.Level >= r.Level:
			marker = "!"
		}
		lock := ""
		if r.PremiumOnly {
			lock = " 🔒"
		}
		lines = append(lines, fmt.Sprintf("[%s] %2d %s %s%s", marker, r.Level, r.Emoji, r.Name, lock))
	}
	lines = append(lines, "")
	lines = append(lines, dimStyle.Render("[!] ready to claim — buddy pass claim <level>"))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
