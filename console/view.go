package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	statLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	statValue     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6adc8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89b4fa")).Padding(0, 1)
	statBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginRight(1)
)

const rowFormat = "%-20s %-28s %-16s %-9s %10s"

func (m Model) View() string {
	if m.detail != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderDetail())
	}

	sections := []string{
		titleStyle.Render("Customers"),
		m.renderStats(),
		m.renderFilter(),
		m.renderTable(),
	}
	if m.err != nil {
		msg := m.err.Error()
		if notFound(m.err) {
			msg = "Customer no longer exists"
		}
		sections = append(sections, errorStyle.Render(msg))
	}
	if m.status != "" {
		sections = append(sections, statLabel.Render(m.status))
	}
	sections = append(sections, footerStyle.Render("/ search · s status · enter details · e export · q quit"))
	return strings.Join(sections, "\n")
}

func (m Model) renderStats() string {
	box := func(label, value string) string {
		return statBoxStyle.Render(statLabel.Render(label) + "\n" + statValue.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Total customers", fmt.Sprint(m.stats.TotalCustomers)),
		box("Active", fmt.Sprint(m.stats.ActiveCustomers)),
		box("Revenue", formatAmount(m.stats.TotalRevenue)),
		box("Avg. spend", formatAverage(m.stats.AverageSpend)),
	)
}

func (m Model) renderFilter() string {
	term := m.filter.Term
	if m.mode == modeSearch {
		term += "▏"
	} else if term == "" {
		term = statLabel.Render("(press / to search name, email or mobile)")
	}
	return fmt.Sprintf("Search: %s   Status: %s", term, statValue.Render(m.filter.Status))
}

func (m Model) renderTable() string {
	lines := []string{headerStyle.Render(fmt.Sprintf(rowFormat, "Name", "Email", "Mobile", "Status", "Spent"))}
	if len(m.customers) == 0 {
		lines = append(lines, statLabel.Render("No customers match the current filters"))
		return strings.Join(lines, "\n")
	}
	for i, c := range m.customers {
		row := fmt.Sprintf(rowFormat,
			truncate(c.Name, 20),
			truncate(c.Email, 28),
			truncate(c.Mobile, 16),
			c.Status,
			formatAmount(c.TotalSpent),
		)
		switch {
		case i == m.cursor:
			row = selectedStyle.Render(row)
		case c.Status == "active":
			row = activeStyle.Render(row)
		default:
			row = inactiveStyle.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	d := m.detail
	c := d.Customer
	field := func(label, value string) string {
		return statLabel.Render(fmt.Sprintf("%-14s", label)) + value
	}
	lines := []string{
		titleStyle.Render(c.Name),
		field("Email", c.Email),
		field("Mobile", c.Mobile),
		field("City", c.City),
		field("Status", c.Status),
		field("Joined", formatDate(c.JoinedAt)),
		field("Last activity", formatDate(c.LastActivity)),
		field("Total spent", formatAmount(c.TotalSpent)),
		"",
		headerStyle.Render("Services"),
		field("Sarthi", fmt.Sprint(d.Services.SarthiBookings)),
		field("Brahma", fmt.Sprint(d.Services.BrahmaBookings)),
		field("Kavach", fmt.Sprint(d.Services.KavachOrders)),
		"",
		statLabel.Render("esc close"),
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}
