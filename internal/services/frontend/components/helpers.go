package components

import (
	"html/template"
	"strings"

	"github.com/a-h/templ"

	"github.com/aliuygur/consoleui/internal/badge"
	"github.com/aliuygur/consoleui/internal/datefmt"
)

const badgeBase = "inline-block px-3 py-1 rounded-full text-xs font-medium"

// FuncMap exposes the display helpers to html/template pages.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"stripProtocol":        stripProtocol,
		"formatDate":           formatDate,
		"levelBadgeClass":      badge.LevelBadgeClass,
		"levelColorClasses":    badge.LevelColorClasses,
		"levelSolidBadgeClass": badge.LevelSolidBadgeClass,
		"statusBadgeClass":     badge.StatusBadgeClass,
		"resourceColorClass":   badge.ResourceColorClass,
		"formatDateTime":       datefmt.FormatDateTime,
		"formatTimestamp":      datefmt.FormatTimestamp,
		"relativeTime":         datefmt.RelativeTime,
	}
}

// LevelBadge returns the pill classes for a log level badge in templ components.
func LevelBadge(level string) templ.CSSClasses {
	return templ.Classes(badgeBase, badge.LevelColorClasses(level))
}

// StatusBadge returns the pill classes for a lifecycle status badge.
func StatusBadge(status string) templ.CSSClasses {
	return templ.Classes(badgeBase, badge.StatusBadgeClass(status))
}

// ResourceBadge returns the pill classes for a resource kind badge.
func ResourceBadge(kind string) templ.CSSClasses {
	return templ.Classes(badgeBase, badge.ResourceColorClass(kind))
}

// Helper functions for templates
func stripProtocol(url string) string {
	return strings.Replace(url, "https://", "", 1)
}

func formatDate(dateStr string) string {
	t, err := datefmt.Parse(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("January 2, 2006")
}
