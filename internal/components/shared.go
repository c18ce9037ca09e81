package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(name string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(
			Class("inline-flex items-center justify-center size-8 rounded-box bg-primary text-primary-content font-black"),
			g.Text(initials(name)),
		),
		Span(
			Class("font-bold text-xl"),
			g.Text(name),
		),
	)
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-10 rounded-box bg-%s/10 border border-%s/20 transition-colors", color, color)
	sizeClass := fmt.Sprintf("text-%s size-5", color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify %s", sizeClass)),
			g.Attr("data-icon", convertIconName(icon)),
			g.Attr("aria-hidden", "true"),
		),
	)
}

// Tooltip shows text above its trigger on hover or keyboard focus.
// Visibility is pure CSS; the text is always in the document.
func Tooltip(text string, trigger ...g.Node) g.Node {
	return Span(
		Class("tooltip-anchor group relative inline-block"),
		g.Attr("tabindex", "0"),
		g.Group(trigger),
		Span(
			Class("tooltip-bubble pointer-events-none absolute bottom-full left-1/2 z-[60] mb-2 -translate-x-1/2 w-72 rounded-lg bg-neutral px-4 py-3 text-xs text-neutral-content opacity-0 transition-opacity duration-200 group-hover:opacity-100 group-focus:opacity-100 shadow-xl leading-relaxed"),
			g.Attr("role", "tooltip"),
			g.Text(text),
		),
	)
}

// SectionHeading is the centered title block that opens each landing section.
func SectionHeading(id, icon, title, subtitle string) g.Node {
	return Div(
		Class("text-center"),
		IconBadge(icon, "primary"),
		H2(
			g.If(id != "", ID(id)),
			Class("mt-4 font-semibold text-2xl sm:text-3xl scroll-mt-24"),
			g.Text(title),
		),
		g.If(subtitle != "", P(
			Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
			g.Text(subtitle),
		)),
	)
}
