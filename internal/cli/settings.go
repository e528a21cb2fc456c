package cli

import (
	"context"
	"os"

	"github.com/edukit/edukit/internal/models"
)

// Settings shows the current app settings and optionally toggles one.
func (a *App) Settings(ctx context.Context) error {
	s := a.repo.Settings(ctx)
	printlnFn("Theme:       ", s.Theme)
	printlnFn("Zoom disabled:", s.DisableZoom)

	choice, err := getSimpleText(a.reader, "Toggle (theme/zoom) or Enter to keep", os.Stdout)
	if err != nil {
		return err
	}

	switch choice {
	case "":
		return nil
	case "theme":
		if s.Theme == models.ThemeDark {
			s.Theme = models.ThemeLight
		} else {
			s.Theme = models.ThemeDark
		}
	case "zoom":
		s.DisableZoom = !s.DisableZoom
	default:
		printlnFn("Unknown setting:", choice)
		return nil
	}

	if err := a.repo.SaveSettings(ctx, s); err != nil {
		return err
	}
	printlnFn("Settings saved.")
	return nil
}
