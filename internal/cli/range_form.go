package cli

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pe51k/tagtally/internal/cli/formatter"
	"github.com/pe51k/tagtally/internal/repository"
	"github.com/pe51k/tagtally/internal/service"
)

// promptDateRange opens a two-field form for the report range. Fields are
// prefilled from the flags when set, otherwise from the store's data range
// so the default form covers everything on record.
func promptDateRange(app *App, from, to string) (service.RangeFilter, error) {
	if from == "" || to == "" {
		first, last, err := app.Reports.DataRange(context.Background())
		switch {
		case errors.Is(err, repository.ErrNoRecords):
			// leave the fields empty
		case err != nil:
			return service.RangeFilter{}, err
		default:
			if from == "" {
				from = first.In(app.Loc()).Format(dateLayout)
			}
			if to == "" {
				to = last.In(app.Loc()).Format(dateLayout)
			}
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			dateField("From (YYYY-MM-DD, blank for open)", &from),
			dateField("To (YYYY-MM-DD, blank for open)", &to),
		),
	).WithTheme(tagtallyHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return service.RangeFilter{}, err
	}
	return parseRange(from, to, app.Loc())
}

func dateField(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2024-01-08").
		Value(value).
		Validate(validateOptionalDate)
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return errors.New("expected YYYY-MM-DD")
	}
	return nil
}

// tagtallyHuhTheme matches the form accents to the report palette.
func tagtallyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = formatter.StyleHeader
	t.Focused.TextInput.Prompt = formatter.StyleGreen
	t.Blurred.Title = formatter.StyleDim
	return t
}
