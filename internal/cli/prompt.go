package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tacogips/liscaf/internal/app"
	"github.com/tacogips/liscaf/internal/source"
)

// Prompter asks the user for input.
type Prompter interface {
	Confirm(message string, def bool) (bool, error)
	Input(message, help string, validate survey.Validator) (string, error)
	Select(message string, options []string) (int, error)
}

// surveyPrompter implements Prompter on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var ok bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &ok); err != nil {
		return false, promptError(err)
	}
	return ok, nil
}

func (surveyPrompter) Input(message, help string, validate survey.Validator) (string, error) {
	var result string
	opts := []survey.AskOpt{survey.WithValidator(survey.Required)}
	if validate != nil {
		opts = append(opts, survey.WithValidator(validate))
	}
	if err := survey.AskOne(&survey.Input{Message: message, Help: help}, &result, opts...); err != nil {
		return "", promptError(err)
	}
	return strings.TrimSpace(result), nil
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	var idx int
	if err := survey.AskOne(&survey.Select{Message: message, Options: options}, &idx); err != nil {
		return 0, promptError(err)
	}
	return idx, nil
}

// errAborted is returned when the user cancels a prompt or declines to proceed.
var errAborted = errors.New("aborted by user")

func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// scaffoldInputs are the values the user confirms before a run.
type scaffoldInputs struct {
	NewName      string
	RepoURL      string
	TemplateBase string
}

// manifestLoader lists templates for selection when no repo URL is given.
type manifestLoader func() ([]source.ManifestEntry, error)

// resolveInputs confirms or replaces each value. Non-interactive runs accept
// the values as given; a missing repo URL is then an error.
func resolveInputs(p Prompter, in scaffoldInputs, interactive bool, manifest manifestLoader) (scaffoldInputs, error) {
	if interactive {
		keep, err := p.Confirm(fmt.Sprintf("Use new project name '%s'?", in.NewName), true)
		if err != nil {
			return in, err
		}
		if !keep {
			if in.NewName, err = p.Input("Enter new project name:", "e.g. my-cool-app", validateProjectName); err != nil {
				return in, err
			}
		}
	}

	switch {
	case in.RepoURL == "" && manifest != nil:
		entries, err := manifest()
		if err != nil {
			return in, err
		}
		if !interactive {
			return in, app.NewValidationError(
				fmt.Sprintf("repo URL must be provided when running non-interactively (manifest lists %d templates)", len(entries)), nil)
		}
		options := make([]string, len(entries))
		for i, e := range entries {
			options[i] = e.Label
			if e.Label != e.URL {
				options[i] = fmt.Sprintf("%s (%s)", e.Label, e.URL)
			}
		}
		idx, err := p.Select("Choose a template:", options)
		if err != nil {
			return in, err
		}
		in.RepoURL = entries[idx].URL

	case in.RepoURL == "":
		if !interactive {
			return in, app.NewValidationError("repo URL must be provided when running non-interactively", nil)
		}
		url, err := p.Input("Enter repository URL:", "e.g. https://github.com/owner/repo or owner/repo", validateRepoURL)
		if err != nil {
			return in, err
		}
		in.RepoURL = url

	case interactive:
		keep, err := p.Confirm(fmt.Sprintf("Use repo URL '%s' ?", in.RepoURL), true)
		if err != nil {
			return in, err
		}
		if !keep {
			if in.RepoURL, err = p.Input("Enter repository URL:", "e.g. https://github.com/owner/repo or owner/repo", validateRepoURL); err != nil {
				return in, err
			}
		}
	}

	if interactive {
		keep, err := p.Confirm(fmt.Sprintf("Replace occurrences of '%s' ?", in.TemplateBase), true)
		if err != nil {
			return in, err
		}
		if !keep {
			if in.TemplateBase, err = p.Input("Enter template base name to replace:", "e.g. acme-app", validateProjectName); err != nil {
				return in, err
			}
		}
	}

	return in, nil
}

// confirmProceed asks for the final go-ahead.
func confirmProceed(p Prompter, in scaffoldInputs) error {
	ok, err := p.Confirm(fmt.Sprintf("Proceed to scaffold '%s'\nfrom '%s' replacing '%s' ?",
		in.NewName, in.RepoURL, in.TemplateBase), true)
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}
	return nil
}

// validateProjectName requires at least one letter or digit and no path
// separators.
func validateProjectName(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	s = strings.TrimSpace(s)
	if !strings.ContainsFunc(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }) {
		return fmt.Errorf("name must contain letters or digits")
	}
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("name must not contain path separators")
	}
	return nil
}

func validateRepoURL(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	return source.ValidateRepoURL(source.NormalizeRepoURL(s))
}
