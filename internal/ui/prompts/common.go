package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptSelect prompts for a selection from a list of options.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptConfirm prompts for yes/no confirmation.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptInput prompts for a generic text input with optional default and
// validator.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return inputVal, nil
}

// PromptInitBaseURL asks for the backend API base URL on first run.
func PromptInitBaseURL(current string) (string, error) {
	url, err := PromptInput(
		"Welcome to bankterm! Please set the backend API base URL:",
		current,
		func(s string) error {
			if strings.TrimSpace(s) == "" && current == "" {
				return errors.New("base URL is required")
			}
			return nil
		},
	)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(strings.TrimSpace(url), "/"), nil
}
