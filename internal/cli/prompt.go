package cli

import (
	"github.com/charmbracelet/huh"

	"admin-dashboard/internal/form"
)

// Interactive prompts, replaced in tests.
var (
	promptFields  = huhPrompt
	confirmDelete = huhConfirm
)

// huhPrompt asks for every field, starting from values, and writes the
// answers back into values.
func huhPrompt(title string, fields []form.Field, values form.Values) error {
	bound := make([]*string, len(fields))
	inputs := make([]huh.Field, 0, len(fields))
	for i, f := range fields {
		v := values[f.Name]
		bound[i] = &v
		if len(f.Options) > 0 {
			inputs = append(inputs, huh.NewSelect[string]().
				Title(f.Label).
				Options(huh.NewOptions(f.Options...)...).
				Value(bound[i]))
			continue
		}
		input := huh.NewInput().
			Title(f.Label).
			Value(bound[i])
		if f.Secret {
			input = input.EchoMode(huh.EchoModePassword)
		}
		inputs = append(inputs, input)
	}

	if err := huh.NewForm(huh.NewGroup(inputs...).Title(title)).Run(); err != nil {
		return err
	}
	for i, f := range fields {
		values[f.Name] = *bound[i]
	}
	return nil
}

func huhConfirm(prompt string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Sí").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}
