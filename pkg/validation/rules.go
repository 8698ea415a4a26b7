package validation

import (
	"github.com/go-playground/validator/v10"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	ExportXLSX = "xlsx"
)

// registerRules registers the tags used in struct tags across the module.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("theme", isTheme); err != nil {
		return err
	}
	if err := v.RegisterValidation("export_format", isExportFormat); err != nil {
		return err
	}
	return nil
}

func isTheme(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case ThemeDark, ThemeLight:
		return true
	}
	return false
}

func isExportFormat(fl validator.FieldLevel) bool {
	return fl.Field().String() == ExportXLSX
}
