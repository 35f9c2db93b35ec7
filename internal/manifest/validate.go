package manifest

import (
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	stageNames = []string{
		"vert", "tesc", "tese", "geom", "frag", "comp",
		"rgen", "rint", "rahit", "rchit", "rmiss", "rcall",
		"task", "mesh",
		"vertex", "fragment", "pixel", "compute", "geometry",
	}

	targetPattern = regexp.MustCompile(`^(none|vulkan1\.[0-3]|opengl4\.5)$`)
	spirvPattern  = regexp.MustCompile(`^(spirv|spv)?1\.[0-6]$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "stage", func(fl validator.FieldLevel) bool {
		return slices.Contains(stageNames, strings.ToLower(fl.Field().String()))
	})
	mustRegister(v, "target", func(fl validator.FieldLevel) bool {
		return targetPattern.MatchString(strings.ToLower(fl.Field().String()))
	})
	mustRegister(v, "spirv", func(fl validator.FieldLevel) bool {
		return spirvPattern.MatchString(strings.ToLower(fl.Field().String()))
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
