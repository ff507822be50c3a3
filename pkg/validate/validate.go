package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// instancia única; validator cachea la metadata de structs y es seguro para uso concurrente.
var v = validator.New()

// Struct valida un struct contra sus tags `validate:"..."`.
// Devuelve nil si es válido.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Fields convierte un error de validación en un mapa campo → regla incumplida,
// listo para serializar en la respuesta HTTP.
func Fields(err error) map[string]string {
	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = err.Error()
		return out
	}
	for _, ve := range verrs {
		out[strings.ToLower(ve.Field())] = ve.Tag()
	}
	return out
}
