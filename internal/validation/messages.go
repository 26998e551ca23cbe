package validation

import "fmt"

// Messages shared with services that run checks needing the database.

func Required(label string) string {
	return fmt.Sprintf("El campo %s es obligatorio.", label)
}

func Taken(label string) string {
	return fmt.Sprintf("El %s ya ha sido registrado.", label)
}

func Invalid(label string) string {
	return fmt.Sprintf("El %s seleccionado no es válido.", label)
}

func Between(label string, min, max int) string {
	return fmt.Sprintf("El campo %s debe estar entre %d y %d.", label, min, max)
}

func NotAllowed(label string) string {
	return fmt.Sprintf("El campo %s no está permitido para esta configuración.", label)
}
