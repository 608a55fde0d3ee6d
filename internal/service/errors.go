package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by every service. Handlers map them to HTTP
// statuses with errors.Is, so wrap with fmt.Errorf("%w: ...") to add detail.
var (
	ErrValidacion     = errors.New("datos invalidos")
	ErrNoEncontrado   = errors.New("recurso no encontrado")
	ErrSinStock       = errors.New("stock insuficiente")
	ErrEstadoInvalido = errors.New("transicion de estado invalida")
)

// limpiarNombre trims surrounding whitespace before a name is persisted and
// rejects names that end up empty. The request validator already blocks blank
// names at the HTTP layer; this keeps direct service callers honest too.
func limpiarNombre(nombre string) (string, error) {
	limpio := strings.TrimSpace(nombre)
	if limpio == "" {
		return "", fmt.Errorf("%w: el nombre no puede estar vacio", ErrValidacion)
	}
	return limpio, nil
}
