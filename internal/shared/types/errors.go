package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSectionNotFound = errors.New("detailed estimate section not found")
	ErrSchemaMismatch  = errors.New("estimate columns do not match any known layout")
	ErrInvalidOptions  = errors.New("invalid summary options")
)

// SectionNotFoundError indica que nenhum marcador de início da seção detalhada foi encontrado.
type SectionNotFoundError struct {
	Markers []string
}

func (e *SectionNotFoundError) Error() string {
	quoted := make([]string, len(e.Markers))
	for i, m := range e.Markers {
		quoted[i] = fmt.Sprintf("'%s'", m)
	}
	return fmt.Sprintf("section %s not found", strings.Join(quoted, " or "))
}

// Is permite errors.Is(err, ErrSectionNotFound).
func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrSectionNotFound
}

// SchemaMismatchError lista as colunas ausentes de cada variante de idioma.
type SchemaMismatchError struct {
	MissingPortuguese []string
	MissingEnglish    []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("missing columns. Portuguese: %s | English: %s",
		strings.Join(e.MissingPortuguese, ", "), strings.Join(e.MissingEnglish, ", "))
}

// Is permite errors.Is(err, ErrSchemaMismatch).
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// IsStructural reports whether err is a fatal problem with the layout of the estimate file.
func IsStructural(err error) bool {
	return errors.Is(err, ErrSectionNotFound) || errors.Is(err, ErrSchemaMismatch)
}
