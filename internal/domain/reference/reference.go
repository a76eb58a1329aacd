// Package reference genera y valida los números de referencia legibles de los registros
// transaccionales: <PREFIJO>-<AÑO>-<SECUENCIA>, p. ej. SR-2026-0007.
package reference

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tipo de registro; determina el prefijo del número de referencia.
type Kind string

const (
	KindBreeding  Kind = "breeding"
	KindHealth    Kind = "health"
	KindExpense   Kind = "expense"
	KindSale      Kind = "sale"
	KindInventory Kind = "inventory"
)

// seqWidth ancho mínimo de la secuencia; valores mayores no se truncan.
const seqWidth = 4

var prefixes = map[Kind]string{
	KindBreeding:  "BR",
	KindHealth:    "HR",
	KindExpense:   "EXP",
	KindSale:      "SR",
	KindInventory: "INV",
}

// Kinds devuelve todos los tipos de registro en orden estable.
func Kinds() []Kind {
	return []Kind{KindBreeding, KindHealth, KindExpense, KindSale, KindInventory}
}

// Prefix devuelve el prefijo del tipo, o "" si el tipo no existe.
func (k Kind) Prefix() string {
	return prefixes[k]
}

// Valid indica si el tipo es conocido.
func (k Kind) Valid() bool {
	_, ok := prefixes[k]
	return ok
}

// KindFromPrefix resuelve el tipo a partir de su prefijo (BR, HR, EXP, SR, INV).
func KindFromPrefix(prefix string) (Kind, bool) {
	for k, p := range prefixes {
		if p == prefix {
			return k, true
		}
	}
	return "", false
}

// ParseKind acepta el nombre del tipo ("sale") o su prefijo ("SR").
func ParseKind(s string) (Kind, error) {
	if k := Kind(strings.ToLower(strings.TrimSpace(s))); k.Valid() {
		return k, nil
	}
	if k, ok := KindFromPrefix(strings.ToUpper(strings.TrimSpace(s))); ok {
		return k, nil
	}
	return "", fmt.Errorf("reference: tipo desconocido %q", s)
}

// Format construye PREFIJO-AÑO-SECUENCIA con la secuencia rellenada a 4 dígitos.
func Format(kind Kind, year int, seq int64) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("reference: tipo desconocido %q", kind)
	}
	if year < 1000 || year > 9999 {
		return "", fmt.Errorf("reference: año fuera de rango %d", year)
	}
	if seq < 1 {
		return "", fmt.Errorf("reference: secuencia debe ser >= 1, recibida %d", seq)
	}
	return fmt.Sprintf("%s-%04d-%0*d", kind.Prefix(), year, seqWidth, seq), nil
}

// Next devuelve la referencia siguiente dado el número de registros existentes del tipo: SEQ = count + 1.
func Next(kind Kind, count int64, year int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("reference: conteo negativo %d", count)
	}
	return Format(kind, year, count+1)
}

// Parsed componentes de un número de referencia.
type Parsed struct {
	Kind Kind
	Year int
	Seq  int64
}

// Parse descompone un número de referencia. Es el inverso de Format.
func Parse(ref string) (Parsed, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 3 {
		return Parsed{}, fmt.Errorf("reference: formato inválido %q", ref)
	}
	kind, ok := KindFromPrefix(parts[0])
	if !ok {
		return Parsed{}, fmt.Errorf("reference: prefijo desconocido %q", parts[0])
	}
	if len(parts[1]) != 4 {
		return Parsed{}, fmt.Errorf("reference: año inválido %q", parts[1])
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return Parsed{}, fmt.Errorf("reference: año inválido %q", parts[1])
	}
	if len(parts[2]) < seqWidth {
		return Parsed{}, fmt.Errorf("reference: secuencia inválida %q", parts[2])
	}
	seq, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || seq < 1 {
		return Parsed{}, fmt.Errorf("reference: secuencia inválida %q", parts[2])
	}
	return Parsed{Kind: kind, Year: year, Seq: seq}, nil
}
