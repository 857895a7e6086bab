package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Tablas fijas del proceso: se inicializan una sola vez al arrancar.
var (
	// EmailPattern es el formato de email aceptado para clientes.
	EmailPattern = regexp.MustCompile(`^[\w.+-]+@vetsoft\.com$`)

	// MaxPrice es la cota exclusiva de un NUMERIC(12,2): 10 dígitos enteros.
	MaxPrice = decimal.New(1, 10)
)

const (
	// DateLayout es el único formato de fecha aceptado (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	MinDose = 1.0
	MaxDose = 10.0

	PriceScale = 2
)

// Fields es el input crudo de un formulario: nombre de campo -> valor.
// Una clave ausente se trata igual que un string vacío.
type Fields map[string]string

// Get devuelve el valor del campo o "" si no vino.
func (f Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}

// Has indica si el campo vino con un valor no vacío.
func (f Fields) Has(key string) bool {
	return f.Get(key) != ""
}

// Errors es el mapa campo -> mensaje de error. Vacío significa válido.
// Implementa error para poder devolverse por la misma vía que cualquier otro fallo.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("validation error (%d fields)", len(e))
	}
	return string(b)
}

// Fields devuelve los nombres de campo con error, ordenados.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// OrNil devuelve nil si no hay errores, para poder usarlo directo como error.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// IsDigits responde true si s no está vacío y todos sus caracteres son dígitos.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// HasDigit responde true si s contiene al menos un dígito.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func MatchesEmail(s string) bool {
	return EmailPattern.MatchString(s)
}

// ParseDate parsea estrictamente YYYY-MM-DD. La fecha resultante queda en UTC a medianoche.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsFuture compara solo la parte de fecha: hoy no es futuro.
func IsFuture(d, today time.Time) bool {
	return DateOnly(d).After(DateOnly(today))
}

// DateOnly trunca a la fecha de calendario (UTC medianoche) usando el huso de t.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseInt parsea un entero en base 10 tolerando espacios alrededor.
// El rango es el de una columna INTEGER (32 bits).
func ParseInt(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ParseStock devuelve el stock si s es un entero no negativo.
func ParseStock(s string) (int, bool) {
	n, err := ParseInt(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseFloat parsea un decimal en base 10 tolerando espacios alrededor.
// Un valor que desborda (1e400) no es un error de formato: vuelve como ±Inf
// (o 0) para que lo rechace el chequeo de rango.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if hasHexPrefix(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}

	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// DoseInRange incluye ambos extremos. NaN queda fuera.
func DoseInRange(d float64) bool {
	if math.IsNaN(d) {
		return false
	}
	return d >= MinDose && d <= MaxDose
}

// ParsePrice parsea un precio decimal no negativo que entre en NUMERIC(12,2):
// a lo sumo 2 decimales y menos de MaxPrice.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative price %s", d)
	}
	if !d.Equal(d.Truncate(PriceScale)) {
		return decimal.Decimal{}, fmt.Errorf("price %s has more than %d decimals", d, PriceScale)
	}
	if d.GreaterThanOrEqual(MaxPrice) {
		return decimal.Decimal{}, fmt.Errorf("price %s out of range", d)
	}
	return d, nil
}
