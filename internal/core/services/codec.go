package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/logger"
)

// Record field names of the persisted and seed formats.
const (
	fieldName     = "nombre"
	fieldPrice    = "precio"
	fieldQuantity = "cantidad"
)

// record is the wire shape of a single service.
type record struct {
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
}

// EncodeServices serialises services as a JSON array of records.
// An empty collection encodes as [].
func EncodeServices(services []domain.Service) ([]byte, error) {
	records := make([]record, len(services))
	for i, s := range services {
		records[i] = record{Nombre: s.Name, Precio: s.UnitPrice, Cantidad: s.Quantity}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding services: %w", err)
	}
	return data, nil
}

// DecodeServices parses a JSON array of records.
//
// Each field is checked for presence and type. Missing or mistyped
// fields fall back to their zero value, numeric strings are accepted
// for price and quantity, and a fractional quantity is truncated
// toward zero. Array elements that are not objects are skipped.
// Returns domain.ErrMalformedData if data is not a JSON array.
func DecodeServices(data []byte) ([]domain.Service, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", domain.ErrMalformedData)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array", domain.ErrMalformedData)
	}

	services := make([]domain.Service, 0)
	index := 0
	root.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			logger.Warn("Skipping record %d: not an object", index)
		} else {
			services = append(services, decodeRecord(index, value))
		}
		index++
		return true
	})

	return services, nil
}

func decodeRecord(index int, rec gjson.Result) domain.Service {
	var s domain.Service

	name := rec.Get(fieldName)
	if name.Type == gjson.String {
		s.Name = name.Str
	} else {
		logger.Warn("Record %d: %q missing or not a string", index, fieldName)
	}

	price, ok := numberField(rec.Get(fieldPrice))
	if !ok {
		logger.Warn("Record %d: %q missing, not a number or out of range, using 0", index, fieldPrice)
	}
	s.UnitPrice = price

	quantity, ok := intField(rec.Get(fieldQuantity))
	if !ok {
		logger.Warn("Record %d: %q missing, not a number or out of range, using 0", index, fieldQuantity)
	}
	s.Quantity = quantity

	return s
}

// numberField reads a finite JSON number or numeric string.
// gjson parses overflowing literals such as 1e400 as ±Inf.
func numberField(v gjson.Result) (float64, bool) {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// intField reads a number truncated toward zero. Values that do not
// fit in an int are rejected rather than wrapped.
func intField(v gjson.Result) (int, bool) {
	f, ok := numberField(v)
	if !ok {
		return 0, false
	}
	f = math.Trunc(f)
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
