package api

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"unitengine/internal/models"
	"unitengine/internal/quantity"
	"unitengine/internal/units"
)

// JSONSerializer plugs goccy/go-json into echo's Bind and JSON.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("unmarshal type error: expected=%v, got=%v, field=%v, offset=%v", typeErr.Type, typeErr.Value, typeErr.Field, typeErr.Offset)).SetInternal(err)
	case errors.As(err, &syntaxErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("syntax error: offset=%v, error=%v", syntaxErr.Offset, syntaxErr.Error())).SetInternal(err)
	}
	return err
}

// toUnits maps request terms onto quantity.Units. A missing denominator
// means 1. Zero powers are kept so the registry still checks their names.
func toUnits(terms []models.Term) (quantity.Units, error) {
	out := make([]units.Term, len(terms))
	for i, t := range terms {
		if t.Name == "" {
			return quantity.Units{}, fmt.Errorf("term %d has no name: %w", i, units.ErrSchema)
		}
		denom := int64(1)
		if d := t.Power.Denom; d != nil {
			if *d == 0 {
				return quantity.Units{}, fmt.Errorf("term %d (%s) has a zero denominator: %w", i, t.Name, units.ErrSchema)
			}
			denom = *d
		}
		out[i] = units.Term{Name: t.Name, Power: big.NewRat(t.Power.Numer, denom)}
	}
	return quantity.NewUnits(out...), nil
}

func fromUnits(u quantity.Units) []models.Term {
	out := make([]models.Term, len(u.Terms))
	for i, t := range u.Terms {
		out[i] = models.Term{Name: t.Name, Power: power(t.Power)}
	}
	return out
}

func power(p *big.Rat) models.Power {
	out := models.Power{Numer: p.Num().Int64()}
	if !p.IsInt() {
		d := p.Denom().Int64()
		out.Denom = &d
	}
	return out
}

func unitInfo(u units.Unit) models.UnitInfo {
	info := models.UnitInfo{Name: u.Name(), Dimension: u.Dimension().String()}
	if c := u.Conversion; c != nil {
		info.Base = c.Base.Name()
		info.Factor = c.Factor
		info.Offset = c.Offset
	}
	return info
}

func dimensionInfo(d units.Dimension) models.DimensionInfo {
	info := models.DimensionInfo{Name: d.Name, Terms: make([]models.Term, len(d.Terms))}
	for i, t := range d.Terms {
		info.Terms[i] = models.Term{Name: t.Name, Power: power(t.Power)}
	}
	return info
}
