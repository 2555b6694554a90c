package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitengine/internal/engine"
	"unitengine/internal/models"
	"unitengine/internal/quantity"
	"unitengine/internal/units/catalog"
)

func newTestServer() (*echo.Echo, *Handler) {
	e := echo.New()
	e.JSONSerializer = JSONSerializer{}
	h := NewHandler(engine.New(catalog.New(), 2), NewMetrics())
	h.RegisterRoutes(e)
	return e, h
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func testStore() *engine.Store {
	return engine.NewStore(
		&engine.Column{Name: "distance", Values: []float64{1, math.NaN(), 3}, Unit: quantity.Of("kilometer")},
		&engine.Column{Name: "ratio", Values: []float64{0.5, 0.25, 0.25}},
	)
}

func TestHealth(t *testing.T) {
	e, h := newTestServer()

	var health models.Health
	rec := do(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &health)
	assert.Equal(t, "loading", health.Status)
	assert.Greater(t, health.Units, 400)

	h.SetData(testStore())
	rec = do(e, http.MethodGet, "/api/health", "")
	decode(t, rec, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 2, health.Columns)
	assert.Equal(t, 3, health.Rows)
}

func TestUnits(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodGet, "/api/units?limit=5&offset=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Data   []models.UnitInfo `json:"data"`
		Total  int               `json:"total"`
		Limit  int               `json:"limit"`
		Offset int               `json:"offset"`
	}
	decode(t, rec, &page)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 10, page.Offset)
	assert.Greater(t, page.Total, 400)

	rec = do(e, http.MethodGet, "/api/units/foot", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var foot models.UnitInfo
	decode(t, rec, &foot)
	assert.Equal(t, "meter", foot.Base)
	assert.InDelta(t, 0.3048, foot.Factor, 1e-12)

	rec = do(e, http.MethodGet, "/api/units/degree_Celsius", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var celsius models.UnitInfo
	decode(t, rec, &celsius)
	require.NotNil(t, celsius.Offset)
	assert.Equal(t, 273.15, *celsius.Offset)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/units/smoot", "").Code)
}

func TestDimensions(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodGet, "/api/dimensions/%5Bvelocity%5D", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var dim models.DimensionInfo
	decode(t, rec, &dim)
	assert.Equal(t, "[velocity]", dim.Name)
	assert.ElementsMatch(t, []models.Term{
		{Name: "length", Power: models.Power{Numer: 1}},
		{Name: "time", Power: models.Power{Numer: -1}},
	}, dim.Terms)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/dimensions/%5Bcharm%5D", "").Code)
}

func TestConvertByName(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodGet, "/api/convert?from=kilometer&to=meter&value=2.5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res models.ConversionResult
	decode(t, rec, &res)
	assert.Equal(t, 1000.0, res.Factor)
	assert.Equal(t, 2500.0, res.Result)

	testCases := []struct {
		name   string
		target string
		status int
	}{
		{"dimension mismatch", "/api/convert?from=meter&to=second", http.StatusBadRequest},
		{"offset", "/api/convert?from=degree_Celsius&to=kelvin", http.StatusUnprocessableEntity},
		{"incompatible base", "/api/convert?from=radian&to=count", http.StatusUnprocessableEntity},
		{"unknown unit", "/api/convert?from=smoot&to=meter", http.StatusNotFound},
		{"missing to", "/api/convert?from=meter", http.StatusBadRequest},
		{"bad value", "/api/convert?from=meter&to=foot&value=lots", http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, do(e, http.MethodGet, tc.target, "").Code)
		})
	}
}

const (
	kmPerHour = `[{"name":"kilometer","power":{"numer":1}},{"name":"hour","power":{"numer":-1}}]`
	mPerS     = `[{"name":"meter","power":{"numer":1}},{"name":"second","power":{"numer":-1}}]`
	meter     = `[{"name":"meter","power":{"numer":1}}]`
	kilometer = `[{"name":"kilometer","power":{"numer":1}}]`
	second    = `[{"name":"second","power":{"numer":1}}]`
)

func TestConvertQuantity(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodPost, "/api/quantities/convert",
		`{"quantity":{"value":36,"unit":`+kmPerHour+`},"to":`+mPerS+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var q models.Quantity
	decode(t, rec, &q)
	assert.InDelta(t, 10, q.Value, 1e-9)
	assert.Equal(t, "meter", q.Unit[0].Name)

	rec = do(e, http.MethodPost, "/api/quantities/convert",
		`{"quantity":{"value":1,"unit":`+meter+`},"to":`+second+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/quantities/convert", `{"quantity":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOperate(t *testing.T) {
	e, _ := newTestServer()

	body := func(l, lu, r, ru string) string {
		return `{"left":{"value":` + l + `,"unit":` + lu + `},"right":{"value":` + r + `,"unit":` + ru + `}}`
	}

	rec := do(e, http.MethodPost, "/api/quantities/add", body("1", meter, "1", kilometer))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var q models.Quantity
	decode(t, rec, &q)
	assert.Equal(t, 1001.0, q.Value)
	assert.Equal(t, []models.Term{{Name: "meter", Power: models.Power{Numer: 1}}}, q.Unit)

	rec = do(e, http.MethodPost, "/api/quantities/mul", body("2", meter, "3", second))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &q)
	assert.Equal(t, 6.0, q.Value)
	assert.Len(t, q.Unit, 2)

	rec = do(e, http.MethodPost, "/api/quantities/div", body("10", meter, "4", meter))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &q)
	assert.Equal(t, 2.5, q.Value)
	assert.Empty(t, q.Unit)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/api/quantities/add", body("1", meter, "1", second)).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/api/quantities/pow", body("1", meter, "1", meter)).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(e, http.MethodPost, "/api/quantities/div", body("1", meter, "0", second)).Code)

	celsius := `[{"name":"degree_Celsius","power":{"numer":1}}]`
	assert.Equal(t, http.StatusUnprocessableEntity, do(e, http.MethodPost, "/api/quantities/mul", body("1", celsius, "1", celsius)).Code)
}

func TestColumns(t *testing.T) {
	e, h := newTestServer()

	assert.Equal(t, http.StatusServiceUnavailable, do(e, http.MethodGet, "/api/columns", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(e, http.MethodGet, "/api/columns/distance", "").Code)

	h.SetData(testStore())

	rec := do(e, http.MethodGet, "/api/columns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []models.ColumnSummary
	decode(t, rec, &summaries)
	assert.Equal(t, []models.ColumnSummary{
		{Name: "distance", Unit: "kilometer", Rows: 3},
		{Name: "ratio", Unit: "dimensionless", Rows: 3},
	}, summaries)

	rec = do(e, http.MethodGet, "/api/columns/distance?unit=meter", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page models.ColumnPage
	decode(t, rec, &page)
	assert.Equal(t, "meter", page.Unit)
	require.Len(t, page.Values, 3)
	assert.Equal(t, 1000.0, *page.Values[0])
	assert.Nil(t, page.Values[1])
	assert.Equal(t, 3000.0, *page.Values[2])

	rec = do(e, http.MethodGet, "/api/columns/distance?limit=1&offset=2", "")
	decode(t, rec, &page)
	require.Len(t, page.Values, 1)
	assert.Equal(t, 3.0, *page.Values[0])
	assert.Equal(t, 3, page.Total)

	rec = do(e, http.MethodGet, "/api/columns/distance/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.ColumnStats
	decode(t, rec, &stats)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 1, stats.Nulls)
	assert.Equal(t, 2.0, stats.Mean)
	assert.Equal(t, "kilometer^2", stats.VarianceUnit)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/columns/distance/stats?unit=second", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/columns/distance?unit=smoot", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/columns/altitude", "").Code)
}

func TestSetDataSwaps(t *testing.T) {
	e, h := newTestServer()
	h.SetData(testStore())
	h.SetData(engine.NewStore(&engine.Column{Name: "mass", Values: []float64{1}, Unit: quantity.Of("kilogram")}))

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/columns/distance", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/api/columns/mass", "").Code)
}

func TestMetrics(t *testing.T) {
	e, _ := newTestServer()
	do(e, http.MethodGet, "/api/convert?from=kilometer&to=meter", "")
	do(e, http.MethodGet, "/api/convert?from=meter&to=second", "")

	rec := do(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `unitengine_conversions_total{outcome="ok"} 1`)
	assert.Contains(t, rec.Body.String(), `unitengine_conversions_total{outcome="dimension_mismatch"} 1`)
}

func TestTermDenominators(t *testing.T) {
	e, _ := newTestServer()
	convert := func(unit string) *httptest.ResponseRecorder {
		return do(e, http.MethodPost, "/api/quantities/convert",
			`{"quantity":{"value":1000,"unit":`+unit+`},"to":`+kilometer+`}`)
	}

	rec := convert(`[{"name":"meter","power":{"numer":2,"denom":2}}]`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var q models.Quantity
	decode(t, rec, &q)
	assert.InDelta(t, 1, q.Value, 1e-12)

	assert.Equal(t, http.StatusBadRequest, convert(`[{"name":"meter","power":{"numer":1,"denom":0}}]`).Code)
	assert.Equal(t, http.StatusNotFound,
		convert(`[{"name":"meter","power":{"numer":1}},{"name":"bogus","power":{"numer":0}}]`).Code)
	assert.Equal(t, http.StatusOK,
		convert(`[{"name":"meter","power":{"numer":1}},{"name":"second","power":{"numer":0}}]`).Code)
}

func TestApplyQuantity(t *testing.T) {
	e, _ := newTestServer()
	apply := func(op, body string) *httptest.ResponseRecorder {
		return do(e, http.MethodPost, "/api/quantities/unary/"+op, body)
	}

	rec := apply("abs", `{"value":-2,"unit":`+meter+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var q models.Quantity
	decode(t, rec, &q)
	assert.Equal(t, 2.0, q.Value)
	assert.Equal(t, []models.Term{{Name: "meter", Power: models.Power{Numer: 1}}}, q.Unit)

	rec = apply("arccos", `{"value":1,"unit":[]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &q)
	assert.Equal(t, 0.0, q.Value)
	assert.Equal(t, []models.Term{{Name: "radian", Power: models.Power{Numer: 1}}}, q.Unit)

	area := `[{"name":"meter","power":{"numer":2}}]`
	assert.Equal(t, http.StatusUnprocessableEntity, apply("sqrt", `{"value":-4,"unit":`+area+`}`).Code)
	assert.Equal(t, http.StatusBadRequest, apply("sin", `{"value":1,"unit":`+meter+`}`).Code)
	assert.Equal(t, http.StatusBadRequest, apply("exp", `{"value":1,"unit":[]}`).Code)
	assert.Equal(t, http.StatusNotFound, apply("abs", `{"value":1,"unit":[{"name":"smoot","power":{"numer":1}}]}`).Code)
}

func TestApplyColumn(t *testing.T) {
	e, h := newTestServer()
	assert.Equal(t, http.StatusServiceUnavailable, do(e, http.MethodGet, "/api/columns/distance/apply/abs", "").Code)
	h.SetData(testStore())

	rec := do(e, http.MethodGet, "/api/columns/distance/apply/cum_sum", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page models.ColumnPage
	decode(t, rec, &page)
	assert.Equal(t, "kilometer", page.Unit)
	require.Len(t, page.Values, 3)
	assert.Equal(t, 1.0, *page.Values[0])
	assert.Nil(t, page.Values[1])
	assert.Equal(t, 4.0, *page.Values[2])

	rec = do(e, http.MethodGet, "/api/columns/ratio/apply/arcsin?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &page)
	assert.Equal(t, "radian", page.Unit)
	require.Len(t, page.Values, 1)
	assert.InDelta(t, math.Pi/6, *page.Values[0], 1e-12)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/columns/distance/apply/sin", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/columns/distance/apply/exp", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/columns/altitude/apply/abs", "").Code)
}

func TestPowColumn(t *testing.T) {
	e, h := newTestServer()
	h.SetData(testStore())

	rec := do(e, http.MethodGet, "/api/columns/distance/pow?n=2", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page models.ColumnPage
	decode(t, rec, &page)
	assert.Equal(t, "kilometer^2", page.Unit)
	require.Len(t, page.Values, 3)
	assert.Equal(t, 1.0, *page.Values[0])
	assert.Nil(t, page.Values[1])
	assert.Equal(t, 9.0, *page.Values[2])

	rec = do(e, http.MethodGet, "/api/columns/distance/pow?n=1/2&unit=meter", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &page)
	assert.InDelta(t, math.Sqrt(1000), *page.Values[0], 1e-9)

	for _, n := range []string{"", "two", "1/0"} {
		assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/columns/distance/pow?n="+n, "").Code, n)
	}
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/columns/altitude/pow?n=2", "").Code)
}

func TestAggregateColumn(t *testing.T) {
	e, h := newTestServer()
	h.SetData(testStore())

	testCases := []struct {
		target string
		value  float64
		unit   []models.Term
	}{
		{"/api/columns/distance/agg/sum", 4, []models.Term{{Name: "kilometer", Power: models.Power{Numer: 1}}}},
		{"/api/columns/distance/agg/mean?unit=meter", 2000, []models.Term{{Name: "meter", Power: models.Power{Numer: 1}}}},
		{"/api/columns/distance/agg/var", 2, []models.Term{{Name: "kilometer", Power: models.Power{Numer: 2}}}},
		{"/api/columns/distance/agg/arg_max", 2, []models.Term{}},
		{"/api/columns/ratio/agg/arg_min", 1, []models.Term{}},
	}
	for _, tc := range testCases {
		t.Run(tc.target, func(t *testing.T) {
			rec := do(e, http.MethodGet, tc.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var agg models.Aggregate
			decode(t, rec, &agg)
			assert.InDelta(t, tc.value, agg.Value, 1e-9)
			assert.Equal(t, tc.unit, agg.Unit)
		})
	}

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/api/columns/distance/agg/mode", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/columns/altitude/agg/sum", "").Code)
}

func TestDotColumns(t *testing.T) {
	e, h := newTestServer()
	h.SetData(testStore())

	rec := do(e, http.MethodGet, "/api/columns/distance/dot/ratio", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var agg models.Aggregate
	decode(t, rec, &agg)
	assert.Equal(t, "dot", agg.Op)
	assert.InDelta(t, 1.25, agg.Value, 1e-12)
	assert.Equal(t, []models.Term{{Name: "kilometer", Power: models.Power{Numer: 1}}}, agg.Unit)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/columns/distance/dot/altitude", "").Code)
}

func TestNonFiniteResults(t *testing.T) {
	e, h := newTestServer()
	h.SetData(engine.NewStore(
		&engine.Column{Name: "huge", Values: []float64{1e308, 1e308}, Unit: quantity.Of("kilometer")},
	))

	testCases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"convert by name", http.MethodGet, "/api/convert?from=kilometer&to=millimeter&value=1e308", ""},
		{"convert quantity", http.MethodPost, "/api/quantities/convert",
			`{"quantity":{"value":1e308,"unit":` + kilometer + `},"to":` + meter + `}`},
		{"column page", http.MethodGet, "/api/columns/huge?unit=millimeter", ""},
		{"column stats", http.MethodGet, "/api/columns/huge/stats", ""},
		{"column sum", http.MethodGet, "/api/columns/huge/agg/sum", ""},
		{"column pow", http.MethodGet, "/api/columns/huge/pow?n=2", ""},
		{"column dot", http.MethodGet, "/api/columns/huge/dot/huge", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, tc.method, tc.target, tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		})
	}
}
