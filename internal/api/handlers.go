package api

import (
	"fmt"
	"math"
	"math/big"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"unitengine/internal/engine"
	"unitengine/internal/models"
	"unitengine/internal/quantity"
)

type Handler struct {
	engine  *engine.Engine
	metrics *Metrics

	mu    sync.RWMutex
	store *engine.Store
}

// NewHandler serves the registry at once. Column routes answer 503 until
// SetData is called.
func NewHandler(eng *engine.Engine, metrics *Metrics) *Handler {
	return &Handler{engine: eng, metrics: metrics}
}

// SetData publishes freshly loaded columns. Later calls swap the contents
// of the live store in place.
func (h *Handler) SetData(store *engine.Store) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.store == nil {
		h.store = store
		return
	}
	h.store.Swap(store)
}

func (h *Handler) data() (*engine.Store, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.store == nil {
		return nil, errLoading
	}
	return h.store, nil
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/units", h.ListUnits)
	api.GET("/units/:name", h.GetUnit)
	api.GET("/dimensions/:name", h.GetDimension)
	api.GET("/convert", h.ConvertByName)
	api.POST("/quantities/convert", h.ConvertQuantity)
	api.POST("/quantities/unary/:op", h.ApplyQuantity)
	api.POST("/quantities/:op", h.Operate)
	api.GET("/columns", h.ListColumns)
	api.GET("/columns/:name", h.GetColumn)
	api.GET("/columns/:name/stats", h.GetColumnStats)
	api.GET("/columns/:name/apply/:op", h.ApplyColumn)
	api.GET("/columns/:name/pow", h.PowColumn)
	api.GET("/columns/:name/agg/:op", h.AggregateColumn)
	api.GET("/columns/:name/dot/:other", h.DotColumns)

	e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func window(total, limit, offset int) (int, int) {
	if offset >= total {
		return total, total
	}
	return offset, min(total, offset+limit)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// notFinite is the answer when a result cannot be written as JSON.
func notFinite(what string) error {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("%s result is not finite", what))
}

func (h *Handler) GetHealth(c echo.Context) error {
	health := models.Health{Status: "loading", Units: h.engine.Registry().Len()}
	if store, err := h.data(); err == nil {
		health.Status = "ok"
		health.Columns = len(store.Names())
		health.Rows = store.Rows()
	}
	return c.JSON(http.StatusOK, health)
}

func (h *Handler) ListUnits(c echo.Context) error {
	reg := h.engine.Registry()
	names := reg.UnitNames()
	total := len(names)
	limit, offset := getPaginationParams(c, total)
	start, end := window(total, limit, offset)

	data := make([]models.UnitInfo, 0, end-start)
	for _, name := range names[start:end] {
		data = append(data, unitInfo(reg.MustGetUnit(name)))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   data,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) GetUnit(c echo.Context) error {
	u, err := h.engine.Registry().GetUnit(c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, unitInfo(u))
}

func (h *Handler) GetDimension(c echo.Context) error {
	d, err := h.engine.Registry().GetDimension(c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dimensionInfo(d))
}

// ConvertByName converts between two registered unit names. value defaults
// to 1, so the result doubles as the factor.
func (h *Handler) ConvertByName(c echo.Context) error {
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if from == "" || to == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to are required")
	}
	value := 1.0
	if raw := c.QueryParam("value"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("value %q is not a number", raw))
		}
		value = v
	}

	factor, err := h.engine.Registry().Convert(from, to)
	h.metrics.conversions.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	if !finite(value * factor) {
		return notFinite("conversion")
	}
	return c.JSON(http.StatusOK, models.ConversionResult{
		From:   from,
		To:     to,
		Factor: factor,
		Value:  value,
		Result: value * factor,
	})
}

func (h *Handler) ConvertQuantity(c echo.Context) error {
	var req models.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	from, err := toUnits(req.Quantity.Unit)
	if err != nil {
		return httpError(err)
	}
	to, err := toUnits(req.To)
	if err != nil {
		return httpError(err)
	}

	out, err := h.engine.Convert(&engine.Column{Values: []float64{req.Quantity.Value}, Unit: from}, to)
	h.metrics.conversions.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	if !finite(out.Values[0]) {
		return notFinite("conversion")
	}
	return c.JSON(http.StatusOK, models.Quantity{Value: out.Values[0], Unit: fromUnits(out.Unit)})
}

// Operate applies add, sub, mul or div to two quantities.
func (h *Handler) Operate(c echo.Context) error {
	op := engine.BinaryOp(c.Param("op"))
	var req models.OperationRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	left, err := toUnits(req.Left.Unit)
	if err != nil {
		return httpError(err)
	}
	right, err := toUnits(req.Right.Unit)
	if err != nil {
		return httpError(err)
	}

	out, err := h.engine.Binary(op,
		&engine.Column{Name: "left", Values: []float64{req.Left.Value}, Unit: left},
		&engine.Column{Name: "right", Values: []float64{req.Right.Value}, Unit: right})
	h.metrics.operations.WithLabelValues(string(op), outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	if !finite(out.Values[0]) {
		return notFinite(string(op))
	}
	return c.JSON(http.StatusOK, models.Quantity{Value: out.Values[0], Unit: fromUnits(out.Unit)})
}

// ApplyQuantity runs a unary kernel on one quantity.
func (h *Handler) ApplyQuantity(c echo.Context) error {
	op := engine.UnaryOp(c.Param("op"))
	var req models.Quantity
	if err := c.Bind(&req); err != nil {
		return err
	}
	unit, err := toUnits(req.Unit)
	if err != nil {
		return httpError(err)
	}

	// Columns arrive with resolved units; a bare quantity has to be checked.
	_, err = h.engine.Resolver().Resolve(unit)
	var out *engine.Column
	if err == nil {
		out, err = h.engine.Unary(op, &engine.Column{Name: "quantity", Values: []float64{req.Value}, Unit: unit})
	}
	h.metrics.operations.WithLabelValues(string(op), outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	if !finite(out.Values[0]) {
		return notFinite(string(op))
	}
	return c.JSON(http.StatusOK, models.Quantity{Value: out.Values[0], Unit: fromUnits(out.Unit)})
}

func (h *Handler) ListColumns(c echo.Context) error {
	store, err := h.data()
	if err != nil {
		return err
	}
	cols := store.Columns()
	out := make([]models.ColumnSummary, len(cols))
	for i, col := range cols {
		out[i] = models.ColumnSummary{Name: col.Name, Unit: col.Unit.String(), Rows: col.Len()}
	}
	return c.JSON(http.StatusOK, out)
}

// column looks up :name and, when ?unit= names a registered unit, converts
// it first.
func (h *Handler) column(c echo.Context) (*engine.Column, error) {
	store, err := h.data()
	if err != nil {
		return nil, err
	}
	col, err := store.Column(c.Param("name"))
	if err != nil {
		return nil, httpError(err)
	}
	unit := c.QueryParam("unit")
	if unit == "" {
		return col, nil
	}
	if _, err := h.engine.Registry().GetUnit(unit); err != nil {
		return nil, httpError(err)
	}
	converted, err := h.engine.Convert(col, quantity.Of(unit))
	h.metrics.conversions.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return nil, httpError(err)
	}
	return converted, nil
}

func (h *Handler) GetColumn(c echo.Context) error {
	col, err := h.column(c)
	if err != nil {
		return err
	}
	return writePage(c, col)
}

// writePage answers with the ?limit=&offset= window of col. Null rows
// become JSON null; an infinite row fails the request.
func writePage(c echo.Context, col *engine.Column) error {
	total := col.Len()
	limit, offset := getPaginationParams(c, total)
	start, end := window(total, limit, offset)

	values := make([]*float64, end-start)
	for i := range values {
		v := col.Values[start+i]
		if math.IsInf(v, 0) {
			return notFinite(fmt.Sprintf("row %d of %s", start+i, col.Name))
		}
		if !math.IsNaN(v) {
			values[i] = &v
		}
	}
	return c.JSON(http.StatusOK, models.ColumnPage{
		Name:   col.Name,
		Unit:   col.Unit.String(),
		Values: values,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *Handler) GetColumnStats(c echo.Context) error {
	col, err := h.column(c)
	if err != nil {
		return err
	}
	stats, err := h.engine.Summarize(col)
	if err != nil {
		return httpError(err)
	}
	if !finite(stats.Sum, stats.Mean, stats.Min, stats.Max, stats.Median, stats.Std, stats.Variance) {
		return notFinite("stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// ApplyColumn runs a unary kernel over a whole column and pages the result.
func (h *Handler) ApplyColumn(c echo.Context) error {
	col, err := h.column(c)
	if err != nil {
		return err
	}
	op := engine.UnaryOp(c.Param("op"))
	out, err := h.engine.Unary(op, col)
	h.metrics.operations.WithLabelValues(string(op), outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	return writePage(c, out)
}

// PowColumn raises a column to ?n=, an integer or a fraction such as 3/2.
func (h *Handler) PowColumn(c echo.Context) error {
	raw := c.QueryParam("n")
	n, ok := new(big.Rat).SetString(raw)
	if raw == "" || !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("n %q is not a rational number", raw))
	}
	col, err := h.column(c)
	if err != nil {
		return err
	}
	out, err := h.engine.Pow(col, n)
	h.metrics.operations.WithLabelValues("pow", outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	return writePage(c, out)
}

func (h *Handler) AggregateColumn(c echo.Context) error {
	col, err := h.column(c)
	if err != nil {
		return err
	}
	op := engine.AggOp(c.Param("op"))
	s, err := h.engine.Aggregate(op, col)
	h.metrics.operations.WithLabelValues(string(op), outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	if !finite(s.Value) {
		return notFinite(string(op))
	}
	return c.JSON(http.StatusOK, models.Aggregate{Column: col.Name, Op: string(op), Value: s.Value, Unit: fromUnits(s.Unit)})
}

// DotColumns sums the row-wise products of :name (converted by ?unit= when
// given) and :other.
func (h *Handler) DotColumns(c echo.Context) error {
	left, err := h.column(c)
	if err != nil {
		return err
	}
	store, err := h.data()
	if err != nil {
		return err
	}
	right, err := store.Column(c.Param("other"))
	if err != nil {
		return httpError(err)
	}
	s, err := h.engine.Dot(left, right)
	h.metrics.operations.WithLabelValues("dot", outcome(err)).Inc()
	if err != nil {
		return httpError(err)
	}
	if !finite(s.Value) {
		return notFinite("dot")
	}
	return c.JSON(http.StatusOK, models.Aggregate{Column: left.Name, Op: "dot", Value: s.Value, Unit: fromUnits(s.Unit)})
}
