package models

// Power is numer/denom. A nil Denom means 1; an explicit 0 is rejected.
type Power struct {
	Numer int64  `json:"numer"`
	Denom *int64 `json:"denom,omitempty"`
}

// Term mirrors one entry of the arrow unit schema.
type Term struct {
	Name  string `json:"name"`
	Power Power  `json:"power"`
}

type Quantity struct {
	Value float64 `json:"value"`
	Unit  []Term  `json:"unit"`
}

type UnitInfo struct {
	Name      string   `json:"name"`
	Dimension string   `json:"dimension"`
	Base      string   `json:"base,omitempty"`
	Factor    float64  `json:"factor,omitempty"`
	Offset    *float64 `json:"offset,omitempty"`
}

type DimensionInfo struct {
	Name  string `json:"name"`
	Terms []Term `json:"terms"`
}

type ConversionResult struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Factor float64 `json:"factor"`
	Value  float64 `json:"value"`
	Result float64 `json:"result"`
}

type ConvertRequest struct {
	Quantity Quantity `json:"quantity"`
	To       []Term   `json:"to"`
}

type OperationRequest struct {
	Left  Quantity `json:"left"`
	Right Quantity `json:"right"`
}

type ColumnSummary struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
	Rows int    `json:"rows"`
}

// ColumnPage is one window of a column. Null rows are JSON null.
type ColumnPage struct {
	Name   string     `json:"name"`
	Unit   string     `json:"unit"`
	Values []*float64 `json:"values"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// Aggregate is one value reduced from a column, or from two for dot.
type Aggregate struct {
	Column string  `json:"column"`
	Op     string  `json:"op"`
	Value  float64 `json:"value"`
	Unit   []Term  `json:"unit"`
}

type Health struct {
	Status  string `json:"status"`
	Units   int    `json:"units"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

// ColumnStats keeps every statistic in Unit except Variance, which is in
// VarianceUnit (Unit squared).
type ColumnStats struct {
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Count        int     `json:"count"`
	Nulls        int     `json:"nulls"`
	Sum          float64 `json:"sum"`
	Mean         float64 `json:"mean"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Median       float64 `json:"median"`
	Std          float64 `json:"std"`
	Variance     float64 `json:"variance"`
	VarianceUnit string  `json:"variance_unit"`
}
