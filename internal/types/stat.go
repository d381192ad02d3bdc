package types

// StatSnapshot wraps one fetch of a stats series. The result payload is kept
// verbatim; downstream consumers decide how to interpret each series.
type StatSnapshot struct {
	Series    string `json:"series"`
	Network   string `json:"network"`
	Result    string `json:"result"`
	Timestamp int64  `json:"timestamp"`
}
