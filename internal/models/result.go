package models

// Status tells callers whether a Result holds live data, degraded fallback
// data, or nothing at all.
type Status string

const (
	StatusOK       Status = "ok"
	StatusFallback Status = "fallback"
	StatusNotFound Status = "not_found"
)

// Result carries the outcome of an adapter or façade call. Provider failures
// never surface as errors; they surface as a Fallback result instead.
type Result[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data"`
}

// Ok wraps live provider data.
func Ok[T any](v T) Result[T] {
	return Result[T]{Status: StatusOK, Data: v}
}

// Fallback wraps static catalog data used in place of live data.
func Fallback[T any](v T) Result[T] {
	return Result[T]{Status: StatusFallback, Data: v}
}

// NotFound is the empty result for lookups that missed everywhere.
func NotFound[T any]() Result[T] {
	return Result[T]{Status: StatusNotFound}
}

// IsDegraded reports whether the data came from the fallback catalog.
func (r Result[T]) IsDegraded() bool {
	return r.Status == StatusFallback
}

// Found reports whether the result carries data.
func (r Result[T]) Found() bool {
	return r.Status != StatusNotFound
}

// HomeFeed groups the carousels shown on the home screen.
type HomeFeed struct {
	Trending Result[[]Content] `json:"trending"`
	Series   Result[[]Content] `json:"series"`
	Anime    Result[[]Content] `json:"anime"`
	News     Result[[]Content] `json:"news"`
}
