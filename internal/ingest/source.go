package ingest

import (
	"net/url"
	"strconv"
)

// Values are the raw fields pulled out of one submission, before
// validation. Empty string means the field was absent.
type Values struct {
	StationID string
	EventKind string
	Time      string
	EventUID  string
}

// Source extracts submission values from one transport shape. The
// service is agnostic to which shape produced them.
type Source interface {
	Extract() Values
}

// Station firmware in the field predates the canonical field names, so
// both submission shapes accept the legacy aliases. JSON senders were
// taught "tableId" first and GET-only senders "table" first, so each
// transport keeps its own precedence.
var (
	bodyStationKeys  = []string{"station_id", "tableId", "table"}
	queryStationKeys = []string{"station_id", "table", "tableId"}
	kindKeys         = []string{"event", "event_kind"}
)

// BodySource reads a decoded JSON object.
type BodySource map[string]any

func (s BodySource) Extract() Values {
	return Values{
		StationID: firstOf(s.field, bodyStationKeys),
		EventKind: firstOf(s.field, kindKeys),
		Time:      s.field("time"),
		EventUID:  s.field("event_id"),
	}
}

func (s BodySource) field(key string) string {
	switch v := s[key].(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; render 7 as "7", not "7.000000".
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// QuerySource reads flat key/value parameters, the fallback transport
// for stations that can only issue simple GETs.
type QuerySource url.Values

func (s QuerySource) Extract() Values {
	get := url.Values(s).Get
	return Values{
		StationID: firstOf(get, queryStationKeys),
		EventKind: firstOf(get, kindKeys),
		Time:      get("time"),
		EventUID:  get("event_id"),
	}
}

func firstOf(get func(string) string, keys []string) string {
	for _, key := range keys {
		if v := get(key); v != "" {
			return v
		}
	}
	return ""
}
