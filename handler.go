package timesystems

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"
)

// Report is the JSON view of an epoch
type Report struct {
	Epoch              Epoch   `json:"epoch"`
	JulianUTC          float64 `json:"julian_utc"`
	JulianTT           float64 `json:"julian_tt"`
	MJD                float64 `json:"mjd"`
	DaysPastJ2000      float64 `json:"days_past_j2000"`
	CenturiesPastJ2000 float64 `json:"centuries_past_j2000"`
	GMST               float64 `json:"gmst"`
}

func NewReport(e Epoch) Report {
	return Report{
		Epoch:              e,
		JulianUTC:          e.JulianUTC(),
		JulianTT:           e.JulianTT(),
		MJD:                e.MJD(),
		DaysPastJ2000:      e.DaysPastJ2000(),
		CenturiesPastJ2000: e.JulianCenturiesPastJ2000(),
		GMST:               e.GMST(),
	}
}

// Server answers epoch conversion requests over HTTP
type Server struct {
	Location Location
	Now      func() time.Time
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Routes returns the server's handlers, including /metrics, wrapped in
// Middleware
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/epoch", s.EpochHandler)
	mux.HandleFunc("/now", s.NowHandler)
	mux.HandleFunc("/sun", s.SunHandler)
	mux.Handle("/metrics", MetricsHandler())
	return Middleware(mux)
}

// EpochHandler reports on the epoch given by either the "iso" query
// parameter, a UTC timestamp, or the "jd" parameter, a TT Julian date.
func (s *Server) EpochHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var epoch Epoch
	switch {
	case query.Has("iso"):
		param := query.Get("iso")
		e, err := Parse(param)
		if err != nil {
			epochParseErrors.Inc()
			log.Printf("ERR: parse iso param %q: %s", param, err)
			writeError(w, http.StatusBadRequest, "unable to parse iso parameter")
			return
		}
		epoch = e
		epochConversions.WithLabelValues("iso").Inc()
	case query.Has("jd"):
		param := query.Get("jd")
		jd, err := strconv.ParseFloat(param, 64)
		if err != nil {
			epochParseErrors.Inc()
			log.Printf("ERR: parse jd param %q: %s", param, err)
			writeError(w, http.StatusBadRequest, "unable to parse jd parameter")
			return
		}
		epoch = FromJulianTT(jd)
		epochConversions.WithLabelValues("jd").Inc()
	default:
		writeError(w, http.StatusBadRequest, "one of iso or jd is required")
		return
	}

	writeJSON(w, NewReport(epoch))
}

// NowHandler reports on the current instant
func (s *Server) NowHandler(w http.ResponseWriter, r *http.Request) {
	epochConversions.WithLabelValues("now").Inc()
	writeJSON(w, NewReport(FromTime(s.now())))
}

// SunHandler reports solar events at the server's location for the UTC
// day of the "date" query parameter, or for today. The date may be a
// full timestamp or just YYYY-MM-DD.
func (s *Server) SunHandler(w http.ResponseWriter, r *http.Request) {
	epoch := FromTime(s.now())
	if param := r.URL.Query().Get("date"); param != "" {
		e, err := ParseDate(param)
		if err != nil {
			epochParseErrors.Inc()
			log.Printf("ERR: parse date param %q: %s", param, err)
			writeError(w, http.StatusBadRequest, "unable to parse date parameter")
			return
		}
		epoch = e
	}

	writeJSON(w, s.Location.SunEvents(epoch))
}

// ParseDate accepts either a full timestamp or a bare YYYY-MM-DD date,
// which is read as midnight UTC
func ParseDate(s string) (Epoch, error) {
	e, err := Parse(s)
	if err == nil {
		return e, nil
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Field == "" {
		return Parse(s + "T00:00:00Z")
	}
	return Epoch{}, err
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Printf("ERR: encode response: %s", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(map[string]string{"error": message})
	if err != nil {
		log.Printf("ERR: encode error response: %s", err)
	}
}
