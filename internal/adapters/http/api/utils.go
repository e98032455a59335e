package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/okian/podium/internal/domain/aggregate"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func badRequest(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, "bad_request", err)
}

// snapshot fetches the dataset or answers 503 when it is not loaded yet.
func snapshot(w http.ResponseWriter, data DatasetProvider) (*model.Dataset, bool) {
	ds, err := data.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_loaded", fmt.Errorf("%w: %w", ErrNotLoaded, err))
		return nil, false
	}
	return ds, true
}

func wantsMetrics(accept string) bool {
	return strings.Contains(accept, "application/openmetrics-text") || strings.Contains(accept, "text/plain")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateQuery runs struct tag validation and flattens the failures into
// one ErrBadRequest.
func validateQuery(q any) error {
	err := getValidator().Struct(q)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msg := fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("%w: %s", ErrBadRequest, strings.Join(msgs, "; "))
}

// listParam collects a list parameter given either repeated or
// comma-separated: ?sport=Judo&sport=Golf and ?sport=Judo,Golf are equal.
func listParam(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// filterQuery is the raw form of the common filter parameters.
type filterQuery struct {
	Countries []string
	Sports    []string
	Genders   []string
	Medals    []string `validate:"dive,oneof=gold silver bronze"`
	Venues    []string
}

func parseFilter(q url.Values) (aggregate.Filter, error) {
	fq := filterQuery{
		Countries: listParam(q, "country"),
		Sports:    listParam(q, "sport"),
		Genders:   listParam(q, "gender"),
		Venues:    listParam(q, "venue"),
	}
	for _, m := range listParam(q, "medal") {
		fq.Medals = append(fq.Medals, strings.ToLower(m))
	}
	if err := validateQuery(fq); err != nil {
		return aggregate.Filter{}, err
	}

	f := aggregate.Filter{
		Countries: fq.Countries,
		Sports:    fq.Sports,
		Genders:   fq.Genders,
		Venues:    fq.Venues,
	}
	for _, m := range fq.Medals {
		if mt, ok := types.ParseMedalType(m); ok {
			f.Medals = append(f.Medals, mt)
		}
	}
	return f, nil
}

// requestFilter parses the common filters, answering 400 itself on failure.
func requestFilter(w http.ResponseWriter, r *http.Request) (aggregate.Filter, bool) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return aggregate.Filter{}, false
	}
	return f, true
}

type limitQuery struct {
	Limit int `validate:"gte=1,lte=100"`
}

// limitParam reads ?limit=, falling back to def when absent.
func limitParam(q url.Values, def int) (int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", ErrBadRequest)
	}
	if err := validateQuery(limitQuery{Limit: n}); err != nil {
		return 0, err
	}
	return n, nil
}

// continentParam reads an optional continent name, case-insensitively.
func continentParam(q url.Values, key string) (types.Continent, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return "", nil
	}
	c, ok := types.ParseContinent(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown continent %q", ErrBadRequest, raw)
	}
	return c, nil
}
