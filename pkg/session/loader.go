// Package session fetches one race session's lap table from an
// OpenF1-style timing API and memoizes the raw responses on disk.
package session

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/rsaxena/tirepace/log"
	"github.com/rsaxena/tirepace/pkg/model"
	"github.com/rsaxena/tirepace/pkg/utils/cache"
	"github.com/rsaxena/tirepace/pkg/utils/cache/loadercache"
)

const DefaultBaseURL = "https://api.openf1.org/v1"

// Query identifies one session. Event matches the circuit short name,
// the location or the country as published by the timing API.
type Query struct {
	Year        int
	Event       string
	SessionType string
}

type Loader struct {
	baseURL   string
	client    *http.Client
	respCache *ResponseCache
	l         *log.Logger
	memo      cache.Cache[Query, model.Session]
}

type LoaderOption func(ldr *Loader)

func WithBaseURL(arg string) LoaderOption {
	return func(ldr *Loader) {
		ldr.baseURL = strings.TrimRight(arg, "/")
	}
}

func WithHTTPClient(arg *http.Client) LoaderOption {
	return func(ldr *Loader) {
		ldr.client = arg
	}
}

func WithResponseCache(arg *ResponseCache) LoaderOption {
	return func(ldr *Loader) {
		ldr.respCache = arg
	}
}

func WithLogger(arg *log.Logger) LoaderOption {
	return func(ldr *Loader) {
		ldr.l = arg
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	ret := &Loader{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		l:       log.Default().Named("session"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.memo = loadercache.New(
		loadercache.WithLoader[Query, model.Session](ret.fetchSession),
		loadercache.WithExpiration[Query, model.Session](0),
		loadercache.WithLogger[Query, model.Session](ret.l))
	return ret
}

// Load returns the session for the given query, building it at most once
// per process. Any failure here is structural and aborts the run.
func (ldr *Loader) Load(
	ctx context.Context, year int, event, sessionType string,
) (*model.Session, error) {
	return ldr.memo.Get(ctx, Query{Year: year, Event: event, SessionType: sessionType})
}

func (ldr *Loader) fetchSession(ctx context.Context, q Query) (*model.Session, error) {
	sess, err := ldr.resolveSession(ctx, q)
	if err != nil {
		return nil, err
	}
	ldr.l.Debug("session resolved",
		log.Int("sessionKey", sess.SessionKey),
		log.String("location", sess.Location))

	eventName, err := ldr.eventName(ctx, sess)
	if err != nil {
		return nil, err
	}
	key := url.Values{"session_key": {strconv.Itoa(sess.SessionKey)}}
	drivers, err := fetchRows[driverRow](ctx, ldr, "/drivers", key)
	if err != nil {
		return nil, err
	}
	laps, err := fetchRows[lapRow](ctx, ldr, "/laps", key)
	if err != nil {
		return nil, err
	}
	stints, err := fetchRows[stintRow](ctx, ldr, "/stints", key)
	if err != nil {
		return nil, err
	}

	date, _ := time.Parse(time.RFC3339, sess.DateStart)
	ret := &model.Session{
		EventName:   eventName,
		Location:    sess.Location,
		Date:        date,
		SessionType: q.SessionType,
		Laps:        buildLapTable(drivers, laps, stints),
	}
	ldr.l.Info("session loaded",
		log.String("event", ret.EventName),
		log.Int("laps", ret.TotalLaps()))
	return ret, nil
}

// resolveSession picks the matching session from the year's session
// index via a jsonpath query over the raw payload.
func (ldr *Loader) resolveSession(ctx context.Context, q Query) (*sessionRow, error) {
	body, err := ldr.get(ctx, "/sessions", url.Values{
		"year":         {strconv.Itoa(q.Year)},
		"session_name": {q.SessionType},
	})
	if err != nil {
		return nil, err
	}
	obj, err := oj.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("decoding sessions index: %w", err)
	}
	path, err := jp.ParseString(fmt.Sprintf(
		`$[?(@.circuit_short_name == %q || @.location == %q || @.country_name == %q)]`,
		q.Event, q.Event, q.Event))
	if err != nil {
		return nil, fmt.Errorf("building session query: %w", err)
	}
	res := path.Get(obj)
	if len(res) == 0 {
		return nil, fmt.Errorf("no %s session found for %q in %d",
			q.SessionType, q.Event, q.Year)
	}
	ret := sessionRow{}
	if err := oj.Unmarshal([]byte(oj.JSON(res[0])), &ret); err != nil {
		return nil, fmt.Errorf("decoding session entry: %w", err)
	}
	return &ret, nil
}

func (ldr *Loader) eventName(ctx context.Context, sess *sessionRow) (string, error) {
	meetings, err := fetchRows[meetingRow](ctx, ldr, "/meetings",
		url.Values{"meeting_key": {strconv.Itoa(sess.MeetingKey)}})
	if err != nil {
		return "", err
	}
	if len(meetings) > 0 && meetings[0].MeetingName != "" {
		return meetings[0].MeetingName, nil
	}
	return sess.CircuitShortName, nil
}

func fetchRows[T any](
	ctx context.Context, ldr *Loader, path string, query url.Values,
) ([]T, error) {
	body, err := ldr.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := oj.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return rows, nil
}

func (ldr *Loader) get(
	ctx context.Context, path string, query url.Values,
) ([]byte, error) {
	reqURL := ldr.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	if ldr.respCache != nil {
		if body, ok := ldr.respCache.Get(reqURL); ok {
			return body, nil
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building request %s: %w", reqURL, err)
	}
	resp, err := ldr.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", reqURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", reqURL, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", reqURL, err)
	}
	if ldr.respCache != nil {
		if cErr := ldr.respCache.Put(reqURL, body); cErr != nil {
			ldr.l.Warn("could not cache response", log.ErrorField(cErr))
		}
	}
	return body, nil
}

// buildLapTable joins the lap rows with the stint data to produce the
// lap table schema used by the analysis. Rows keep whatever the feed
// delivered; missing values are marked, not dropped.
func buildLapTable(
	drivers []driverRow, laps []lapRow, stints []stintRow,
) []model.Lap {
	codes := make(map[int]string, len(drivers))
	for _, d := range drivers {
		codes[d.DriverNumber] = d.NameAcronym
	}
	ret := make([]model.Lap, 0, len(laps))
	for _, l := range laps {
		code, ok := codes[l.DriverNumber]
		if !ok {
			code = strconv.Itoa(l.DriverNumber)
		}
		row := model.Lap{
			Driver:    code,
			LapNumber: l.LapNumber,
			Time:      math.NaN(),
			Compound:  model.CompoundUnknown,
			TireAge:   -1,
		}
		if l.LapDuration != nil {
			row.Time = *l.LapDuration
		}
		if st := findStint(stints, l.DriverNumber, l.LapNumber); st != nil {
			row.Compound = model.TireCompound(strings.ToUpper(st.Compound))
			if st.TyreAgeAtStart != nil {
				row.TireAge = *st.TyreAgeAtStart + (l.LapNumber - st.LapStart)
			}
		}
		ret = append(ret, row)
	}
	return ret
}

func findStint(stints []stintRow, driverNumber, lapNumber int) *stintRow {
	for i := range stints {
		st := &stints[i]
		if st.DriverNumber == driverNumber &&
			lapNumber >= st.LapStart && lapNumber <= st.LapEnd {
			return st
		}
	}
	return nil
}
