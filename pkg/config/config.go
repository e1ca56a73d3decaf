package config

// this holds the resolved configuration values from CLI
var (
	CacheDir       string // directory for the on-disk response cache
	APIURL         string // base URL of the timing data API
	RequestTimeout string // timeout for a single API request
	Season         int    // championship year of the session
	EventName      string // event to analyze (circuit, location or country)
	SessionType    string // session to analyze (Race, Qualifying, ...)
	LogLevel       string // sets the log level (zap log level values)
	LogFormat      string // text vs json
	LogFilter      string // zapfilter rules to narrow log output
)
