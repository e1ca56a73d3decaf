package utils

import (
	"net/http"
	"time"

	"github.com/rsaxena/tirepace/log"
	"github.com/rsaxena/tirepace/pkg/config"
	"github.com/rsaxena/tirepace/pkg/session"
)

// NewSessionLoader builds the session loader from the resolved CLI
// values. The returned closer releases the on-disk cache.
func NewSessionLoader() (ldr *session.Loader, closer func(), err error) {
	timeout, err := time.ParseDuration(config.RequestTimeout)
	if err != nil {
		log.Warn("Invalid timeout value. Setting default 30s", log.ErrorField(err))
		timeout = 30 * time.Second
	}
	respCache, err := session.OpenResponseCache(config.CacheDir)
	if err != nil {
		return nil, nil, err
	}
	ldr = session.NewLoader(
		session.WithBaseURL(config.APIURL),
		session.WithHTTPClient(&http.Client{Timeout: timeout}),
		session.WithResponseCache(respCache),
	)
	return ldr, func() { _ = respCache.Close() }, nil
}
