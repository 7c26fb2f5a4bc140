package transport

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request/response pair for troubleshooting
// gateway communication. Dumps include the Authorization header and full
// payloads, so this must stay off outside development builds.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// DebugLoggingRequested reports whether HTTP debug dumps were requested by
// environment. MEALRUSH_DEBUG targets this SDK; DEBUG is the general flag.
func DebugLoggingRequested() bool {
	return os.Getenv("MEALRUSH_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
