package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"
)

// payloadKey caches the decoded request body between the sanitize and
// validate stages so the body is only parsed once per request.
const payloadKey = "requestPayload"

// readPayload returns the request body decoded as a JSON object, caching
// the result in the context. A missing, empty, or non-object body yields a
// nil map; a malformed body yields an error the caller surfaces as a 400.
func readPayload(c echo.Context) (map[string]any, error) {
	if cached, ok := c.Get(payloadKey).(map[string]any); ok {
		return cached, nil
	}

	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	_ = req.Body.Close()

	if len(bytes.TrimSpace(raw)) == 0 {
		restoreBody(c, raw)
		return nil, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		restoreBody(c, raw)
		return nil, err
	}

	c.Set(payloadKey, payload)
	restoreBody(c, raw)
	return payload, nil
}

// writePayload re-encodes the (possibly rewritten) payload as the request
// body so the handler's Bind sees the sanitized form.
func writePayload(c echo.Context, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	c.Set(payloadKey, payload)
	restoreBody(c, raw)
	return nil
}

func restoreBody(c echo.Context, raw []byte) {
	req := c.Request()
	req.Body = io.NopCloser(bytes.NewReader(raw))
	req.ContentLength = int64(len(raw))
}
