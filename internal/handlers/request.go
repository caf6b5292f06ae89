package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// bodyFields decodes a JSON request body into a flat string map so the
// validation rule chains can run over it. Numbers are accepted and rendered
// back to their decimal form; nested values are kept as raw JSON.
func bodyFields(r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, utils.NewBadRequestError(constants.MsgEmptyRequestBody)
		}
		return nil, utils.NewBadRequestError(constants.MsgMalformedJSON)
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case float64:
			fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			fields[key] = strconv.FormatBool(v)
		case nil:
			fields[key] = ""
		default:
			encoded, _ := json.Marshal(v)
			fields[key] = string(encoded)
		}
	}
	return fields, nil
}

// queryFields collects URL query parameters into a flat string map. Repeated
// parameters keep their first value.
func queryFields(r *http.Request) map[string]string {
	values := r.URL.Query()
	fields := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			fields[key] = vs[0]
		}
	}
	return fields
}

// parseID converts a validated identifier field to int64. The rule chains
// guarantee a numeric string, so only range overflow can fail here.
func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, utils.NewValidationError(field, "Identifier out of range")
	}
	return id, nil
}
