package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrTrailingData = errors.New("unexpected data after json payload")

// DecodePayload decodes the JSON body of r into object. Unknown fields are
// ignored, anything after the first JSON value is rejected.
func DecodePayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	err = decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	var rest json.RawMessage
	if err = decoder.Decode(&rest); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding json payload: %w", ErrTrailingData)
	}

	return nil
}
