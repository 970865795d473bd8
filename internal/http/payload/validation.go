package payload

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf16"

	"github.com/jellydator/validation"
)

const maxMessageLength = 140

var errMessageLength = validation.NewError("validation_message_length",
	fmt.Sprintf("the length must be between 1 and %d", maxMessageLength))

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) error {
	if err := DecodePayload(r, object); err != nil {
		return err
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// messageRules accept 1 to 140 characters, counted in UTF-16 code units the
// way browser clients count them.
func messageRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.By(maxUTF16Length(maxMessageLength)),
	}
}

func maxUTF16Length(limit int) validation.RuleFunc {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return errors.New("must be a string")
		}
		if len(utf16.Encode([]rune(s))) > limit {
			return errMessageLength
		}
		return nil
	}
}
