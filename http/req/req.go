package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"

	"github.com/xy-planning-network/habits"
)

// A Parser turns request payloads into validated structs.
// One Parser serves all requests concurrently.
type Parser struct {
	decoder *schema.Decoder
	validator
}

func NewParser() *Parser {
	return &Parser{decoder: newQueryParamDecoder(), validator: newValidator()}
}

// ParseBody decodes the JSON in body into structPtr, then validates it.
// body is consumed.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	if err := checkStructPtr(structPtr); err != nil {
		return err
	}

	var unmarshalErr *json.InvalidUnmarshalError
	switch err := json.NewDecoder(body).Decode(structPtr); {
	case errors.As(err, &unmarshalErr):
		return fmt.Errorf("http/req: %w: ParseBody called with non-pointer: %s", habits.ErrUnaddressable, err)
	case err != nil:
		return fmt.Errorf("http/req: %w: failed decoding request body: %s", habits.ErrBadFormat, err)
	}

	return p.check(structPtr)
}

// ParseQueryParams decodes params into structPtr, then validates it.
// time.Time fields take YYYY-MM-DD or RFC 3339.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := checkStructPtr(structPtr); err != nil {
		return err
	}

	if err := p.decoder.Decode(structPtr, params); err != nil {
		return fmt.Errorf("http/req: failed decoding request query params: %w", translateDecoderError(err))
	}

	return p.check(structPtr)
}

func (p *Parser) check(structPtr any) error {
	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

func checkStructPtr(structPtr any) error {
	v := reflect.ValueOf(structPtr)
	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		return nil
	}

	return fmt.Errorf("http/req: %w: %T is not a pointer to a struct", habits.ErrUnaddressable, structPtr)
}
