package v1handler

import (
	"bytes"
	"hashhush/pkg/domain"
	"hashhush/pkg/serrors"
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

type DetectRequest struct {
	Hash string
}

type GenerateRequest struct {
	Text      string
	Algorithm string
}

type CrackRequest struct {
	Hash       string
	Algorithm  string
	Dictionary []string
}

// readBody reads the request body, refusing more than limit bytes when limit is set.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return data, nil
}

// decodeObject calls field for every key of the JSON object in data. An
// empty body decodes as an empty object.
func decodeObject(data []byte, field func(d *jx.Decoder, key string) error) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	d := jx.DecodeBytes(data)
	if tt := d.Next(); tt != jx.Object {
		return serrors.With(serrors.ErrBadRequest, "request body must be a JSON object, got %s", tt)
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		return field(d, string(key))
	})
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	// only whitespace may follow the object
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return serrors.With(serrors.ErrBadRequest, "unexpected data after JSON object")
	}

	return nil
}

// decodeString reads a string field; null reads as empty.
func decodeString(d *jx.Decoder, name string) (string, error) {
	switch tt := d.Next(); tt {
	case jx.Null:
		return "", d.Null()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return "", errors.Wrapf(err, "decode %q", name)
		}

		return s, nil
	default:
		return "", errors.Errorf("field %q: expected string, got %s", name, tt)
	}
}

// decodeStrings reads an array of strings; null reads as nil.
func decodeStrings(d *jx.Decoder, name string) ([]string, error) {
	switch tt := d.Next(); tt {
	case jx.Null:
		return nil, d.Null()
	case jx.Array:
	default:
		return nil, errors.Errorf("field %q: expected array, got %s", name, tt)
	}

	var out []string
	err := d.Arr(func(d *jx.Decoder) error {
		if tt := d.Next(); tt != jx.String {
			return errors.Errorf("field %q: expected string items, got %s", name, tt)
		}
		s, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "decode %q item", name)
		}
		out = append(out, s)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Decode reads a detect request. Unknown fields are ignored.
func (r *DetectRequest) Decode(data []byte) error {
	return decodeObject(data, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "hash":
			r.Hash, err = decodeString(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
}

// Decode reads a generate request. Unknown fields are ignored.
func (r *GenerateRequest) Decode(data []byte) error {
	return decodeObject(data, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "text":
			r.Text, err = decodeString(d, key)
		case "algorithm":
			r.Algorithm, err = decodeString(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
}

// Decode reads a crack request. Unknown fields are ignored.
func (r *CrackRequest) Decode(data []byte) error {
	return decodeObject(data, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "hash":
			r.Hash, err = decodeString(d, key)
		case "algorithm":
			r.Algorithm, err = decodeString(d, key)
		case "dictionary":
			r.Dictionary, err = decodeStrings(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
}

type DetectResponse struct {
	domain.Detection
}

func (r DetectResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("hash")
	e.Str(r.Hash)
	e.FieldStart("detectedType")
	e.Str(r.Fingerprint.Algorithm.String())
	e.FieldStart("confidence")
	e.Str(string(r.Fingerprint.Confidence))
	e.FieldStart("candidates")
	e.ArrStart()
	for _, c := range r.Candidates {
		e.Str(c.String())
	}
	e.ArrEnd()
	e.ObjEnd()
}

type GenerateResponse struct {
	domain.Generation
}

func (r GenerateResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("originalText")
	e.Str(r.OriginalText)
	e.FieldStart("algorithm")
	e.Str(r.Algorithm.String())
	e.FieldStart("hash")
	e.Str(r.Hash)
	e.ObjEnd()
}

type CrackResponse struct {
	Hash   string
	Result domain.CrackResult
}

func encodeCrackResult(e *jx.Encoder, res domain.CrackResult) {
	e.FieldStart("found")
	e.Bool(res.Found)
	e.FieldStart("password")
	if res.Password != nil {
		e.Str(*res.Password)
	} else {
		e.Null()
	}
	e.FieldStart("algorithm")
	e.Str(res.Algorithm.String())
}

func (r CrackResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("hash")
	e.Str(r.Hash)
	encodeCrackResult(e, r.Result)
	e.ObjEnd()
}

type AlgorithmsResponse []domain.AlgorithmInfo

func (r AlgorithmsResponse) Encode(e *jx.Encoder) {
	e.ArrStart()
	for _, a := range r {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(a.Name)
		e.FieldStart("value")
		e.Str(a.Value.String())
		e.FieldStart("description")
		e.Str(a.Description)
		e.ObjEnd()
	}
	e.ArrEnd()
}

type HealthResponse struct {
	Status  string
	Message string
}

func (r HealthResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("status")
	e.Str(r.Status)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

type TestCrackResponse struct {
	TestPassword string
	TestHash     string
	Result       domain.CrackResult
	Success      bool
}

func (r TestCrackResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("testPassword")
	e.Str(r.TestPassword)
	e.FieldStart("testHash")
	e.Str(r.TestHash)
	e.FieldStart("result")
	e.ObjStart()
	encodeCrackResult(e, r.Result)
	e.ObjEnd()
	e.FieldStart("success")
	e.Bool(r.Success)
	e.ObjEnd()
}
