// Package models defines the job record and its canonical byte encoding.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var ErrDecode = errors.New("malformed job record")

// Job is a single dispatch job. ID is the storage and cache key and never
// changes; IsOpen is the only field rewritten after creation.
type Job struct {
	ID        int    `json:"id"`
	IsOpen    bool   `json:"isOpen"`
	Address   string `json:"address"`
	Client    string `json:"client"`
	Complaint string `json:"complaint"`
	Details   string `json:"details"`
	Notes     string `json:"notes"`
}

// jobWire mirrors Job with pointer fields so that DecodeJob can tell a
// missing field from a zero value.
type jobWire struct {
	ID        *int    `json:"id"`
	IsOpen    *bool   `json:"isOpen"`
	Address   *string `json:"address"`
	Client    *string `json:"client"`
	Complaint *string `json:"complaint"`
	Details   *string `json:"details"`
	Notes     *string `json:"notes"`
}

// EncodeJob serializes all seven fields of j as a JSON object.
//
// Text fields must be valid UTF-8; JSON would otherwise replace the bad
// bytes and the stored record would no longer match j.
func EncodeJob(j Job) ([]byte, error) {
	if field := j.invalidTextField(); field != "" {
		return nil, fmt.Errorf("%w: field %q is not valid UTF-8", ErrDecode, field)
	}
	return json.Marshal(j)
}

func (j Job) invalidTextField() string {
	switch {
	case !utf8.ValidString(j.Address):
		return "address"
	case !utf8.ValidString(j.Client):
		return "client"
	case !utf8.ValidString(j.Complaint):
		return "complaint"
	case !utf8.ValidString(j.Details):
		return "details"
	case !utf8.ValidString(j.Notes):
		return "notes"
	}
	return ""
}

// DecodeJob parses bytes produced by EncodeJob.
//
// Decoding is strict: unknown fields, missing or null fields, wrong types,
// truncated input, trailing data and invalid UTF-8 are all reported as
// ErrDecode.
func DecodeJob(data []byte) (Job, error) {
	if !utf8.Valid(data) {
		return Job{}, fmt.Errorf("%w: record is not valid UTF-8", ErrDecode)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w jobWire
	if err := dec.Decode(&w); err != nil {
		return Job{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Job{}, fmt.Errorf("%w: trailing data after record", ErrDecode)
	}

	missing := w.missingField()
	if missing != "" {
		return Job{}, fmt.Errorf("%w: field %q is missing", ErrDecode, missing)
	}

	return Job{
		ID:        *w.ID,
		IsOpen:    *w.IsOpen,
		Address:   *w.Address,
		Client:    *w.Client,
		Complaint: *w.Complaint,
		Details:   *w.Details,
		Notes:     *w.Notes,
	}, nil
}

func (w jobWire) missingField() string {
	switch {
	case w.ID == nil:
		return "id"
	case w.IsOpen == nil:
		return "isOpen"
	case w.Address == nil:
		return "address"
	case w.Client == nil:
		return "client"
	case w.Complaint == nil:
		return "complaint"
	case w.Details == nil:
		return "details"
	case w.Notes == nil:
		return "notes"
	}
	return ""
}
