package domain

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var payloadAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	kindString = jsoniter.StringValue
	kindNumber = jsoniter.NumberValue
	kindNull   = jsoniter.NilValue
	kindArray  = jsoniter.ArrayValue
	kindObject = jsoniter.ObjectValue
)

type member struct {
	name  string
	value []byte
}

// DecodeResult parses a backend response body. Only bodies that are not JSON
// fail; fields that are missing or carry an unexpected type are left empty.
func DecodeResult(body []byte) (AutomationResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return AutomationResult{}, ErrMalformedPayload
	}

	result := AutomationResult{Raw: append([]byte(nil), trimmed...)}
	members, ok := objectMembers(trimmed)
	if !ok {
		return result, nil
	}

	for _, m := range members {
		switch m.name {
		case "status":
			result.Status = statusValue(m.value)
		case "original_command":
			result.OriginalCommand = scalarText(m.value)
		case "message":
			result.Message = scalarText(m.value)
		case "description":
			result.Description = scalarText(m.value)
		case "final_screenshot":
			result.FinalScreenshot = stringValue(m.value)
		case "screenshot":
			result.Screenshot = stringValue(m.value)
		case "steps_results":
			result.Steps, result.HasSteps = decodeSteps(m.value)
		case "data":
			result.Data, result.HasData = decodeData(m.value)
		}
	}
	return result, nil
}

func decodeSteps(raw []byte) ([]Step, bool) {
	elements, ok := arrayElements(raw)
	if !ok {
		return nil, false
	}
	steps := make([]Step, 0, len(elements))
	for _, element := range elements {
		steps = append(steps, decodeStep(element))
	}
	return steps, true
}

func decodeStep(raw []byte) Step {
	var step Step
	members, ok := objectMembers(raw)
	if !ok {
		return step
	}
	for _, m := range members {
		switch m.name {
		case "action":
			step.Action = scalarText(m.value)
		case "status":
			step.Status = statusValue(m.value)
		case "details":
			step.Details = scalarText(m.value)
		case "error":
			step.Error = scalarText(m.value)
		case "image":
			step.Image = stringValue(m.value)
		case "extracted_data":
			step.ExtractedData = nil
			if valueKind(m.value) != kindNull {
				step.ExtractedData = m.value
			}
		}
	}
	return step
}

func decodeData(raw []byte) ([]DataEntry, bool) {
	members, ok := objectMembers(raw)
	if !ok {
		return nil, false
	}
	entries := make([]DataEntry, 0, len(members))
	position := make(map[string]int, len(members))
	for _, m := range members {
		// a repeated key keeps its first position and takes the last value
		if idx, seen := position[m.name]; seen {
			entries[idx].Value = m.value
			continue
		}
		position[m.name] = len(entries)
		entries = append(entries, DataEntry{Key: m.name, Value: m.value})
	}
	return entries, true
}

// objectMembers returns the members of a JSON object in source order.
func objectMembers(raw []byte) ([]member, bool) {
	iter := jsoniter.ParseBytes(payloadAPI, raw)
	if iter.WhatIsNext() != kindObject {
		return nil, false
	}
	var members []member
	iter.ReadObjectCB(func(it *jsoniter.Iterator, name string) bool {
		members = append(members, member{name: name, value: captureValue(it)})
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, false
	}
	return members, true
}

// arrayElements returns the raw elements of a JSON array.
func arrayElements(raw []byte) ([][]byte, bool) {
	iter := jsoniter.ParseBytes(payloadAPI, raw)
	if iter.WhatIsNext() != kindArray {
		return nil, false
	}
	elements := [][]byte{}
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		elements = append(elements, captureValue(it))
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, false
	}
	return elements, true
}

// captureValue copies the next value out of the iterator buffer.
func captureValue(it *jsoniter.Iterator) []byte {
	value := bytes.TrimSpace(it.SkipAndReturnBytes())
	return append([]byte(nil), value...)
}

func valueKind(raw []byte) jsoniter.ValueType {
	if len(raw) == 0 {
		return jsoniter.InvalidValue
	}
	return jsoniter.ParseBytes(payloadAPI, raw).WhatIsNext()
}

// stringValue decodes raw only when it is a JSON string.
func stringValue(raw []byte) string {
	if valueKind(raw) != kindString {
		return ""
	}
	var s string
	if err := payloadAPI.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// scalarText renders strings and numbers as text; every other kind is empty.
func scalarText(raw []byte) string {
	switch valueKind(raw) {
	case kindString:
		return stringValue(raw)
	case kindNumber:
		return string(raw)
	default:
		return ""
	}
}

// statusValue keeps string statuses as-is and carries any other non-null
// value as its JSON text.
func statusValue(raw []byte) Status {
	switch valueKind(raw) {
	case kindString:
		return Status(stringValue(raw))
	case kindNull, jsoniter.InvalidValue:
		return ""
	default:
		return Status(CompactJSON(raw))
	}
}

// naturalText is the display form of one sequence element: strings verbatim,
// numbers in their shortest decimal form, everything else as compact JSON.
func naturalText(raw []byte) string {
	switch valueKind(raw) {
	case kindString:
		return stringValue(raw)
	case kindNumber:
		return numberText(raw)
	}
	return CompactJSON(raw)
}

// numberText prints a JSON number the way a browser would: 1.0 is "1",
// exponents appear only below 1e-6 or from 1e21 up.
func numberText(raw []byte) string {
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
	if err != nil || math.IsInf(f, 0) {
		return CompactJSON(raw)
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		text := strconv.FormatFloat(f, 'e', -1, 64)
		return strings.NewReplacer("e-0", "e-", "e+0", "e+").Replace(text)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CompactJSON re-encodes raw without insignificant whitespace, keeping member
// order. Input that cannot be compacted is returned unchanged.
func CompactJSON(raw []byte) string {
	if len(raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// PrettyJSON indents raw with two spaces, keeping member order. Input that
// cannot be indented is returned unchanged.
func PrettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
