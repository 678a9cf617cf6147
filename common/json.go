package common

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func encodeJSON(i interface{}, indent, escapeHTML bool) ([]byte, error) {
	buffer := &bytes.Buffer{}
	e := json.NewEncoder(buffer)
	e.SetEscapeHTML(escapeHTML)
	if indent {
		e.SetIndent("", "  ")
	}

	if err := e.Encode(i); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

func EncodeJSON(i interface{}, indent, escapeHTML bool) ([]byte, error) {
	return encodeJSON(i, indent, escapeHTML)
}

func PrintJSON(b []byte, indent bool, escapeHTML bool) string {
	buffer := &bytes.Buffer{}
	e := json.NewEncoder(buffer)
	e.SetEscapeHTML(escapeHTML)
	if indent {
		e.SetIndent("", "  ")
	}

	err := e.Encode(json.RawMessage(b))
	if err != nil {
		fmt.Println(">>>>>>.", err)
		return ""
	}

	return buffer.String()
}
