package question

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeBank writes bank to w in the requested format.
func EncodeBank(w io.Writer, bank Bank, format Format) error {
	return encode(w, bank, format)
}

// EncodeAnswers writes answers to w in the requested format.
func EncodeAnswers(w io.Writer, answers []Answer, format Format) error {
	payload := struct {
		Answers []Answer `json:"answers" yaml:"answers"`
	}{Answers: answers}
	return encode(w, payload, format)
}

func encode(w io.Writer, value any, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
