package services

import (
	"encoding/json"
	"errors"
	"strings"
)

// Extraction stages, in the order they are attempted. The matched stage is
// reported on malformed-output errors so logs show how far parsing got.
const (
	StageStrict  = "strict"
	StageFenced  = "fenced"
	StageBracket = "bracket"
)

// ExtractJSONArray recovers a JSON array from a model reply that may wrap the
// JSON in a markdown code fence or surrounding prose. It tries, in order:
// the whole reply, the first fenced code block, and the first-'['/last-']'
// span. It returns the JSON substring and the stage that matched.
func ExtractJSONArray(raw string) (string, string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", errors.New("reply is empty")
	}

	if strings.HasPrefix(trimmed, "[") && json.Valid([]byte(trimmed)) {
		return trimmed, StageStrict, nil
	}

	if block, ok := fencedBlock(trimmed); ok {
		if strings.HasPrefix(block, "[") && json.Valid([]byte(block)) {
			return block, StageFenced, nil
		}
	}

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start < 0 || end <= start {
		return "", "", errors.New("reply contains no JSON array")
	}
	span := trimmed[start : end+1]
	if !json.Valid([]byte(span)) {
		return "", "", errors.New("bracketed span is not valid JSON")
	}
	return span, StageBracket, nil
}

// fencedBlock returns the contents of the first ``` code fence, with any
// info string ("json") dropped.
func fencedBlock(s string) (string, bool) {
	start := strings.Index(s, "```")
	if start < 0 {
		return "", false
	}
	rest := s[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		first := strings.TrimSpace(rest[:nl])
		if first == "" || !strings.ContainsAny(first, "[{") {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
