package fetch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// decodeVerses accepts the three partition shapes that exist in the
// wild: a bare verse array, a {"verses": [...]} wrapper, and a
// {"data": [...]} wrapper. Anything else is a malformed partition.
func decodeVerses(data []byte) ([]domain.Verse, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrMalformedPartition)
	}

	if trimmed[0] == '[' {
		var verses []domain.Verse
		if err := json.Unmarshal(trimmed, &verses); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPartition, err)
		}
		return verses, nil
	}

	var wrapper struct {
		Verses []domain.Verse `json:"verses"`
		Data   []domain.Verse `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPartition, err)
	}
	switch {
	case wrapper.Verses != nil:
		return wrapper.Verses, nil
	case wrapper.Data != nil:
		return wrapper.Data, nil
	default:
		return nil, fmt.Errorf("%w: no verses or data field", domain.ErrMalformedPartition)
	}
}

// decodeAudioIndex converts the string-keyed JSON map into the numeric
// AudioIndex. Entries with non-numeric keys are skipped rather than
// failing the whole index.
func decodeAudioIndex(data []byte) (domain.AudioIndex, error) {
	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode audio index: %w", err)
	}

	index := make(domain.AudioIndex, len(raw))
	for mandalaKey, suktas := range raw {
		mandala, err := strconv.Atoi(mandalaKey)
		if err != nil {
			logger.Warn("Audio index: skipping non-numeric mandala key %q", mandalaKey)
			continue
		}
		for suktaKey, url := range suktas {
			sukta, err := strconv.Atoi(suktaKey)
			if err != nil {
				logger.Warn("Audio index: skipping non-numeric sukta key %q", suktaKey)
				continue
			}
			if index[mandala] == nil {
				index[mandala] = make(map[int]string)
			}
			index[mandala][sukta] = url
		}
	}
	return index, nil
}

// decodeGeography accepts a bare array or a {"regions": [...]} wrapper.
func decodeGeography(data []byte) ([]domain.GeographyEntry, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []domain.GeographyEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("decode geography: %w", err)
		}
		return entries, nil
	}

	var wrapper struct {
		Regions []domain.GeographyEntry `json:"regions"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("decode geography: %w", err)
	}
	return wrapper.Regions, nil
}

// decodeDeities accepts a bare array or a {"deities": [...]} wrapper.
func decodeDeities(data []byte) ([]domain.DeityEntry, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []domain.DeityEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("decode deities: %w", err)
		}
		return entries, nil
	}

	var wrapper struct {
		Deities []domain.DeityEntry `json:"deities"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("decode deities: %w", err)
	}
	return wrapper.Deities, nil
}
