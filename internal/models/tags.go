package models

import (
	"fmt"
	"strings"
)

// NormalizeTags trims, lowercases and deduplicates a tag set, preserving
// first-seen order. It rejects sets that exceed MaxTagsPerEntity after
// deduplication and individual tags longer than MaxTagLength.
func NormalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if len(tag) > MaxTagLength {
			return nil, fmt.Errorf("tag %q exceeds %d characters", tag, MaxTagLength)
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	if len(normalized) > MaxTagsPerEntity {
		return nil, fmt.Errorf("too many tags: %d (maximum %d)", len(normalized), MaxTagsPerEntity)
	}
	return normalized, nil
}
