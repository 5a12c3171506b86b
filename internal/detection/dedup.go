package detection

// deduplicateFields collapses candidates that refer to the same logical
// field. Labels are normalized through canonicalKey, so spelling variants
// of one concept ("Account #", "Acct No") share a single entry. For each
// canonical key the highest-confidence field survives; exact ties keep
// the field encountered first. The result order is unspecified.
func deduplicateFields(fields []DetectedField) []DetectedField {
	if len(fields) == 0 {
		return []DetectedField{}
	}

	best := make(map[string]DetectedField)
	for _, field := range fields {
		if field.Label == "" {
			continue
		}

		key := canonicalKey(field.Label)
		existing, seen := best[key]
		if !seen || field.Confidence > existing.Confidence {
			best[key] = field
		}
	}

	result := make([]DetectedField, 0, len(best))
	for _, field := range best {
		result = append(result, field)
	}
	return result
}
