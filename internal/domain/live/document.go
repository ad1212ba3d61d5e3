package live

import "encoding/json"

// Document is a live-match payload held in its wire shape: top-level field
// name to raw JSON value. Partial updates from the feed omit fields that
// have not changed, so the merged document is the union of everything seen
// so far for a match.
type Document map[string]json.RawMessage

// ParseDocument decodes a raw JSON object into a Document.
func ParseDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Merge lays src over dst and returns the result. Keys present in src
// overwrite dst wholesale, including object-valued keys (a fresh scorecard
// replaces the old one entirely, it is never patched field by field).
// Keys absent from src keep their previous value. Neither input is mutated.
func Merge(dst, src Document) Document {
	merged := make(Document, len(dst)+len(src))
	for k, v := range dst {
		merged[k] = v
	}
	for k, v := range src {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
