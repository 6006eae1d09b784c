package listing

import (
	"encoding/json"

	perr "roamly/internal/platform/errors"
)

// DecodeBatch parses a JSON array of listings. Records without an id are
// dropped and counted rather than failing the batch; every surviving record
// is normalized. The error is non-nil only when the payload itself is not
// valid JSON
func DecodeBatch(data []byte) (kept []Listing, dropped int, err error) {
	var raw []Listing
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, perr.JSONErrf("listing batch: %v", err)
	}
	kept, dropped = Sanitize(raw)
	return kept, dropped, nil
}

// Sanitize drops records without an id and normalizes the rest in place.
// The returned slice aliases the input's backing array
func Sanitize(in []Listing) (kept []Listing, dropped int) {
	kept = in[:0]
	for i := range in {
		if in[i].ID == "" {
			dropped++
			continue
		}
		in[i].Normalize()
		kept = append(kept, in[i])
	}
	return kept, dropped
}
