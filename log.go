package habits

import "net/url"

const LogMaskVal = "xxxxxx"

// Mask replaces all values for key in vals with a single LogMaskVal.
// Mask does nothing if key is not set in vals.
func Mask(vals url.Values, key string) {
	if !vals.Has(key) {
		return
	}

	vals.Set(key, LogMaskVal)
}
