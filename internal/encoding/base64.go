package encoding

import "encoding/base64"

// Base64Encode encodes data with standard padded Base64, used to package
// signed envelopes for submission (spec.md §4.C8 step 9).
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode decodes s, tolerating both padded and unpadded input.
func Base64Decode(s string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
