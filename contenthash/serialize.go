package contenthash

// MarshalText implements encoding.TextMarshaler. A Hash embeds into JSON
// and other textual documents as its plain hexadecimal string rather than
// as a structure.
func (hash Hash) MarshalText() ([]byte, error) {
	return []byte(hash.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// validation rules as FromString.
func (hash *Hash) UnmarshalText(text []byte) error {
	decoded, err := FromString(string(text))
	if err != nil {
		return err
	}
	hash.hashArray = decoded.hashArray
	return nil
}
