package contenthash

import (
	"encoding/json"
	"strings"
	"testing"
)

type hashedDocument struct {
	Hash *Hash  `json:"hash"`
	Name string `json:"name"`
}

func TestJSONEmbedding(t *testing.T) {
	hashString := "ab" + strings.Repeat("00", Size-1)
	hash, err := FromString(hashString)
	if err != nil {
		t.Fatalf("FromString: unexpected error %v", err)
	}

	serialized, err := json.Marshal(hashedDocument{Hash: hash, Name: "blob"})
	if err != nil {
		t.Fatalf("Marshal: unexpected error %v", err)
	}

	want := `{"hash":"` + hashString + `","name":"blob"}`
	if string(serialized) != want {
		t.Errorf("Marshal: wrong document - got %s, want %s", serialized, want)
	}

	var decoded hashedDocument
	err = json.Unmarshal(serialized, &decoded)
	if err != nil {
		t.Fatalf("Unmarshal: unexpected error %v", err)
	}
	if !decoded.Hash.Equal(hash) {
		t.Errorf("Unmarshal: round trip mismatch - got %v, want %v", decoded.Hash, hash)
	}
}

func TestJSONPrefixTolerance(t *testing.T) {
	hashString := "00000000000003ba27aa200b1cecaad478d2b00432346c3f1f3986da1afd33e5"

	var decoded hashedDocument
	err := json.Unmarshal([]byte(`{"hash":"0x`+hashString+`"}`), &decoded)
	if err != nil {
		t.Fatalf("Unmarshal: unexpected error %v", err)
	}
	if decoded.Hash.String() != hashString {
		t.Errorf("Unmarshal: wrong hash - got %v, want %v", decoded.Hash, hashString)
	}
}

func TestUnmarshalInvalidHex(t *testing.T) {
	var decoded hashedDocument
	err := json.Unmarshal([]byte(`{"hash":"not-a-hash"}`), &decoded)
	if err == nil {
		t.Fatal("Unmarshal: expected error for invalid hex, got nil")
	}
	if !IsInvalidHexError(err) {
		t.Errorf("Unmarshal: expected an invalid hex error, got: %v", err)
	}
}
