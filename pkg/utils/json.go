package utils

import (
	"crypto/sha256"
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CanonicalJSON serializa com chaves ordenadas e sem espaços
func CanonicalJSON(in any) ([]byte, error) {
	return json.Marshal(in)
}

// StableHash é o sha256 hexadecimal do JSON canônico
func StableHash(in any) (string, error) {
	b, err := CanonicalJSON(in)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
