package common

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

func Sha256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}
