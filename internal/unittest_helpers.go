package internal

import (
	"crypto/rand"
	"fmt"

	"github.com/go-faker/faker/v4"
)

type actionType uint8

const (
	insertAction actionType = iota
	removeAction
)

type nodeAction[V any] struct {
	kind  actionType
	key   byte
	child INode[V]
}

type KVString struct {
	Key   []byte
	Value string
}

func randomByte() byte {
	randomByte := make([]byte, 1)

	// Read random data into the byte slice
	_, err := rand.Read(randomByte)
	if err != nil {
		fmt.Println("Error generating random byte:", err)
		return 0
	}

	return randomByte[0]
}

func randomBytes(num int) []byte {
	res := make([]byte, num)
	for i := 0; i < num; i++ {
		res[i] = randomByte()
	}
	return res
}

func RandomQuote() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	err := faker.FakeData(&quote)
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return quote.Sentence
}

func generateStringLeaves(sz int) []INode[string] {
	res := make([]INode[string], sz)

	for i := 0; i < sz; i++ {
		res[i] = NewNodeWithKV[string](randomBytes(5), RandomQuote())
	}

	return res
}

// SeedMapKVString generates sz distinct random keys with faker values.
func SeedMapKVString(sz int) []KVString {
	seen := make(map[string]struct{}, sz)
	res := make([]KVString, 0, sz)
	for len(res) < sz {
		key := randomBytes(8)
		if _, ok := seen[string(key)]; ok {
			continue
		}
		seen[string(key)] = struct{}{}
		res = append(res, KVString{Key: key, Value: RandomQuote()})
	}
	return res
}
