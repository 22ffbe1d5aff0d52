// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru"
)

// defaultVerifyCacheSize bounds how many (request, response) verdicts a
// Treasury remembers. A ceremony rarely has more than a few thousand
// distinct peers, so this comfortably covers one run without unbounded
// growth across many reloads.
const defaultVerifyCacheSize = 4096

func newVerifyCache() *lru.Cache {
	cache, err := lru.New(defaultVerifyCacheSize)
	if err != nil {
		// defaultVerifyCacheSize is a positive compile-time constant; lru.New
		// only errors on size <= 0.
		panic(err)
	}
	return cache
}

// verifyCacheKey hashes the canonical encoding of req and resp together, so
// any change to either invalidates the cached verdict.
func verifyCacheKey(req *Request, resp *Response) (string, error) {
	reqBytes, err := MarshalRequest(req)
	if err != nil {
		return "", err
	}
	respBytes, err := MarshalResponse(resp)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write(reqBytes)
	h.Write(respBytes)
	return string(h.Sum(nil)), nil
}

// VerifyResponse reports whether resp answers req correctly, memoizing the
// verdict by the hash of the pair. A node that both serves a verify RPC and
// periodically rebuilds blocks from the same accumulated entries checks
// each response's validity only once.
func (t *Treasury) VerifyResponse(req *Request, resp *Response) (bool, error) {
	key, err := verifyCacheKey(req, resp)
	if err != nil {
		return false, err
	}
	if cached, ok := t.verifyCache.Get(key); ok {
		return cached.(bool), nil
	}
	valid := resp.IsValid(req)
	t.verifyCache.Add(key, valid)
	return valid, nil
}

// VerifyCacheLen returns the number of cached verification verdicts.
func (t *Treasury) VerifyCacheLen() int {
	return t.verifyCache.Len()
}

// ClearVerifyCache discards every cached verification verdict.
func (t *Treasury) ClearVerifyCache() {
	t.verifyCache.Purge()
}
