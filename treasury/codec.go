// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"errors"
	"math"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
)

const codecVersion = 0

// Codec is the treasury's canonical binary archive: Request, Response,
// Entry and Snapshot all serialize through it, field order matching their
// declaration order, for byte-exact compatibility with on-chain bootstrap
// data.
var Codec codec.Manager

func init() {
	Codec = codec.NewManager(math.MaxInt)
	lc := linearcodec.NewDefault()

	err := errors.Join(
		lc.RegisterType(&Coin{}),
		lc.RegisterType(&Group{}),
		lc.RegisterType(&Request{}),
		lc.RegisterType(&Output{}),
		lc.RegisterType(&Signature{}),
		lc.RegisterType(&ResponseCoin{}),
		lc.RegisterType(&TxBase{}),
		lc.RegisterType(&Kernel{}),
		lc.RegisterType(&ResponseGroup{}),
		lc.RegisterType(&Response{}),
		lc.RegisterType(&Entry{}),
		lc.RegisterType(&Snapshot{}),
		lc.RegisterType(&Body{}),
		Codec.RegisterCodec(codecVersion, lc),
	)
	if err != nil {
		panic(err)
	}
}

// MarshalRequest canonically encodes a Request.
func MarshalRequest(r *Request) ([]byte, error) {
	return Codec.Marshal(codecVersion, r)
}

// UnmarshalRequest decodes a canonically-encoded Request.
func UnmarshalRequest(b []byte) (*Request, error) {
	r := &Request{}
	_, err := Codec.Unmarshal(b, r)
	return r, err
}

// MarshalResponse canonically encodes a Response.
func MarshalResponse(r *Response) ([]byte, error) {
	return Codec.Marshal(codecVersion, r)
}

// UnmarshalResponse decodes a canonically-encoded Response.
func UnmarshalResponse(b []byte) (*Response, error) {
	r := &Response{}
	_, err := Codec.Unmarshal(b, r)
	return r, err
}

// MarshalBody canonically encodes a packed block body.
func MarshalBody(b *Body) ([]byte, error) {
	return Codec.Marshal(codecVersion, b)
}

// UnmarshalBody decodes a canonically-encoded block body.
func UnmarshalBody(b []byte) (*Body, error) {
	body := &Body{}
	_, err := Codec.Unmarshal(b, body)
	return body, err
}
