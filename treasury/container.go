// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/luxfi/log"
)

// Entry pairs one peer's issuance request with its (possibly absent)
// response. An entry without a response is legal: the peer simply has not
// answered yet, and the packer skips it.
type Entry struct {
	Request  *Request  `serialize:"true"`
	Response *Response `serialize:"true"`
}

// Treasury owns the full entry map for one issuance ceremony. It is the
// node's entry point for planning, collecting responses, and packing the
// genesis-adjacent blocks the chain boots from.
type Treasury struct {
	mu          sync.Mutex
	entries     map[PeerID]*Entry
	log         log.Logger
	verifyCache *lru.Cache
}

// New returns an empty Treasury. A nil logger defaults to a no-op logger.
func New(logger log.Logger) *Treasury {
	if logger == nil {
		logger = log.NoLog{}
	}
	return &Treasury{entries: make(map[PeerID]*Entry), log: logger, verifyCache: newVerifyCache()}
}

func (t *Treasury) setEntry(peer PeerID, e *Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[peer] = e
	t.log.Debug("treasury entry set",
		log.String("peer", fmt.Sprintf("%x", peer[:8])),
		log.Int("groups", len(e.Request.Groups)),
	)
}

// Entry returns the peer's entry, or nil if none exists.
func (t *Treasury) Entry(peer PeerID) *Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries[peer]
}

// SetResponse attaches a response to an existing entry. It does not
// validate the response; callers are expected to call Response.IsValid
// first.
func (t *Treasury) SetResponse(peer PeerID, resp *Response) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[peer]
	if !ok {
		return ErrUnknownPeer
	}
	e.Response = resp
	t.log.Info("response attached to entry",
		log.String("peer", fmt.Sprintf("%x", peer[:8])),
		log.Int("groups", len(resp.Groups)),
	)
	return nil
}

// AddEntry inserts a standalone (request, response) pair directly, keyed by
// the request's wallet id — used when reconstituting a ceremony from
// externally-produced files rather than from CreatePlan.
func (t *Treasury) AddEntry(req *Request, resp *Response) error {
	if resp != nil && resp.WalletID != req.WalletID {
		return ErrWalletMismatch
	}
	t.setEntry(req.WalletID, &Entry{Request: req, Response: resp})
	return nil
}

// sortedPeers returns every peer with an entry, in ascending PeerID order —
// the treasury's one fixed iteration order, used by both Build and
// canonical serialization so two runs over the same entries always agree.
func (t *Treasury) sortedPeers() []PeerID {
	peers := make([]PeerID, 0, len(t.entries))
	for p := range t.entries {
		peers = append(peers, p)
	}
	sort.Slice(peers, func(i, j int) bool {
		return string(peers[i][:]) < string(peers[j][:])
	})
	return peers
}

// Snapshot is the canonically serializable form of a Treasury: its entries
// in sorted-PeerID order, letting an issuance ceremony pause and resume
// across sessions without depending on Go map iteration order.
type Snapshot struct {
	Peers   []PeerID `serialize:"true"`
	Entries []*Entry `serialize:"true"`
}

// Snapshot captures t's current state for serialization.
func (t *Treasury) Snapshot() *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	peers := t.sortedPeers()
	s := &Snapshot{Peers: peers, Entries: make([]*Entry, len(peers))}
	for i, p := range peers {
		s.Entries[i] = t.entries[p]
	}
	return s
}

// Restore replaces t's entries with the snapshot's contents.
func (t *Treasury) Restore(s *Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = make(map[PeerID]*Entry, len(s.Peers))
	for i, p := range s.Peers {
		t.entries[p] = s.Entries[i]
	}
}

// Marshal encodes t's current state using the treasury's canonical codec.
func (t *Treasury) Marshal() ([]byte, error) {
	return Codec.Marshal(codecVersion, t.Snapshot())
}

// Unmarshal replaces t's state with the decoding of b.
func (t *Treasury) Unmarshal(b []byte) error {
	s := &Snapshot{}
	if _, err := Codec.Unmarshal(b, s); err != nil {
		return err
	}
	t.Restore(s)
	return nil
}
