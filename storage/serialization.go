// Copyright 2025 Riftforge Games
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Document is a stored record together with its envelope metadata.
type Document struct {
	Collection string
	ID         string
	Data       map[string]any
	WrittenAt  time.Time
}

// envelope is the on-disk layout: collection, id, JSON payload, write time in
// Unix microseconds. The payload stays JSON because record fields are free-form.
type envelope struct {
	collection string
	id         string
	payload    string
	writtenAt  int64
}

func (e envelope) size() int {
	return ord.String.Size(e.collection) +
		ord.String.Size(e.id) +
		ord.String.Size(e.payload) +
		varint.Int64.Size(e.writtenAt)
}

func (e envelope) marshal(bs []byte) (n int) {
	n = ord.String.Marshal(e.collection, bs)
	n += ord.String.Marshal(e.id, bs[n:])
	n += ord.String.Marshal(e.payload, bs[n:])
	n += varint.Int64.Marshal(e.writtenAt, bs[n:])
	return n
}

func unmarshalEnvelope(bs []byte) (e envelope, n int, err error) {
	var n1 int
	e.collection, n1, err = ord.String.Unmarshal(bs)
	n += n1
	if err != nil {
		return
	}
	e.id, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.payload, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.writtenAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

// MarshalDocument encodes a document for key-value storage.
func MarshalDocument(doc *Document) ([]byte, error) {
	payload, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	e := envelope{
		collection: doc.Collection,
		id:         doc.ID,
		payload:    string(payload),
		writtenAt:  doc.WrittenAt.UnixMicro(),
	}
	buf := make([]byte, e.size())
	e.marshal(buf)
	return buf, nil
}

// UnmarshalDocument decodes bytes produced by MarshalDocument.
func UnmarshalDocument(data []byte) (*Document, error) {
	e, _, err := unmarshalEnvelope(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(e.payload), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	return &Document{
		Collection: e.collection,
		ID:         e.id,
		Data:       fields,
		WrittenAt:  time.UnixMicro(e.writtenAt).UTC(),
	}, nil
}
