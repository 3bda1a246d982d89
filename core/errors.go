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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a parsed entry cannot be uploaded.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrNotMapping indicates a parsed entry is not a JSON object.
	ErrNotMapping = errors.New("entry is not a mapping")

	// ErrMissingID indicates a mapping has no usable "id" field.
	ErrMissingID = errors.New("entry has no non-empty id")

	// ErrInvalidKind indicates an unknown record kind name.
	ErrInvalidKind = errors.New("invalid record kind")
)
