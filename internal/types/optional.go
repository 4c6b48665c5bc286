// optional.go
//
// Roadmap and user feedback management service
// Copyright (c) 2026 the roadmap-feedback authors
//
// This file is part of roadmap-feedback.
// roadmap-feedback is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roadmap-feedback is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roadmap-feedback.
// If not, see <https://www.gnu.org/licenses/>.

package types

import (
	"encoding/json"
)

// Optional is a field that tracks whether it appeared in the raw JSON input
// at all. Partial updates must tell apart "field omitted" (leave the stored
// value untouched) from "field explicitly sent", including an explicit null
// or empty value. UnmarshalJSON is only invoked for keys present in the
// input, so Set doubles as the presence flag.
type Optional[T any] struct {
	Value T
	Set   bool  // key was present in the input
	Null  bool  // key was present and explicitly null
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Get returns the value and whether a non-null value was provided.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && !o.Null
}
