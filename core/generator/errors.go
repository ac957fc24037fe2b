// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import "fmt"

// ErrSizeMismatch is returned by New when the keyset and charset do not
// have the same size - a layout needs exactly one character per key.
type ErrSizeMismatch struct {
	Keys, Chars int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("generator: keyset has %d entries, charset has %d, they must match", e.Keys, e.Chars)
}

// ErrInvalidKey is returned when a pin names a key outside the keyset.
type ErrInvalidKey[K comparable] struct {
	Key K
}

func (e *ErrInvalidKey[K]) Error() string {
	return fmt.Sprintf("generator: pin names key %v which is not in the keyset", e.Key)
}

// ErrInvalidChar is returned when a pin names a character outside the
// charset.
type ErrInvalidChar struct {
	Char rune
}

func (e *ErrInvalidChar) Error() string {
	return fmt.Sprintf("generator: pin names character %q which is not in the charset", e.Char)
}

// ErrDuplicateKey is returned when two pins name the same key.
type ErrDuplicateKey[K comparable] struct {
	Key K
}

func (e *ErrDuplicateKey[K]) Error() string {
	return fmt.Sprintf("generator: key %v is pinned more than once", e.Key)
}

// ErrDuplicateChar is returned when two pins name the same character.
type ErrDuplicateChar struct {
	Char rune
}

func (e *ErrDuplicateChar) Error() string {
	return fmt.Sprintf("generator: character %q is pinned more than once", e.Char)
}
