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

package encoding

import "fmt"

// ErrDuplicate is returned by New when fullSet contains a repeated
// value.
type ErrDuplicate[T comparable] struct {
	Value T
}

func (e *ErrDuplicate[T]) Error() string {
	return fmt.Sprintf("encoding: duplicate value %v in domain", e.Value)
}

// ErrInvalid is returned by New when a pin names a value absent from
// fullSet.
type ErrInvalid[T comparable] struct {
	Value T
}

func (e *ErrInvalid[T]) Error() string {
	return fmt.Sprintf("encoding: pinned value %v is not part of the domain", e.Value)
}
